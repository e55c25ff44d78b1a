package controllers

import (
	"context"
	"errors"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/delivery/http/middlewares"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/exceptions"
	"hospadmin-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AgendaController struct {
	Log           *zap.Logger
	AgendaUsecase contracts.AgendaUsecase
}

func NewAgendaController(logger *zap.Logger, agendaUsecase contracts.AgendaUsecase) *AgendaController {
	return &AgendaController{
		Log:           logger,
		AgendaUsecase: agendaUsecase,
	}
}

func (ctrl *AgendaController) CreateSlot(w http.ResponseWriter, r *http.Request) {
	sessionData, err := middlewares.SessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateSlot)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AgendaUsecase.CreateSlot(ctx, sessionData, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SlotCreatedSuccess, result)
}

func (ctrl *AgendaController) ListSlots(w http.ResponseWriter, r *http.Request) {
	filter := utils.BuildSlotFilterRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AgendaUsecase.ListSlots(ctx, filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotListSuccess, result)
}

func (ctrl *AgendaController) ReserveSlot(w http.ResponseWriter, r *http.Request) {
	sessionData, err := middlewares.SessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	slotID := chi.URLParam(r, constvars.URLParamSlotID)

	request := new(requests.ReserveSlot)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AgendaUsecase.ReserveSlot(ctx, sessionData, slotID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "slot_reserved", requestIDFrom(r),
		zap.String(constvars.LoggingSlotIDKey, slotID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID))

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotReservedSuccess, result)
}

func (ctrl *AgendaController) UpdateSlotStatus(w http.ResponseWriter, r *http.Request) {
	sessionData, err := middlewares.SessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	slotID := chi.URLParam(r, constvars.URLParamSlotID)

	request := new(requests.UpdateSlotStatus)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AgendaUsecase.UpdateSlotStatus(ctx, sessionData, slotID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotUpdatedSuccess, nil)
}

func (ctrl *AgendaController) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	sessionData, err := middlewares.SessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateConsultation)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AgendaUsecase.CreateConsultation(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ConsultationCreatedSuccess, result)
}

func (ctrl *AgendaController) ListConsultations(w http.ResponseWriter, r *http.Request) {
	filter := utils.BuildConsultationFilterRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AgendaUsecase.ListConsultations(ctx, filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationListSuccess, result)
}

func (ctrl *AgendaController) MarkArrival(w http.ResponseWriter, r *http.Request) {
	sessionData, err := middlewares.SessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AgendaUsecase.MarkArrival(ctx, sessionData, consultationID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationUpdatedSuccess, nil)
}

func (ctrl *AgendaController) UpdateConsultationStatus(w http.ResponseWriter, r *http.Request) {
	sessionData, err := middlewares.SessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	request := new(requests.UpdateConsultationStatus)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AgendaUsecase.UpdateConsultationStatus(ctx, sessionData, consultationID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationUpdatedSuccess, nil)
}

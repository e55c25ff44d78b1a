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

type EpisodeController struct {
	Log            *zap.Logger
	EpisodeUsecase contracts.EpisodeUsecase
}

func NewEpisodeController(logger *zap.Logger, episodeUsecase contracts.EpisodeUsecase) *EpisodeController {
	return &EpisodeController{
		Log:            logger,
		EpisodeUsecase: episodeUsecase,
	}
}

func (ctrl *EpisodeController) AdmitPatient(w http.ResponseWriter, r *http.Request) {
	sessionData, err := middlewares.SessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AdmitPatient)
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

	result, err := ctrl.EpisodeUsecase.AdmitPatient(ctx, sessionData, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_admitted", requestIDFrom(r),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingEpisodeIDKey, result.ID))

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.EpisodeAdmittedSuccess, result)
}

func (ctrl *EpisodeController) AddEvolutionNote(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddEvolutionNote)
	ctrl.addEntry(w, r, request, func(ctx context.Context, sessionData, episodeID string) error {
		return ctrl.EpisodeUsecase.AddEvolutionNote(ctx, sessionData, episodeID, request)
	})
}

func (ctrl *EpisodeController) AddProcedure(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddClinicalEntry)
	ctrl.addEntry(w, r, request, func(ctx context.Context, sessionData, episodeID string) error {
		return ctrl.EpisodeUsecase.AddProcedure(ctx, sessionData, episodeID, request)
	})
}

func (ctrl *EpisodeController) AddTreatment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddClinicalEntry)
	ctrl.addEntry(w, r, request, func(ctx context.Context, sessionData, episodeID string) error {
		return ctrl.EpisodeUsecase.AddTreatment(ctx, sessionData, episodeID, request)
	})
}

func (ctrl *EpisodeController) AddLabResult(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddClinicalEntry)
	ctrl.addEntry(w, r, request, func(ctx context.Context, sessionData, episodeID string) error {
		return ctrl.EpisodeUsecase.AddLabResult(ctx, sessionData, episodeID, request)
	})
}

func (ctrl *EpisodeController) AddImagingStudy(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddClinicalEntry)
	ctrl.addEntry(w, r, request, func(ctx context.Context, sessionData, episodeID string) error {
		return ctrl.EpisodeUsecase.AddImagingStudy(ctx, sessionData, episodeID, request)
	})
}

func (ctrl *EpisodeController) AddVitalSigns(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddVitalSigns)
	ctrl.addEntry(w, r, request, func(ctx context.Context, sessionData, episodeID string) error {
		return ctrl.EpisodeUsecase.AddVitalSigns(ctx, sessionData, episodeID, request)
	})
}

// addEntry shares the decode/validate/dispatch plumbing of the append
// endpoints. The request has been decoded into the caller's struct before the
// callback runs.
func (ctrl *EpisodeController) addEntry(w http.ResponseWriter, r *http.Request, request interface{}, dispatch func(ctx context.Context, sessionData, episodeID string) error) {
	sessionData, err := middlewares.SessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	episodeID := chi.URLParam(r, constvars.URLParamEpisodeID)

	err = json.NewDecoder(r.Body).Decode(request)
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

	if err := dispatch(ctx, sessionData, episodeID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EpisodeNoteAddedSuccess, nil)
}

func (ctrl *EpisodeController) DischargePatient(w http.ResponseWriter, r *http.Request) {
	sessionData, err := middlewares.SessionDataFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	episodeID := chi.URLParam(r, constvars.URLParamEpisodeID)

	request := new(requests.DischargePatient)
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

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.EpisodeUsecase.DischargePatient(ctx, sessionData, episodeID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_discharged", requestIDFrom(r),
		zap.String(constvars.LoggingEpisodeIDKey, episodeID),
		zap.String("discharge_condition", request.Condition))

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EpisodeDischargedSuccess, result)
}

func (ctrl *EpisodeController) GetEpisodeByID(w http.ResponseWriter, r *http.Request) {
	episodeID := chi.URLParam(r, constvars.URLParamEpisodeID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.EpisodeUsecase.FindEpisodeByID(ctx, episodeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EpisodeGetSuccess, result)
}

func (ctrl *EpisodeController) ListEpisodesByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.EpisodeUsecase.ListEpisodesByPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EpisodeListSuccess, result)
}

func (ctrl *EpisodeController) ListActiveEpisodes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.EpisodeUsecase.ListActiveEpisodes(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EpisodeListSuccess, result)
}

func (ctrl *EpisodeController) GetDischargeReport(w http.ResponseWriter, r *http.Request) {
	episodeID := chi.URLParam(r, constvars.URLParamEpisodeID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.EpisodeUsecase.GenerateDischargeReport(ctx, episodeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DischargeReportGetSuccess, result)
}

func requestIDFrom(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

package agenda

import (
	"context"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/exceptions"
	"hospadmin-service/internal/pkg/utils"
)

type agendaUsecase struct {
	SlotRepository         contracts.SlotRepository
	ConsultationRepository contracts.ConsultationRepository
	PatientRepository      contracts.PatientRepository
}

func NewAgendaUsecase(
	slotRepository contracts.SlotRepository,
	consultationRepository contracts.ConsultationRepository,
	patientRepository contracts.PatientRepository,
) contracts.AgendaUsecase {
	return &agendaUsecase{
		SlotRepository:         slotRepository,
		ConsultationRepository: consultationRepository,
		PatientRepository:      patientRepository,
	}
}

// CreateSlot opens a bookable unit of the agenda. Overlapping slots for the
// same doctor are allowed; the agenda view makes collisions visible and the
// desk resolves them by hand.
func (uc *agendaUsecase) CreateSlot(ctx context.Context, sessionData string, request *requests.CreateSlot) (*models.AgendaSlot, error) {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return nil, err
	}

	if utils.SlotDuration(request.StartTime, request.EndTime) <= 0 {
		return nil, exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevInvalidInput)
	}

	slot := &models.AgendaSlot{
		Doctor:    request.Doctor,
		Specialty: request.Specialty,
		Date:      request.Date,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		Label:     request.Label,
		Status:    constvars.SlotStatusAvailable,
		CreatedBy: session.Email,
	}
	slot.SetCreatedAtUpdatedAt()

	slotID, err := uc.SlotRepository.Insert(ctx, slot)
	if err != nil {
		return nil, err
	}
	slot.ID = slotID

	return slot, nil
}

func (uc *agendaUsecase) ListSlots(ctx context.Context, filter *requests.SlotFilter) ([]models.AgendaSlot, error) {
	return uc.SlotRepository.Find(ctx, filter)
}

func (uc *agendaUsecase) ReserveSlot(ctx context.Context, sessionData string, slotID string, request *requests.ReserveSlot) (*models.AgendaSlot, error) {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	return uc.SlotRepository.Reserve(ctx, slotID, request.PatientID, request.ConsultationID, session.Email)
}

func (uc *agendaUsecase) UpdateSlotStatus(ctx context.Context, sessionData string, slotID string, request *requests.UpdateSlotStatus) error {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return err
	}
	return uc.SlotRepository.UpdateStatus(ctx, slotID, request.Status, session.Email)
}

func (uc *agendaUsecase) CreateConsultation(ctx context.Context, sessionData string, request *requests.CreateConsultation) (*models.Consultation, error) {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	if request.SlotID != nil {
		if _, err := uc.SlotRepository.FindByID(ctx, *request.SlotID); err != nil {
			return nil, err
		}
	}

	consultation := &models.Consultation{
		PatientID:         request.PatientID,
		Priority:          request.Priority,
		VisitType:         request.VisitType,
		Specialty:         request.Specialty,
		Date:              request.Date,
		Time:              request.Time,
		MedicalTestType:   request.MedicalTestType,
		ReferralSource:    request.ReferralSource,
		ResponsibleDoctor: request.ResponsibleDoctor,
		SlotID:            request.SlotID,
		Status:            constvars.ConsultationStatusActive,
		CreatedBy:         session.Email,
	}
	consultation.SetCreatedAtUpdatedAt()

	consultationID, err := uc.ConsultationRepository.Insert(ctx, consultation)
	if err != nil {
		return nil, err
	}
	consultation.ID = consultationID

	// Cross-reference both sides: the slot now carries the consultation id.
	if request.SlotID != nil {
		if _, err := uc.SlotRepository.Reserve(ctx, *request.SlotID, request.PatientID, &consultationID, session.Email); err != nil {
			return nil, err
		}
	}

	return consultation, nil
}

func (uc *agendaUsecase) ListConsultations(ctx context.Context, filter *requests.ConsultationFilter) ([]models.Consultation, error) {
	return uc.ConsultationRepository.Find(ctx, filter)
}

func (uc *agendaUsecase) MarkArrival(ctx context.Context, sessionData string, consultationID string) error {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return err
	}
	return uc.ConsultationRepository.SetArrived(ctx, consultationID, session.Email)
}

func (uc *agendaUsecase) UpdateConsultationStatus(ctx context.Context, sessionData string, consultationID string, request *requests.UpdateConsultationStatus) error {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return err
	}
	return uc.ConsultationRepository.UpdateStatus(ctx, consultationID, request.Status, session.Email)
}

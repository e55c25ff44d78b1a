package contracts

import (
	"context"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/dto/requests"
)

type AgendaUsecase interface {
	CreateSlot(ctx context.Context, sessionData string, request *requests.CreateSlot) (*models.AgendaSlot, error)
	ListSlots(ctx context.Context, filter *requests.SlotFilter) ([]models.AgendaSlot, error)
	ReserveSlot(ctx context.Context, sessionData string, slotID string, request *requests.ReserveSlot) (*models.AgendaSlot, error)
	UpdateSlotStatus(ctx context.Context, sessionData string, slotID string, request *requests.UpdateSlotStatus) error

	CreateConsultation(ctx context.Context, sessionData string, request *requests.CreateConsultation) (*models.Consultation, error)
	ListConsultations(ctx context.Context, filter *requests.ConsultationFilter) ([]models.Consultation, error)
	MarkArrival(ctx context.Context, sessionData string, consultationID string) error
	UpdateConsultationStatus(ctx context.Context, sessionData string, consultationID string, request *requests.UpdateConsultationStatus) error
}

type SlotRepository interface {
	Insert(ctx context.Context, slot *models.AgendaSlot) (string, error)
	FindByID(ctx context.Context, slotID string) (*models.AgendaSlot, error)
	Find(ctx context.Context, filter *requests.SlotFilter) ([]models.AgendaSlot, error)
	// Reserve writes the reserved status and patient/consultation references,
	// whatever the previous status was.
	Reserve(ctx context.Context, slotID, patientID string, consultationID *string, updatedBy string) (*models.AgendaSlot, error)
	UpdateStatus(ctx context.Context, slotID, status, updatedBy string) error
}

type ConsultationRepository interface {
	Insert(ctx context.Context, consultation *models.Consultation) (string, error)
	FindByID(ctx context.Context, consultationID string) (*models.Consultation, error)
	Find(ctx context.Context, filter *requests.ConsultationFilter) ([]models.Consultation, error)
	SetArrived(ctx context.Context, consultationID, updatedBy string) error
	UpdateStatus(ctx context.Context, consultationID, status, updatedBy string) error
}

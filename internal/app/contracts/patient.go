package contracts

import (
	"context"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, sessionData string, request *requests.CreatePatient) (*models.Patient, error)
	UpdatePatient(ctx context.Context, sessionData string, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	SearchPatients(ctx context.Context, request *requests.SearchPatient) ([]models.Patient, error)
	ListPatients(ctx context.Context, pagination *requests.Pagination) ([]models.Patient, int, error)
	ExportPatientsCSV(ctx context.Context) ([]byte, error)
}

type PatientRepository interface {
	Insert(ctx context.Context, patient *models.Patient) (string, error)
	Update(ctx context.Context, patient *models.Patient) error
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByField(ctx context.Context, field, value string) (*models.Patient, error)
	FindAllByField(ctx context.Context, field, value string) ([]models.Patient, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int, error)
}

package contracts

import (
	"context"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/dto/responses"
)

type EpisodeUsecase interface {
	AdmitPatient(ctx context.Context, sessionData string, request *requests.AdmitPatient) (*models.Episode, error)
	AddEvolutionNote(ctx context.Context, sessionData string, episodeID string, request *requests.AddEvolutionNote) error
	AddProcedure(ctx context.Context, sessionData string, episodeID string, request *requests.AddClinicalEntry) error
	AddTreatment(ctx context.Context, sessionData string, episodeID string, request *requests.AddClinicalEntry) error
	AddLabResult(ctx context.Context, sessionData string, episodeID string, request *requests.AddClinicalEntry) error
	AddImagingStudy(ctx context.Context, sessionData string, episodeID string, request *requests.AddClinicalEntry) error
	AddVitalSigns(ctx context.Context, sessionData string, episodeID string, request *requests.AddVitalSigns) error
	DischargePatient(ctx context.Context, sessionData string, episodeID string, request *requests.DischargePatient) (*models.Episode, error)
	FindEpisodeByID(ctx context.Context, episodeID string) (*models.Episode, error)
	ListEpisodesByPatient(ctx context.Context, patientID string) ([]models.Episode, error)
	ListActiveEpisodes(ctx context.Context) ([]models.Episode, error)
	GenerateDischargeReport(ctx context.Context, episodeID string) (*responses.DischargeReport, error)
}

type EpisodeRepository interface {
	Insert(ctx context.Context, episode *models.Episode) (string, error)
	FindByID(ctx context.Context, episodeID string) (*models.Episode, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Episode, error)
	FindActive(ctx context.Context) ([]models.Episode, error)
	FindAll(ctx context.Context) ([]models.Episode, error)
	PushEvolutionNote(ctx context.Context, episodeID string, note models.EvolutionNote, updatedBy string) error
	PushClinicalEntry(ctx context.Context, episodeID, listField string, entry models.ClinicalEntry, updatedBy string) error
	PushVitalSigns(ctx context.Context, episodeID string, vitals models.VitalSigns, updatedBy string) error
	// Discharge atomically sets the discharge block on a still-open episode and
	// returns the closed document. An already discharged episode is rejected.
	Discharge(ctx context.Context, episodeID string, discharge models.DischargeData, updatedBy string) (*models.Episode, error)
}

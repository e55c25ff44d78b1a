package episodes

import (
	"context"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/app/services/reports"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/dto/responses"
	"hospadmin-service/internal/pkg/exceptions"
	"hospadmin-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type episodeUsecase struct {
	EpisodeRepository contracts.EpisodeRepository
	PatientRepository contracts.PatientRepository
	DischargeNotifier contracts.DischargeNotifier
	Storage           contracts.Storage
	BucketName        string
	Logger            *zap.Logger
}

func NewEpisodeUsecase(
	episodeRepository contracts.EpisodeRepository,
	patientRepository contracts.PatientRepository,
	dischargeNotifier contracts.DischargeNotifier,
	storage contracts.Storage,
	bucketName string,
	logger *zap.Logger,
) contracts.EpisodeUsecase {
	return &episodeUsecase{
		EpisodeRepository: episodeRepository,
		PatientRepository: patientRepository,
		DischargeNotifier: dischargeNotifier,
		Storage:           storage,
		BucketName:        bucketName,
		Logger:            logger,
	}
}

// AdmitPatient opens a new stay. A patient may hold several open episodes at
// once; nothing here checks for one, matching how the admission desk works.
func (uc *episodeUsecase) AdmitPatient(ctx context.Context, sessionData string, request *requests.AdmitPatient) (*models.Episode, error) {
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

	episode := &models.Episode{
		PatientID:        request.PatientID,
		Status:           constvars.EpisodeStatusActive,
		AdmissionDate:    time.Now(),
		Doctor:           request.Doctor,
		Department:       request.Department,
		Room:             request.Room,
		Bed:              request.Bed,
		AdmissionReason:  request.AdmissionReason,
		InitialDiagnosis: request.InitialDiagnosis,
		EvolutionNotes:   []models.EvolutionNote{},
		Procedures:       []models.ClinicalEntry{},
		Treatments:       []models.ClinicalEntry{},
		Vitals:           []models.VitalSigns{},
		LabResults:       []models.ClinicalEntry{},
		ImagingStudies:   []models.ClinicalEntry{},
		CreatedBy:        session.Email,
	}
	episode.SetCreatedAtUpdatedAt()

	episodeID, err := uc.EpisodeRepository.Insert(ctx, episode)
	if err != nil {
		return nil, err
	}
	episode.ID = episodeID

	return episode, nil
}

func (uc *episodeUsecase) AddEvolutionNote(ctx context.Context, sessionData string, episodeID string, request *requests.AddEvolutionNote) error {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return err
	}

	note := models.EvolutionNote{
		Author:     session.Email,
		Timestamp:  time.Now(),
		Subjective: request.Subjective,
		Objective:  request.Objective,
		Assessment: request.Assessment,
		Plan:       request.Plan,
	}
	return uc.EpisodeRepository.PushEvolutionNote(ctx, episodeID, note, session.Email)
}

func (uc *episodeUsecase) AddProcedure(ctx context.Context, sessionData string, episodeID string, request *requests.AddClinicalEntry) error {
	return uc.addClinicalEntry(ctx, sessionData, episodeID, "procedimientos", request)
}

func (uc *episodeUsecase) AddTreatment(ctx context.Context, sessionData string, episodeID string, request *requests.AddClinicalEntry) error {
	return uc.addClinicalEntry(ctx, sessionData, episodeID, "tratamientos", request)
}

func (uc *episodeUsecase) AddLabResult(ctx context.Context, sessionData string, episodeID string, request *requests.AddClinicalEntry) error {
	return uc.addClinicalEntry(ctx, sessionData, episodeID, "laboratorio", request)
}

func (uc *episodeUsecase) AddImagingStudy(ctx context.Context, sessionData string, episodeID string, request *requests.AddClinicalEntry) error {
	return uc.addClinicalEntry(ctx, sessionData, episodeID, "imagenes", request)
}

func (uc *episodeUsecase) addClinicalEntry(ctx context.Context, sessionData, episodeID, listField string, request *requests.AddClinicalEntry) error {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return err
	}

	entry := models.ClinicalEntry{
		Author:      session.Email,
		Timestamp:   time.Now(),
		Description: request.Description,
		Result:      request.Result,
	}
	return uc.EpisodeRepository.PushClinicalEntry(ctx, episodeID, listField, entry, session.Email)
}

func (uc *episodeUsecase) AddVitalSigns(ctx context.Context, sessionData string, episodeID string, request *requests.AddVitalSigns) error {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return err
	}

	vitals := models.VitalSigns{
		Author:            session.Email,
		Timestamp:         time.Now(),
		TemperatureC:      request.TemperatureC,
		SystolicPressure:  request.SystolicPressure,
		DiastolicPressure: request.DiastolicPressure,
		HeartRate:         request.HeartRate,
		OxygenSaturation:  request.OxygenSaturation,
	}
	return uc.EpisodeRepository.PushVitalSigns(ctx, episodeID, vitals, session.Email)
}

// DischargePatient closes the stay, then fans out the archived CSV report and
// the ward notification. Both side effects are best effort: a broker or
// object-store outage never undoes an already recorded discharge.
func (uc *episodeUsecase) DischargePatient(ctx context.Context, sessionData string, episodeID string, request *requests.DischargePatient) (*models.Episode, error) {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return nil, err
	}

	medications := request.Medications
	if medications == nil {
		medications = []string{}
	}

	discharge := models.DischargeData{
		Date:           time.Now(),
		FinalDiagnosis: request.FinalDiagnosis,
		Summary:        request.Summary,
		Condition:      request.Condition,
		FollowUp:       request.FollowUp,
		Medications:    medications,
		DischargedBy:   session.Email,
	}

	episode, err := uc.EpisodeRepository.Discharge(ctx, episodeID, discharge, session.Email)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, episode.PatientID)
	if err != nil || patient == nil {
		uc.Logger.Warn("discharge recorded but patient lookup failed; skipping report and notification",
			zap.String(constvars.LoggingEpisodeIDKey, episodeID),
			zap.Error(err))
		return episode, nil
	}

	uc.archiveReport(ctx, patient, episode)
	uc.notifyDischarge(ctx, patient, episode)

	return episode, nil
}

func (uc *episodeUsecase) archiveReport(ctx context.Context, patient *models.Patient, episode *models.Episode) {
	report := reports.Compose(patient, episode)
	csvData, err := reports.RenderCSV(report)
	if err != nil {
		uc.Logger.Error("failed to render discharge report csv",
			zap.String(constvars.LoggingEpisodeIDKey, episode.ID),
			zap.Error(err))
		return
	}

	objectName := utils.GenerateReportObjectName(episode.ID)
	if _, err := uc.Storage.UploadObject(ctx, uc.BucketName, objectName, constvars.MIMETextCSV, csvData); err != nil {
		uc.Logger.Error("failed to archive discharge report",
			zap.String(constvars.LoggingEpisodeIDKey, episode.ID),
			zap.String("object_name", objectName),
			zap.Error(err))
		return
	}

	uc.Logger.Info("discharge report archived",
		zap.String(constvars.LoggingEpisodeIDKey, episode.ID),
		zap.String("object_name", objectName))
}

func (uc *episodeUsecase) notifyDischarge(ctx context.Context, patient *models.Patient, episode *models.Episode) {
	notice := &contracts.DischargeNotice{
		EpisodeID:      episode.ID,
		PatientID:      patient.ID,
		PatientName:    patient.FullName(),
		Department:     episode.Department,
		FinalDiagnosis: episode.Discharge.FinalDiagnosis,
		Condition:      episode.Discharge.Condition,
		DischargedBy:   episode.Discharge.DischargedBy,
		DischargedAt:   episode.Discharge.Date.Format(time.RFC3339),
	}

	if err := uc.DischargeNotifier.PublishDischarge(ctx, notice); err != nil {
		uc.Logger.Error("failed to publish discharge notice",
			zap.String(constvars.LoggingEpisodeIDKey, episode.ID),
			zap.Error(err))
		return
	}

	uc.Logger.Info("discharge notice published",
		zap.String(constvars.LoggingEpisodeIDKey, episode.ID))
}

func (uc *episodeUsecase) FindEpisodeByID(ctx context.Context, episodeID string) (*models.Episode, error) {
	return uc.EpisodeRepository.FindByID(ctx, episodeID)
}

func (uc *episodeUsecase) ListEpisodesByPatient(ctx context.Context, patientID string) ([]models.Episode, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return uc.EpisodeRepository.FindByPatientID(ctx, patientID)
}

func (uc *episodeUsecase) ListActiveEpisodes(ctx context.Context) ([]models.Episode, error) {
	return uc.EpisodeRepository.FindActive(ctx)
}

// GenerateDischargeReport recomposes the summary on demand. Only a closed
// episode has one.
func (uc *episodeUsecase) GenerateDischargeReport(ctx context.Context, episodeID string) (*responses.DischargeReport, error) {
	episode, err := uc.EpisodeRepository.FindByID(ctx, episodeID)
	if err != nil {
		return nil, err
	}
	if episode.Discharge == nil {
		return nil, exceptions.ErrEpisodeNotDischarged(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, episode.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	return reports.Compose(patient, episode), nil
}

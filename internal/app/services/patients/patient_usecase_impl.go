package patients

import (
	"bytes"
	"context"
	"encoding/csv"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/exceptions"
	"hospadmin-service/internal/pkg/utils"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
}

func NewPatientUsecase(patientRepository contracts.PatientRepository) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, sessionData string, request *requests.CreatePatient) (*models.Patient, error) {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return nil, err
	}

	if err := uc.checkIdentifiersAvailable(ctx, request.DNI, request.SIP, request.NHC, ""); err != nil {
		return nil, err
	}

	patient := &models.Patient{
		PatientCode: utils.GeneratePatientCode(),
		Name:        request.Name,
		Surname1:    request.Surname1,
		Surname2:    request.Surname2,
		DNI:         request.DNI,
		SIP:         request.SIP,
		NSS:         request.NSS,
		NHC:         request.NHC,
		BirthDate:   request.BirthDate,
		Sex:         request.Sex,
		Address:     request.Address,
		PostalCode:  request.PostalCode,
		Phone:       request.Phone,
		CreatedBy:   session.Email,
	}
	patient.SetCreatedAtUpdatedAt()

	patientID, err := uc.PatientRepository.Insert(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	return patient, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, sessionData string, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	session, err := utils.ExtractSession(sessionData)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	if err := uc.checkIdentifiersAvailable(ctx, request.DNI, request.SIP, request.NHC, patient.ID); err != nil {
		return nil, err
	}

	patient.Name = request.Name
	patient.Surname1 = request.Surname1
	patient.Surname2 = request.Surname2
	patient.DNI = request.DNI
	patient.SIP = request.SIP
	patient.NSS = request.NSS
	patient.NHC = request.NHC
	patient.BirthDate = request.BirthDate
	patient.Sex = request.Sex
	patient.Address = request.Address
	patient.PostalCode = request.PostalCode
	patient.Phone = request.Phone
	patient.UpdatedBy = session.Email
	patient.SetUpdatedAt()

	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}

// SearchPatients consults only the highest-priority non-empty criterion, in
// the order dni, sip, nhc, apellido. Lower-priority fields sent alongside a
// higher-priority one are ignored.
func (uc *patientUsecase) SearchPatients(ctx context.Context, request *requests.SearchPatient) ([]models.Patient, error) {
	switch {
	case request.DNI != "":
		return uc.searchSingle(ctx, "dni", request.DNI)
	case request.SIP != "":
		return uc.searchSingle(ctx, "sip", request.SIP)
	case request.NHC != "":
		return uc.searchSingle(ctx, "nhc", request.NHC)
	case request.Surname != "":
		return uc.PatientRepository.FindAllByField(ctx, "apellido1", request.Surname)
	}
	return []models.Patient{}, nil
}

func (uc *patientUsecase) searchSingle(ctx context.Context, field, value string) ([]models.Patient, error) {
	patient, err := uc.PatientRepository.FindByField(ctx, field, value)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return []models.Patient{}, nil
	}
	return []models.Patient{*patient}, nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context, pagination *requests.Pagination) ([]models.Patient, int, error) {
	return uc.PatientRepository.FindAll(ctx, pagination.Page, pagination.PageSize)
}

func (uc *patientUsecase) ExportPatientsCSV(ctx context.Context) ([]byte, error) {
	patients, _, err := uc.PatientRepository.FindAll(ctx, 1, 0)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	header := []string{"codigoPaciente", "nombre", "apellido1", "apellido2", "dni", "sip", "nss", "nhc", "fechaNacimiento", "sexo", "telefono"}
	if err := writer.Write(header); err != nil {
		return nil, exceptions.ErrCSVWrite(err)
	}

	for _, patient := range patients {
		row := []string{
			patient.PatientCode,
			patient.Name,
			patient.Surname1,
			stringOrEmpty(patient.Surname2),
			patient.DNI,
			patient.SIP,
			stringOrEmpty(patient.NSS),
			patient.NHC,
			patient.BirthDate,
			patient.Sex,
			stringOrEmpty(patient.Phone),
		}
		if err := writer.Write(row); err != nil {
			return nil, exceptions.ErrCSVWrite(err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, exceptions.ErrCSVWrite(err)
	}
	return buffer.Bytes(), nil
}

// checkIdentifiersAvailable pre-checks dni, sip and nhc before a write. The
// unique indexes remain the final arbiter under concurrency.
func (uc *patientUsecase) checkIdentifiersAvailable(ctx context.Context, dni, sip, nhc, selfID string) error {
	existing, err := uc.PatientRepository.FindByField(ctx, "dni", dni)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return exceptions.ErrDNIAlreadyExists(nil)
	}

	existing, err = uc.PatientRepository.FindByField(ctx, "sip", sip)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return exceptions.ErrSIPAlreadyExists(nil)
	}

	existing, err = uc.PatientRepository.FindByField(ctx, "nhc", nhc)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return exceptions.ErrNHCAlreadyExists(nil)
	}
	return nil
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

package patients

import (
	"context"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/exceptions"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSessionData = `{"session_id":"sess-1","user_id":"user-1","email":"admisiones@hospital.test","name":"Admisiones"}`

type fakePatientRepository struct {
	patients []models.Patient
	nextID   int
}

func (f *fakePatientRepository) Insert(_ context.Context, patient *models.Patient) (string, error) {
	f.nextID++
	stored := *patient
	stored.ID = "patient-" + strconv.Itoa(f.nextID)
	f.patients = append(f.patients, stored)
	return stored.ID, nil
}

func (f *fakePatientRepository) Update(_ context.Context, patient *models.Patient) error {
	for i := range f.patients {
		if f.patients[i].ID == patient.ID {
			f.patients[i] = *patient
			return nil
		}
	}
	return exceptions.ErrPatientNotFound(nil)
}

func (f *fakePatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	for i := range f.patients {
		if f.patients[i].ID == patientID {
			patient := f.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepository) FindByField(_ context.Context, field, value string) (*models.Patient, error) {
	for i := range f.patients {
		if fieldValue(&f.patients[i], field) == value {
			patient := f.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepository) FindAllByField(_ context.Context, field, value string) ([]models.Patient, error) {
	matches := make([]models.Patient, 0)
	for i := range f.patients {
		if strings.HasPrefix(strings.ToLower(fieldValue(&f.patients[i], field)), strings.ToLower(value)) {
			matches = append(matches, f.patients[i])
		}
	}
	return matches, nil
}

func (f *fakePatientRepository) FindAll(_ context.Context, page, pageSize int) ([]models.Patient, int, error) {
	return f.patients, len(f.patients), nil
}

func fieldValue(patient *models.Patient, field string) string {
	switch field {
	case "dni":
		return patient.DNI
	case "sip":
		return patient.SIP
	case "nhc":
		return patient.NHC
	case "apellido1":
		return patient.Surname1
	}
	return ""
}

func createRequest(dni, sip, nhc string) *requests.CreatePatient {
	return &requests.CreatePatient{
		Name:      "María",
		Surname1:  "García",
		DNI:       dni,
		SIP:       sip,
		NHC:       nhc,
		BirthDate: "1980-05-12",
		Sex:       "mujer",
	}
}

func TestCreatePatient(t *testing.T) {
	t.Run("Stores Patient With Code And Author", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		patient, err := uc.CreatePatient(context.Background(), testSessionData, createRequest("12345678Z", "1234567", "NHC-001"))

		assert.NoError(t, err)
		assert.NotEmpty(t, patient.ID)
		assert.True(t, strings.HasPrefix(patient.PatientCode, "PAC-"), "patient code should carry the PAC prefix")
		assert.Equal(t, "admisiones@hospital.test", patient.CreatedBy)
	})

	t.Run("Rejects Duplicate DNI", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		_, err := uc.CreatePatient(context.Background(), testSessionData, createRequest("12345678Z", "1234567", "NHC-001"))
		assert.NoError(t, err)

		_, err = uc.CreatePatient(context.Background(), testSessionData, createRequest("12345678Z", "7654321", "NHC-002"))

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Rejects Duplicate SIP", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		_, err := uc.CreatePatient(context.Background(), testSessionData, createRequest("12345678Z", "1234567", "NHC-001"))
		assert.NoError(t, err)

		_, err = uc.CreatePatient(context.Background(), testSessionData, createRequest("87654321X", "1234567", "NHC-002"))

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})
}

func TestUpdatePatient(t *testing.T) {
	t.Run("Keeps Own Identifiers", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		created, err := uc.CreatePatient(context.Background(), testSessionData, createRequest("12345678Z", "1234567", "NHC-001"))
		assert.NoError(t, err)

		update := &requests.UpdatePatient{
			Name:      "María José",
			Surname1:  "García",
			DNI:       "12345678Z",
			SIP:       "1234567",
			NHC:       "NHC-001",
			BirthDate: "1980-05-12",
			Sex:       "mujer",
		}
		updated, err := uc.UpdatePatient(context.Background(), testSessionData, created.ID, update)

		assert.NoError(t, err)
		assert.Equal(t, "María José", updated.Name)
		assert.Equal(t, "admisiones@hospital.test", updated.UpdatedBy)
	})

	t.Run("Rejects Identifier Of Another Patient", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		_, err := uc.CreatePatient(context.Background(), testSessionData, createRequest("12345678Z", "1234567", "NHC-001"))
		assert.NoError(t, err)
		second, err := uc.CreatePatient(context.Background(), testSessionData, createRequest("87654321X", "7654321", "NHC-002"))
		assert.NoError(t, err)

		update := &requests.UpdatePatient{
			Name:      "Pedro",
			Surname1:  "López",
			DNI:       "12345678Z",
			SIP:       "7654321",
			NHC:       "NHC-002",
			BirthDate: "1975-01-01",
			Sex:       "hombre",
		}
		_, err = uc.UpdatePatient(context.Background(), testSessionData, second.ID, update)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Unknown Patient Returns Not Found", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		update := &requests.UpdatePatient{
			Name:      "Pedro",
			Surname1:  "López",
			DNI:       "12345678Z",
			SIP:       "1234567",
			NHC:       "NHC-001",
			BirthDate: "1975-01-01",
			Sex:       "hombre",
		}
		_, err := uc.UpdatePatient(context.Background(), testSessionData, "missing", update)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestSearchPatients(t *testing.T) {
	seedThree := func(t *testing.T) (*fakePatientRepository, string) {
		t.Helper()
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)
		_, err := uc.CreatePatient(context.Background(), testSessionData, createRequest("12345678Z", "1234567", "NHC-001"))
		assert.NoError(t, err)
		_, err = uc.CreatePatient(context.Background(), testSessionData, createRequest("87654321X", "7654321", "NHC-002"))
		assert.NoError(t, err)
		return repo, testSessionData
	}

	t.Run("DNI Takes Priority Over Surname", func(t *testing.T) {
		repo, _ := seedThree(t)
		uc := NewPatientUsecase(repo)

		// The surname matches both patients but must be ignored when a DNI is sent.
		results, err := uc.SearchPatients(context.Background(), &requests.SearchPatient{
			DNI:     "12345678Z",
			Surname: "García",
		})

		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, "12345678Z", results[0].DNI)
	})

	t.Run("SIP Takes Priority Over NHC", func(t *testing.T) {
		repo, _ := seedThree(t)
		uc := NewPatientUsecase(repo)

		results, err := uc.SearchPatients(context.Background(), &requests.SearchPatient{
			SIP: "7654321",
			NHC: "NHC-001",
		})

		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, "NHC-002", results[0].NHC)
	})

	t.Run("Surname Search Returns All Matches", func(t *testing.T) {
		repo, _ := seedThree(t)
		uc := NewPatientUsecase(repo)

		results, err := uc.SearchPatients(context.Background(), &requests.SearchPatient{Surname: "García"})

		assert.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("Unknown DNI Yields Empty Result", func(t *testing.T) {
		repo, _ := seedThree(t)
		uc := NewPatientUsecase(repo)

		results, err := uc.SearchPatients(context.Background(), &requests.SearchPatient{DNI: "00000000T"})

		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("No Criteria Yields Empty Result", func(t *testing.T) {
		repo, _ := seedThree(t)
		uc := NewPatientUsecase(repo)

		results, err := uc.SearchPatients(context.Background(), &requests.SearchPatient{})

		assert.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestExportPatientsCSV(t *testing.T) {
	t.Run("Renders Header And One Row Per Patient", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		_, err := uc.CreatePatient(context.Background(), testSessionData, createRequest("12345678Z", "1234567", "NHC-001"))
		assert.NoError(t, err)
		_, err = uc.CreatePatient(context.Background(), testSessionData, createRequest("87654321X", "7654321", "NHC-002"))
		assert.NoError(t, err)

		csvData, err := uc.ExportPatientsCSV(context.Background())

		assert.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
		assert.Len(t, lines, 3)
		assert.Contains(t, lines[0], "dni")
		assert.Contains(t, string(csvData), "12345678Z")
	})
}

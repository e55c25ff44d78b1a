package agenda

import (
	"context"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/exceptions"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSessionData = `{"session_id":"sess-1","user_id":"user-1","email":"consultas@hospital.test","name":"Consultas"}`

type fakeSlotRepository struct {
	slots  map[string]*models.AgendaSlot
	nextID int
}

func newFakeSlotRepository() *fakeSlotRepository {
	return &fakeSlotRepository{slots: map[string]*models.AgendaSlot{}}
}

func (f *fakeSlotRepository) Insert(_ context.Context, slot *models.AgendaSlot) (string, error) {
	f.nextID++
	id := "slot-" + strconv.Itoa(f.nextID)
	stored := *slot
	stored.ID = id
	f.slots[id] = &stored
	return id, nil
}

func (f *fakeSlotRepository) FindByID(_ context.Context, slotID string) (*models.AgendaSlot, error) {
	slot, ok := f.slots[slotID]
	if !ok {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	copied := *slot
	return &copied, nil
}

func (f *fakeSlotRepository) Find(_ context.Context, filter *requests.SlotFilter) ([]models.AgendaSlot, error) {
	matches := make([]models.AgendaSlot, 0)
	for _, slot := range f.slots {
		if filter.Status != "" && slot.Status != filter.Status {
			continue
		}
		if filter.Doctor != "" && slot.Doctor != filter.Doctor {
			continue
		}
		matches = append(matches, *slot)
	}
	return matches, nil
}

func (f *fakeSlotRepository) Reserve(_ context.Context, slotID, patientID string, consultationID *string, updatedBy string) (*models.AgendaSlot, error) {
	slot, ok := f.slots[slotID]
	if !ok {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	slot.Status = constvars.SlotStatusReserved
	slot.PatientID = &patientID
	slot.ConsultationID = consultationID
	slot.UpdatedBy = updatedBy
	copied := *slot
	return &copied, nil
}

func (f *fakeSlotRepository) UpdateStatus(_ context.Context, slotID, status, updatedBy string) error {
	slot, ok := f.slots[slotID]
	if !ok {
		return exceptions.ErrSlotNotFound(nil)
	}
	slot.Status = status
	slot.UpdatedBy = updatedBy
	return nil
}

type fakeConsultationRepository struct {
	consultations map[string]*models.Consultation
	nextID        int
}

func newFakeConsultationRepository() *fakeConsultationRepository {
	return &fakeConsultationRepository{consultations: map[string]*models.Consultation{}}
}

func (f *fakeConsultationRepository) Insert(_ context.Context, consultation *models.Consultation) (string, error) {
	f.nextID++
	id := "consultation-" + strconv.Itoa(f.nextID)
	stored := *consultation
	stored.ID = id
	f.consultations[id] = &stored
	return id, nil
}

func (f *fakeConsultationRepository) FindByID(_ context.Context, consultationID string) (*models.Consultation, error) {
	consultation, ok := f.consultations[consultationID]
	if !ok {
		return nil, exceptions.ErrConsultationNotFound(nil)
	}
	copied := *consultation
	return &copied, nil
}

func (f *fakeConsultationRepository) Find(_ context.Context, filter *requests.ConsultationFilter) ([]models.Consultation, error) {
	matches := make([]models.Consultation, 0)
	for _, consultation := range f.consultations {
		if filter.Priority != "" && consultation.Priority != filter.Priority {
			continue
		}
		matches = append(matches, *consultation)
	}
	return matches, nil
}

func (f *fakeConsultationRepository) SetArrived(_ context.Context, consultationID, updatedBy string) error {
	consultation, ok := f.consultations[consultationID]
	if !ok {
		return exceptions.ErrConsultationNotFound(nil)
	}
	consultation.Arrived = true
	consultation.UpdatedBy = updatedBy
	return nil
}

func (f *fakeConsultationRepository) UpdateStatus(_ context.Context, consultationID, status, updatedBy string) error {
	consultation, ok := f.consultations[consultationID]
	if !ok {
		return exceptions.ErrConsultationNotFound(nil)
	}
	consultation.Status = status
	consultation.UpdatedBy = updatedBy
	return nil
}

type stubPatientRepository struct {
	known map[string]bool
}

func (s *stubPatientRepository) Insert(_ context.Context, patient *models.Patient) (string, error) {
	return "", nil
}

func (s *stubPatientRepository) Update(_ context.Context, patient *models.Patient) error {
	return nil
}

func (s *stubPatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	if !s.known[patientID] {
		return nil, nil
	}
	return &models.Patient{ID: patientID, Name: "María", Surname1: "García"}, nil
}

func (s *stubPatientRepository) FindByField(_ context.Context, field, value string) (*models.Patient, error) {
	return nil, nil
}

func (s *stubPatientRepository) FindAllByField(_ context.Context, field, value string) ([]models.Patient, error) {
	return nil, nil
}

func (s *stubPatientRepository) FindAll(_ context.Context, page, pageSize int) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func newTestAgenda() (*fakeSlotRepository, *fakeConsultationRepository, *agendaUsecase) {
	slotRepo := newFakeSlotRepository()
	consultationRepo := newFakeConsultationRepository()
	patientRepo := &stubPatientRepository{known: map[string]bool{"patient-1": true, "patient-2": true}}
	uc := NewAgendaUsecase(slotRepo, consultationRepo, patientRepo).(*agendaUsecase)
	return slotRepo, consultationRepo, uc
}

func slotRequest() *requests.CreateSlot {
	return &requests.CreateSlot{
		Doctor:    "Dra. Carmen Ruiz Salas",
		Specialty: "Cardiología",
		Date:      time.Now().Format("2006-01-02"),
		StartTime: "09:00",
		EndTime:   "09:15",
	}
}

func TestCreateSlot(t *testing.T) {
	t.Run("New Slot Is Available", func(t *testing.T) {
		_, _, uc := newTestAgenda()

		slot, err := uc.CreateSlot(context.Background(), testSessionData, slotRequest())

		assert.NoError(t, err)
		assert.Equal(t, constvars.SlotStatusAvailable, slot.Status)
		assert.Nil(t, slot.PatientID)
		assert.Equal(t, "consultas@hospital.test", slot.CreatedBy)
	})

	t.Run("End Before Start Is Rejected", func(t *testing.T) {
		_, _, uc := newTestAgenda()

		request := slotRequest()
		request.StartTime = "10:00"
		request.EndTime = "09:00"
		_, err := uc.CreateSlot(context.Background(), testSessionData, request)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})
}

func TestReserveSlot(t *testing.T) {
	t.Run("Reserves Available Slot", func(t *testing.T) {
		_, _, uc := newTestAgenda()

		slot, err := uc.CreateSlot(context.Background(), testSessionData, slotRequest())
		assert.NoError(t, err)

		reserved, err := uc.ReserveSlot(context.Background(), testSessionData, slot.ID, &requests.ReserveSlot{PatientID: "patient-1"})

		assert.NoError(t, err)
		assert.Equal(t, constvars.SlotStatusReserved, reserved.Status)
		assert.Equal(t, "patient-1", *reserved.PatientID)
	})

	t.Run("Rebooking Replaces Previous Reservation", func(t *testing.T) {
		_, _, uc := newTestAgenda()

		slot, err := uc.CreateSlot(context.Background(), testSessionData, slotRequest())
		assert.NoError(t, err)

		_, err = uc.ReserveSlot(context.Background(), testSessionData, slot.ID, &requests.ReserveSlot{PatientID: "patient-1"})
		assert.NoError(t, err)

		reserved, err := uc.ReserveSlot(context.Background(), testSessionData, slot.ID, &requests.ReserveSlot{PatientID: "patient-2"})

		assert.NoError(t, err)
		assert.Equal(t, constvars.SlotStatusReserved, reserved.Status)
		assert.Equal(t, "patient-2", *reserved.PatientID)
	})

	t.Run("Unknown Patient Is Rejected", func(t *testing.T) {
		_, _, uc := newTestAgenda()

		slot, err := uc.CreateSlot(context.Background(), testSessionData, slotRequest())
		assert.NoError(t, err)

		_, err = uc.ReserveSlot(context.Background(), testSessionData, slot.ID, &requests.ReserveSlot{PatientID: "missing"})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Unknown Slot Is Rejected", func(t *testing.T) {
		_, _, uc := newTestAgenda()

		_, err := uc.ReserveSlot(context.Background(), testSessionData, "missing", &requests.ReserveSlot{PatientID: "patient-1"})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestCreateConsultation(t *testing.T) {
	consultationRequest := func(slotID *string) *requests.CreateConsultation {
		return &requests.CreateConsultation{
			PatientID:         "patient-1",
			Priority:          constvars.ConsultationPriorityPreferential,
			VisitType:         constvars.VisitTypeFirst,
			Specialty:         "Cardiología",
			Date:              time.Now().Format("2006-01-02"),
			Time:              "09:00",
			ResponsibleDoctor: "Dra. Carmen Ruiz Salas",
			SlotID:            slotID,
		}
	}

	t.Run("Creates Active Consultation", func(t *testing.T) {
		_, _, uc := newTestAgenda()

		consultation, err := uc.CreateConsultation(context.Background(), testSessionData, consultationRequest(nil))

		assert.NoError(t, err)
		assert.Equal(t, constvars.ConsultationStatusActive, consultation.Status)
		assert.False(t, consultation.Arrived)
	})

	t.Run("Linked Slot Gets Cross Referenced", func(t *testing.T) {
		slotRepo, _, uc := newTestAgenda()

		slot, err := uc.CreateSlot(context.Background(), testSessionData, slotRequest())
		assert.NoError(t, err)

		consultation, err := uc.CreateConsultation(context.Background(), testSessionData, consultationRequest(&slot.ID))

		assert.NoError(t, err)
		stored := slotRepo.slots[slot.ID]
		assert.Equal(t, constvars.SlotStatusReserved, stored.Status)
		assert.Equal(t, consultation.ID, *stored.ConsultationID)
		assert.Equal(t, "patient-1", *stored.PatientID)
	})

	t.Run("Unknown Slot Is Rejected", func(t *testing.T) {
		_, _, uc := newTestAgenda()

		missing := "missing"
		_, err := uc.CreateConsultation(context.Background(), testSessionData, consultationRequest(&missing))

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestConsultationLifecycle(t *testing.T) {
	t.Run("Arrival And Status Updates", func(t *testing.T) {
		_, consultationRepo, uc := newTestAgenda()

		consultation, err := uc.CreateConsultation(context.Background(), testSessionData, &requests.CreateConsultation{
			PatientID:         "patient-1",
			Priority:          constvars.ConsultationPriorityUrgent,
			VisitType:         constvars.VisitTypeFollowUp,
			Specialty:         "Neurología",
			Date:              time.Now().Format("2006-01-02"),
			Time:              "12:30",
			ResponsibleDoctor: "Dr. Andrés Molina Vega",
		})
		assert.NoError(t, err)

		err = uc.MarkArrival(context.Background(), testSessionData, consultation.ID)
		assert.NoError(t, err)

		err = uc.UpdateConsultationStatus(context.Background(), testSessionData, consultation.ID, &requests.UpdateConsultationStatus{Status: constvars.ConsultationStatusInProgress})
		assert.NoError(t, err)

		stored := consultationRepo.consultations[consultation.ID]
		assert.True(t, stored.Arrived)
		assert.Equal(t, constvars.ConsultationStatusInProgress, stored.Status)
	})
}

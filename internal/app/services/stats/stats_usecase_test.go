package stats

import (
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func consultation(status, priority, specialty string) models.Consultation {
	return models.Consultation{Status: status, Priority: priority, Specialty: specialty}
}

func bookedSlot(start, end, consultationID string) models.AgendaSlot {
	return models.AgendaSlot{StartTime: start, EndTime: end, ConsultationID: &consultationID}
}

func TestReduce(t *testing.T) {
	t.Run("Counts And Averages", func(t *testing.T) {
		consultations := []models.Consultation{
			consultation("activa", "ordinaria", "Cardiología"),
			consultation("activa", "urgente", "Cardiología"),
			consultation("completada", "ordinaria", "Neurología"),
		}
		episodes := []models.Episode{
			{Status: constvars.EpisodeStatusActive},
			{Status: constvars.EpisodeStatusDischarged},
			{Status: constvars.EpisodeStatusDischarged},
		}
		slots := []models.AgendaSlot{
			bookedSlot("09:00", "09:15", "cons-1"),
			bookedSlot("09:15", "09:45", "cons-2"),
		}

		statistics := Reduce(consultations, episodes, slots)

		assert.Equal(t, 2, statistics.ConsultationsByStatus["activa"])
		assert.Equal(t, 1, statistics.ConsultationsByStatus["completada"])
		assert.Equal(t, 2, statistics.ConsultationsByPriority["ordinaria"])
		assert.Equal(t, 2, statistics.ConsultationsBySpecialty["Cardiología"])
		assert.Equal(t, 1, statistics.EpisodesByStatus[constvars.EpisodeStatusActive])
		assert.Equal(t, 2, statistics.EpisodesByStatus[constvars.EpisodeStatusDischarged])
		assert.InDelta(t, 22.5, statistics.AverageDurationMinutes, 0.001)
		assert.Equal(t, "Cardiología", statistics.MostCommonSpecialty)
	})

	t.Run("Missing Status Counts As Default", func(t *testing.T) {
		consultations := []models.Consultation{
			consultation("", "ordinaria", "Dermatología"),
		}
		episodes := []models.Episode{{Status: ""}}

		statistics := Reduce(consultations, episodes, nil)

		assert.Equal(t, 1, statistics.ConsultationsByStatus[constvars.ConsultationStatusActive])
		assert.Equal(t, 1, statistics.EpisodesByStatus[constvars.EpisodeStatusActive])
	})

	t.Run("Specialty Tie Breaks Alphabetically", func(t *testing.T) {
		consultations := []models.Consultation{
			consultation("activa", "ordinaria", "Neurología"),
			consultation("activa", "ordinaria", "Cardiología"),
		}

		statistics := Reduce(consultations, nil, nil)

		assert.Equal(t, "Cardiología", statistics.MostCommonSpecialty)
	})

	t.Run("Unparseable Slot Times Are Skipped", func(t *testing.T) {
		slots := []models.AgendaSlot{
			bookedSlot("mañana", "tarde", "cons-1"),
			bookedSlot("10:00", "10:20", "cons-2"),
		}

		statistics := Reduce(nil, nil, slots)

		assert.InDelta(t, 20, statistics.AverageDurationMinutes, 0.001)
	})

	t.Run("Unbooked Slots Do Not Shape The Average", func(t *testing.T) {
		slots := []models.AgendaSlot{
			{StartTime: "08:00", EndTime: "12:00"},
			bookedSlot("10:00", "10:30", "cons-1"),
		}

		statistics := Reduce(nil, nil, slots)

		assert.InDelta(t, 30, statistics.AverageDurationMinutes, 0.001)
	})

	t.Run("Empty Inputs Give Zero Block", func(t *testing.T) {
		statistics := Reduce(nil, nil, nil)

		assert.Empty(t, statistics.ConsultationsByStatus)
		assert.Empty(t, statistics.EpisodesByStatus)
		assert.Zero(t, statistics.AverageDurationMinutes)
		assert.Empty(t, statistics.MostCommonSpecialty)
	})
}

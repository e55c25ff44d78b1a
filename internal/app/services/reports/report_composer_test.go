package reports

import (
	"bytes"
	"encoding/csv"
	"hospadmin-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testPatient() *models.Patient {
	surname2 := "Pérez"
	return &models.Patient{
		ID:          "patient-1",
		PatientCode: "PAC-0001",
		Name:        "María",
		Surname1:    "García",
		Surname2:    &surname2,
		DNI:         "12345678Z",
		SIP:         "1234567",
		NHC:         "NHC-001",
		BirthDate:   "1980-05-12",
		Sex:         "mujer",
	}
}

func testEpisode(admission time.Time, discharge *models.DischargeData) *models.Episode {
	return &models.Episode{
		ID:               "episode-1",
		PatientID:        "patient-1",
		AdmissionDate:    admission,
		Doctor:           "Dra. Carmen Ruiz Salas",
		Department:       "Medicina Interna",
		Room:             "204",
		Bed:              "B",
		AdmissionReason:  "Fiebre persistente",
		InitialDiagnosis: "Síndrome febril en estudio",
		EvolutionNotes: []models.EvolutionNote{
			{
				Author:     "planta@hospital.test",
				Timestamp:  admission.Add(12 * time.Hour),
				Subjective: "Refiere mejoría",
				Objective:  "Afebril",
				Assessment: "Evolución favorable",
				Plan:       "Mantener pauta",
			},
		},
		Procedures: []models.ClinicalEntry{
			{
				Author:      "planta@hospital.test",
				Timestamp:   admission.Add(2 * time.Hour),
				Description: "Radiografía de tórax",
				Result:      "Infiltrado basal derecho",
			},
		},
		Discharge: discharge,
	}
}

func testDischarge(admission time.Time, daysLater int) *models.DischargeData {
	return &models.DischargeData{
		Date:           admission.Add(time.Duration(daysLater) * 24 * time.Hour),
		FinalDiagnosis: "Neumonía adquirida en la comunidad",
		Summary:        "Evolución favorable con antibioterapia.",
		Condition:      "bueno",
		FollowUp:       "Control en dos semanas.",
		Medications:    []string{"Amoxicilina 500mg cada 8h"},
		DischargedBy:   "planta@hospital.test",
	}
}

func TestCompose(t *testing.T) {
	admission := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)

	t.Run("Full Report From Closed Episode", func(t *testing.T) {
		episode := testEpisode(admission, testDischarge(admission, 3))

		report := Compose(testPatient(), episode)

		assert.Equal(t, "María García Pérez", report.PatientInfo.FullName)
		assert.Equal(t, "PAC-0001", report.PatientInfo.PatientCode)
		assert.Equal(t, "2026-03-10 10:30", report.EpisodeInfo.AdmissionDate)
		assert.Equal(t, 3, report.EpisodeInfo.DaysOfStay)
		assert.Equal(t, "Neumonía adquirida en la comunidad", report.EpisodeInfo.FinalDiagnosis)
		assert.Len(t, report.ClinicalNarrative, 1)
		assert.Len(t, report.Procedures, 1)
		assert.Equal(t, []string{"Amoxicilina 500mg cada 8h"}, report.Medications)
	})

	t.Run("Partial Day Rounds Up", func(t *testing.T) {
		discharge := testDischarge(admission, 2)
		discharge.Date = discharge.Date.Add(30 * time.Minute)
		episode := testEpisode(admission, discharge)

		report := Compose(testPatient(), episode)

		assert.Equal(t, 3, report.EpisodeInfo.DaysOfStay)
	})

	t.Run("Open Episode Leaves Discharge Fields Empty", func(t *testing.T) {
		episode := testEpisode(admission, nil)

		report := Compose(testPatient(), episode)

		assert.Empty(t, report.EpisodeInfo.DischargeDate)
		assert.Empty(t, report.EpisodeInfo.FinalDiagnosis)
		assert.Empty(t, report.Medications)
	})

	t.Run("Composing Twice Gives Equal Reports", func(t *testing.T) {
		episode := testEpisode(admission, testDischarge(admission, 3))

		first := Compose(testPatient(), episode)
		second := Compose(testPatient(), episode)

		assert.Equal(t, first, second)
	})
}

func TestRenderCSV(t *testing.T) {
	admission := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)

	t.Run("CSV Parses Back With Expected Rows", func(t *testing.T) {
		report := Compose(testPatient(), testEpisode(admission, testDischarge(admission, 3)))

		csvData, err := RenderCSV(report)
		assert.NoError(t, err)

		reader := csv.NewReader(bytes.NewReader(csvData))
		reader.FieldsPerRecord = -1
		rows, err := reader.ReadAll()
		assert.NoError(t, err)

		assert.Equal(t, []string{"campo", "valor"}, rows[0])

		kinds := map[string]int{}
		for _, row := range rows[1:] {
			kinds[row[0]]++
		}
		assert.Equal(t, 1, kinds["evolucion"])
		assert.Equal(t, 1, kinds["procedimiento"])
		assert.Equal(t, 1, kinds["medicacion"])
		assert.Equal(t, 1, kinds["dias_estancia"])
	})

	t.Run("Fields With Commas Survive Quoting", func(t *testing.T) {
		report := Compose(testPatient(), testEpisode(admission, testDischarge(admission, 3)))
		report.EpisodeInfo.Summary = "Mejoría clara, sin fiebre, alta a domicilio"

		csvData, err := RenderCSV(report)
		assert.NoError(t, err)

		reader := csv.NewReader(bytes.NewReader(csvData))
		reader.FieldsPerRecord = -1
		rows, err := reader.ReadAll()
		assert.NoError(t, err)

		found := false
		for _, row := range rows {
			if row[0] == "resumen_alta" {
				assert.Equal(t, "Mejoría clara, sin fiebre, alta a domicilio", row[1])
				found = true
			}
		}
		assert.True(t, found)
	})
}

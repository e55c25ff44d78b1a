package reports

import (
	"bytes"
	"encoding/csv"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/dto/responses"
	"hospadmin-service/internal/pkg/exceptions"
	"strconv"
	"time"

	"hospadmin-service/internal/pkg/utils"
)

const reportTimeLayout = "2006-01-02 15:04"

// Compose assembles the print-ready discharge summary from the patient record
// and a closed episode. It reads its inputs and never writes anywhere, so
// regenerating the report is always safe.
func Compose(patient *models.Patient, episode *models.Episode) *responses.DischargeReport {
	discharge := episode.Discharge

	var dischargeDate *time.Time
	if discharge != nil {
		dischargeDate = &discharge.Date
	}

	episodeInfo := responses.ReportEpisodeInfo{
		AdmissionDate:    episode.AdmissionDate.Format(reportTimeLayout),
		DaysOfStay:       utils.DaysOfStay(episode.AdmissionDate, dischargeDate, time.Now()),
		Doctor:           episode.Doctor,
		Department:       episode.Department,
		Room:             episode.Room,
		Bed:              episode.Bed,
		AdmissionReason:  episode.AdmissionReason,
		InitialDiagnosis: episode.InitialDiagnosis,
	}

	medications := []string{}
	if discharge != nil {
		episodeInfo.DischargeDate = discharge.Date.Format(reportTimeLayout)
		episodeInfo.FinalDiagnosis = discharge.FinalDiagnosis
		episodeInfo.Summary = discharge.Summary
		episodeInfo.Condition = discharge.Condition
		episodeInfo.FollowUp = discharge.FollowUp
		if discharge.Medications != nil {
			medications = discharge.Medications
		}
	}

	narrative := make([]responses.ReportNoteLine, 0, len(episode.EvolutionNotes))
	for _, note := range episode.EvolutionNotes {
		narrative = append(narrative, responses.ReportNoteLine{
			Author:     note.Author,
			Timestamp:  note.Timestamp.Format(reportTimeLayout),
			Subjective: note.Subjective,
			Objective:  note.Objective,
			Assessment: note.Assessment,
			Plan:       note.Plan,
		})
	}

	procedures := make([]responses.ReportEntryLine, 0, len(episode.Procedures))
	for _, procedure := range episode.Procedures {
		procedures = append(procedures, responses.ReportEntryLine{
			Author:      procedure.Author,
			Timestamp:   procedure.Timestamp.Format(reportTimeLayout),
			Description: procedure.Description,
			Result:      procedure.Result,
		})
	}

	return &responses.DischargeReport{
		PatientInfo: responses.ReportPatientInfo{
			PatientCode: patient.PatientCode,
			FullName:    patient.FullName(),
			DNI:         patient.DNI,
			SIP:         patient.SIP,
			NHC:         patient.NHC,
			BirthDate:   patient.BirthDate,
			Sex:         patient.Sex,
		},
		EpisodeInfo:       episodeInfo,
		ClinicalNarrative: narrative,
		Procedures:        procedures,
		Medications:       medications,
	}
}

// RenderCSV flattens a discharge report into the archival CSV layout stored
// alongside the episode: a key/value header block followed by one row per
// clinical line.
func RenderCSV(report *responses.DischargeReport) ([]byte, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	headerRows := [][]string{
		{"campo", "valor"},
		{"codigo_paciente", report.PatientInfo.PatientCode},
		{"nombre_completo", report.PatientInfo.FullName},
		{"dni", report.PatientInfo.DNI},
		{"sip", report.PatientInfo.SIP},
		{"nhc", report.PatientInfo.NHC},
		{"fecha_ingreso", report.EpisodeInfo.AdmissionDate},
		{"fecha_alta", report.EpisodeInfo.DischargeDate},
		{"dias_estancia", strconv.Itoa(report.EpisodeInfo.DaysOfStay)},
		{"medico", report.EpisodeInfo.Doctor},
		{"departamento", report.EpisodeInfo.Department},
		{"diagnostico_inicial", report.EpisodeInfo.InitialDiagnosis},
		{"diagnostico_final", report.EpisodeInfo.FinalDiagnosis},
		{"resumen_alta", report.EpisodeInfo.Summary},
		{"condicion_alta", report.EpisodeInfo.Condition},
		{"instrucciones", report.EpisodeInfo.FollowUp},
	}
	for _, row := range headerRows {
		if err := writer.Write(row); err != nil {
			return nil, exceptions.ErrCSVWrite(err)
		}
	}

	for _, note := range report.ClinicalNarrative {
		row := []string{"evolucion", note.Timestamp + " " + note.Author + ": S " + note.Subjective + " / O " + note.Objective + " / E " + note.Assessment + " / P " + note.Plan}
		if err := writer.Write(row); err != nil {
			return nil, exceptions.ErrCSVWrite(err)
		}
	}
	for _, procedure := range report.Procedures {
		row := []string{"procedimiento", procedure.Timestamp + " " + procedure.Description}
		if err := writer.Write(row); err != nil {
			return nil, exceptions.ErrCSVWrite(err)
		}
	}
	for _, medication := range report.Medications {
		if err := writer.Write([]string{"medicacion", medication}); err != nil {
			return nil, exceptions.ErrCSVWrite(err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, exceptions.ErrCSVWrite(err)
	}
	return buffer.Bytes(), nil
}

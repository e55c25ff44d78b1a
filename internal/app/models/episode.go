package models

import (
	"hospadmin-service/internal/pkg/constvars"
	"time"
)

// Episode is one hospitalization stay, from admission to discharge. Admission
// facts never change after creation; the clinical lists are append-only; the
// discharge block is written exactly once.
type Episode struct {
	ID        string `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID string `json:"pacienteId" bson:"pacienteId"`
	Status    string `json:"estado" bson:"estado"`

	AdmissionDate    time.Time `json:"fechaIngreso" bson:"fechaIngreso"`
	Doctor           string    `json:"medico" bson:"medico"`
	Department       string    `json:"departamento" bson:"departamento"`
	Room             string    `json:"habitacion" bson:"habitacion"`
	Bed              string    `json:"cama" bson:"cama"`
	AdmissionReason  string    `json:"motivoIngreso" bson:"motivoIngreso"`
	InitialDiagnosis string    `json:"diagnosticoInicial" bson:"diagnosticoInicial"`

	EvolutionNotes []EvolutionNote `json:"evoluciones" bson:"evoluciones"`
	Procedures     []ClinicalEntry `json:"procedimientos" bson:"procedimientos"`
	Treatments     []ClinicalEntry `json:"tratamientos" bson:"tratamientos"`
	Vitals         []VitalSigns    `json:"constantes" bson:"constantes"`
	LabResults     []ClinicalEntry `json:"laboratorio" bson:"laboratorio"`
	ImagingStudies []ClinicalEntry `json:"imagenes" bson:"imagenes"`

	Discharge *DischargeData `json:"alta,omitempty" bson:"alta,omitempty"`

	CreatedBy string `json:"creadoPor" bson:"creadoPor"`
	UpdatedBy string `json:"actualizadoPor,omitempty" bson:"actualizadoPor,omitempty"`
	TimeModel `bson:",inline"`
}

// EvolutionNote is a SOAP-format clinical entry appended during the stay.
type EvolutionNote struct {
	Author     string    `json:"autor" bson:"autor"`
	Timestamp  time.Time `json:"fecha" bson:"fecha"`
	Subjective string    `json:"subjetivo" bson:"subjetivo"`
	Objective  string    `json:"objetivo" bson:"objetivo"`
	Assessment string    `json:"evaluacion" bson:"evaluacion"`
	Plan       string    `json:"plan" bson:"plan"`
}

// ClinicalEntry covers procedures, treatments, lab results and imaging studies.
type ClinicalEntry struct {
	Author      string    `json:"autor" bson:"autor"`
	Timestamp   time.Time `json:"fecha" bson:"fecha"`
	Description string    `json:"descripcion" bson:"descripcion"`
	Result      string    `json:"resultado,omitempty" bson:"resultado,omitempty"`
}

type VitalSigns struct {
	Author           string    `json:"autor" bson:"autor"`
	Timestamp        time.Time `json:"fecha" bson:"fecha"`
	TemperatureC     float64   `json:"temperatura" bson:"temperatura"`
	SystolicPressure int       `json:"tensionSistolica" bson:"tensionSistolica"`
	DiastolicPressure int      `json:"tensionDiastolica" bson:"tensionDiastolica"`
	HeartRate        int       `json:"frecuenciaCardiaca" bson:"frecuenciaCardiaca"`
	OxygenSaturation int       `json:"saturacionO2" bson:"saturacionO2"`
}

type DischargeData struct {
	Date           time.Time `json:"fechaAlta" bson:"fechaAlta"`
	FinalDiagnosis string    `json:"diagnosticoFinal" bson:"diagnosticoFinal"`
	Summary        string    `json:"resumenAlta" bson:"resumenAlta"`
	Condition      string    `json:"condicionAlta" bson:"condicionAlta"`
	FollowUp       string    `json:"instrucciones,omitempty" bson:"instrucciones,omitempty"`
	Medications    []string  `json:"medicacionAlta" bson:"medicacionAlta"`
	DischargedBy   string    `json:"altaPor" bson:"altaPor"`
}

// IsActive reports whether the stay is still open. The discharge timestamp is
// the single source of truth, not the status label.
func (e *Episode) IsActive() bool {
	return e.Discharge == nil
}

// NormalizeStatus backfills the status label for documents written before the
// field existed. Schema drift tolerance, documented default.
func (e *Episode) NormalizeStatus() {
	if e.Status != "" {
		return
	}
	if e.Discharge != nil {
		e.Status = constvars.EpisodeStatusDischarged
		return
	}
	e.Status = constvars.EpisodeStatusActive
}

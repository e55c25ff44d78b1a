package models

import "hospadmin-service/internal/pkg/constvars"

// AgendaSlot is a bookable doctor/specialty/time-range unit of the outpatient
// agenda. Reserving attaches the patient and, optionally, a consultation.
type AgendaSlot struct {
	ID        string `json:"id,omitempty" bson:"_id,omitempty"`
	Doctor    string `json:"medico" bson:"medico"`
	Specialty string `json:"especialidad" bson:"especialidad"`
	Date      string `json:"fecha" bson:"fecha"`
	StartTime string `json:"horaInicio" bson:"horaInicio"`
	EndTime   string `json:"horaFin" bson:"horaFin"`
	Label     string `json:"etiqueta,omitempty" bson:"etiqueta,omitempty"`
	Status    string `json:"estado" bson:"estado"`

	PatientID      *string `json:"pacienteId,omitempty" bson:"pacienteId"`
	ConsultationID *string `json:"consultaId,omitempty" bson:"consultaId"`

	CreatedBy string `json:"creadoPor" bson:"creadoPor"`
	UpdatedBy string `json:"actualizadoPor,omitempty" bson:"actualizadoPor,omitempty"`
	TimeModel `bson:",inline"`
}

// NormalizeStatus applies the documented read default for drifted documents.
func (s *AgendaSlot) NormalizeStatus() {
	if s.Status == "" {
		s.Status = constvars.SlotStatusAvailable
	}
}

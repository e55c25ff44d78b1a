package models

import "hospadmin-service/internal/pkg/constvars"

// Consultation is an outpatient visit record, cross-referenced to an agenda
// slot by id when one has been assigned.
type Consultation struct {
	ID               string  `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID        string  `json:"pacienteId" bson:"pacienteId"`
	Priority         string  `json:"prioridad" bson:"prioridad"`
	VisitType        string  `json:"tipoVisita" bson:"tipoVisita"`
	Specialty        string  `json:"especialidad" bson:"especialidad"`
	Arrived          bool    `json:"llegado" bson:"llegado"`
	Date             string  `json:"fecha" bson:"fecha"`
	Time             string  `json:"hora" bson:"hora"`
	MedicalTestType  *string `json:"tipoPrueba,omitempty" bson:"tipoPrueba"`
	ReferralSource   *string `json:"procedencia,omitempty" bson:"procedencia"`
	ResponsibleDoctor string `json:"medicoResponsable" bson:"medicoResponsable"`
	SlotID           *string `json:"citaId,omitempty" bson:"citaId"`
	Status           string  `json:"estado" bson:"estado"`

	CreatedBy string `json:"creadoPor" bson:"creadoPor"`
	UpdatedBy string `json:"actualizadoPor,omitempty" bson:"actualizadoPor,omitempty"`
	TimeModel `bson:",inline"`
}

// NormalizeStatus applies the documented read default for drifted documents.
func (c *Consultation) NormalizeStatus() {
	if c.Status == "" {
		c.Status = constvars.ConsultationStatusActive
	}
}

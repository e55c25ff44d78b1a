package requests

type CreateSlot struct {
	Doctor    string `json:"medico" validate:"required"`
	Specialty string `json:"especialidad" validate:"required"`
	Date      string `json:"fecha" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"horaInicio" validate:"required,datetime=15:04"`
	EndTime   string `json:"horaFin" validate:"required,datetime=15:04"`
	Label     string `json:"etiqueta"`
}

type ReserveSlot struct {
	PatientID      string  `json:"pacienteId" validate:"required"`
	ConsultationID *string `json:"consultaId"`
}

type UpdateSlotStatus struct {
	Status string `json:"estado" validate:"required,oneof=disponible reservada completada cancelada"`
}

type SlotFilter struct {
	Specialty string `json:"especialidad"`
	Doctor    string `json:"medico"`
	Status    string `json:"estado"`
	DateFrom  string `json:"desde"`
	DateTo    string `json:"hasta"`
}

type CreateConsultation struct {
	PatientID         string  `json:"pacienteId" validate:"required"`
	Priority          string  `json:"prioridad" validate:"required,oneof=ordinaria preferente urgente"`
	VisitType         string  `json:"tipoVisita" validate:"required,oneof=primera sucesiva"`
	Specialty         string  `json:"especialidad" validate:"required"`
	Date              string  `json:"fecha" validate:"required,datetime=2006-01-02"`
	Time              string  `json:"hora" validate:"required,datetime=15:04"`
	MedicalTestType   *string `json:"tipoPrueba"`
	ReferralSource    *string `json:"procedencia"`
	ResponsibleDoctor string  `json:"medicoResponsable" validate:"required"`
	SlotID            *string `json:"citaId"`
}

type UpdateConsultationStatus struct {
	Status string `json:"estado" validate:"required,oneof=activa en_curso completada cancelada"`
}

type ConsultationFilter struct {
	Specialty string `json:"especialidad"`
	Priority  string `json:"prioridad"`
	Status    string `json:"estado"`
	DateFrom  string `json:"desde"`
	DateTo    string `json:"hasta"`
}

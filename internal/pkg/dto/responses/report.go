package responses

// DischargeReport is the print-ready discharge summary. The JSON keys mirror
// the document layout consumed by the reporting front end.
type DischargeReport struct {
	PatientInfo       ReportPatientInfo  `json:"info_paciente"`
	EpisodeInfo       ReportEpisodeInfo  `json:"info_episodio"`
	ClinicalNarrative []ReportNoteLine   `json:"narrativa_clinica"`
	Procedures        []ReportEntryLine  `json:"procedimientos"`
	Medications       []string           `json:"medicacion_alta"`
}

type ReportPatientInfo struct {
	PatientCode string `json:"codigo_paciente"`
	FullName    string `json:"nombre_completo"`
	DNI         string `json:"dni"`
	SIP         string `json:"sip"`
	NHC         string `json:"nhc"`
	BirthDate   string `json:"fecha_nacimiento"`
	Sex         string `json:"sexo"`
}

type ReportEpisodeInfo struct {
	AdmissionDate    string `json:"fecha_ingreso"`
	DischargeDate    string `json:"fecha_alta"`
	DaysOfStay       int    `json:"dias_estancia"`
	Doctor           string `json:"medico"`
	Department       string `json:"departamento"`
	Room             string `json:"habitacion"`
	Bed              string `json:"cama"`
	AdmissionReason  string `json:"motivo_ingreso"`
	InitialDiagnosis string `json:"diagnostico_inicial"`
	FinalDiagnosis   string `json:"diagnostico_final"`
	Summary          string `json:"resumen_alta"`
	Condition        string `json:"condicion_alta"`
	FollowUp         string `json:"instrucciones"`
}

type ReportNoteLine struct {
	Author     string `json:"autor"`
	Timestamp  string `json:"fecha"`
	Subjective string `json:"subjetivo"`
	Objective  string `json:"objetivo"`
	Assessment string `json:"evaluacion"`
	Plan       string `json:"plan"`
}

type ReportEntryLine struct {
	Author      string `json:"autor"`
	Timestamp   string `json:"fecha"`
	Description string `json:"descripcion"`
	Result      string `json:"resultado,omitempty"`
}

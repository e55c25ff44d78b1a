package requests

type AdmitPatient struct {
	PatientID        string `json:"pacienteId" validate:"required"`
	Doctor           string `json:"medico" validate:"required"`
	Department       string `json:"departamento" validate:"required"`
	Room             string `json:"habitacion" validate:"required"`
	Bed              string `json:"cama" validate:"required"`
	AdmissionReason  string `json:"motivoIngreso" validate:"required"`
	InitialDiagnosis string `json:"diagnosticoInicial" validate:"required"`
}

type AddEvolutionNote struct {
	Subjective string `json:"subjetivo" validate:"required"`
	Objective  string `json:"objetivo" validate:"required"`
	Assessment string `json:"evaluacion" validate:"required"`
	Plan       string `json:"plan" validate:"required"`
}

type AddClinicalEntry struct {
	Description string `json:"descripcion" validate:"required"`
	Result      string `json:"resultado"`
}

type AddVitalSigns struct {
	TemperatureC      float64 `json:"temperatura" validate:"required"`
	SystolicPressure  int     `json:"tensionSistolica" validate:"required"`
	DiastolicPressure int     `json:"tensionDiastolica" validate:"required"`
	HeartRate         int     `json:"frecuenciaCardiaca" validate:"required"`
	OxygenSaturation  int     `json:"saturacionO2" validate:"required"`
}

type DischargePatient struct {
	FinalDiagnosis string   `json:"diagnosticoFinal" validate:"required"`
	Summary        string   `json:"resumenAlta" validate:"required"`
	Condition      string   `json:"condicionAlta" validate:"required,oneof=excelente bueno regular grave fallecido"`
	FollowUp       string   `json:"instrucciones"`
	Medications    []string `json:"medicacionAlta"`
}

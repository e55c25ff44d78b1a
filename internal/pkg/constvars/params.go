package constvars

const (
	URLParamPatientID      = "patient_id"
	URLParamEpisodeID      = "episode_id"
	URLParamSlotID         = "slot_id"
	URLParamConsultationID = "consultation_id"
)

const (
	URLQueryParamPage      = "page"
	URLQueryParamPageSize  = "page_size"
	URLQueryParamDNI       = "dni"
	URLQueryParamSIP       = "sip"
	URLQueryParamNHC       = "nhc"
	URLQueryParamSurname   = "apellido"
	URLQueryParamSpecialty = "especialidad"
	URLQueryParamDoctor    = "medico"
	URLQueryParamStatus    = "estado"
	URLQueryParamDateFrom  = "desde"
	URLQueryParamDateTo    = "hasta"
	URLQueryParamPriority  = "prioridad"
)

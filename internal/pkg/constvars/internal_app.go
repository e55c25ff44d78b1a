package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

// Mongo collection names.
const (
	MongoCollectionUsers           = "usuarios"
	MongoCollectionPatients        = "pacientes"
	MongoCollectionEpisodes        = "episodios"
	MongoCollectionAgendaSlots     = "agenda"
	MongoCollectionConsultations   = "consultas"
	MongoCollectionSpecialties     = "especialidades"
	MongoCollectionPhysicians      = "medicos"
	MongoCollectionMedicalTests    = "pruebas"
	MongoCollectionReferralSources = "procedencias"
)

// Episode states. An episode is active until its discharge timestamp is set.
const (
	EpisodeStatusActive     = "activa"
	EpisodeStatusDischarged = "alta"
)

// Discharge conditions recorded at episode close.
const (
	DischargeConditionExcellent = "excelente"
	DischargeConditionGood      = "bueno"
	DischargeConditionFair      = "regular"
	DischargeConditionGrave     = "grave"
	DischargeConditionDeceased  = "fallecido"
)

// Agenda slot states. Missing status on a stored document reads back as available.
const (
	SlotStatusAvailable = "disponible"
	SlotStatusReserved  = "reservada"
	SlotStatusCompleted = "completada"
	SlotStatusCancelled = "cancelada"
)

// Consultation states. Missing status on a stored document reads back as active.
const (
	ConsultationStatusActive     = "activa"
	ConsultationStatusInProgress = "en_curso"
	ConsultationStatusCompleted  = "completada"
	ConsultationStatusCancelled  = "cancelada"
)

// Consultation priorities.
const (
	ConsultationPriorityOrdinary     = "ordinaria"
	ConsultationPriorityPreferential = "preferente"
	ConsultationPriorityUrgent       = "urgente"
)

// Visit types.
const (
	VisitTypeFirst    = "primera"
	VisitTypeFollowUp = "sucesiva"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	SeedBatchSize = 100
	SIPLength     = 7
)

// RabbitMQ queue names for the discharge notification pipeline.
const (
	DischargeQueueName    = "episode_discharge_queue"
	DischargeQueueDLQName = "episode_discharge_dlq"
)

package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"numeric":  "must be a number",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"datetime": "must be a valid date",
	"sip":      "must be exactly 7 numeric digits",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"

	ErrClientDNIAlreadyExists     = "a patient with this DNI/NIE already exists"
	ErrClientSIPAlreadyExists     = "a patient with this SIP already exists"
	ErrClientNHCAlreadyExists     = "a patient with this clinical record number already exists"
	ErrClientPatientNotFound      = "patient not found"
	ErrClientEpisodeNotFound      = "episode not found"
	ErrClientEpisodeAlreadyClosed = "the episode is already discharged"
	ErrClientEpisodeStillOpen     = "the episode has not been discharged yet"
	ErrClientSlotNotFound         = "agenda slot not found"
	ErrClientConsultationNotFound = "consultation not found"
	ErrClientMasterDataNotEmpty   = "master data already initialized"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotParseDate        = "cannot parse date"
	ErrDevInvalidCredentials     = "invalid credentials"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevAuthTokenMissing       = "authorization token missing"
	ErrDevAuthTokenInvalid       = "authorization token invalid"
	ErrDevAuthGenerateToken      = "failed to generate token"
	ErrDevAuthSigningMethod      = "unexpected token signing method"
	ErrDevAuthInvalidSession     = "session not found or expired"
	ErrDevMissingRequestID       = "request id missing from context"
	ErrDevMissingSessionData     = "session data missing from context"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	ErrDevDNIAlreadyExists     = "dni/nie already registered"
	ErrDevSIPAlreadyExists     = "sip already registered"
	ErrDevNHCAlreadyExists     = "clinical record number already registered"
	ErrDevPatientNotExists     = "patient does not exist"
	ErrDevEpisodeNotExists     = "episode does not exist"
	ErrDevEpisodeAlreadyClosed = "episode already has a discharge timestamp"
	ErrDevEpisodeStillOpen     = "episode has no discharge fields"
	ErrDevSlotNotExists        = "agenda slot does not exist"
	ErrDevConsultationNotExists = "consultation does not exist"
	ErrDevMasterDataNotEmpty   = "seed refused: target collections are not empty"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToCountDocuments   = "failed to count documents"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"
	ErrDevDBDuplicateKey             = "unique index rejected the write"

	// Redis
	ErrDevRedisSet       = "failed to set redis key"
	ErrDevRedisGetNoData = "failed to get redis key %s"
	ErrDevRedisDelete    = "failed to delete redis key"

	// Minio
	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"

	// RabbitMQ
	ErrDevRabbitMQPublish = "failed to publish message to queue"

	// Reports
	ErrDevCSVWrite = "failed to write csv"
)

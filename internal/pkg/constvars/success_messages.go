package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// Patient messages
	PatientCreatedSuccess = "patient created successfully"
	PatientUpdatedSuccess = "patient updated successfully"
	PatientGetSuccess     = "get patient successfully"
	PatientSearchSuccess  = "patient search completed"
	PatientListSuccess    = "get patients successfully"

	// Episode messages
	EpisodeAdmittedSuccess    = "patient admitted successfully"
	EpisodeNoteAddedSuccess   = "clinical entry added successfully"
	EpisodeDischargedSuccess  = "patient discharged successfully"
	EpisodeGetSuccess         = "get episode successfully"
	EpisodeListSuccess        = "get episodes successfully"
	DischargeReportGetSuccess = "discharge report generated successfully"

	// Agenda messages
	SlotCreatedSuccess         = "agenda slot created successfully"
	SlotReservedSuccess        = "agenda slot reserved successfully"
	SlotUpdatedSuccess         = "agenda slot updated successfully"
	SlotListSuccess            = "get agenda slots successfully"
	ConsultationCreatedSuccess = "consultation created successfully"
	ConsultationUpdatedSuccess = "consultation updated successfully"
	ConsultationListSuccess    = "get consultations successfully"

	// Catalog messages
	CatalogListSuccess  = "get catalog successfully"
	CatalogSeedSuccess  = "master data seeded successfully"
	StatisticsGetSuccess = "statistics computed successfully"
)

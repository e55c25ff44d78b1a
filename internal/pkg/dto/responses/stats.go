package responses

// DashboardStatistics is the aggregate block rendered on the dashboard.
type DashboardStatistics struct {
	ConsultationsByStatus   map[string]int `json:"consultas_por_estado"`
	ConsultationsByPriority map[string]int `json:"consultas_por_prioridad"`
	ConsultationsBySpecialty map[string]int `json:"consultas_por_especialidad"`
	EpisodesByStatus        map[string]int `json:"episodios_por_estado"`
	AverageDurationMinutes  float64        `json:"duracion_media_minutos"`
	MostCommonSpecialty     string         `json:"especialidad_mas_frecuente"`
}

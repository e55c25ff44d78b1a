package stats

import (
	"context"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/dto/responses"
	"hospadmin-service/internal/pkg/utils"
)

type statsUsecase struct {
	ConsultationRepository contracts.ConsultationRepository
	EpisodeRepository      contracts.EpisodeRepository
	SlotRepository         contracts.SlotRepository
}

func NewStatsUsecase(
	consultationRepository contracts.ConsultationRepository,
	episodeRepository contracts.EpisodeRepository,
	slotRepository contracts.SlotRepository,
) contracts.StatsUsecase {
	return &statsUsecase{
		ConsultationRepository: consultationRepository,
		EpisodeRepository:      episodeRepository,
		SlotRepository:         slotRepository,
	}
}

func (uc *statsUsecase) DashboardStatistics(ctx context.Context) (*responses.DashboardStatistics, error) {
	consultations, err := uc.ConsultationRepository.Find(ctx, &requests.ConsultationFilter{})
	if err != nil {
		return nil, err
	}
	episodes, err := uc.EpisodeRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	slots, err := uc.SlotRepository.Find(ctx, &requests.SlotFilter{})
	if err != nil {
		return nil, err
	}

	return Reduce(consultations, episodes, slots), nil
}

// Reduce folds the raw collections into the dashboard block. It is a pure
// function over its inputs so the numbers are reproducible in tests.
func Reduce(consultations []models.Consultation, episodes []models.Episode, slots []models.AgendaSlot) *responses.DashboardStatistics {
	statistics := &responses.DashboardStatistics{
		ConsultationsByStatus:    map[string]int{},
		ConsultationsByPriority:  map[string]int{},
		ConsultationsBySpecialty: map[string]int{},
		EpisodesByStatus:         map[string]int{},
	}

	for _, consultation := range consultations {
		consultation.NormalizeStatus()
		statistics.ConsultationsByStatus[consultation.Status]++
		statistics.ConsultationsByPriority[consultation.Priority]++
		statistics.ConsultationsBySpecialty[consultation.Specialty]++
	}

	for _, episode := range episodes {
		episode.NormalizeStatus()
		statistics.EpisodesByStatus[episode.Status]++
	}

	statistics.AverageDurationMinutes = averageConsultationMinutes(slots)
	statistics.MostCommonSpecialty = mostCommonKey(statistics.ConsultationsBySpecialty)

	return statistics
}

// averageConsultationMinutes averages only over slots attached to a
// consultation; open (unbooked) slots say nothing about visit length.
func averageConsultationMinutes(slots []models.AgendaSlot) float64 {
	var totalMinutes float64
	var counted int
	for _, slot := range slots {
		if slot.ConsultationID == nil || *slot.ConsultationID == "" {
			continue
		}
		duration := utils.SlotDuration(slot.StartTime, slot.EndTime)
		if duration <= 0 {
			continue
		}
		totalMinutes += duration.Minutes()
		counted++
	}
	if counted == 0 {
		return 0
	}
	return totalMinutes / float64(counted)
}

// mostCommonKey breaks count ties by taking the lexicographically lowest key,
// keeping the dashboard stable between refreshes.
func mostCommonKey(counts map[string]int) string {
	best := ""
	bestCount := 0
	for key, count := range counts {
		if count > bestCount || (count == bestCount && count > 0 && (best == "" || key < best)) {
			best = key
			bestCount = count
		}
	}
	return best
}

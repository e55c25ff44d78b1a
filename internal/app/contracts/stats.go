package contracts

import (
	"context"
	"hospadmin-service/internal/pkg/dto/responses"
)

type StatsUsecase interface {
	DashboardStatistics(ctx context.Context) (*responses.DashboardStatistics, error)
}

package controllers

import (
	"context"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type StatsController struct {
	Log          *zap.Logger
	StatsUsecase contracts.StatsUsecase
}

func NewStatsController(logger *zap.Logger, statsUsecase contracts.StatsUsecase) *StatsController {
	return &StatsController{
		Log:          logger,
		StatsUsecase: statsUsecase,
	}
}

func (ctrl *StatsController) GetDashboardStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.StatsUsecase.DashboardStatistics(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatisticsGetSuccess, result)
}

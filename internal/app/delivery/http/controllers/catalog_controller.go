package controllers

import (
	"context"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, ctrl.CatalogUsecase.ListSpecialties)
}

func (ctrl *CatalogController) ListPhysicians(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, ctrl.CatalogUsecase.ListPhysicians)
}

func (ctrl *CatalogController) ListMedicalTests(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, ctrl.CatalogUsecase.ListMedicalTests)
}

func (ctrl *CatalogController) ListReferralSources(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, ctrl.CatalogUsecase.ListReferralSources)
}

func (ctrl *CatalogController) list(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) ([]models.CatalogItem, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := fetch(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogListSuccess, result)
}

func (ctrl *CatalogController) SeedMasterData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := ctrl.CatalogUsecase.SeedMasterData(ctx); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CatalogSeedSuccess, nil)
}

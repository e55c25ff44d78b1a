package routers

import (
	"hospadmin-service/internal/app/delivery/http/controllers"
	"hospadmin-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Use(middlewares.Authenticate)

	router.Get("/especialidades", catalogController.ListSpecialties)
	router.Get("/medicos", catalogController.ListPhysicians)
	router.Get("/pruebas", catalogController.ListMedicalTests)
	router.Get("/procedencias", catalogController.ListReferralSources)
	router.Post("/seed", catalogController.SeedMasterData)
}

func attachStatsRoutes(router chi.Router, middlewares *middlewares.Middlewares, statsController *controllers.StatsController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", statsController.GetDashboardStatistics)
}

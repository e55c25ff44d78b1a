package routers

import (
	"fmt"
	"hospadmin-service/internal/app/config"
	"hospadmin-service/internal/app/delivery/http/controllers"
	"hospadmin-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	patientController *controllers.PatientController,
	episodeController *controllers.EpisodeController,
	agendaController *controllers.AgendaController,
	catalogController *controllers.CatalogController,
	statsController *controllers.StatsController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/pacientes", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController, episodeController)
			})

			r.Route("/episodios", func(r chi.Router) {
				attachEpisodeRoutes(r, middlewares, episodeController)
			})

			r.Route("/agenda", func(r chi.Router) {
				attachAgendaRoutes(r, middlewares, agendaController)
			})

			r.Route("/consultas", func(r chi.Router) {
				attachConsultationRoutes(r, middlewares, agendaController)
			})

			r.Route("/catalogos", func(r chi.Router) {
				attachCatalogRoutes(r, middlewares, catalogController)
			})

			r.Route("/estadisticas", func(r chi.Router) {
				attachStatsRoutes(r, middlewares, statsController)
			})
		})
	})
}

package routers

import (
	"fmt"
	"hospadmin-service/internal/app/delivery/http/controllers"
	"hospadmin-service/internal/app/delivery/http/middlewares"
	"hospadmin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachEpisodeRoutes(router chi.Router, middlewares *middlewares.Middlewares, episodeController *controllers.EpisodeController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", episodeController.AdmitPatient)
	router.Get("/activos", episodeController.ListActiveEpisodes)

	episodeIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamEpisodeID)
	router.Get(episodeIDPattern, episodeController.GetEpisodeByID)
	router.Post(episodeIDPattern+"/evoluciones", episodeController.AddEvolutionNote)
	router.Post(episodeIDPattern+"/procedimientos", episodeController.AddProcedure)
	router.Post(episodeIDPattern+"/tratamientos", episodeController.AddTreatment)
	router.Post(episodeIDPattern+"/laboratorio", episodeController.AddLabResult)
	router.Post(episodeIDPattern+"/imagenes", episodeController.AddImagingStudy)
	router.Post(episodeIDPattern+"/constantes", episodeController.AddVitalSigns)
	router.Post(episodeIDPattern+"/alta", episodeController.DischargePatient)
	router.Get(episodeIDPattern+"/informe", episodeController.GetDischargeReport)
}

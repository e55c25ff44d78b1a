package routers

import (
	"fmt"
	"hospadmin-service/internal/app/delivery/http/controllers"
	"hospadmin-service/internal/app/delivery/http/middlewares"
	"hospadmin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController, episodeController *controllers.EpisodeController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.ListPatients)
	router.Get("/buscar", patientController.SearchPatients)
	router.Get("/exportar", patientController.ExportPatientsCSV)

	patientIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamPatientID)
	router.Get(patientIDPattern, patientController.GetPatientByID)
	router.Put(patientIDPattern, patientController.UpdatePatient)
	router.Get(patientIDPattern+"/episodios", episodeController.ListEpisodesByPatient)
}

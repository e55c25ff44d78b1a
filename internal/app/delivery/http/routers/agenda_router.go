package routers

import (
	"fmt"
	"hospadmin-service/internal/app/delivery/http/controllers"
	"hospadmin-service/internal/app/delivery/http/middlewares"
	"hospadmin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAgendaRoutes(router chi.Router, middlewares *middlewares.Middlewares, agendaController *controllers.AgendaController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", agendaController.CreateSlot)
	router.Get("/", agendaController.ListSlots)

	slotIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamSlotID)
	router.Post(slotIDPattern+"/reservar", agendaController.ReserveSlot)
	router.Patch(slotIDPattern+"/estado", agendaController.UpdateSlotStatus)
}

func attachConsultationRoutes(router chi.Router, middlewares *middlewares.Middlewares, agendaController *controllers.AgendaController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", agendaController.CreateConsultation)
	router.Get("/", agendaController.ListConsultations)

	consultationIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamConsultationID)
	router.Post(consultationIDPattern+"/llegada", agendaController.MarkArrival)
	router.Patch(consultationIDPattern+"/estado", agendaController.UpdateConsultationStatus)
}

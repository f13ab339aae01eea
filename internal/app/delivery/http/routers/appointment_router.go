package routers

import (
	"healthme-client/internal/app/delivery/http/controllers"
	"healthme-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.With(middlewares.SingleSubmit).Post("/", appointmentController.Create)
	router.Get("/{appointmentID}", appointmentController.FindByID)
	router.With(middlewares.SingleSubmit).Patch("/{appointmentID}/reschedule", appointmentController.Reschedule)
	router.With(middlewares.SingleSubmit).Delete("/{appointmentID}/cancel", appointmentController.Cancel)
}

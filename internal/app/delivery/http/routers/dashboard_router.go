package routers

import (
	"healthme-client/internal/app/delivery/http/controllers"
	"healthme-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.Get("/patient", dashboardController.Patient)
	router.Get("/practitioner", dashboardController.Practitioner)
	router.Get("/admin", dashboardController.Admin)
	router.Get("/admin/{panel}", dashboardController.Admin)
}

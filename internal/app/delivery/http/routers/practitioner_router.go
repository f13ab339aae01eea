package routers

import (
	"healthme-client/internal/app/delivery/http/controllers"
	"healthme-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPractitionerRoutes(router chi.Router, middlewares *middlewares.Middlewares, practitionerController *controllers.PractitionerController) {
	router.Get("/practitioners", practitionerController.FindAll)
	router.Get("/practitioners/nearby", practitionerController.FindNearby)
	router.Get("/practitioners/{practitionerID}", practitionerController.FindByID)
	router.With(middlewares.SingleSubmit).Put("/practitioner/profile", practitionerController.UpdateProfile)
}

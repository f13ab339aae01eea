package routers

import (
	"healthme-client/internal/app/config"
	"healthme-client/internal/app/delivery/http/controllers"
	"healthme-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	onboardingController *controllers.OnboardingController,
	appointmentController *controllers.AppointmentController,
	dashboardController *controllers.DashboardController,
	practitionerController *controllers.PractitionerController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.CreateRateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	requestTimeout := middlewares.Timeout(internalConfig.Web.RequestTimeoutInSeconds)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Use(middlewares.ClientWorkspace)

		r.Route("/auth", func(r chi.Router) {
			r.Use(requestTimeout)
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/onboarding", func(r chi.Router) {
			attachOnboardingRoutes(r, middlewares, onboardingController)
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Use(requestTimeout)
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(requestTimeout)
			attachDashboardRoutes(r, middlewares, dashboardController)
		})

		r.Group(func(r chi.Router) {
			r.Use(requestTimeout)
			attachPractitionerRoutes(r, middlewares, practitionerController)
		})
	})
}

package routers

import (
	"healthme-client/internal/app/delivery/http/controllers"
	"healthme-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachOnboardingRoutes(router chi.Router, middlewares *middlewares.Middlewares, onboardingController *controllers.OnboardingController) {
	webConfig := middlewares.InternalConfig.Web

	// The payment watch is a long poll and carries its own deadline.
	router.With(middlewares.Timeout(webConfig.WatchRequestTimeoutSeconds)).Post("/payment/watch", onboardingController.WatchPayment)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Timeout(webConfig.RequestTimeoutInSeconds))
		r.Get("/state", onboardingController.GetState)
		r.Get("/plans", onboardingController.GetPlans)
		r.With(middlewares.SingleSubmit).Post("/subscribe", onboardingController.Subscribe)
		r.With(middlewares.SingleSubmit).Post("/payment/confirm", onboardingController.ConfirmPayment)
		r.Get("/kyc", onboardingController.EnterKyc)
		r.With(middlewares.SingleSubmit).Post("/kyc", onboardingController.SubmitKyc)
		r.Get("/kyc/status", onboardingController.GetKycStatus)
	})
}

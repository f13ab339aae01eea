package routers

import (
	"healthme-client/internal/app/delivery/http/controllers"
	"healthme-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.AuthAttemptLimit, middlewares.SingleSubmit).Post("/login", authController.Login)
	router.With(middlewares.AuthAttemptLimit, middlewares.SingleSubmit).Post("/signup", authController.Signup)
	router.Post("/logout", authController.Logout)
	router.Get("/me", authController.Me)
}

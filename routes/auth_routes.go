package routes

import (
	"time"

	"github.com/anjiri1684/pesuconnect/handlers"
	"github.com/anjiri1684/pesuconnect/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	limit := middleware.RateLimiter(20, time.Minute)

	app.Get("/login", h.LoginPage)
	app.Post("/login", limit, h.Login)
	app.Get("/register", h.RegisterPage)
	app.Post("/register", limit, h.Register)
	app.Post("/logout", h.Logout)
}

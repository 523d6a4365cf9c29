package routes

import (
	"github.com/anjiri1684/pesuconnect/handlers"
	"github.com/anjiri1684/pesuconnect/middleware"
	"github.com/anjiri1684/pesuconnect/websocket"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
}

func LiveRoutes(app *fiber.App, h *handlers.Handler, hub *websocket.Hub) {
	app.Get("/ws", middleware.Protected(h.Secret(), h.SessionActive), handlers.UpgradeLive, handlers.ServeLive(hub))
}

// Setup registers every route of the web front end.
func Setup(app *fiber.App, h *handlers.Handler, hub *websocket.Hub) {
	app.Use(middleware.CSRF(h.SecureCookie()))
	PublicRoutes(app)
	AuthRoutes(app, h)
	LiveRoutes(app, h, hub)
	MarketplaceRoutes(app, h)
}

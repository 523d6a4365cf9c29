package routes

import (
	"github.com/anjiri1684/pesuconnect/handlers"
	"github.com/anjiri1684/pesuconnect/middleware"
	"github.com/gofiber/fiber/v2"
)

func MarketplaceRoutes(app *fiber.App, h *handlers.Handler) {
	auth := middleware.Protected(h.Secret(), h.SessionActive)

	app.Get("/dashboard", auth, h.Dashboard)

	app.Get("/projects", auth, h.Projects)
	app.Get("/projects/new", auth, h.NewProjectPage)
	app.Post("/projects", auth, h.CreateProject)
	app.Post("/projects/:id/apply", auth, h.Apply)

	app.Get("/my-projects", auth, h.MyProjects)
	app.Get("/my-projects/:id/applications", auth, h.Applications)
	app.Post("/my-projects/:id/applications/:appID", auth, h.DecideApplication)

	app.Get("/skills", auth, h.Skills)
	app.Post("/skills", auth, h.AddSkill)
	app.Post("/skills/:id/update", auth, h.UpdateSkill)
	app.Post("/skills/:id/remove", auth, h.RemoveSkill)

	app.Get("/contracts", auth, h.Contracts)
	app.Get("/contracts/complete", auth, h.CompletionPage)
	app.Post("/contracts/complete", auth, h.SubmitCompletion)
	app.Post("/contracts/complete/cancel", auth, h.CancelCompletion)
	app.Post("/contracts/:id/complete", auth, h.StartCompletion)

	app.Get("/reviews", auth, h.Reviews)
}

package handlers

import (
	"fmt"

	"github.com/anjiri1684/pesuconnect/services"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Projects(c *fiber.Ctx) error {
	keyword := c.Query("q")
	projects, err := h.svc.OpenProjects(c.UserContext(), keyword)
	if err != nil {
		return err
	}
	return h.render(c, "projects", "Available Projects", fiber.Map{
		"Projects": projects,
		"Keyword":  keyword,
	})
}

func (h *Handler) Apply(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	projectID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Apply(c.UserContext(), user.StudentID, projectID); err != nil {
		return h.redirect(c, "/projects", "error", "Error applying for project: "+message(err))
	}
	return h.success(c, "/projects", "Success! Your application has been submitted.")
}

func (h *Handler) NewProjectPage(c *fiber.Ctx) error {
	return h.render(c, "project_new", "Create a New Project", fiber.Map{"Form": services.ProjectInput{}})
}

func (h *Handler) CreateProject(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	var in services.ProjectInput
	if err := c.BodyParser(&in); err != nil {
		return h.redirect(c, "/projects/new", "error", "Invalid form input.")
	}
	err = h.svc.CreateProject(c.UserContext(), user.StudentID, in)
	if errs, ok := formErrors(err); ok {
		return h.render(c.Status(fiber.StatusUnprocessableEntity), "project_new", "Create a New Project", fiber.Map{"Form": in, "Errors": errs})
	}
	if err != nil {
		return h.failure(c, "/projects/new", err)
	}
	return h.success(c, "/my-projects", "Success! Your project has been posted.")
}

func (h *Handler) MyProjects(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	projects, err := h.svc.MyProjects(c.UserContext(), user.StudentID)
	if err != nil {
		return err
	}
	return h.render(c, "my_projects", "Manage My Projects", fiber.Map{"Projects": projects})
}

func (h *Handler) Applications(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	projectID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	project, apps, err := h.svc.PendingApplications(c.UserContext(), user.StudentID, projectID)
	if err != nil {
		return h.failure(c, "/my-projects", err)
	}
	return h.render(c, "applications", "Pending Applications", fiber.Map{
		"Project":      project,
		"Applications": apps,
	})
}

func (h *Handler) DecideApplication(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	projectID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	appID, err := paramID(c, "appID")
	if err != nil {
		return err
	}
	back := fmt.Sprintf("/my-projects/%d/applications", projectID)

	decision, err := services.ParseDecision(c.FormValue("action"))
	if err != nil {
		return h.failure(c, back, err)
	}
	if err := h.svc.DecideApplication(c.UserContext(), user.StudentID, projectID, appID, decision); err != nil {
		return h.redirect(c, back, "error", "Error processing application: "+message(err))
	}
	if decision == services.Accept {
		return h.success(c, "/contracts", "Application accepted! A contract has been created.")
	}
	return h.success(c, back, "Application rejected.")
}

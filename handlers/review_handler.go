package handlers

import "github.com/gofiber/fiber/v2"

func (h *Handler) Reviews(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	summary, err := h.svc.Reviews(c.UserContext(), user.StudentID)
	if err != nil {
		return err
	}
	return h.render(c, "reviews", "Your Reviews", fiber.Map{"Summary": summary})
}

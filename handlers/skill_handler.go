package handlers

import (
	"errors"

	"github.com/anjiri1684/pesuconnect/database"
	"github.com/anjiri1684/pesuconnect/models"
	"github.com/anjiri1684/pesuconnect/services"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Skills(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	skills, err := h.svc.Skills(c.UserContext(), user.StudentID)
	if err != nil {
		return err
	}
	return h.render(c, "skills", "Manage My Skills", fiber.Map{
		"Skills": skills,
		"Levels": models.Proficiencies,
	})
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	var in services.SkillInput
	if err := c.BodyParser(&in); err != nil {
		return h.redirect(c, "/skills", "error", "Invalid form input.")
	}
	res, err := h.svc.AddSkill(c.UserContext(), user.StudentID, in)
	if errors.Is(err, database.ErrSkillAlreadyAdded) {
		return h.redirect(c, "/skills", "error", "Error: You have already added '"+in.Name+"' to your profile.")
	}
	if err != nil {
		return h.redirect(c, "/skills", "error", "Error adding skill: "+message(err))
	}
	msg := "Success! Skill added to your profile."
	if res.NewSkill {
		msg = "Success! New skill added to the system and to your profile."
	}
	return h.success(c, "/skills", msg)
}

func (h *Handler) UpdateSkill(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	skillID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.UpdateSkill(c.UserContext(), user.StudentID, skillID, c.FormValue("proficiency")); err != nil {
		return h.redirect(c, "/skills", "error", "Error updating skill: "+message(err))
	}
	return h.success(c, "/skills", "Success! Skill proficiency updated.")
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	skillID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.RemoveSkill(c.UserContext(), user.StudentID, skillID); err != nil {
		return h.redirect(c, "/skills", "error", "Error removing skill: "+message(err))
	}
	return h.success(c, "/skills", "Success! Skill removed from your profile.")
}

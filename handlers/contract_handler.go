package handlers

import (
	"errors"

	"github.com/anjiri1684/pesuconnect/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func (h *Handler) Contracts(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	board, err := h.svc.Contracts(c.UserContext(), user.StudentID)
	if err != nil {
		return err
	}
	return h.render(c, "contracts", "Your Active Contracts", fiber.Map{"Board": board})
}

// StartCompletion begins the completion wizard for a contract from the
// caller's owner list.
func (h *Handler) StartCompletion(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	contractID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.svc.OwnedContract(c.UserContext(), user.StudentID, contractID); err != nil {
		return h.failure(c, "/contracts", err)
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(contractToCompleteK, contractID)
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect("/contracts/complete", fiber.StatusSeeOther)
}

func (h *Handler) pendingCompletion(c *fiber.Ctx) (*session.Session, int64, error) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return nil, 0, err
	}
	id, _ := sess.Get(contractToCompleteK).(int64)
	return sess, id, nil
}

func (h *Handler) CompletionPage(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	_, contractID, err := h.pendingCompletion(c)
	if err != nil {
		return err
	}
	if contractID == 0 {
		return h.redirect(c, "/contracts", "error", "Choose a contract to complete first.")
	}
	contract, err := h.svc.OwnedContract(c.UserContext(), user.StudentID, contractID)
	if err != nil {
		return h.clearCompletion(c, "error", message(err))
	}
	return h.render(c, "contract_complete", "Complete Contract", fiber.Map{
		"Contract": contract,
		"Form":     services.CompletionInput{},
	})
}

func (h *Handler) SubmitCompletion(c *fiber.Ctx) error {
	user, err := student(c)
	if err != nil {
		return err
	}
	_, contractID, err := h.pendingCompletion(c)
	if err != nil {
		return err
	}
	if contractID == 0 {
		return h.redirect(c, "/contracts", "error", "Choose a contract to complete first.")
	}

	var in services.CompletionInput
	if err := c.BodyParser(&in); err != nil {
		return h.redirect(c, "/contracts/complete", "error", "Rating and amount must be numbers.")
	}
	if err := services.ValidateCompletion(in); err != nil {
		errs, _ := formErrors(err)
		contract, cerr := h.svc.OwnedContract(c.UserContext(), user.StudentID, contractID)
		if cerr != nil {
			return h.clearCompletion(c, "error", message(cerr))
		}
		return h.render(c.Status(fiber.StatusUnprocessableEntity), "contract_complete", "Complete Contract", fiber.Map{
			"Contract": contract,
			"Form":     in,
			"Errors":   errs,
		})
	}

	err = h.svc.CompleteContract(c.UserContext(), user, contractID, in)
	var stepErr *services.StepError
	switch {
	case errors.As(err, &stepErr):
		return h.clearCompletion(c, "error", "An error occurred during completion ("+string(stepErr.Step)+"): "+stepErr.Err.Error())
	case err != nil:
		return h.clearCompletion(c, "error", message(err))
	}
	return h.clearCompletion(c, "success", "Payment processed successfully! Contract finished.")
}

func (h *Handler) CancelCompletion(c *fiber.Ctx) error {
	return h.clearCompletion(c, "success", "Action cancelled.")
}

// clearCompletion ends the wizard and returns to the contracts board.
func (h *Handler) clearCompletion(c *fiber.Ctx, kind, msg string) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Delete(contractToCompleteK)
	setFlash(sess, kind, msg)
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect("/contracts", fiber.StatusSeeOther)
}

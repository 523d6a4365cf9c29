package handlers

import (
	"errors"
	"time"

	"github.com/anjiri1684/pesuconnect/database"
	"github.com/anjiri1684/pesuconnect/middleware"
	"github.com/anjiri1684/pesuconnect/services"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) LoginPage(c *fiber.Ctx) error {
	return h.render(c, "login", "Login", fiber.Map{"Form": services.LoginInput{}})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var in services.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return h.redirect(c, "/login", "error", "Invalid form input.")
	}

	user, err := h.svc.Login(c.UserContext(), in)
	if errors.Is(err, database.ErrInvalidCredentials) {
		return h.redirect(c, "/login", "error", "Login failed: Invalid credentials.")
	}
	if err != nil {
		return h.failure(c, "/login", err)
	}

	token, err := middleware.IssueToken(h.cfg.JWTSecret, user, h.cfg.TokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create token")
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.TokenTTL),
		HTTPOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(loggedInKey, true)
	sess.Set(studentIDKey, user.StudentID)
	sess.Set(userKey, user.Name)
	setFlash(sess, "success", "Login successful! Welcome, "+user.Name+".")
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (h *Handler) RegisterPage(c *fiber.Ctx) error {
	return h.render(c, "register", "Sign Up", fiber.Map{"Form": services.RegisterInput{}})
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return h.redirect(c, "/register", "error", "Invalid form input.")
	}

	student, err := h.svc.Register(c.UserContext(), in)
	if errors.Is(err, services.ErrPasswordMismatch) {
		err = services.NewFormError(map[string]string{"ConfirmPassword": "Passwords do not match."})
	}
	if errs, ok := formErrors(err); ok {
		in.Password, in.ConfirmPassword = "", ""
		return h.render(c.Status(fiber.StatusUnprocessableEntity), "register", "Sign Up", fiber.Map{"Form": in, "Errors": errs})
	}
	if err != nil {
		return h.failure(c, "/register", err)
	}
	return h.success(c, "/login", "Registration successful! Welcome, "+student.Name+". Please log in.")
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.TokenCookie)
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Reset(); err != nil {
		return err
	}
	setFlash(sess, "success", "Logging you out. Goodbye!")
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (h *Handler) Dashboard(c *fiber.Ctx) error {
	return h.render(c, "dashboard", "Dashboard", nil)
}

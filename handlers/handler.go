package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/anjiri1684/pesuconnect/middleware"
	"github.com/anjiri1684/pesuconnect/models"
	"github.com/anjiri1684/pesuconnect/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	flashKey            = "flash"
	flashKindKey        = "flash_kind"
	loggedInKey         = "logged_in"
	userKey             = "user"
	studentIDKey        = "student_id"
	contractToCompleteK = "contract_to_complete"
)

type Config struct {
	AppName      string
	JWTSecret    string
	TokenTTL     time.Duration
	SecureCookie bool
}

// Handler serves the HTML form pages. Identity travels in a signed token
// cookie; per-browser UI state (flash messages, the completion wizard) lives
// in the session store.
type Handler struct {
	svc      *services.Service
	sessions *session.Store
	cfg      Config
}

func New(svc *services.Service, sessions *session.Store, cfg Config) *Handler {
	return &Handler{svc: svc, sessions: sessions, cfg: cfg}
}

func (h *Handler) Secret() string {
	return h.cfg.JWTSecret
}

func (h *Handler) SecureCookie() bool {
	return h.cfg.SecureCookie
}

// SessionActive reports whether the browser session still belongs to the
// student named in the token. Logout resets the session, so a token kept
// from before logout no longer passes.
func (h *Handler) SessionActive(c *fiber.Ctx) bool {
	user, err := middleware.CurrentStudent(c)
	if err != nil {
		return false
	}
	sess, err := h.sessions.Get(c)
	if err != nil {
		return false
	}
	loggedIn, _ := sess.Get(loggedInKey).(bool)
	id, _ := sess.Get(studentIDKey).(int64)
	return loggedIn && id == user.StudentID
}

// render fills in the layout data every page needs.
func (h *Handler) render(c *fiber.Ctx, name, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["AppName"] = h.cfg.AppName
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	if student, err := middleware.CurrentStudent(c); err == nil {
		data["Student"] = student
	}
	if token, ok := c.Locals(middleware.CSRFContextKey).(string); ok {
		data["CSRF"] = token
	}
	kind, msg, err := h.popFlash(c)
	if err != nil {
		return err
	}
	if msg != "" {
		data["Flash"] = msg
		data["FlashKind"] = kind
	}
	return c.Render(name, data, "layouts/main")
}

func (h *Handler) popFlash(c *fiber.Ctx) (kind, msg string, err error) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return "", "", err
	}
	msg, _ = sess.Get(flashKey).(string)
	if msg == "" {
		return "", "", nil
	}
	kind, _ = sess.Get(flashKindKey).(string)
	sess.Delete(flashKey)
	sess.Delete(flashKindKey)
	return kind, msg, sess.Save()
}

// redirect stores a flash message for the next page and redirects to it.
func (h *Handler) redirect(c *fiber.Ctx, to, kind, msg string) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	setFlash(sess, kind, msg)
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect(to, fiber.StatusSeeOther)
}

func setFlash(sess *session.Session, kind, msg string) {
	sess.Set(flashKey, msg)
	sess.Set(flashKindKey, kind)
}

func (h *Handler) success(c *fiber.Ctx, to, msg string) error {
	return h.redirect(c, to, "success", msg)
}

func (h *Handler) failure(c *fiber.Ctx, to string, err error) error {
	return h.redirect(c, to, "error", message(err))
}

func message(err error) string {
	var fe *services.FormError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}

func formErrors(err error) (map[string]string, bool) {
	var fe *services.FormError
	if errors.As(err, &fe) {
		return fe.Errors, true
	}
	return nil, false
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

func student(c *fiber.Ctx) (*models.Student, error) {
	s, err := middleware.CurrentStudent(c)
	if err != nil {
		return nil, fiber.ErrUnauthorized
	}
	return s, nil
}

// ErrorHandler renders unexpected errors as a page, or JSON for API clients.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())

	if c.Get(fiber.HeaderAccept) == fiber.MIMEApplicationJSON {
		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"code":    code,
			"message": err.Error(),
		})
	}
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		msg = "The request could not be completed. Please try again."
	}
	return c.Status(code).Render("error", fiber.Map{
		"Title":   "Error",
		"AppName": "PESUConnect",
		"Message": msg,
	}, "layouts/main")
}

package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/google/uuid"
)

const (
	CSRFField      = "_csrf"
	CSRFCookie     = "pesu_csrf"
	CSRFContextKey = "csrf"
)

// CSRF checks the hidden form token against the csrf cookie on every
// state-changing request. Pages read the token from Locals(CSRFContextKey).
func CSRF(secure bool) fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:" + CSRFField,
		CookieName:     CSRFCookie,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		CookieSecure:   secure,
		CookieHTTPOnly: true,
		Expiration:     2 * time.Hour,
		ContextKey:     CSRFContextKey,
		KeyGenerator:   uuid.NewString,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("⚠️ CSRF check failed: %v | Path: %s", err, c.Path())
			return fiber.NewError(fiber.StatusForbidden, "This form has expired. Go back, reload the page and try again.")
		},
	})
}

package middleware

import (
	"errors"
	"time"

	"github.com/anjiri1684/pesuconnect/models"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

const TokenCookie = "pesu_token"

var (
	ErrNoStudent    = errors.New("no logged-in student")
	ErrSessionEnded = errors.New("session has ended")
)

// SessionCheck reports whether the login behind a valid token is still live.
type SessionCheck func(c *fiber.Ctx) bool

// Protected requires a valid token cookie whose session passes active, and
// sends the browser back to the login page otherwise. A nil active accepts
// any valid token.
func Protected(secret string, active SessionCheck) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		TokenLookup:  "cookie:" + TokenCookie,
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			if active != nil && !active(c) {
				return jwtError(c, ErrSessionEnded)
			}
			return c.Next()
		},
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	c.ClearCookie(TokenCookie)
	if c.Get(fiber.HeaderAccept) == fiber.MIMEApplicationJSON {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"status": "error", "message": "Invalid or expired session", "data": nil})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func IssueToken(secret string, student *models.Student, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"student_id": student.StudentID,
		"name":       student.Name,
		"email":      student.Email,
		"exp":        time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// CurrentStudent reads the identity Protected stored on the request.
func CurrentStudent(c *fiber.Ctx) (*models.Student, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, ErrNoStudent
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoStudent
	}
	id, ok := claims["student_id"].(float64)
	if !ok {
		return nil, ErrNoStudent
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	return &models.Student{StudentID: int64(id), Name: name, Email: email}, nil
}

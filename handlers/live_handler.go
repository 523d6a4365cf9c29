package handlers

import (
	"log"

	"github.com/anjiri1684/pesuconnect/middleware"
	"github.com/anjiri1684/pesuconnect/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// UpgradeLive stashes the logged-in student for the websocket handler, which
// cannot see fiber locals set by the token middleware.
func UpgradeLive(c *fiber.Ctx) error {
	if !websocketcontrib.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	user, err := middleware.CurrentStudent(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	c.Locals("student_id", user.StudentID)
	return c.Next()
}

// ServeLive keeps a browser tab registered with the hub until it disconnects.
func ServeLive(hub *websocket.Hub) fiber.Handler {
	return websocketcontrib.New(func(c *websocketcontrib.Conn) {
		studentID, ok := c.Locals("student_id").(int64)
		if !ok {
			_ = c.WriteJSON(fiber.Map{"error": "Not logged in"})
			c.Close()
			return
		}

		client := &websocket.Client{StudentID: studentID, Conn: c}
		hub.Register(client)
		defer hub.Unregister(client)

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				if websocketcontrib.IsUnexpectedCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseNormalClosure) {
					log.Printf("WebSocket read error for student %d: %v", studentID, err)
				}
				return
			}
		}
	})
}

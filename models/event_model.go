package models

import "time"

const (
	EventApplicationAccepted = "application.accepted"
	EventApplicationRejected = "application.rejected"
	EventContractCompleted   = "contract.completed"
)

// Event is pushed to a logged-in student's open browser tabs.
type Event struct {
	Type    string    `json:"type"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

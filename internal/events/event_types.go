package events

import (
	"time"

	"github.com/spec-kit/civic-voice/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventIssueReported  EventType = "issue_reported"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID   string `json:"user_id"`
	PublicID string `json:"public_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// IssueReportedPayload payload.
type IssueReportedPayload struct {
	IssueID  string             `json:"issue_id"`
	Title    string             `json:"title"`
	Category string             `json:"category"`
	Status   domain.IssueStatus `json:"status"`
}

package events

import (
	"time"

	"github.com/spec-kit/newsletter-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSubscriberRegistered    EventType = "subscriber_registered"
	EventConfirmationEmailFailed EventType = "confirmation_email_failed"
)

// Event represents a subscription lifecycle event emitted by services.
type Event struct {
	ID           string      `json:"id"`
	Type         EventType   `json:"type"`
	SubscriberID string      `json:"subscriber_id"`
	Timestamp    time.Time   `json:"timestamp"`
	Payload      interface{} `json:"payload"`
}

// SubscriptionPayload payload.
type SubscriptionPayload struct {
	Status domain.SubscriptionStatus `json:"status"`
	Reason string                    `json:"reason,omitempty"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the lifecycle state of a subscriber row.
type SubscriptionStatus string

const (
	SubscriptionStatusPendingConfirmation SubscriptionStatus = "pending_confirmation"
)

// NewSubscriber is a registration request that passed validation.
type NewSubscriber struct {
	Email SubscriberEmail
	Name  SubscriberName
}

// ParseNewSubscriber validates the name first, then the email.
func ParseNewSubscriber(name, email string) (NewSubscriber, error) {
	parsedName, err := ParseSubscriberName(name)
	if err != nil {
		return NewSubscriber{}, err
	}
	parsedEmail, err := ParseSubscriberEmail(email)
	if err != nil {
		return NewSubscriber{}, err
	}
	return NewSubscriber{Email: parsedEmail, Name: parsedName}, nil
}

// Subscriber is the persisted projection of a NewSubscriber.
type Subscriber struct {
	ID           uuid.UUID
	Email        string
	Name         string
	SubscribedAt time.Time
	Status       SubscriptionStatus
}

// SubscriptionToken binds a confirmation token to its subscriber.
type SubscriptionToken struct {
	Token        string
	SubscriberID uuid.UUID
}

package repository

import (
	"context"

	"github.com/spec-kit/newsletter-service/internal/domain"
)

// SubscriberRepository writes subscriber rows inside a caller-owned transaction.
type SubscriberRepository interface {
	Insert(ctx context.Context, tx Tx, sub *domain.Subscriber) error
}

type subscriberRepository struct{}

// NewSubscriberRepository returns a Postgres-backed implementation.
func NewSubscriberRepository() SubscriberRepository {
	return &subscriberRepository{}
}

func (r *subscriberRepository) Insert(ctx context.Context, tx Tx, sub *domain.Subscriber) error {
	const query = `
        INSERT INTO subscriptions (id, email, name, subscribed_at, status)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query,
		sub.ID,
		sub.Email,
		sub.Name,
		sub.SubscribedAt,
		string(sub.Status),
	)
	return err
}

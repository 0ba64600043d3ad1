package repository

import (
	"context"

	"github.com/spec-kit/newsletter-service/internal/domain"
)

// SubscriptionTokenRepository writes confirmation tokens inside a caller-owned transaction.
type SubscriptionTokenRepository interface {
	Insert(ctx context.Context, tx Tx, token domain.SubscriptionToken) error
}

type subscriptionTokenRepository struct{}

// NewSubscriptionTokenRepository constructs repository.
func NewSubscriptionTokenRepository() SubscriptionTokenRepository {
	return &subscriptionTokenRepository{}
}

func (r *subscriptionTokenRepository) Insert(ctx context.Context, tx Tx, token domain.SubscriptionToken) error {
	const query = `
        INSERT INTO subscription_tokens (subscription_token, subscriber_id)
        VALUES ($1, $2)`
	_, err := tx.Exec(ctx, query, token.Token, token.SubscriberID)
	return err
}

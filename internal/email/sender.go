package email

import (
	"context"

	"github.com/spec-kit/newsletter-service/internal/domain"
)

// Sender delivers a single message. Implementations must be safe for concurrent use.
type Sender interface {
	SendEmail(ctx context.Context, recipient domain.SubscriberEmail, subject, htmlBody, textBody string) error
}

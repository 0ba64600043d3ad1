package email

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/newsletter-service/internal/domain"
	"github.com/spec-kit/newsletter-service/internal/observability"
)

// LogSender records messages in the log instead of delivering them. It is
// used when no SES credentials are configured.
type LogSender struct {
	logger *zap.Logger
	from   string
}

// NewLogSender creates the sender.
func NewLogSender(logger *zap.Logger, from string) *LogSender {
	return &LogSender{logger: logger, from: from}
}

func (s *LogSender) SendEmail(_ context.Context, recipient domain.SubscriberEmail, subject, _, textBody string) error {
	s.logger.Info("email not delivered; no transport configured",
		zap.String("from", s.from),
		zap.String("to", observability.RedactEmail(recipient.String())),
		zap.String("subject", subject),
		zap.Int("text_bytes", len(textBody)))
	return nil
}

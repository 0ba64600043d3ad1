package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/newsletter-service/internal/events"
	"github.com/spec-kit/newsletter-service/internal/observability"
)

// NotificationService reacts to subscription events with logs and metrics.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventSubscriberRegistered, n.handleSubscriberRegistered)
	n.dispatcher.Subscribe(events.EventConfirmationEmailFailed, n.handleConfirmationEmailFailed)
}

func (n *NotificationService) handleSubscriberRegistered(_ context.Context, event events.Event) error {
	n.metrics.RecordSubscriptionRegistered()
	n.metrics.RecordConfirmationEmail("sent")
	n.logger.Info("SubscriberRegistered",
		zap.String("event_id", event.ID),
		zap.String("subscriber_id", event.SubscriberID))
	return nil
}

// The registration is committed even though the email never left, so it
// still counts as registered and not as a failed subscription.
func (n *NotificationService) handleConfirmationEmailFailed(_ context.Context, event events.Event) error {
	n.metrics.RecordSubscriptionRegistered()
	n.metrics.RecordConfirmationEmail("failed")
	n.logger.Warn("ConfirmationEmailFailed",
		zap.String("event_id", event.ID),
		zap.String("subscriber_id", event.SubscriberID),
		zap.Any("payload", event.Payload))
	return nil
}

package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/newsletter-service/internal/api/dto"
	"github.com/spec-kit/newsletter-service/internal/domain"
	"github.com/spec-kit/newsletter-service/internal/observability"
	"github.com/spec-kit/newsletter-service/internal/service"
	apperrors "github.com/spec-kit/newsletter-service/pkg/util"
)

// Subscriber registers new newsletter subscribers.
type Subscriber interface {
	Subscribe(ctx context.Context, name, email string) (*domain.Subscriber, error)
}

// SubscriptionsHandler exposes the subscription form endpoint.
type SubscriptionsHandler struct {
	subscriptions Subscriber
	metrics       *observability.Metrics
}

// NewSubscriptionsHandler constructs handler.
func NewSubscriptionsHandler(subscriptions Subscriber, metrics *observability.Metrics) *SubscriptionsHandler {
	return &SubscriptionsHandler{subscriptions: subscriptions, metrics: metrics}
}

// Subscribe handles POST /subscriptions.
func (h *SubscriptionsHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		h.metrics.RecordSubscriptionFailed(string(service.KindValidation))
		return apperrors.NewValidationError("invalid payload", nil)
	}

	sub, err := h.subscriptions.Subscribe(c.UserContext(), req.Name, req.Email)
	if err != nil {
		// A send failure leaves the subscriber committed; the notification
		// handlers count it under confirmation_emails_total instead.
		var serr *service.SubscribeError
		if errors.As(err, &serr) && serr.Kind != service.KindSendEmail {
			h.metrics.RecordSubscriptionFailed(string(serr.Kind))
		}
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.SubscribeResponse{
			Status:       string(sub.Status),
			SubscribedAt: sub.SubscribedAt,
		},
	})
}

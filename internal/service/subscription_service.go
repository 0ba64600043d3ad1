package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/newsletter-service/internal/domain"
	"github.com/spec-kit/newsletter-service/internal/email"
	"github.com/spec-kit/newsletter-service/internal/events"
	"github.com/spec-kit/newsletter-service/internal/observability"
	"github.com/spec-kit/newsletter-service/internal/repository"
)

// SubscriptionService coordinates the subscription workflow.
type SubscriptionService struct {
	db          repository.TxBeginner
	subscribers repository.SubscriberRepository
	tokens      repository.SubscriptionTokenRepository
	tokenGen    TokenGenerator
	sender      email.Sender
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	baseURL     string
	now         func() time.Time
}

// SubscriptionDependencies bundles collaborators for the subscription service.
type SubscriptionDependencies struct {
	DB             repository.TxBeginner
	SubscriberRepo repository.SubscriberRepository
	TokenRepo      repository.SubscriptionTokenRepository
	TokenGenerator TokenGenerator
	Sender         email.Sender
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
	BaseURL        string
}

// NewSubscriptionService constructs the service.
func NewSubscriptionService(deps SubscriptionDependencies) *SubscriptionService {
	tokenGen := deps.TokenGenerator
	if tokenGen == nil {
		tokenGen = NewRandomTokenGenerator()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubscriptionService{
		db:          deps.DB,
		subscribers: deps.SubscriberRepo,
		tokens:      deps.TokenRepo,
		tokenGen:    tokenGen,
		sender:      deps.Sender,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
		baseURL:     deps.BaseURL,
		now:         time.Now,
	}
}

// Subscribe validates the raw form fields, registers the subscriber and sends
// the confirmation email. A send failure is returned, but the registration
// stays committed.
func (s *SubscriptionService) Subscribe(ctx context.Context, name, emailAddr string) (*domain.Subscriber, error) {
	newSub, err := domain.ParseNewSubscriber(name, emailAddr)
	if err != nil {
		return nil, NewValidationError(err)
	}

	sub, token, err := s.Register(ctx, newSub)
	if err != nil {
		return nil, err
	}

	if err := SendConfirmationEmail(ctx, s.sender, newSub, s.baseURL, token.Token); err != nil {
		s.publish(ctx, events.EventConfirmationEmailFailed, sub, err.Error())
		return sub, newSubscribeError(KindSendEmail, err)
	}

	s.publish(ctx, events.EventSubscriberRegistered, sub, "")
	return sub, nil
}

// Register stores the subscriber and its confirmation token in one
// transaction. Either both rows are committed or neither is.
func (s *SubscriptionService) Register(ctx context.Context, newSub domain.NewSubscriber) (*domain.Subscriber, domain.SubscriptionToken, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, domain.SubscriptionToken{}, newSubscribeError(KindPool, err)
	}
	defer func() {
		// No-op once the transaction has been committed.
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	sub := &domain.Subscriber{
		ID:           uuid.New(),
		Email:        newSub.Email.String(),
		Name:         newSub.Name.String(),
		SubscribedAt: s.now().UTC(),
		Status:       domain.SubscriptionStatusPendingConfirmation,
	}
	if err := s.subscribers.Insert(ctx, tx, sub); err != nil {
		s.logger.Error("failed to insert subscriber", zap.Error(err))
		return nil, domain.SubscriptionToken{}, newSubscribeError(KindInsertSubscriber, err)
	}

	token := domain.SubscriptionToken{
		Token:        s.tokenGen.Generate(),
		SubscriberID: sub.ID,
	}
	if err := s.tokens.Insert(ctx, tx, token); err != nil {
		s.logger.Error("failed to store subscription token", zap.Error(err))
		return nil, domain.SubscriptionToken{}, newSubscribeError(KindStoreToken, &StoreTokenError{Err: err})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.SubscriptionToken{}, newSubscribeError(KindTransactionCommit, err)
	}

	s.logger.Info("subscriber registered",
		zap.String("subscriber_id", sub.ID.String()),
		zap.String("email", observability.RedactEmail(sub.Email)))
	return sub, token, nil
}

func (s *SubscriptionService) publish(ctx context.Context, eventType events.EventType, sub *domain.Subscriber, reason string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:           uuid.NewString(),
		Type:         eventType,
		SubscriberID: sub.ID.String(),
		Timestamp:    s.now().UTC(),
		Payload: events.SubscriptionPayload{
			Status: sub.Status,
			Reason: reason,
		},
	})
}

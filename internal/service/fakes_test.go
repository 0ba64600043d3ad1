package service

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/newsletter-service/internal/domain"
	"github.com/spec-kit/newsletter-service/internal/repository"
)

// fakeDB models a store where rows written inside a transaction only become
// visible once it commits.
type fakeDB struct {
	mu          sync.Mutex
	beginErr    error
	commitErr   error
	subscribers []domain.Subscriber
	tokens      []domain.SubscriptionToken
	rollbacks   int
	txs         []*fakeTx
}

type fakeTx struct {
	db          *fakeDB
	subscribers []domain.Subscriber
	tokens      []domain.SubscriptionToken
	done        bool
}

func (db *fakeDB) Begin(ctx context.Context) (repository.Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx := &fakeTx{db: db}
	db.txs = append(db.txs, tx)
	return tx, nil
}

func (db *fakeDB) visibleSubscribers() []domain.Subscriber {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]domain.Subscriber(nil), db.subscribers...)
}

func (db *fakeDB) visibleTokens() []domain.SubscriptionToken {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]domain.SubscriptionToken(nil), db.tokens...)
}

func (tx *fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("fakeTx: Exec not supported")
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	if tx.done {
		return errors.New("tx closed")
	}
	tx.done = true
	if tx.db.commitErr != nil {
		return tx.db.commitErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tx.db.mu.Lock()
	defer tx.db.mu.Unlock()
	tx.db.subscribers = append(tx.db.subscribers, tx.subscribers...)
	tx.db.tokens = append(tx.db.tokens, tx.tokens...)
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.done {
		return nil
	}
	tx.done = true
	tx.db.mu.Lock()
	tx.db.rollbacks++
	tx.db.mu.Unlock()
	return nil
}

type fakeSubscriberRepo struct {
	err error
}

func (r *fakeSubscriberRepo) Insert(_ context.Context, tx repository.Tx, sub *domain.Subscriber) error {
	if r.err != nil {
		return r.err
	}
	ftx := tx.(*fakeTx)
	ftx.subscribers = append(ftx.subscribers, *sub)
	return nil
}

type fakeTokenRepo struct {
	err error
}

func (r *fakeTokenRepo) Insert(_ context.Context, tx repository.Tx, token domain.SubscriptionToken) error {
	if r.err != nil {
		return r.err
	}
	ftx := tx.(*fakeTx)
	ftx.tokens = append(ftx.tokens, token)
	return nil
}

type sentEmail struct {
	recipient string
	subject   string
	html      string
	text      string
}

type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []sentEmail
}

func (s *fakeSender) SendEmail(_ context.Context, recipient domain.SubscriberEmail, subject, htmlBody, textBody string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentEmail{recipient: recipient.String(), subject: subject, html: htmlBody, text: textBody})
	return nil
}

type fixedTokenGenerator string

func (g fixedTokenGenerator) Generate() string {
	return string(g)
}

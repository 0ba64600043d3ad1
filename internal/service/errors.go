package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind enumerates the ways a subscription request can fail.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindPool              ErrorKind = "pool"
	KindInsertSubscriber  ErrorKind = "insert_subscriber"
	KindStoreToken        ErrorKind = "store_token"
	KindTransactionCommit ErrorKind = "transaction_commit"
	KindSendEmail         ErrorKind = "send_email"
)

var kindMessages = map[ErrorKind]string{
	KindPool:              "Failed to acquire a Postgres connection from the pool.",
	KindInsertSubscriber:  "Failed to insert new subscriber in the database.",
	KindStoreToken:        "Failed to store the confirmation token for a new subscriber.",
	KindTransactionCommit: "Failed to commit SQL transaction to store a new subscriber.",
	KindSendEmail:         "Failed to send a confirmation email.",
}

// SubscribeError is returned by every step of the subscription workflow.
type SubscribeError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *SubscribeError) Error() string {
	return e.Message
}

func (e *SubscribeError) Unwrap() error {
	return e.Err
}

// StatusCode maps the kind onto the HTTP status class reported to clients.
func (e *SubscribeError) StatusCode() int {
	if e.Kind == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// NewValidationError wraps a parse failure. The validation error is the root
// cause, so the chain stops here.
func NewValidationError(err error) *SubscribeError {
	return &SubscribeError{Kind: KindValidation, Message: err.Error()}
}

func newSubscribeError(kind ErrorKind, err error) *SubscribeError {
	return &SubscribeError{Kind: kind, Message: kindMessages[kind], Err: err}
}

// StoreTokenError wraps a database failure while persisting a confirmation token.
type StoreTokenError struct {
	Err error
}

func (e *StoreTokenError) Error() string {
	return "A database error was encountered while trying to store a subscription token."
}

func (e *StoreTokenError) Unwrap() error {
	return e.Err
}

// ErrorChain renders err followed by each wrapped cause, outermost first.
func ErrorChain(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(&b, "\nCaused by:\n\t%s", cause)
	}
	return b.String()
}

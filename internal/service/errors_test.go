package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/newsletter-service/internal/domain"
)

func TestSubscribeError_StatusCode(t *testing.T) {
	cause := errors.New("boom")
	assert.Equal(t, http.StatusBadRequest, NewValidationError(&domain.ValidationError{Field: "name"}).StatusCode())
	for _, kind := range []ErrorKind{KindPool, KindInsertSubscriber, KindStoreToken, KindTransactionCommit, KindSendEmail} {
		err := newSubscribeError(kind, cause)
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode(), kind)
		assert.NotEmpty(t, err.Error(), kind)
		assert.NotContains(t, err.Error(), "boom", kind)
	}
}

func TestErrorChain(t *testing.T) {
	assert.Empty(t, ErrorChain(nil))

	err := newSubscribeError(KindPool, errors.New("too many clients"))
	assert.Equal(t,
		"Failed to acquire a Postgres connection from the pool.\n\nCaused by:\n\ttoo many clients",
		ErrorChain(err))

	verr := NewValidationError(&domain.ValidationError{Field: "email", Value: "nope"})
	assert.Equal(t, "\"nope\" is not a valid subscriber email.\n", ErrorChain(verr))
}

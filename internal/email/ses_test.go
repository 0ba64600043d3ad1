package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/newsletter-service/internal/config"
	"github.com/spec-kit/newsletter-service/internal/domain"
)

type sesRequest struct {
	FromEmailAddress string
	Destination      struct {
		ToAddresses []string
	}
	Content struct {
		Simple struct {
			Subject struct{ Data string }
			Body    struct {
				Html struct{ Data string }
				Text struct{ Data string }
			}
		}
	}
}

func newTestSender(t *testing.T, handler http.HandlerFunc) *SESSender {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sender, err := NewSESSender(context.Background(), config.EmailConfig{
		Sender:              "newsletter@example.com",
		SESRegion:           "eu-west-1",
		SESAccessKeyID:      "test",
		SESSecretAccessKey:  "test",
		SESEndpoint:         srv.URL,
		TimeoutMilliseconds: 2000,
	})
	require.NoError(t, err)
	return sender
}

func TestSESSender_SendEmail(t *testing.T) {
	var got sesRequest
	var calls int
	sender := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/email/outbound-emails", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"MessageId":"msg-1"}`))
	})

	recipient, err := domain.ParseSubscriberEmail("ursula_le_guin@gmail.com")
	require.NoError(t, err)

	err = sender.SendEmail(context.Background(), recipient, "Welcome!", "<p>hi</p>", "hi")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "newsletter@example.com", got.FromEmailAddress)
	assert.Equal(t, []string{"ursula_le_guin@gmail.com"}, got.Destination.ToAddresses)
	assert.Equal(t, "Welcome!", got.Content.Simple.Subject.Data)
	assert.Equal(t, "<p>hi</p>", got.Content.Simple.Body.Html.Data)
	assert.Equal(t, "hi", got.Content.Simple.Body.Text.Data)
}

func TestSESSender_SendEmailFailure(t *testing.T) {
	var calls int
	sender := newTestSender(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Amzn-ErrorType", "MessageRejected")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Email address is not verified."}`))
	})

	recipient, err := domain.ParseSubscriberEmail("ursula_le_guin@gmail.com")
	require.NoError(t, err)

	err = sender.SendEmail(context.Background(), recipient, "Welcome!", "<p>hi</p>", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MessageRejected")
	assert.Equal(t, 1, calls)
}

func TestNewSESSender_RejectsInvalidSender(t *testing.T) {
	_, err := NewSESSender(context.Background(), config.EmailConfig{Sender: "not-an-email", SESRegion: "eu-west-1"})
	require.Error(t, err)
}

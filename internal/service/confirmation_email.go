package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/newsletter-service/internal/domain"
	"github.com/spec-kit/newsletter-service/internal/email"
)

const (
	confirmationPath    = "/subscriptions/confirm"
	confirmationSubject = "Welcome!"
)

// ConfirmationLink builds the link a subscriber follows to confirm.
func ConfirmationLink(baseURL, token string) string {
	return fmt.Sprintf("%s%s?subscription_token=%s", baseURL, confirmationPath, token)
}

// SendConfirmationEmail mails the confirmation link to the new subscriber.
func SendConfirmationEmail(ctx context.Context, sender email.Sender, sub domain.NewSubscriber, baseURL, token string) error {
	link := ConfirmationLink(baseURL, token)
	htmlBody := fmt.Sprintf(
		"Welcome to our newsletter!<br />Click <a href=\"%s\">here</a> to confirm your subscription.",
		link,
	)
	textBody := fmt.Sprintf(
		"Welcome to our newsletter!\nVisit %s to confirm your subscription.",
		link,
	)
	return sender.SendEmail(ctx, sub.Email, confirmationSubject, htmlBody, textBody)
}

package email

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/spec-kit/newsletter-service/internal/config"
	"github.com/spec-kit/newsletter-service/internal/domain"
)

// SESSender sends emails via AWS SES using the SDK v2.
type SESSender struct {
	client  *sesv2.Client
	sender  domain.SubscriberEmail
	timeout time.Duration
}

// NewSESSender builds an SES client from static credentials. The SDK's own
// retries are disabled; a failed send is reported to the caller as is.
func NewSESSender(ctx context.Context, cfg config.EmailConfig) (*SESSender, error) {
	sender, err := domain.ParseSubscriberEmail(cfg.Sender)
	if err != nil {
		return nil, fmt.Errorf("invalid EMAIL_SENDER: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.SESRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.SESAccessKeyID, cfg.SESSecretAccessKey, "")),
		awsconfig.WithRetryMaxAttempts(1),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if cfg.SESEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.SESEndpoint)
		}
	})

	return &SESSender{client: client, sender: sender, timeout: cfg.Timeout()}, nil
}

// SendEmail delivers an HTML and plain-text message to recipient.
func (s *SESSender) SendEmail(ctx context.Context, recipient domain.SubscriberEmail, subject, htmlBody, textBody string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.sender.String()),
		Destination:      &types.Destination{ToAddresses: []string{recipient.String()}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(textBody), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	return nil
}

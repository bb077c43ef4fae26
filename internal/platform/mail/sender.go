package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/phrazzld/oblivion-api/internal/config"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
)

// ErrSendFailed wraps any delivery failure reported by SES.
var ErrSendFailed = errors.New("failed to send email")

// CodeSender delivers a verification code to an email address.
type CodeSender interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}

// sesAPI is the subset of the SES v2 client used here.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender implements CodeSender with Amazon SES v2.
type SESSender struct {
	client   sesAPI
	from     string
	fromName string
	enabled  bool
	logger   *slog.Logger
}

var _ CodeSender = (*SESSender)(nil)

// NewSESSender builds a sender from cfg. An empty cfg.FromEmail yields a
// disabled sender and no AWS configuration is loaded.
func NewSESSender(ctx context.Context, cfg config.MailConfig, log *slog.Logger) (*SESSender, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "mail_sender"))

	if cfg.FromEmail == "" {
		log.Info("email delivery disabled: no from address configured")
		return &SESSender{logger: log}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Info("email delivery enabled", slog.String("region", cfg.AWSRegion))
	return newSESSenderWithClient(sesv2.NewFromConfig(awsCfg), cfg, log), nil
}

func newSESSenderWithClient(client sesAPI, cfg config.MailConfig, log *slog.Logger) *SESSender {
	if log == nil {
		log = slog.Default()
	}
	return &SESSender{
		client:   client,
		from:     cfg.FromEmail,
		fromName: cfg.FromName,
		enabled:  true,
		logger:   log,
	}
}

// IsEnabled reports whether codes are actually delivered.
func (s *SESSender) IsEnabled() bool {
	return s.enabled
}

// SendVerificationCode implements CodeSender.
func (s *SESSender) SendVerificationCode(ctx context.Context, email, code string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !s.enabled {
		log.Info("skipping verification email (delivery disabled)")
		log.Debug("undelivered verification code",
			slog.String("email", email),
			slog.String("code", code))
		return nil
	}

	text, html, err := renderVerification(code)
	if err != nil {
		return err
	}

	from := s.from
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.from)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(verificationSubject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(text), Charset: aws.String("UTF-8")},
					Html: &types.Content{Data: aws.String(html), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		log.Error("SES SendEmail failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	attrs := []any{}
	if out != nil && out.MessageId != nil {
		attrs = append(attrs, slog.String("message_id", *out.MessageId))
	}
	log.Info("verification email sent", attrs...)
	return nil
}

package mailer

import (
	"context"
	"fmt"

	"github.com/aitbenali/go-office-board/internal/config"
	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/wneessen/go-mail"
)

// smtpSender is the production [Sender] backed by an authenticated SMTP
// account.
type smtpSender struct {
	client *mail.Client
	from   string
	logger *logger.Logger
}

// NewSMTPSender constructs a [Sender] that delivers verification codes
// through the SMTP account described by cfg. The underlying client is safe
// for concurrent use; each Send dials, transmits, and closes within the
// request's context.
func NewSMTPSender(cfg config.Mail, log *logger.Logger) (Sender, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	log.Debug().Str("host", cfg.Host).Str("from", cfg.From).Msg("smtp sender created")

	return &smtpSender{
		client: client,
		from:   cfg.From,
		logger: log,
	}, nil
}

// Send implements [Sender]. The body names the code and its five-minute
// validity window.
func (s *smtpSender) Send(ctx context.Context, to, code string) error {
	log := logger.FromContext(ctx)

	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("error setting sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("error setting recipient address: %w", err)
	}

	msg.Subject("Your Verification Code")
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(
		"<p>Your verification code is: <strong>%s</strong></p><p>This code will expire in 5 minutes.</p>",
		code,
	))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("to", to).Msg("verification email delivery failed")
		return fmt.Errorf("error sending verification email: %w", err)
	}

	log.Debug().Str("to", to).Msg("verification email sent")

	return nil
}

// Package mail delivers outbound transactional messages over SMTP.
// The only message the application sends today is the password-reset code.
package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/jovanamartatilova/librareads/internal/config"
	"github.com/jovanamartatilova/librareads/internal/logger"
	gomail "github.com/wneessen/go-mail"
)

// Mailer is the outbound mail collaborator used by the password-reset flow.
type Mailer interface {
	// SendResetCode delivers the one-time reset code to the given address.
	SendResetCode(ctx context.Context, to string, username string, code string, ttl time.Duration) error
}

// SMTPMailer implements [Mailer] over an authenticated SMTP connection
// using wneessen/go-mail.
type SMTPMailer struct {
	client   *gomail.Client
	from     string
	fromName string
	logger   *logger.Logger
}

// NewSMTPMailer constructs an [SMTPMailer] from the given mail settings.
// The SMTP connection itself is dialed lazily, per message.
func NewSMTPMailer(cfg config.Mail, log *logger.Logger) (*SMTPMailer, error) {
	log.Debug().Str("host", cfg.Host).Int("port", cfg.Port).Msg("creating SMTP mailer")

	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		log.Err(err).Str("func", "NewSMTPMailer").Msg("error creating SMTP client")
		return nil, fmt.Errorf("error creating SMTP client: %w", err)
	}

	return &SMTPMailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
		logger:   log,
	}, nil
}

// SendResetCode implements [Mailer]. The message carries the code both as
// plain text and as a minimal HTML alternative.
func (m *SMTPMailer) SendResetCode(ctx context.Context, to string, username string, code string, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return fmt.Errorf("error setting mail sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("error setting mail recipient: %w", err)
	}

	msg.Subject("Your LibraReads password reset code")
	msg.SetBodyString(gomail.TypeTextPlain, plainBody(username, code, ttl))
	msg.AddAlternativeString(gomail.TypeTextHTML, htmlBody(username, code, ttl))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("func", "*SMTPMailer.SendResetCode").Msg("error sending reset code mail")
		return fmt.Errorf("error sending reset code mail: %w", err)
	}

	log.Info().Str("func", "*SMTPMailer.SendResetCode").Msg("reset code mail sent")
	return nil
}

func plainBody(username, code string, ttl time.Duration) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour password reset code is: %s\n\nThe code expires in %s. If you did not request a reset, ignore this message.\n",
		username, code, ttl,
	)
}

func htmlBody(username, code string, ttl time.Duration) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p><p>Your password reset code is: <strong>%s</strong></p><p>The code expires in %s. If you did not request a reset, ignore this message.</p>`,
		username, code, ttl,
	)
}

package connector

import (
	"context"
	"fmt"
	"text/template"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"
	"github.com/wneessen/go-mail"
)

var verificationTemplate = template.Must(template.New("verification").Parse(
	`Hi {{.Username}},

welcome to Gotta Guess'Em All! Your verification code is

    {{.Code}}

Enter it together with your email address to activate your account.
`))

type verificationData struct {
	Username string
	Code     string
}

// smtpMailer sends verification codes through an SMTP relay
type smtpMailer struct {
	settings *config.MailSettings
	logger   logger.Logger
}

// NewVerificationMailer returns an SMTP mailer, or a mailer that only logs
// the code when mail delivery is disabled.
func NewVerificationMailer(settings *config.MailSettings, logger logger.Logger) (accounts.VerificationMailer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return &logMailer{logger: logger}, nil
	}
	return &smtpMailer{settings: settings, logger: logger}, nil
}

func (m *smtpMailer) buildMessage(email, username, code string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.settings.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(m.settings.VerificationSubject)

	if err := msg.SetBodyTextTemplate(verificationTemplate, verificationData{Username: username, Code: code}); err != nil {
		return nil, fmt.Errorf("failed to render verification email: %w", err)
	}
	return msg, nil
}

func (m *smtpMailer) SendVerificationCode(ctx context.Context, email, username, code string) error {
	msg, err := m.buildMessage(email, username, code)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(m.settings.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.settings.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.settings.Username),
			mail.WithPassword(m.settings.Password),
		)
	}

	client, err := mail.NewClient(m.settings.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	m.logger.Info("Verification email sent to ", email)
	return nil
}

// logMailer stands in for SMTP in development setups
type logMailer struct {
	logger logger.Logger
}

func (m *logMailer) SendVerificationCode(_ context.Context, email, username, code string) error {
	m.logger.Info("Mail delivery disabled, verification code for ", username, " <", email, ">: ", code)
	return nil
}

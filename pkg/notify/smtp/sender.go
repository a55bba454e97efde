// Package smtp delivers notify messages by email.
package smtp

import (
	"context"
	"fmt"
	"privacymon/pkg/notify"
	"time"

	"github.com/wneessen/go-mail"
)

// Options holds the SMTP relay settings.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
	Timeout  time.Duration
}

// Configured reports whether enough settings are present to send mail.
func (o Options) Configured() bool {
	return o.Host != "" && o.Username != "" && o.Password != "" && o.To != ""
}

// Sender sends each message as a multipart email over an authenticated
// STARTTLS connection.
type Sender struct {
	options Options
}

var _ notify.Sender = (*Sender)(nil)

// New creates a Sender. From defaults to Username.
func New(options Options) *Sender {
	if options.From == "" {
		options.From = options.Username
	}
	if options.Port == 0 {
		options.Port = mail.DefaultPortTLS
	}

	return &Sender{options: options}
}

func (s *Sender) message(msg notify.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.options.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(s.options.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	return m, nil
}

func (s *Sender) Send(ctx context.Context, msg notify.Message) error {
	m, err := s.message(msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.options.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.options.Username),
		mail.WithPassword(s.options.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if s.options.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.options.Timeout))
	}

	client, err := mail.NewClient(s.options.Host, opts...)
	if err != nil {
		return fmt.Errorf("could not create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("could not send email: %w", err)
	}

	return nil
}

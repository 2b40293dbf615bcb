// Package mail relays contact form submissions over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Mailer sends contact submissions to the configured destination address
// using STARTTLS and LOGIN authentication. The zero value is an
// unconfigured mailer whose Send always fails; callers should check
// Configured first.
type Mailer struct {
	host string
	port int
	user string
	pass string
	to   string
}

func New(host string, port int, user, pass, to string) *Mailer {
	return &Mailer{
		host: host,
		port: port,
		user: user,
		pass: pass,
		to:   to,
	}
}

// Configured reports whether all transport settings are present.
func (m *Mailer) Configured() bool {
	return m.host != "" && m.user != "" && m.pass != "" && m.to != ""
}

// Send relays one submission. The caller is expected to have validated
// the fields already.
func (m *Mailer) Send(ctx context.Context, name, email, message string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.user); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	msg.Subject(fmt.Sprintf("Contact Form: Message from %s", name))
	msg.SetBodyString(gomail.TypeTextPlain, Body(name, email, message))

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthLogin),
		gomail.WithUsername(m.user),
		gomail.WithPassword(m.pass),
	)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending contact mail: %w", err)
	}
	return nil
}

// Body composes the plain-text message embedding the submission.
func Body(name, email, message string) string {
	return fmt.Sprintf(`New contact form submission:

Name: %s
Email: %s

Message:
%s
`, name, email, message)
}

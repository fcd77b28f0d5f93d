package mail

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/sakher/perfumes-backend/internal/cart"
	"github.com/sakher/perfumes-backend/internal/config"
)

// SMTPSender sends order emails over SMTP. It is built once at startup from
// configuration and reused across requests.
type SMTPSender struct {
	client *gomail.Client
	from   string
	admin  string
}

func NewSMTPSender(cfg config.Config) (*SMTPSender, error) {
	if !cfg.HasSMTP() {
		return nil, errors.New("smtp configuration is incomplete")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTPUser),
			gomail.WithPassword(cfg.SMTPPass),
		)
	}

	client, err := gomail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("building smtp client: %w", err)
	}

	return &SMTPSender{
		client: client,
		from:   cfg.EmailFrom,
		admin:  cfg.AdminEmail,
	}, nil
}

// SendOrderEmails attempts the customer confirmation and the operator
// notification independently. A customer-email failure does not stop the
// operator email; errors from both attempts are joined.
func (s *SMTPSender) SendOrderEmails(ctx context.Context, customerName, customerEmail string, items []cart.Item) error {
	customer, err := RenderCustomerEmail(customerName, customerEmail, items)
	if err != nil {
		return fmt.Errorf("rendering customer email: %w", err)
	}
	admin, err := RenderAdminEmail(customerName, customerEmail, s.admin, items)
	if err != nil {
		return fmt.Errorf("rendering admin email: %w", err)
	}

	return sendAll(ctx, s.send, customer, admin)
}

// sendAll attempts every message even when an earlier one fails, per the
// independent non-fatal failure policy. Errors are joined.
func sendAll(ctx context.Context, send func(context.Context, Message) error, msgs ...Message) error {
	var errs []error
	for _, msg := range msgs {
		if err := send(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *SMTPSender) send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("setting recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("sending %q to %s: %w", msg.Subject, msg.To, err)
	}
	return nil
}

package mail

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sakher/perfumes-backend/internal/cart"
)

// LogSender writes rendered emails to the log instead of delivering them.
// Used by cmd/api and anywhere SMTP is not configured.
type LogSender struct {
	log *logrus.Logger
}

func NewLogSender(log *logrus.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendOrderEmails(_ context.Context, customerName, customerEmail string, items []cart.Item) error {
	customer, err := RenderCustomerEmail(customerName, customerEmail, items)
	if err != nil {
		return err
	}
	admin, err := RenderAdminEmail(customerName, customerEmail, "operator@localhost", items)
	if err != nil {
		return err
	}

	for _, msg := range []Message{customer, admin} {
		s.log.WithFields(logrus.Fields{
			"to":      msg.To,
			"subject": msg.Subject,
		}).Info("order email (not sent: log sender)")
	}
	return nil
}

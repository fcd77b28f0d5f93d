// Package mail renders and sends the two order notification emails: a
// confirmation to the customer and a copy to the shop operator. Sending is
// best-effort by design; the order flow treats failures as non-fatal.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/sakher/perfumes-backend/internal/cart"
)

// Sender delivers both order notification emails. Implementations must
// attempt the operator email even when the customer email fails; the
// returned error aggregates whatever went wrong.
type Sender interface {
	SendOrderEmails(ctx context.Context, customerName, customerEmail string, items []cart.Item) error
}

// Message is a rendered email ready for transport.
type Message struct {
	To      string
	Subject string
	HTML    string
}

const customerTemplate = `<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #CBA135;">Thank you for your order!</h1>
  <p>Dear {{.CustomerName}},</p>
  <p>We have received your order and are processing it. Here are your order details:</p>
  <div style="background: #f9f9f9; padding: 20px; border-radius: 8px;">
    <h3>Order Summary:</h3>
    <div style="font-family: monospace; white-space: pre-line;">{{range .Lines}}- {{.Name}} (Qty: {{.Quantity}}) - {{.Amount}} kr
{{end}}</div>
    <hr>
    <strong>Total: {{.Total}} kr</strong>
  </div>
  <p>We will contact you soon with shipping details.</p>
  <p>Best regards,<br>Sakher Perfumes Team</p>
</div>`

const adminTemplate = `<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #CBA135;">New Order Received</h1>
  <div style="background: #f9f9f9; padding: 20px; border-radius: 8px;">
    <h3>Customer Information:</h3>
    <p><strong>Name:</strong> {{.CustomerName}}</p>
    <p><strong>Email:</strong> {{.CustomerEmail}}</p>
    <h3>Order Details:</h3>
    <div style="font-family: monospace; white-space: pre-line;">{{range .Lines}}- {{.Name}} (Qty: {{.Quantity}}) - {{.Amount}} kr
{{end}}</div>
    <hr>
    <strong>Total: {{.Total}} kr</strong>
  </div>
</div>`

var (
	customerTmpl = template.Must(template.New("customer").Parse(customerTemplate))
	adminTmpl    = template.Must(template.New("admin").Parse(adminTemplate))
)

type emailData struct {
	CustomerName  string
	CustomerEmail string
	Lines         []lineView
	Total         string
}

type lineView struct {
	Name     string
	Quantity int
	Amount   string
}

func buildData(customerName, customerEmail string, items []cart.Item) emailData {
	var total float64
	lines := make([]lineView, 0, len(items))
	for _, it := range items {
		amount := it.Price * float64(it.Quantity)
		total += amount
		lines = append(lines, lineView{
			Name:     it.Name,
			Quantity: it.Quantity,
			Amount:   fmt.Sprintf("%.2f", amount),
		})
	}
	return emailData{
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Lines:         lines,
		Total:         fmt.Sprintf("%.2f", total),
	}
}

// RenderCustomerEmail builds the customer confirmation message.
func RenderCustomerEmail(customerName, customerEmail string, items []cart.Item) (Message, error) {
	var buf bytes.Buffer
	if err := customerTmpl.Execute(&buf, buildData(customerName, customerEmail, items)); err != nil {
		return Message{}, err
	}
	return Message{
		To:      customerEmail,
		Subject: "Thank you for your order!",
		HTML:    buf.String(),
	}, nil
}

// RenderAdminEmail builds the operator notification message.
func RenderAdminEmail(customerName, customerEmail, adminEmail string, items []cart.Item) (Message, error) {
	var buf bytes.Buffer
	if err := adminTmpl.Execute(&buf, buildData(customerName, customerEmail, items)); err != nil {
		return Message{}, err
	}
	return Message{
		To:      adminEmail,
		Subject: fmt.Sprintf("New Order from %s", customerName),
		HTML:    buf.String(),
	}, nil
}

package order

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sakher/perfumes-backend/internal/cart"
	"github.com/sakher/perfumes-backend/internal/mail"
)

// SubmitRequest is a prospective order as received from the checkout form.
// Price and Quantity are pointers so that an absent value is distinguishable
// from zero; the JSON decoder leaves them nil for missing or null fields.
type SubmitRequest struct {
	CustomerName  string       `json:"customer_name"`
	CustomerEmail string       `json:"customer_email"`
	Cart          []SubmitItem `json:"cart"`
}

type SubmitItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *float64 `json:"quantity"`
	ImageURL *string  `json:"image_url,omitempty"`
}

// Service runs the order submission flow: validate, persist, notify.
type Service struct {
	repo   Repository
	sender mail.Sender
	log    *logrus.Logger
}

func NewService(repo Repository, sender mail.Sender, log *logrus.Logger) *Service {
	return &Service{repo: repo, sender: sender, log: log}
}

// Submit validates the request, persists the order and triggers the two
// notification emails. Validation fails fast with no side effects; a
// persistence failure aborts with no emails sent; a notification failure is
// logged and does not affect the result, because the order is already
// durably recorded.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (Order, error) {
	items, err := validate(req)
	if err != nil {
		return Order{}, err
	}

	created, err := s.repo.Create(Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Cart:          items,
	})
	if err != nil {
		return Order{}, fmt.Errorf("persisting order: %w", err)
	}

	if err := s.sender.SendOrderEmails(ctx, created.CustomerName, created.CustomerEmail, created.Cart); err != nil {
		s.log.WithFields(logrus.Fields{
			"order_id":       created.ID,
			"customer_email": created.CustomerEmail,
			"err":            err,
		}).Error("order notification emails failed")
	}

	return created, nil
}

// validate applies the submission rules in order; the first failing rule
// wins. It returns the cart converted to domain items.
func validate(req SubmitRequest) ([]cart.Item, error) {
	if req.CustomerName == "" {
		return nil, ErrMissingFields
	}
	if req.CustomerEmail == "" {
		return nil, ErrMissingFields
	}
	if req.Cart == nil {
		return nil, ErrMissingFields
	}
	if len(req.Cart) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]cart.Item, 0, len(req.Cart))
	for _, entry := range req.Cart {
		if entry.ID == "" || entry.Name == "" || entry.Price == nil || entry.Quantity == nil {
			return nil, ErrInvalidCartItem
		}
		items = append(items, cart.Item{
			ID:       entry.ID,
			Name:     entry.Name,
			Price:    *entry.Price,
			ImageURL: entry.ImageURL,
			Quantity: int(*entry.Quantity),
		})
	}
	return items, nil
}

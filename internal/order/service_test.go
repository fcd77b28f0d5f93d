package order

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakher/perfumes-backend/internal/cart"
)

type spyRepo struct {
	createCalls int
	failWith    error
	lastOrder   Order
}

func (r *spyRepo) Create(ord Order) (Order, error) {
	r.createCalls++
	if r.failWith != nil {
		return Order{}, r.failWith
	}
	r.lastOrder = ord
	ord.ID = "ord-1"
	ord.CreatedAt = "2026-08-28T00:00:00Z"
	return ord, nil
}

type spySender struct {
	sendCalls int
	failWith  error
	lastItems []cart.Item
}

func (s *spySender) SendOrderEmails(_ context.Context, _, _ string, items []cart.Item) error {
	s.sendCalls++
	s.lastItems = items
	return s.failWith
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func floatPtr(f float64) *float64 { return &f }

func validRequest() SubmitRequest {
	return SubmitRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Cart: []SubmitItem{
			{ID: "p1", Name: "Oud", Price: floatPtr(49.99), Quantity: floatPtr(2)},
		},
	}
}

func TestSubmit_Success(t *testing.T) {
	repo := &spyRepo{}
	sender := &spySender{}
	svc := NewService(repo, sender, newTestLogger())

	created, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "ord-1", created.ID)
	assert.Equal(t, 1, repo.createCalls, "persistence is attempted exactly once")
	assert.Equal(t, 1, sender.sendCalls, "notification is triggered after persistence")
	require.Len(t, sender.lastItems, 1)
	assert.Equal(t, 2, sender.lastItems[0].Quantity)
	assert.Equal(t, 49.99, sender.lastItems[0].Price)
}

func TestSubmit_ValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*SubmitRequest)
		wantErr error
	}{
		{"missing name", func(r *SubmitRequest) { r.CustomerName = "" }, ErrMissingFields},
		{"missing email", func(r *SubmitRequest) { r.CustomerEmail = "" }, ErrMissingFields},
		{"missing cart", func(r *SubmitRequest) { r.Cart = nil }, ErrMissingFields},
		{"empty cart", func(r *SubmitRequest) { r.Cart = []SubmitItem{} }, ErrEmptyCart},
		{"item without id", func(r *SubmitRequest) { r.Cart[0].ID = "" }, ErrInvalidCartItem},
		{"item without name", func(r *SubmitRequest) { r.Cart[0].Name = "" }, ErrInvalidCartItem},
		{"item without price", func(r *SubmitRequest) { r.Cart[0].Price = nil }, ErrInvalidCartItem},
		{"item without quantity", func(r *SubmitRequest) { r.Cart[0].Quantity = nil }, ErrInvalidCartItem},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &spyRepo{}
			sender := &spySender{}
			svc := NewService(repo, sender, newTestLogger())

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			require.ErrorIs(t, err, tc.wantErr)
			assert.True(t, IsValidationError(err))

			// validation short-circuits before any side effect
			assert.Zero(t, repo.createCalls)
			assert.Zero(t, sender.sendCalls)
		})
	}
}

func TestSubmit_FirstFailingRuleWins(t *testing.T) {
	svc := NewService(&spyRepo{}, &spySender{}, newTestLogger())

	// both the name and the cart are bad; the name rule fires first
	req := validRequest()
	req.CustomerName = ""
	req.Cart = []SubmitItem{}

	_, err := svc.Submit(context.Background(), req)
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestSubmit_PersistenceFailureSkipsNotification(t *testing.T) {
	repo := &spyRepo{failWith: errors.New("connection refused")}
	sender := &spySender{}
	svc := NewService(repo, sender, newTestLogger())

	_, err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.False(t, IsValidationError(err))

	assert.Equal(t, 1, repo.createCalls)
	assert.Zero(t, sender.sendCalls, "no emails on persistence failure")
}

func TestSubmit_NotificationFailureIsNonFatal(t *testing.T) {
	repo := &spyRepo{}
	sender := &spySender{failWith: errors.New("smtp down")}
	svc := NewService(repo, sender, newTestLogger())

	created, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err, "order is durably recorded; email failure must not re-fail the request")
	assert.Equal(t, "ord-1", created.ID)
	assert.Equal(t, 1, sender.sendCalls)
}

func TestSubmit_StoresCartSnapshotAsSubmitted(t *testing.T) {
	repo := &spyRepo{}
	svc := NewService(repo, &spySender{}, newTestLogger())

	req := validRequest()
	req.Cart = append(req.Cart, SubmitItem{ID: "p2", Name: "Amber Musk", Price: floatPtr(39.99), Quantity: floatPtr(1)})

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, repo.lastOrder.Cart, 2)
	assert.Equal(t, "p1", repo.lastOrder.Cart[0].ID)
	assert.Equal(t, "p2", repo.lastOrder.Cart[1].ID)
	assert.Equal(t, "Jane Doe", repo.lastOrder.CustomerName)
	assert.Equal(t, "jane@example.com", repo.lastOrder.CustomerEmail)
}

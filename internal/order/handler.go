package order

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the order submission endpoint.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": decodeErrorMessage(err)})
	}

	created, err := h.service.Submit(c.Context(), req)
	if err != nil {
		if IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save order"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"order_id": created.ID,
		"message":  "Order placed successfully",
	})
}

// decodeErrorMessage maps JSON decoding failures onto the validation
// vocabulary: a wrongly-typed cart field is an invalid cart item, a
// non-array cart is a missing field, anything else is a malformed body.
func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch {
		case strings.HasPrefix(typeErr.Field, "cart."):
			return ErrInvalidCartItem.Error()
		case typeErr.Field == "cart":
			return ErrMissingFields.Error()
		}
	}
	return "invalid request body"
}

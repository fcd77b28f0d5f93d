package cart

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sakher/perfumes-backend/internal/product"
)

const sessionCookie = "cart_session"

// Handler exposes the session cart over HTTP. It needs the product service
// to snapshot name/price/image when an item is added; from then on the
// stored item is independent of the catalog.
type Handler struct {
	service        *Service
	productService product.ServiceInterface
}

func NewHandler(s *Service, ps product.ServiceInterface) *Handler {
	return &Handler{service: s, productService: ps}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/cart", h.getCart)
	app.Post("/api/cart/items", h.addItem)
	app.Put("/api/cart/items/:id", h.updateQuantity)
	app.Delete("/api/cart/items/:id", h.removeItem)
	app.Delete("/api/cart", h.clearCart)
	app.Post("/api/cart/toggle", h.toggleCart)
}

// cartResponse is the wire shape for every cart endpoint: the cart plus its
// derived values. The total is rounded to 2 decimals for display only.
type cartResponse struct {
	Items     []Item  `json:"items"`
	Open      bool    `json:"open"`
	ItemCount int     `json:"item_count"`
	Total     float64 `json:"total"`
}

func toResponse(c Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return cartResponse{
		Items:     items,
		Open:      c.Open,
		ItemCount: c.ItemCount(),
		Total:     c.DisplayTotal(),
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sid := h.sessionID(c)
	crt, err := h.service.GetCart(sid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(toResponse(crt))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_id is required"})
	}
	if payload.Quantity <= 0 {
		payload.Quantity = 1
	}

	p, err := h.productService.GetByID(payload.ProductID)
	if err != nil {
		if err == product.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	item := Item{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Quantity: payload.Quantity,
	}

	sid := h.sessionID(c)
	crt, err := h.service.AddItem(sid, item)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(toResponse(crt))
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	sid := h.sessionID(c)
	crt, err := h.service.UpdateQuantity(sid, c.Params("id"), payload.Quantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(toResponse(crt))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	sid := h.sessionID(c)
	crt, err := h.service.RemoveItem(sid, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(toResponse(crt))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sid := h.sessionID(c)
	crt, err := h.service.Clear(sid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(toResponse(crt))
}

func (h *Handler) toggleCart(c *fiber.Ctx) error {
	sid := h.sessionID(c)
	crt, err := h.service.Toggle(sid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(toResponse(crt))
}

// sessionID returns the cart session cookie, minting one for new visitors.
func (h *Handler) sessionID(c *fiber.Ctx) string {
	if sid := c.Cookies(sessionCookie); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return sid
}

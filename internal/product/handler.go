package product

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/products", h.getProducts)
	app.Get("/api/products/:id", h.getProduct)

	// dev-only endpoint to reseed the catalog — enabled when ALLOW_RESET_PRODUCTS=1
	app.Post("/dev/reset-products", h.resetProducts)
}

// getProducts returns the active catalog ordered by name. An optional
// `ids` query parameter (comma-separated) narrows the result to those
// products, preserving the requested order; the storefront uses it to
// refresh cart rows.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	if raw := c.Query("ids"); raw != "" {
		ids := make([]string, 0)
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		products, err := h.service.ListByIDs(ids)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load products"})
		}
		return c.JSON(products)
	}

	products, err := h.service.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load products"})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load product"})
	}
	return c.JSON(p)
}

// resetProducts clears the catalog and inserts the provided list, or a
// default sample list when the body is absent or unparsable. Gated by the
// ALLOW_RESET_PRODUCTS environment variable; set it to "1" to allow.
func (h *Handler) resetProducts(c *fiber.Ctx) error {
	if os.Getenv("ALLOW_RESET_PRODUCTS") != "1" {
		return c.Status(fiber.StatusForbidden).SendString("reset not allowed")
	}

	var products []Product
	if err := c.BodyParser(&products); err != nil {
		products = SampleProducts()
	}

	if err := h.service.ResetProducts(products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}

// SampleProducts returns the default demo catalog used for seeding.
func SampleProducts() []Product {
	return []Product{
		{
			Name:        "Oud",
			Description: ptrString("Deep and woody with a smoky resin finish"),
			Price:       49.99,
			ImageURL:    ptrString("/products/oud.jpg"),
			Active:      true,
		},
		{
			Name:        "Amber Musk",
			Description: ptrString("Warm amber layered over soft white musk"),
			Price:       39.99,
			ImageURL:    ptrString("/products/amber-musk.jpg"),
			Active:      true,
		},
		{
			Name:        "Rose Santal",
			Description: ptrString("Damask rose rounded with creamy sandalwood"),
			Price:       44.50,
			ImageURL:    ptrString("/products/rose-santal.jpg"),
			Active:      true,
		},
		{
			Name:        "Vetiver Noir",
			Description: ptrString("Dark vetiver with bergamot and black pepper"),
			Price:       54.00,
			ImageURL:    ptrString("/products/vetiver-noir.jpg"),
			Active:      true,
		},
	}
}

func ptrString(s string) *string { return &s }

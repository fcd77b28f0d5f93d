package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/sakher/perfumes-backend/internal/cart"
	"github.com/sakher/perfumes-backend/internal/config"
	"github.com/sakher/perfumes-backend/internal/mail"
	"github.com/sakher/perfumes-backend/internal/order"
	"github.com/sakher/perfumes-backend/internal/product"
)

// cmd/api runs the same HTTP surface as cmd/app against in-memory
// repositories and a log-only mail sender. Useful for frontend development
// without Postgres or an SMTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("loading config: %v", err)
	}

	log := logrus.New()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New())

	productService := product.NewService(product.NewInMemoryRepository(product.SampleProducts()))
	product.NewHandler(productService).RegisterRoutes(app)

	cartService := cart.NewService(cart.NewInMemoryStore())
	cart.NewHandler(cartService, productService).RegisterRoutes(app)

	orderService := order.NewService(order.NewInMemoryRepository(), mail.NewLogSender(log), log)
	order.NewHandler(orderService).RegisterRoutes(app)

	log.WithField("addr", cfg.Addr).Info("starting in-memory server")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

package main

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"

	"github.com/sakher/perfumes-backend/internal/cart"
	"github.com/sakher/perfumes-backend/internal/config"
	"github.com/sakher/perfumes-backend/internal/mail"
	"github.com/sakher/perfumes-backend/internal/order"
	"github.com/sakher/perfumes-backend/internal/product"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("loading config: %v", err)
	}

	log := newLogger(cfg.LogLevel)

	db := mustOpenDB(log, cfg.DatabaseURL)
	defer db.Close()
	bootstrapSchema(log, db)

	app := newApp(log)

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	product.NewHandler(productService).RegisterRoutes(app)

	// seed the catalog on first boot so the storefront has something to show
	seedProducts(log, productService)

	cartService := cart.NewService(cart.NewInMemoryStore())
	cart.NewHandler(cartService, productService).RegisterRoutes(app)

	sender := buildSender(log, cfg)
	orderService := order.NewService(order.NewPostgresRepository(db), sender, log)
	order.NewHandler(orderService).RegisterRoutes(app)

	log.WithField("addr", cfg.Addr).Info("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// newApp builds the Fiber app with CORS, panic recovery and request logging.
// Anything uncaught ends up in the error handler as a generic 500; stack
// traces never reach the client.
func newApp(log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
				return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
			}
			log.WithField("err", err).Error("unhandled error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(requestLogger(log))
	return app
}

func requestLogger(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Method(),
			"path":     c.OriginalURL(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
		}).Debug("request")
		return err
	}
}

func mustOpenDB(log *logrus.Logger, url string) *sql.DB {
	if url == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("pinging database: %v", err)
	}
	return db
}

// bootstrapSchema creates the tables this service needs if they do not
// exist yet. The catalog table is normally managed by the external catalog
// process; creating it here keeps fresh environments usable.
func bootstrapSchema(log *logrus.Logger, db *sql.DB) {
	if _, err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`); err != nil {
		log.Warnf("could not ensure pgcrypto extension: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS products (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		description TEXT,
		price numeric NOT NULL DEFAULT 0,
		image_url TEXT,
		active boolean NOT NULL DEFAULT true
	)`); err != nil {
		log.Fatalf("creating products table: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS orders (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		cart jsonb NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`); err != nil {
		log.Fatalf("creating orders table: %v", err)
	}
}

func seedProducts(log *logrus.Logger, svc *product.Service) {
	existing, err := svc.ListActive()
	if err != nil {
		log.Warnf("could not inspect catalog for seeding: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}
	if err := svc.ResetProducts(product.SampleProducts()); err != nil {
		log.Warnf("could not seed catalog: %v", err)
		return
	}
	log.Info("seeded sample catalog")
}

// buildSender prefers real SMTP and falls back to the log sender when the
// configuration is incomplete. Order submission succeeds either way.
func buildSender(log *logrus.Logger, cfg config.Config) mail.Sender {
	if cfg.HasSMTP() {
		sender, err := mail.NewSMTPSender(cfg)
		if err == nil {
			return sender
		}
		log.Warnf("smtp sender unavailable, falling back to log sender: %v", err)
	} else {
		log.Warn("smtp not configured, order emails will only be logged")
	}
	return mail.NewLogSender(log)
}

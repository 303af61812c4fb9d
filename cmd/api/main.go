package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/pattarap/shop-api/internal/config"
	"github.com/pattarap/shop-api/internal/logging"
	"github.com/pattarap/shop-api/internal/product"
	"github.com/pattarap/shop-api/internal/storage"
	"github.com/pattarap/shop-api/internal/user"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logging.New(os.Stdout, cfg.LogLevel, cfg.IsProduction())

	log.Info("connecting to database")
	db, err := storage.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := storage.Migrate(context.Background(), db); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(fiberlogger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	api := app.Group("/api/v1")

	userHandler := user.NewHandler(user.NewService(user.NewPostgresRepository(db)))
	userHandler.RegisterRoutes(api)

	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)))
	productHandler.RegisterRoutes(api)

	log.Info("starting server", "addr", cfg.Addr(), "environment", string(cfg.Environment))
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

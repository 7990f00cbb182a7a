package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rs/zerolog"

	"rajas/condb"
	"rajas/config"
	"rajas/controllers"
	"rajas/mailer"
	"rajas/routes"
	"rajas/store"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := condb.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect database")
	}
	defer pool.Close()

	if err := condb.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create tables")
	}
	if err := condb.SeedProducts(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	mail := mailer.New(cfg)
	defer mail.Close()

	h := controllers.New(
		store.NewPostgresProducts(pool),
		store.NewPostgresOrders(pool),
		mail,
		cfg,
	)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins, // comma-separated
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	routes.RegisterRoutes(app, h, cfg.JWTSecret)

	logger.Info().Str("port", cfg.Port).Msg("Raja's Collection API listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}

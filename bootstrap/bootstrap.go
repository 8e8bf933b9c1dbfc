// Package bootstrap assembles the application from configuration: logger,
// database, Redis and the fully wired Fiber app.
package bootstrap

import (
	"os"

	"learn2trade-backend/internal/config"
	"learn2trade-backend/internal/interfaces/router"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SetupLogger configures the global zerolog logger from config. Development
// gets the human console writer; everything else stays JSON.
func SetupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// NewApp builds the configured Fiber app plus its backing connections.
func NewApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	SetupLogger(cfg)
	return router.CreateApp(cfg)
}

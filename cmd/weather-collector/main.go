package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-collector/internal/api/http"
	"github.com/i474232898/weather-collector/internal/collector"
	"github.com/i474232898/weather-collector/internal/config"
	"github.com/i474232898/weather-collector/internal/store"
	"github.com/i474232898/weather-collector/internal/weather"
	"github.com/i474232898/weather-collector/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	log.Printf("weather-collector: city=%s interval=%s store=%s", cfg.City, cfg.PollInterval, cfg.InfluxURL)

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Live source only when a key is configured; without one the adapter
	// never touches the network.
	var source weather.Source
	if cfg.OpenWeatherAPIKey != "" {
		source = providers.NewOpenWeatherSource(httpClient, cfg.OpenWeatherAPIKey)
	} else {
		log.Println("weather-collector: no OPENWEATHER_API_KEY set, running on synthetic data")
	}
	adapter := weather.NewAdapter(source, weather.NewSyntheticGenerator(), cfg.City)

	// Store writer, owned here for the whole process lifetime.
	writer := store.NewInfluxWriter(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket, cfg.City)
	defer writer.Close()

	// Collector loop: warm-up, then one cycle per interval.
	col := collector.New(adapter, writer, cfg.PollInterval, cfg.WarmupDelay)
	if err := col.Start(); err != nil {
		log.Fatalf("failed to start collector: %v", err)
	}
	defer col.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-collector",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-collector",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, col)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal. SIGINT and SIGTERM share the same
	// graceful path: stop the loop, close the writer, exit 0.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

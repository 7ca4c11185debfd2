// Package routes defines the API and UI routing configuration.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"fraudguard/internal/config"
	"fraudguard/internal/handlers"
	"fraudguard/internal/repositories"
	"fraudguard/internal/services/fraud"
)

// Deps are the wired collaborators the routes need.
type Deps struct {
	Fraud  fraud.Service
	Repo   repositories.PredictionRepository
	Cache  *repositories.PredictionCache
	Health handlers.HealthStatus
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Deps) {
	predictionHandler := handlers.NewPredictionHandler(deps.Fraud, deps.Repo, deps.Cache)
	pageHandler := handlers.NewPageHandler(predictionHandler)

	app.Get("/health", handlers.NewHealthHandler(deps.Health))

	// UI
	app.Get("/", pageHandler.Home)
	app.Get("/form", pageHandler.Form)
	app.Post("/submit-form", pageHandler.SubmitForm)
	app.Get("/examples/:name", pageHandler.Example)

	// API, rate-limited per client
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("API_RATE_LIMIT", 60),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	api.Post("/predict", predictionHandler.Predict)
	api.Post("/batch_predict", predictionHandler.BatchPredict)
	api.Get("/history", predictionHandler.History)
}

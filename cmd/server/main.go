// Package main is the entry point for the fraud scoring server.
// It loads the trained artifacts, wires the scoring service, and starts the
// HTTP server. Missing artifacts degrade the service rather than fail it.
package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"fraudguard/internal/config"
	"fraudguard/internal/handlers"
	"fraudguard/internal/ml"
	"fraudguard/internal/repositories"
	"fraudguard/internal/routes"
	"fraudguard/internal/services/fraud"
	"fraudguard/internal/stats"
)

func main() {
	config.LoadEnv()

	// Trained collaborators. A load failure is a supported degraded mode:
	// the service falls back to fixed predictions, never refuses to start.
	var classifier ml.Classifier
	var scaler ml.Scaler

	modelPath := config.GetEnv("MODEL_PATH", "models/fraud_model.json")
	if model, err := ml.LoadModel(modelPath); err != nil {
		log.Printf("model not loaded from %s, using fallback predictions: %v", modelPath, err)
	} else {
		classifier = model
		log.Printf("model loaded from %s", modelPath)
	}

	scalerPath := config.GetEnv("SCALER_PATH", "models/scaler.json")
	if s, err := ml.LoadScaler(scalerPath); err != nil {
		log.Printf("scaler not loaded from %s, using fallback predictions: %v", scalerPath, err)
	} else {
		scaler = s
		log.Printf("scaler loaded from %s", scalerPath)
	}

	statsProvider, err := stats.Load(config.GetEnv("STATS_PATH", ""))
	if err != nil {
		log.Printf("stats file not loaded, using bundled defaults: %v", err)
	}
	log.Printf("feature statistics source: %s", statsProvider.Source())

	// Optional persistence (audit log + prediction cache).
	if err := repositories.Init(); err != nil {
		log.Fatalf("failed to initialize repositories: %v", err)
	}
	defer repositories.Close()

	fraudService := fraud.NewService(classifier, scaler, statsProvider)
	predictionRepo := repositories.NewPredictionRepository(repositories.DB)
	cacheTTL := time.Duration(config.GetIntEnv("PREDICTION_CACHE_TTL_SECONDS", 3600)) * time.Second
	predictionCache := repositories.NewPredictionCache(repositories.RedisClient, cacheTTL)

	engine := html.New(config.GetEnv("VIEWS_DIR", "./views"), ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, routes.Deps{
		Fraud: fraudService,
		Repo:  predictionRepo,
		Cache: predictionCache,
		Health: handlers.HealthStatus{
			ModelLoaded:  classifier != nil,
			ScalerLoaded: scaler != nil,
			StatsSource:  statsProvider.Source(),
			AuditEnabled: predictionRepo.Enabled(),
			CacheEnabled: predictionCache.Enabled(),
		},
	})

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "8000")))
}

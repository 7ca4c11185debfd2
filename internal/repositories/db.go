// Package repositories provides the optional persistence layer: a Postgres
// audit log of scored transactions and a Redis cache of prediction results.
// Both are supplements around the scoring core; the service runs without
// either and the core never depends on them.
package repositories

import (
	"fmt"
	"log"

	"fraudguard/internal/config"
	"fraudguard/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the audit-log database handle, nil when DATABASE_URL is unset.
var DB *gorm.DB

// RedisClient is the prediction-cache client, nil when REDIS_HOST is unset.
var RedisClient *redis.Client

// Init connects the optional stores. Missing configuration is a supported
// degraded mode, not an error; connection failures against configured stores
// are returned so startup can report them.
func Init() error {
	if dsn := config.GetEnv("DATABASE_URL", ""); dsn != "" {
		if err := initPostgres(dsn); err != nil {
			return err
		}
	} else {
		log.Println("repositories: DATABASE_URL not set, audit log disabled")
	}

	if host := config.GetEnv("REDIS_HOST", ""); host != "" {
		RedisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", host, config.GetEnv("REDIS_PORT", "6379")),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
	} else {
		log.Println("repositories: REDIS_HOST not set, prediction cache disabled")
	}

	return nil
}

func initPostgres(dsn string) error {
	logLevel := logger.Warn
	if config.IsProduction() {
		logLevel = logger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}

	if err := db.AutoMigrate(&models.PredictionRecord{}); err != nil {
		return fmt.Errorf("migrate audit schema: %w", err)
	}

	DB = db
	return nil
}

// Close releases the optional store connections.
func Close() {
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("repositories: failed to close database: %v", err)
			}
		}
	}
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			log.Printf("repositories: failed to close redis: %v", err)
		}
	}
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthStatus reports which collaborators loaded at startup.
type HealthStatus struct {
	ModelLoaded  bool
	ScalerLoaded bool
	StatsSource  string
	AuditEnabled bool
	CacheEnabled bool
}

// NewHealthHandler returns the GET /health handler.
func NewHealthHandler(status HealthStatus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"version": "1.0.0",
			"services": fiber.Map{
				"model":        loadedLabel(status.ModelLoaded),
				"scaler":       loadedLabel(status.ScalerLoaded),
				"stats_source": status.StatsSource,
				"audit_log":    enabledLabel(status.AuditEnabled),
				"cache":        enabledLabel(status.CacheEnabled),
			},
		})
	}
}

func loadedLabel(loaded bool) string {
	if loaded {
		return "loaded"
	}
	return "fallback"
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

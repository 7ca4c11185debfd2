package handlers

import (
	"context"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fraudguard/internal/models"
	"fraudguard/internal/repositories"
	"fraudguard/internal/services/fraud"
	"fraudguard/internal/utils/response"
	"fraudguard/internal/validation"
)

const maxHistoryLimit = 100

// PredictionHandler exposes the scoring service over JSON endpoints.
type PredictionHandler struct {
	service fraud.Service
	repo    repositories.PredictionRepository
	cache   *repositories.PredictionCache
}

// NewPredictionHandler creates the prediction API handler.
func NewPredictionHandler(service fraud.Service, repo repositories.PredictionRepository, cache *repositories.PredictionCache) *PredictionHandler {
	if service == nil {
		panic("fraud service is required")
	}
	return &PredictionHandler{service: service, repo: repo, cache: cache}
}

// Predict handles POST /api/predict. Validation failures return 400; a valid
// transaction always yields a 200 with a best-effort result.
func (h *PredictionHandler) Predict(c *fiber.Ctx) error {
	var tx models.Transaction
	if err := c.BodyParser(&tx); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Transaction(&tx); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if tx.TransactionID == "" {
		tx.TransactionID = "TX-" + uuid.NewString()
	}

	if h.cache != nil {
		if cached, found, err := h.cache.Get(c.Context(), tx); err == nil && found {
			return c.JSON(cached)
		} else if err != nil {
			log.Printf("prediction cache read failed: %v", err)
		}
	}

	result := h.service.Predict(tx)

	h.record(tx, result)

	return c.JSON(result)
}

// BatchPredict handles POST /api/batch_predict. Items are validated and
// scored independently; only a batch-level failure maps to a 500.
func (h *PredictionHandler) BatchPredict(c *fiber.Ctx) error {
	var txs []models.Transaction
	if err := c.BodyParser(&txs); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	for i := range txs {
		if err := validation.Transaction(&txs[i]); err != nil {
			return response.ValidationError(c, "transaction "+uuidOrIndex(txs[i], i)+": "+err.Error())
		}
	}

	results, err := h.service.BatchPredict(txs)
	if err != nil {
		log.Printf("batch prediction failed: %v", err)
		return response.ServerError(c, "Batch prediction failed")
	}

	for i := range txs {
		h.record(txs[i], results[i])
	}

	return c.JSON(models.BatchPredictionResponse{Predictions: results})
}

// History handles GET /api/history, listing recent audit records.
func (h *PredictionHandler) History(c *fiber.Ctx) error {
	if h.repo == nil || !h.repo.Enabled() {
		return response.ServiceUnavailable(c, "Audit log is not configured")
	}

	limit := c.QueryInt("limit", 20)
	if limit < 1 {
		limit = 1
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := h.repo.RecentPredictions(limit)
	if err != nil {
		log.Printf("history fetch failed: %v", err)
		return response.ServerError(c, "Failed to retrieve prediction history")
	}

	return c.JSON(fiber.Map{"predictions": records})
}

// record persists and caches a scored transaction, best-effort.
func (h *PredictionHandler) record(tx models.Transaction, result models.PredictionResult) {
	if h.repo != nil {
		if err := h.repo.SavePrediction(tx, result); err != nil {
			log.Printf("audit log write failed: %v", err)
		}
	}
	if h.cache != nil {
		if err := h.cache.Set(context.Background(), tx, result); err != nil {
			log.Printf("prediction cache write failed: %v", err)
		}
	}
}

func uuidOrIndex(tx models.Transaction, i int) string {
	if tx.TransactionID != "" {
		return tx.TransactionID
	}
	return "#" + strconv.Itoa(i)
}

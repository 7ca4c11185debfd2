package fraud

import "fraudguard/internal/models"

// Service scores transactions for fraud likelihood.
type Service interface {
	// Predict scores a single transaction. It always returns a usable result;
	// internal failures degrade to documented fallback values.
	Predict(tx models.Transaction) models.PredictionResult

	// BatchPredict scores transactions independently, preserving input order.
	// A failure inside one item's prediction never aborts the batch.
	BatchPredict(txs []models.Transaction) ([]models.PredictionResult, error)
}

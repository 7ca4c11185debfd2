package repositories

import (
	"fmt"

	"fraudguard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PredictionRepository persists and lists scored transactions.
type PredictionRepository interface {
	SavePrediction(tx models.Transaction, result models.PredictionResult) error
	RecentPredictions(limit int) ([]models.PredictionRecord, error)
	Enabled() bool
}

type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates an audit-log repository. A nil db yields a
// disabled repository whose writes are no-ops.
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Enabled() bool {
	return r.db != nil
}

func (r *predictionRepository) SavePrediction(tx models.Transaction, result models.PredictionResult) error {
	if r.db == nil {
		return nil
	}

	record := models.PredictionRecord{
		ID:             uuid.NewString(),
		TransactionID:  tx.TransactionID,
		Step:           tx.Step,
		Amount:         tx.Amount,
		OldBalanceOrig: tx.OldBalanceOrig,
		NewBalanceOrig: tx.NewBalanceOrig,
		OldBalanceDest: tx.OldBalanceDest,
		NewBalanceDest: tx.NewBalanceDest,
		Type:           string(tx.Type),
		IsFlaggedFraud: tx.IsFlaggedFraud,

		FraudProbability: result.FraudProbability,
		IsFraud:          result.IsFraud,
		ConfidenceScore:  result.ConfidenceScore,
		IsAnomalous:      result.IsAnomalous,
		AnomalyReason:    result.AnomalyReason,
	}

	if err := r.db.Create(&record).Error; err != nil {
		return fmt.Errorf("save prediction record: %w", err)
	}
	return nil
}

func (r *predictionRepository) RecentPredictions(limit int) ([]models.PredictionRecord, error) {
	if r.db == nil {
		return nil, gorm.ErrInvalidDB
	}

	var records []models.PredictionRecord
	err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list prediction records: %w", err)
	}
	return records, nil
}

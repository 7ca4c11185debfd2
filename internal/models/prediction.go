package models

import "time"

// PredictionResult is the outcome of scoring one transaction. Every field is
// a plain Go primitive so the struct serializes cleanly over any boundary.
type PredictionResult struct {
	FraudProbability float64 `json:"fraud_probability"`
	IsFraud          bool    `json:"is_fraud"`
	ConfidenceScore  float64 `json:"confidence_score"`
	IsAnomalous      bool    `json:"is_anomalous"`
	AnomalyReason    string  `json:"anomaly_reason"`
}

// BatchPredictionResponse wraps the results of a batch scoring request.
type BatchPredictionResponse struct {
	Predictions []PredictionResult `json:"predictions"`
}

// PredictionRecord is the persisted audit trail entry for one scored
// transaction. Recording is best-effort and happens outside the scoring core.
type PredictionRecord struct {
	ID             string  `gorm:"primarykey" json:"id"`
	TransactionID  string  `json:"transaction_id"`
	Step           int     `json:"step"`
	Amount         float64 `json:"amount"`
	OldBalanceOrig float64 `json:"oldbalanceOrg"`
	NewBalanceOrig float64 `json:"newbalanceOrig"`
	OldBalanceDest float64 `json:"oldbalanceDest"`
	NewBalanceDest float64 `json:"newbalanceDest"`
	Type           string  `json:"type"`
	IsFlaggedFraud int     `json:"isFlaggedFraud"`

	FraudProbability float64 `json:"fraud_probability"`
	IsFraud          bool    `json:"is_fraud"`
	ConfidenceScore  float64 `json:"confidence_score"`
	IsAnomalous      bool    `json:"is_anomalous"`
	AnomalyReason    string  `json:"anomaly_reason"`

	CreatedAt time.Time `json:"created_at"`
}

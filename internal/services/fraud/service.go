// Package fraud implements the transaction scoring core: feature encoding,
// rule-based anomaly detection against reference statistics, classifier
// inference, and the confidence policy that merges the two signals.
package fraud

import (
	"errors"
	"fmt"
	"log"

	"fraudguard/internal/ml"
	"fraudguard/internal/models"
	"fraudguard/internal/stats"
)

// Fallback values used whenever the classifier cannot produce a probability.
const (
	fallbackProbability = 0.1
	fallbackConfidence  = 0.8
)

type service struct {
	classifier ml.Classifier
	scaler     ml.Scaler
	detector   *Detector
}

// NewService creates a scoring service. classifier and scaler may be nil when
// their artifacts failed to load; the service then degrades to fixed-fallback
// predictions instead of refusing to start.
func NewService(classifier ml.Classifier, scaler ml.Scaler, provider stats.Provider) Service {
	return &service{
		classifier: classifier,
		scaler:     scaler,
		detector:   NewDetector(provider),
	}
}

// inferenceOutcome carries the classifier probability together with which
// fallback tier produced it, so each degradation path stays observable and
// testable instead of being buried in control flow.
type inferenceOutcome struct {
	probability float64
	fallback    error
}

// infer runs the encoder -> scaler -> classifier chain. It never fails: a
// missing collaborator or a failing inference is reported through the
// outcome's fallback error with the substitute probability filled in.
func (s *service) infer(tx models.Transaction) inferenceOutcome {
	if s.classifier == nil || s.scaler == nil {
		return inferenceOutcome{probability: fallbackProbability, fallback: ErrModelUnavailable}
	}

	features := EncodeFeatures(tx)

	scaled, err := s.scaler.Transform(features)
	if err != nil {
		log.Printf("fraud: scaling failed for transaction %q: %v", tx.TransactionID, err)
		return inferenceOutcome{
			probability: fallbackProbability,
			fallback:    fmt.Errorf("%w: %v", ErrInferenceFailed, err),
		}
	}

	probability, err := s.classifier.PredictProbability(scaled)
	if err != nil {
		log.Printf("fraud: classification failed for transaction %q: %v", tx.TransactionID, err)
		return inferenceOutcome{
			probability: fallbackProbability,
			fallback:    fmt.Errorf("%w: %v", ErrInferenceFailed, err),
		}
	}

	return inferenceOutcome{probability: probability}
}

// Predict scores one transaction. The anomaly detector always runs on the raw
// fields; the classifier chain degrades through two fallback tiers, and any
// unexpected panic is converted into a last-resort default result. Predict
// never propagates a failure to its caller.
func (s *service) Predict(tx models.Transaction) (result models.PredictionResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("fraud: prediction panic for transaction %q: %v", tx.TransactionID, r)
			result = models.PredictionResult{
				FraudProbability: fallbackProbability,
				IsFraud:          false,
				ConfidenceScore:  fallbackConfidence,
				IsAnomalous:      false,
				AnomalyReason:    fmt.Sprintf("Error during prediction: %v", r),
			}
		}
	}()

	isAnomalous, anomalyScore, anomalyReason := s.detector.Detect(tx)
	reason := ""
	if isAnomalous {
		reason = anomalyReason
	}

	outcome := s.infer(tx)
	if errors.Is(outcome.fallback, ErrModelUnavailable) {
		// Startup degradation: no model to score with, fixed confidence.
		return models.PredictionResult{
			FraudProbability: fallbackProbability,
			IsFraud:          false,
			ConfidenceScore:  fallbackConfidence,
			IsAnomalous:      isAnomalous,
			AnomalyReason:    reason,
		}
	}

	// Normal path and per-request inference fallback share the same merge:
	// the substitute probability still flows through the confidence policy
	// together with the real anomaly result.
	probability := outcome.probability
	confidence := AdjustConfidence(probability, isAnomalous, anomalyScore)

	return models.PredictionResult{
		FraudProbability: probability,
		IsFraud:          probability > 0.5,
		ConfidenceScore:  confidence,
		IsAnomalous:      isAnomalous,
		AnomalyReason:    reason,
	}
}

// BatchPredict scores each transaction independently, in input order. Item
// failures are absorbed by Predict's fallbacks; only a failure in the batch
// scaffolding itself surfaces as an error.
func (s *service) BatchPredict(txs []models.Transaction) ([]models.PredictionResult, error) {
	results := make([]models.PredictionResult, 0, len(txs))
	for _, tx := range txs {
		results = append(results, s.Predict(tx))
	}
	return results, nil
}

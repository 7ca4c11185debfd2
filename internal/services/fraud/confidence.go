package fraud

import "math"

// Confidence damping bounds: anomaly severity removes up to 90% of the base
// confidence, and the floor keeps the score from reporting total uncertainty.
const (
	confidenceFloor     = 0.1
	maxConfidenceDamp   = 0.9
	anomalyScoreDivisor = 50.0
)

// AdjustConfidence derives a calibrated confidence from the raw classifier
// probability and the anomaly result. Base confidence is the distance from
// the 0.5 decision boundary rescaled to [0, 1]; anomalous transactions are
// damped in proportion to their severity.
func AdjustConfidence(probability float64, isAnomalous bool, anomalyScore float64) float64 {
	confidence := math.Abs(probability-0.5) * 2

	if isAnomalous {
		damp := math.Min(anomalyScore/anomalyScoreDivisor, maxConfidenceDamp)
		confidence = math.Max(confidenceFloor, confidence*(1.0-damp))
	}

	return confidence
}

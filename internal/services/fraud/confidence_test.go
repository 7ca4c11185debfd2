package fraud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustConfidence(t *testing.T) {
	tests := []struct {
		name         string
		probability  float64
		isAnomalous  bool
		anomalyScore float64
		want         float64
	}{
		{"decision boundary yields zero confidence", 0.5, false, 0, 0.0},
		{"certain fraud yields full confidence", 1.0, false, 0, 1.0},
		{"certain legitimate yields full confidence", 0.0, false, 0, 1.0},
		{"base confidence scales with distance", 0.7, false, 0, 0.4},
		{"non-anomalous keeps base value", 0.9, false, 100, 0.8},
		{"mild anomaly damps proportionally", 0.9, true, 10, 0.8 * 0.8},
		{"severe anomaly damping is capped at 90%", 1.0, true, 1000, 0.1},
		{"damped confidence is floored", 0.55, true, 45, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustConfidence(tt.probability, tt.isAnomalous, tt.anomalyScore)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAdjustConfidence_Bounds(t *testing.T) {
	// Anomalous confidence always lands in [0.1, 1.0]; non-anomalous in [0, 1].
	for _, p := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		for _, score := range []float64{0, 1, 5, 25, 50, 500} {
			anomalous := AdjustConfidence(p, true, score)
			assert.GreaterOrEqual(t, anomalous, 0.1)
			assert.LessOrEqual(t, anomalous, 1.0)

			base := AdjustConfidence(p, false, score)
			assert.GreaterOrEqual(t, base, 0.0)
			assert.LessOrEqual(t, base, 1.0)
		}
	}
}

package fraud

import (
	"fmt"
	"math"
	"strings"

	"fraudguard/internal/models"
	"fraudguard/internal/stats"
)

// Detection thresholds and penalties, chosen empirically against the training
// set. Changing them changes which transactions are flagged.
const (
	percentileRatioTrigger = 1.5
	percentileScoreCap     = 20.0
	zScoreCap              = 30.0
	negativeValuePenalty   = 10.0
	balanceMismatchPenalty = 3.0
	anomalyThreshold       = 5.0
)

// noAnomalies is the reason reported when no check triggered.
const noAnomalies = "No anomalies detected"

// Detector flags transactions that fall outside the distribution the
// classifier was trained on, with a human-readable explanation the classifier
// itself cannot provide. Checks are independent and additive; a single field
// can trigger several penalties.
type Detector struct {
	table stats.Table
}

// NewDetector creates a detector backed by the given statistics provider.
func NewDetector(provider stats.Provider) *Detector {
	if provider == nil {
		panic("stats provider is required")
	}
	return &Detector{table: provider.Stats()}
}

// Detect scores tx against the reference statistics. It returns whether the
// transaction is anomalous, the severity score, and the joined reasons (or a
// fixed no-anomalies string).
func (d *Detector) Detect(tx models.Transaction) (bool, float64, string) {
	var score float64
	var reasons []string

	fields := []struct {
		name  string
		value float64
	}{
		{stats.FeatureAmount, tx.Amount},
		{stats.FeatureOldBalanceOrig, tx.OldBalanceOrig},
		{stats.FeatureNewBalanceOrig, tx.NewBalanceOrig},
		{stats.FeatureOldBalanceDest, tx.OldBalanceDest},
		{stats.FeatureNewBalanceDest, tx.NewBalanceDest},
	}

	for _, f := range fields {
		fs, ok := d.table[f.name]
		if !ok {
			continue
		}

		// Extremely high relative to the 99th percentile.
		q99 := fs.Q99
		if q99 == 0 {
			q99 = fs.Max * 0.9
		}
		if f.value > q99 {
			ratio := f.value / math.Max(q99, 1.0)
			if ratio > percentileRatioTrigger {
				score += math.Min(ratio*2, percentileScoreCap)
				reasons = append(reasons, fmt.Sprintf(
					"%s (%.2f) is %.1fx higher than typical values", f.name, f.value, ratio))
			}
		}

		// Beyond anything observed in training.
		if f.value > fs.Max {
			z := (f.value - fs.Mean) / math.Max(fs.Std, 1.0)
			score += math.Min(math.Abs(z), zScoreCap)
			reasons = append(reasons, fmt.Sprintf(
				"%s (%.2f) exceeds maximum observed value of %.2f", f.name, f.value, fs.Max))
		}

		// Negative balances and amounts never occur in the training data.
		if f.value < 0 {
			score += negativeValuePenalty
			reasons = append(reasons, fmt.Sprintf("%s (%.2f) is negative", f.name, f.value))
		}
	}

	// Origin balance change should match the amount, within 1% tolerance.
	if math.Abs((tx.OldBalanceOrig-tx.NewBalanceOrig)-tx.Amount) > 0.01*math.Max(tx.Amount, 1.0) {
		score += balanceMismatchPenalty
		reasons = append(reasons, "Balance change doesn't match transaction amount")
	}

	reason := noAnomalies
	if len(reasons) > 0 {
		reason = strings.Join(reasons, "; ")
	}

	return score > anomalyThreshold, score, reason
}

package fraud

import (
	"testing"

	"fraudguard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEncodeFeatures(t *testing.T) {
	tx := models.Transaction{
		Step:           27, // hour 3 of day 1
		Amount:         9839.64,
		OldBalanceOrig: 170136.0,
		NewBalanceOrig: 160296.36,
		OldBalanceDest: 100.0,
		NewBalanceDest: 200.0,
		Type:           models.TransactionTypePayment,
		IsFlaggedFraud: 1,
	}

	features := EncodeFeatures(tx)

	assert.Len(t, features, FeatureCount)
	assert.Equal(t, []float64{27, 9839.64, 170136.0, 160296.36, 100.0, 200.0, 3, 1, 1}, features)
}

func TestEncodeFeatures_HourDayDerivation(t *testing.T) {
	tests := []struct {
		name string
		step int
		hour float64
		day  float64
	}{
		{"first hour", 0, 0, 0},
		{"last hour of first day", 23, 23, 0},
		{"first hour of second day", 24, 0, 1},
		{"mid second week", 200, 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := EncodeFeatures(models.Transaction{Step: tt.step, Amount: 1})
			assert.Equal(t, tt.hour, features[6], "hour")
			assert.Equal(t, tt.day, features[7], "day")
		})
	}
}

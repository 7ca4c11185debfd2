package repositories

import (
	"context"
	"testing"
	"time"

	"fraudguard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionCache_Disabled(t *testing.T) {
	cache := NewPredictionCache(nil, time.Hour)
	tx := models.Transaction{Amount: 100, Type: models.TransactionTypePayment}

	assert.False(t, cache.Enabled())

	_, found, err := cache.Get(context.Background(), tx)
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, cache.Set(context.Background(), tx, models.PredictionResult{}))
}

func TestPredictionKey(t *testing.T) {
	base := models.Transaction{
		Step:           1,
		Amount:         100,
		OldBalanceOrig: 1000,
		NewBalanceOrig: 900,
		Type:           models.TransactionTypePayment,
	}

	key1, err := predictionKey(base)
	require.NoError(t, err)

	t.Run("deterministic", func(t *testing.T) {
		key2, err := predictionKey(base)
		require.NoError(t, err)
		assert.Equal(t, key1, key2)
	})

	t.Run("ignores transaction id", func(t *testing.T) {
		labeled := base
		labeled.TransactionID = "TX-42"
		key2, err := predictionKey(labeled)
		require.NoError(t, err)
		assert.Equal(t, key1, key2)
	})

	t.Run("differs for different inputs", func(t *testing.T) {
		other := base
		other.Amount = 200
		key2, err := predictionKey(other)
		require.NoError(t, err)
		assert.NotEqual(t, key1, key2)
	})
}

func TestPredictionRepository_Disabled(t *testing.T) {
	repo := NewPredictionRepository(nil)

	assert.False(t, repo.Enabled())
	assert.NoError(t, repo.SavePrediction(models.Transaction{}, models.PredictionResult{}))

	_, err := repo.RecentPredictions(10)
	assert.Error(t, err)
}

package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"fraudguard/internal/models"

	"github.com/redis/go-redis/v9"
)

const predictionKeyPrefix = "prediction:"

// PredictionCache caches results of identical transactions. Prediction is
// deterministic for a given transaction and model, so content-addressed
// caching is safe.
type PredictionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPredictionCache creates a cache with the given TTL. A nil client yields
// a disabled cache: Get always misses and Set is a no-op.
func NewPredictionCache(client *redis.Client, ttl time.Duration) *PredictionCache {
	return &PredictionCache{client: client, ttl: ttl}
}

// Enabled reports whether a backing store is configured.
func (c *PredictionCache) Enabled() bool {
	return c.client != nil
}

// Get returns the cached result for tx and whether it was found.
func (c *PredictionCache) Get(ctx context.Context, tx models.Transaction) (models.PredictionResult, bool, error) {
	var result models.PredictionResult
	if c.client == nil {
		return result, false, nil
	}

	key, err := predictionKey(tx)
	if err != nil {
		return result, false, err
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return result, false, nil
		}
		return result, false, fmt.Errorf("get cached prediction: %w", err)
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, false, fmt.Errorf("unmarshal cached prediction: %w", err)
	}
	return result, true, nil
}

// Set stores the result for tx with the configured TTL.
func (c *PredictionCache) Set(ctx context.Context, tx models.Transaction, result models.PredictionResult) error {
	if c.client == nil {
		return nil
	}

	key, err := predictionKey(tx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal prediction: %w", err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// predictionKey derives a content hash of the transaction's scoring inputs.
// The optional transaction ID is excluded so identical transactions share an
// entry regardless of labeling.
func predictionKey(tx models.Transaction) (string, error) {
	tx.TransactionID = ""
	data, err := json.Marshal(tx)
	if err != nil {
		return "", fmt.Errorf("marshal transaction for cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return predictionKeyPrefix + hex.EncodeToString(sum[:]), nil
}

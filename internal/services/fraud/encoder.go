package fraud

import "fraudguard/internal/models"

// FeatureCount is the length of the encoded feature vector.
const FeatureCount = 9

// EncodeFeatures maps a transaction to the fixed-order feature vector the
// classifier and scaler were fitted on:
//
//	[step, amount, oldbalanceOrg, newbalanceOrig, oldbalanceDest,
//	 newbalanceDest, hour, day, isFlaggedFraud]
//
// hour and day are derived from the time step (1 step = 1 hour).
func EncodeFeatures(tx models.Transaction) []float64 {
	hour := tx.Step % 24
	day := tx.Step / 24

	return []float64{
		float64(tx.Step),
		tx.Amount,
		tx.OldBalanceOrig,
		tx.NewBalanceOrig,
		tx.OldBalanceDest,
		tx.NewBalanceDest,
		float64(hour),
		float64(day),
		float64(tx.IsFlaggedFraud),
	}
}

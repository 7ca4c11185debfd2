package validation

import (
	"testing"

	"fraudguard/internal/models"

	"github.com/stretchr/testify/assert"
)

func validTransaction() models.Transaction {
	return models.Transaction{
		Step:           1,
		Amount:         100.0,
		OldBalanceOrig: 1000.0,
		NewBalanceOrig: 900.0,
		Type:           models.TransactionTypePayment,
	}
}

func TestTransaction(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*models.Transaction)
		wantErr string
	}{
		{"valid", func(tx *models.Transaction) {}, ""},
		{"missing amount", func(tx *models.Transaction) { tx.Amount = 0 }, "Amount"},
		{"negative amount", func(tx *models.Transaction) { tx.Amount = -5 }, "Amount"},
		{"negative step", func(tx *models.Transaction) { tx.Step = -1 }, "Step"},
		{"negative balance", func(tx *models.Transaction) { tx.OldBalanceOrig = -100 }, "OldBalanceOrig"},
		{"missing type", func(tx *models.Transaction) { tx.Type = "" }, "Type"},
		{"unknown type", func(tx *models.Transaction) { tx.Type = "WIRE" }, "Type"},
		{"flag out of range", func(tx *models.Transaction) { tx.IsFlaggedFraud = 2 }, "IsFlaggedFraud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.modify(&tx)

			err := Transaction(&tx)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestTransaction_ReportsAllViolations(t *testing.T) {
	tx := models.Transaction{Step: -1, Amount: -1, Type: "WIRE"}

	err := Transaction(&tx)
	assert.ErrorContains(t, err, "Step")
	assert.ErrorContains(t, err, "Amount")
	assert.ErrorContains(t, err, "Type")
}

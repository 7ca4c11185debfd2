package models

// TransactionType classifies a transaction by the movement of funds.
type TransactionType string

// Transaction types
const (
	TransactionTypePayment  TransactionType = "PAYMENT"
	TransactionTypeTransfer TransactionType = "TRANSFER"
	TransactionTypeCashOut  TransactionType = "CASH_OUT"
	TransactionTypeDebit    TransactionType = "DEBIT"
	TransactionTypeCashIn   TransactionType = "CASH_IN"
)

// TransactionTypes lists every valid transaction type.
var TransactionTypes = []TransactionType{
	TransactionTypePayment,
	TransactionTypeTransfer,
	TransactionTypeCashOut,
	TransactionTypeDebit,
	TransactionTypeCashIn,
}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypePayment, TransactionTypeTransfer, TransactionTypeCashOut,
		TransactionTypeDebit, TransactionTypeCashIn:
		return true
	}
	return false
}

// Transaction is a single transaction submitted for scoring. It is never
// mutated after creation; both the feature encoder and the anomaly detector
// read from the same record.
//
// JSON field names follow the PaySim dataset columns the model was trained on.
type Transaction struct {
	TransactionID  string          `json:"transaction_id,omitempty"`
	Step           int             `json:"step" validate:"gte=0"`
	Amount         float64         `json:"amount" validate:"required,gt=0"`
	OldBalanceOrig float64         `json:"oldbalanceOrg" validate:"gte=0"`
	NewBalanceOrig float64         `json:"newbalanceOrig" validate:"gte=0"`
	OldBalanceDest float64         `json:"oldbalanceDest" validate:"gte=0"`
	NewBalanceDest float64         `json:"newbalanceDest" validate:"gte=0"`
	Type           TransactionType `json:"type" validate:"required,oneof=PAYMENT TRANSFER CASH_OUT DEBIT CASH_IN"`
	IsFlaggedFraud int             `json:"isFlaggedFraud" validate:"gte=0,lte=1"`
}

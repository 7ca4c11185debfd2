package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"fraudguard/internal/models"
	"fraudguard/internal/validation"
)

// exampleTransactions are seeded records for quick manual testing from the UI.
var exampleTransactions = map[string]models.Transaction{
	"legitimate_payment": {
		TransactionID:  "TX123456789",
		Step:           1,
		Amount:         9839.64,
		OldBalanceOrig: 170136.0,
		NewBalanceOrig: 160296.36,
		OldBalanceDest: 0.0,
		NewBalanceDest: 0.0,
		Type:           models.TransactionTypePayment,
	},
	"suspicious_transfer": {
		TransactionID:  "TX987654321",
		Step:           1,
		Amount:         181.0,
		OldBalanceOrig: 181.0,
		NewBalanceOrig: 0.0,
		OldBalanceDest: 0.0,
		NewBalanceDest: 0.0,
		Type:           models.TransactionTypeTransfer,
	},
	"large_cashout": {
		TransactionID:  "TX567891234",
		Step:           10,
		Amount:         10000.0,
		OldBalanceOrig: 10000.0,
		NewBalanceOrig: 0.0,
		OldBalanceDest: 0.0,
		NewBalanceDest: 10000.0,
		Type:           models.TransactionTypeCashOut,
	},
}

// exampleNames keeps the home page buttons in a stable order.
var exampleNames = []string{"legitimate_payment", "suspicious_transfer", "large_cashout"}

// PageHandler renders the form-based testing UI.
type PageHandler struct {
	prediction *PredictionHandler
}

// NewPageHandler creates the UI handler, sharing the prediction handler's
// service and stores.
func NewPageHandler(prediction *PredictionHandler) *PageHandler {
	if prediction == nil {
		panic("prediction handler is required")
	}
	return &PageHandler{prediction: prediction}
}

// Home handles GET /.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Title":    "Fraud Detection System",
		"Examples": exampleNames,
	})
}

// Example handles GET /examples/:name, scoring a seeded transaction and
// rendering the result.
func (h *PageHandler) Example(c *fiber.Ctx) error {
	name := c.Params("name")
	tx, ok := exampleTransactions[name]
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Example %q not found", name))
	}

	result := h.prediction.service.Predict(tx)
	h.prediction.record(tx, result)

	return c.Render("result", fiber.Map{
		"Title":       "Example Transaction: " + name,
		"Transaction": tx,
		"Result":      result,
	})
}

// Form handles GET /form.
func (h *PageHandler) Form(c *fiber.Ctx) error {
	return c.Render("form", fiber.Map{
		"Title": "Submit Transaction",
		"Types": models.TransactionTypes,
	})
}

// SubmitForm handles POST /submit-form, scoring the submitted transaction and
// rendering the result page.
func (h *PageHandler) SubmitForm(c *fiber.Ctx) error {
	tx, err := parseTransactionForm(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := validation.Transaction(&tx); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result := h.prediction.service.Predict(tx)
	h.prediction.record(tx, result)

	return c.Render("result", fiber.Map{
		"Title":       "Fraud Detection Result",
		"Transaction": tx,
		"Result":      result,
	})
}

func parseTransactionForm(c *fiber.Ctx) (models.Transaction, error) {
	var tx models.Transaction

	step, err := strconv.Atoi(c.FormValue("step", "0"))
	if err != nil {
		return tx, fmt.Errorf("step must be an integer")
	}

	floats := make(map[string]float64, 5)
	for _, field := range []string{"amount", "oldbalanceOrg", "newbalanceOrig", "oldbalanceDest", "newbalanceDest"} {
		v, err := strconv.ParseFloat(c.FormValue(field, "0"), 64)
		if err != nil {
			return tx, fmt.Errorf("%s must be a number", field)
		}
		floats[field] = v
	}

	flagged, err := strconv.Atoi(c.FormValue("isFlaggedFraud", "0"))
	if err != nil {
		return tx, fmt.Errorf("isFlaggedFraud must be 0 or 1")
	}

	tx = models.Transaction{
		TransactionID:  c.FormValue("transaction_id"),
		Step:           step,
		Amount:         floats["amount"],
		OldBalanceOrig: floats["oldbalanceOrg"],
		NewBalanceOrig: floats["newbalanceOrig"],
		OldBalanceDest: floats["oldbalanceDest"],
		NewBalanceDest: floats["newbalanceDest"],
		Type:           models.TransactionType(c.FormValue("type")),
		IsFlaggedFraud: flagged,
	}
	return tx, nil
}

// Package validation rejects structurally invalid transactions at the HTTP
// boundary, before they reach the scoring core.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"fraudguard/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Transaction checks the structural constraints on a scoring request: field
// presence, value ranges, and a known transaction type. It returns a single
// error naming every violated field.
func Transaction(tx *models.Transaction) error {
	err := validate.Struct(tx)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

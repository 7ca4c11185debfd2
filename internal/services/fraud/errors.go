package fraud

import "errors"

// Service errors
var (
	ErrModelUnavailable = errors.New("classifier or scaler not loaded")
	ErrInferenceFailed  = errors.New("inference failed")
)

// Package ml provides the trained collaborators the scoring service consumes:
// a binary probability classifier and a feature scaler. Both are fitted
// offline by fraudctl and loaded from JSON artifacts at startup.
package ml

import "errors"

// Classifier scores a feature vector with a fraud probability in [0, 1].
type Classifier interface {
	PredictProbability(features []float64) (float64, error)
}

// Scaler applies a fitted feature transform to a vector of the same length.
type Scaler interface {
	Transform(features []float64) ([]float64, error)
}

var (
	// ErrNotTrained is returned when inference is attempted on an unfitted model.
	ErrNotTrained = errors.New("model is not trained")
	// ErrDimensionMismatch is returned when a vector's length does not match
	// the dimensions the model was fitted on.
	ErrDimensionMismatch = errors.New("feature vector dimension mismatch")
)

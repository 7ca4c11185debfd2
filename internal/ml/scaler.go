package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// StandardScaler standardizes each feature to zero mean and unit variance
// using moments computed from the training set.
type StandardScaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// Fit computes per-feature mean and standard deviation from samples.
func (s *StandardScaler) Fit(samples [][]float64) error {
	if len(samples) == 0 {
		return fmt.Errorf("empty training data")
	}
	dims := len(samples[0])

	s.Mean = make([]float64, dims)
	s.Std = make([]float64, dims)

	for _, row := range samples {
		if len(row) != dims {
			return fmt.Errorf("%w: ragged sample of length %d", ErrDimensionMismatch, len(row))
		}
		for j, v := range row {
			s.Mean[j] += v
		}
	}
	n := float64(len(samples))
	for j := range s.Mean {
		s.Mean[j] /= n
	}

	for _, row := range samples {
		for j, v := range row {
			d := v - s.Mean[j]
			s.Std[j] += d * d
		}
	}
	for j := range s.Std {
		s.Std[j] = math.Sqrt(s.Std[j] / n)
		if s.Std[j] == 0 {
			// Constant feature, leave values unchanged.
			s.Std[j] = 1.0
		}
	}

	return nil
}

// Transform standardizes one feature vector.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(s.Mean) == 0 {
		return nil, ErrNotTrained
	}
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("%w: got %d features, scaler fitted on %d",
			ErrDimensionMismatch, len(features), len(s.Mean))
	}

	scaled := make([]float64, len(features))
	for j, v := range features {
		scaled[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return scaled, nil
}

// Save writes the scaler as a JSON artifact.
func (s *StandardScaler) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scaler: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scaler: %w", err)
	}
	return nil
}

// LoadScaler reads a scaler artifact written by Save.
func LoadScaler(path string) (*StandardScaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler: %w", err)
	}
	var s StandardScaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scaler: %w", err)
	}
	if len(s.Mean) == 0 || len(s.Mean) != len(s.Std) {
		return nil, ErrNotTrained
	}
	return &s, nil
}

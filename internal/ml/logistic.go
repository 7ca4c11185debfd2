package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// LogisticModel is a logistic regression classifier over a fixed-order
// feature vector. Weights are fitted offline with gradient descent.
type LogisticModel struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	Version string    `json:"version"`
	Trained bool      `json:"trained"`
}

// NewLogisticModel creates an untrained model for n features.
func NewLogisticModel(n int) *LogisticModel {
	return &LogisticModel{
		Weights: make([]float64, n),
		Version: "1.0.0",
	}
}

// PredictProbability returns the fraud probability for one feature vector.
func (m *LogisticModel) PredictProbability(features []float64) (float64, error) {
	if !m.Trained {
		return 0, ErrNotTrained
	}
	if len(features) != len(m.Weights) {
		return 0, fmt.Errorf("%w: got %d features, model has %d weights",
			ErrDimensionMismatch, len(features), len(m.Weights))
	}

	z := m.Bias
	for i, w := range m.Weights {
		z += w * features[i]
	}
	return sigmoid(z), nil
}

// TrainOptions control the gradient-descent fit.
type TrainOptions struct {
	Epochs       int
	LearningRate float64
}

// DefaultTrainOptions returns the options used by the training pipeline.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{Epochs: 100, LearningRate: 0.01}
}

// Train fits the model on scaled feature vectors and 0/1 labels using batch
// gradient descent on log loss.
func (m *LogisticModel) Train(samples [][]float64, labels []float64, opts TrainOptions) error {
	if len(samples) == 0 || len(samples) != len(labels) {
		return fmt.Errorf("invalid training data: %d samples, %d labels", len(samples), len(labels))
	}
	for _, s := range samples {
		if len(s) != len(m.Weights) {
			return fmt.Errorf("%w: sample has %d features, model has %d weights",
				ErrDimensionMismatch, len(s), len(m.Weights))
		}
	}

	n := float64(len(samples))
	for epoch := 0; epoch < opts.Epochs; epoch++ {
		gradW := make([]float64, len(m.Weights))
		gradB := 0.0

		for i, s := range samples {
			z := m.Bias
			for j, w := range m.Weights {
				z += w * s[j]
			}
			err := sigmoid(z) - labels[i]
			for j := range gradW {
				gradW[j] += err * s[j]
			}
			gradB += err
		}

		for j := range m.Weights {
			m.Weights[j] -= opts.LearningRate * gradW[j] / n
		}
		m.Bias -= opts.LearningRate * gradB / n
	}

	m.Trained = true
	return nil
}

// Save writes the model as a JSON artifact.
func (m *LogisticModel) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}

// LoadModel reads a model artifact written by Save.
func LoadModel(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var m LogisticModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if !m.Trained || len(m.Weights) == 0 {
		return nil, ErrNotTrained
	}
	return &m, nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

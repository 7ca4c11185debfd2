package main

import (
	"fmt"
	"log"

	"fraudguard/internal/dataset"
	"fraudguard/internal/ml"
	"fraudguard/internal/services/fraud"
	"fraudguard/internal/stats"
)

// runStats computes the per-feature reference table from a labeled dataset
// and writes it in the format the server's stats loader reads.
func runStats(dataPath, outPath string) error {
	samples, err := dataset.LoadCSV(dataPath)
	if err != nil {
		return err
	}
	log.Printf("loaded %d samples from %s", len(samples), dataPath)

	columns := map[string][]float64{
		stats.FeatureAmount:         make([]float64, 0, len(samples)),
		stats.FeatureOldBalanceOrig: make([]float64, 0, len(samples)),
		stats.FeatureNewBalanceOrig: make([]float64, 0, len(samples)),
		stats.FeatureOldBalanceDest: make([]float64, 0, len(samples)),
		stats.FeatureNewBalanceDest: make([]float64, 0, len(samples)),
	}
	for _, s := range samples {
		tx := s.Transaction
		columns[stats.FeatureAmount] = append(columns[stats.FeatureAmount], tx.Amount)
		columns[stats.FeatureOldBalanceOrig] = append(columns[stats.FeatureOldBalanceOrig], tx.OldBalanceOrig)
		columns[stats.FeatureNewBalanceOrig] = append(columns[stats.FeatureNewBalanceOrig], tx.NewBalanceOrig)
		columns[stats.FeatureOldBalanceDest] = append(columns[stats.FeatureOldBalanceDest], tx.OldBalanceDest)
		columns[stats.FeatureNewBalanceDest] = append(columns[stats.FeatureNewBalanceDest], tx.NewBalanceDest)
	}

	table := make(stats.Table, len(columns))
	for _, feature := range stats.NumericFeatures {
		fs, err := stats.Compute(columns[feature])
		if err != nil {
			return fmt.Errorf("summarize %s: %w", feature, err)
		}
		table[feature] = fs
	}

	if err := stats.Save(outPath, table); err != nil {
		return err
	}
	log.Printf("feature statistics written to %s", outPath)
	return nil
}

type trainConfig struct {
	dataPath     string
	modelPath    string
	scalerPath   string
	epochs       int
	learningRate float64
	testSplit    float64
}

// runTrain fits the scaler and the logistic model on the dataset, reports
// held-out accuracy, and writes both artifacts.
func runTrain(cfg trainConfig) error {
	samples, err := dataset.LoadCSV(cfg.dataPath)
	if err != nil {
		return err
	}
	log.Printf("loaded %d samples from %s", len(samples), cfg.dataPath)

	features := make([][]float64, len(samples))
	labels := make([]float64, len(samples))
	for i, s := range samples {
		features[i] = fraud.EncodeFeatures(s.Transaction)
		labels[i] = s.IsFraud
	}

	split := len(samples) - int(float64(len(samples))*cfg.testSplit)
	if split < 1 {
		split = len(samples)
	}
	trainX, testX := features[:split], features[split:]
	trainY, testY := labels[:split], labels[split:]

	scaler := &ml.StandardScaler{}
	if err := scaler.Fit(trainX); err != nil {
		return fmt.Errorf("fit scaler: %w", err)
	}

	scale := func(rows [][]float64) ([][]float64, error) {
		scaled := make([][]float64, len(rows))
		for i, row := range rows {
			s, err := scaler.Transform(row)
			if err != nil {
				return nil, err
			}
			scaled[i] = s
		}
		return scaled, nil
	}

	scaledTrain, err := scale(trainX)
	if err != nil {
		return fmt.Errorf("scale training data: %w", err)
	}

	model := ml.NewLogisticModel(fraud.FeatureCount)
	opts := ml.TrainOptions{Epochs: cfg.epochs, LearningRate: cfg.learningRate}
	log.Printf("training on %d samples, %d epochs", len(scaledTrain), opts.Epochs)
	if err := model.Train(scaledTrain, trainY, opts); err != nil {
		return fmt.Errorf("train model: %w", err)
	}

	if len(testX) > 0 {
		scaledTest, err := scale(testX)
		if err != nil {
			return fmt.Errorf("scale test data: %w", err)
		}
		correct := 0
		for i, row := range scaledTest {
			p, err := model.PredictProbability(row)
			if err != nil {
				return fmt.Errorf("evaluate model: %w", err)
			}
			predicted := 0.0
			if p > 0.5 {
				predicted = 1.0
			}
			if predicted == testY[i] {
				correct++
			}
		}
		log.Printf("held-out accuracy: %.4f (%d/%d)",
			float64(correct)/float64(len(scaledTest)), correct, len(scaledTest))
	}

	if err := model.Save(cfg.modelPath); err != nil {
		return err
	}
	if err := scaler.Save(cfg.scalerPath); err != nil {
		return err
	}
	log.Printf("artifacts written: %s, %s", cfg.modelPath, cfg.scalerPath)
	return nil
}

// fraudctl runs the offline pipeline: computing feature statistics and
// training the classifier artifacts the scoring server loads at startup.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "fraudctl",
		Short: "Offline pipeline for the fraud scoring service",
		Long: `fraudctl fits the artifacts the fraud scoring server consumes:
a standard scaler, a logistic regression classifier, and the per-feature
statistics table the anomaly detector compares transactions against.`,
		SilenceUsage: true,
	}

	root.AddCommand(newStatsCmd(), newTrainCmd(), newPipelineCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newStatsCmd() *cobra.Command {
	var dataPath, outPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute the feature statistics table from a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(dataPath, outPath)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "data/raw/transactions.csv", "labeled dataset (PaySim CSV)")
	cmd.Flags().StringVar(&outPath, "out", "models/feature_stats.json", "output statistics file")
	return cmd
}

func newTrainCmd() *cobra.Command {
	var dataPath, modelPath, scalerPath string
	var epochs int
	var learningRate, testSplit float64

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit the scaler and train the classifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(trainConfig{
				dataPath:     dataPath,
				modelPath:    modelPath,
				scalerPath:   scalerPath,
				epochs:       epochs,
				learningRate: learningRate,
				testSplit:    testSplit,
			})
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "data/raw/transactions.csv", "labeled dataset (PaySim CSV)")
	cmd.Flags().StringVar(&modelPath, "model", "models/fraud_model.json", "output model artifact")
	cmd.Flags().StringVar(&scalerPath, "scaler", "models/scaler.json", "output scaler artifact")
	cmd.Flags().IntVar(&epochs, "epochs", 100, "training epochs")
	cmd.Flags().Float64Var(&learningRate, "learning-rate", 0.01, "gradient descent learning rate")
	cmd.Flags().Float64Var(&testSplit, "test-split", 0.2, "held-out fraction for accuracy reporting")
	return cmd
}

func newPipelineCmd() *cobra.Command {
	var dataPath, modelPath, scalerPath, statsPath string

	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Run the full pipeline: statistics, then training",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Println("Starting fraud detection pipeline...")

			if err := runStats(dataPath, statsPath); err != nil {
				return fmt.Errorf("stats stage: %w", err)
			}
			if err := runTrain(trainConfig{
				dataPath:     dataPath,
				modelPath:    modelPath,
				scalerPath:   scalerPath,
				epochs:       100,
				learningRate: 0.01,
				testSplit:    0.2,
			}); err != nil {
				return fmt.Errorf("training stage: %w", err)
			}

			log.Println("Pipeline complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "data/raw/transactions.csv", "labeled dataset (PaySim CSV)")
	cmd.Flags().StringVar(&modelPath, "model", "models/fraud_model.json", "output model artifact")
	cmd.Flags().StringVar(&scalerPath, "scaler", "models/scaler.json", "output scaler artifact")
	cmd.Flags().StringVar(&statsPath, "stats", "models/feature_stats.json", "output statistics file")
	return cmd
}

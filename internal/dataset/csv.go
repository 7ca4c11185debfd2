// Package dataset reads labeled transaction data from PaySim-format CSV
// files for the offline training pipeline.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"fraudguard/internal/models"
)

// Sample is one labeled training row.
type Sample struct {
	Transaction models.Transaction
	IsFraud     float64
}

// requiredColumns are the dataset columns the pipeline consumes. Extra
// columns (account names etc.) are ignored.
var requiredColumns = []string{
	"step", "type", "amount",
	"oldbalanceOrg", "newbalanceOrig",
	"oldbalanceDest", "newbalanceDest",
	"isFraud",
}

// LoadCSV reads every well-formed row from a PaySim-format CSV with a header
// line. Malformed rows are skipped, matching how the training scripts treat
// dirty source data.
func LoadCSV(path string) ([]Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("dataset %s missing column %q", path, name)
		}
	}

	var samples []Sample
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if errors.Is(err, csv.ErrFieldCount) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		sample, err := parseRecord(record, cols)
		if err != nil {
			continue
		}
		samples = append(samples, sample)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("dataset %s contains no usable rows", path)
	}
	return samples, nil
}

func parseRecord(record []string, cols map[string]int) (Sample, error) {
	field := func(name string) string { return record[cols[name]] }

	step, err := strconv.Atoi(field("step"))
	if err != nil {
		return Sample{}, err
	}

	floats := make(map[string]float64, 6)
	for _, name := range []string{"amount", "oldbalanceOrg", "newbalanceOrig",
		"oldbalanceDest", "newbalanceDest", "isFraud"} {
		v, err := strconv.ParseFloat(field(name), 64)
		if err != nil {
			return Sample{}, err
		}
		floats[name] = v
	}

	flagged := 0
	if i, ok := cols["isFlaggedFraud"]; ok {
		if v, err := strconv.Atoi(record[i]); err == nil {
			flagged = v
		}
	}

	txType := models.TransactionType(field("type"))
	if !txType.Valid() {
		return Sample{}, fmt.Errorf("unknown transaction type %q", field("type"))
	}

	return Sample{
		Transaction: models.Transaction{
			Step:           step,
			Amount:         floats["amount"],
			OldBalanceOrig: floats["oldbalanceOrg"],
			NewBalanceOrig: floats["newbalanceOrig"],
			OldBalanceDest: floats["oldbalanceDest"],
			NewBalanceDest: floats["newbalanceDest"],
			Type:           txType,
			IsFlaggedFraud: flagged,
		},
		IsFraud: floats["isFraud"],
	}, nil
}

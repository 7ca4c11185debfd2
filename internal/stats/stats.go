// Package stats holds the per-feature reference statistics the anomaly
// detector compares incoming transactions against. The table is loaded once
// at startup and treated as read-only for the lifetime of the process.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
)

// Feature names, matching the dataset columns the statistics were computed from.
const (
	FeatureAmount         = "amount"
	FeatureOldBalanceOrig = "oldbalanceOrg"
	FeatureNewBalanceOrig = "newbalanceOrig"
	FeatureOldBalanceDest = "oldbalanceDest"
	FeatureNewBalanceDest = "newbalanceDest"
)

// NumericFeatures lists the monitored features in detection order.
var NumericFeatures = []string{
	FeatureAmount,
	FeatureOldBalanceOrig,
	FeatureNewBalanceOrig,
	FeatureOldBalanceDest,
	FeatureNewBalanceDest,
}

// FeatureStats summarizes the training-data distribution of one feature.
type FeatureStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Q25  float64 `json:"q25"`
	Q50  float64 `json:"q50"`
	Q75  float64 `json:"q75"`
	Q99  float64 `json:"q99"`
}

// Table maps a feature name to its reference statistics.
type Table map[string]FeatureStats

// Provider supplies a reference table. Implementations must return the same
// table on every call; the source is chosen once at startup.
type Provider interface {
	Stats() Table
	Source() string
}

type staticProvider struct {
	table  Table
	source string
}

func (p *staticProvider) Stats() Table   { return p.table }
func (p *staticProvider) Source() string { return p.source }

// Bundled returns the built-in reference table, computed offline from the
// PaySim training set. It is the deterministic fallback when no statistics
// file is available.
func Bundled() Provider {
	return &staticProvider{source: "bundled", table: Table{
		FeatureAmount: {
			Mean: 179553.0, Std: 603858.0,
			Min: 0.0, Max: 92445516.0,
			Q25: 13.55, Q50: 74.87, Q75: 208.0, Q99: 1111864.0,
		},
		FeatureOldBalanceOrig: {
			Mean: 835641.0, Std: 2888242.0,
			Min: 0.0, Max: 59585040.0,
			Q25: 0.0, Q50: 14208.0, Q75: 107360.0, Q99: 8940000.0,
		},
		FeatureNewBalanceOrig: {
			Mean: 855113.0, Std: 2908293.0,
			Min: 0.0, Max: 49585040.0,
			Q25: 0.0, Q50: 0.0, Q75: 144587.0, Q99: 9253364.0,
		},
		FeatureOldBalanceDest: {
			Mean: 1100701.0, Std: 3399180.0,
			Min: 0.0, Max: 356015089.0,
			Q25: 0.0, Q50: 0.0, Q75: 324784.0, Q99: 14239246.0,
		},
		FeatureNewBalanceDest: {
			Mean: 1224996.0, Std: 3564366.0,
			Min: 0.0, Max: 356179278.0,
			Q25: 0.0, Q50: 0.0, Q75: 417334.0, Q99: 14928629.0,
		},
	}}
}

// LoadFile reads a statistics table from a JSON file produced by
// `fraudctl stats`. The table must cover every monitored feature.
func LoadFile(path string) (Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stats file: %w", err)
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse stats file: %w", err)
	}

	for _, feature := range NumericFeatures {
		if _, ok := table[feature]; !ok {
			return nil, fmt.Errorf("stats file %s missing feature %q", path, feature)
		}
	}

	return &staticProvider{table: table, source: path}, nil
}

// Load selects the statistics source: the file at path when it loads cleanly,
// otherwise the bundled defaults. The choice is made once and reported to the
// caller via Source.
func Load(path string) (Provider, error) {
	if path == "" {
		return Bundled(), nil
	}
	p, err := LoadFile(path)
	if err != nil {
		return Bundled(), err
	}
	return p, nil
}

// Save writes a table as JSON, the format LoadFile reads back.
func Save(path string, table Table) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	return nil
}

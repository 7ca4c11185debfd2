package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundled_CoversAllFeatures(t *testing.T) {
	table := Bundled().Stats()

	for _, feature := range NumericFeatures {
		fs, ok := table[feature]
		require.True(t, ok, "missing feature %s", feature)
		assert.Greater(t, fs.Max, fs.Q99, "%s: max above q99", feature)
		assert.GreaterOrEqual(t, fs.Q99, fs.Q75, "%s: q99 above q75", feature)
		assert.Positive(t, fs.Std, "%s: std positive", feature)
	}
	assert.Equal(t, "bundled", Bundled().Source())
}

func TestBundled_Deterministic(t *testing.T) {
	assert.Equal(t, Bundled().Stats(), Bundled().Stats())
}

func TestLoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feature_stats.json")
	original := Bundled().Stats()

	require.NoError(t, Save(path, original))

	provider, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, provider.Stats())
	assert.Equal(t, path, provider.Source())
}

func TestLoadFile_MissingFeature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	table := Bundled().Stats()
	delete(table, FeatureAmount)
	require.NoError(t, Save(path, table))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "missing feature")
}

func TestLoadFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoad_FallsBackToBundled(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		provider, err := Load("")
		assert.NoError(t, err)
		assert.Equal(t, "bundled", provider.Source())
	})

	t.Run("missing file", func(t *testing.T) {
		provider, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
		assert.Equal(t, "bundled", provider.Source(), "fallback must still be usable")
		assert.Equal(t, Bundled().Stats(), provider.Stats())
	})
}

func TestCompute(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	fs, err := Compute(values)
	require.NoError(t, err)

	assert.InDelta(t, 5.5, fs.Mean, 1e-9)
	assert.Equal(t, 1.0, fs.Min)
	assert.Equal(t, 10.0, fs.Max)
	assert.InDelta(t, 5.5, fs.Q50, 1e-9)
	assert.InDelta(t, 3.25, fs.Q25, 1e-9)
	assert.InDelta(t, 7.75, fs.Q75, 1e-9)
	assert.InDelta(t, 9.91, fs.Q99, 1e-9)
	assert.InDelta(t, 2.8722813, fs.Std, 1e-6)
}

func TestCompute_Empty(t *testing.T) {
	_, err := Compute(nil)
	assert.Error(t, err)
}

func TestCompute_SingleValue(t *testing.T) {
	fs, err := Compute([]float64{42})
	require.NoError(t, err)

	assert.Equal(t, 42.0, fs.Mean)
	assert.Equal(t, 42.0, fs.Min)
	assert.Equal(t, 42.0, fs.Max)
	assert.Equal(t, 42.0, fs.Q99)
	assert.Zero(t, fs.Std)
}

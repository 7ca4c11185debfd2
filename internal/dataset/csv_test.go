package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"fraudguard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const header = "step,type,amount,nameOrig,oldbalanceOrg,newbalanceOrig,nameDest,oldbalanceDest,newbalanceDest,isFraud,isFlaggedFraud\n"

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, header+
		"1,PAYMENT,9839.64,C1231006815,170136.0,160296.36,M1979787155,0.0,0.0,0,0\n"+
		"1,TRANSFER,181.0,C1305486145,181.0,0.0,C553264065,0.0,0.0,1,0\n")

	samples, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	first := samples[0]
	assert.Equal(t, models.TransactionTypePayment, first.Transaction.Type)
	assert.Equal(t, 9839.64, first.Transaction.Amount)
	assert.Equal(t, 170136.0, first.Transaction.OldBalanceOrig)
	assert.Equal(t, 0.0, first.IsFraud)

	assert.Equal(t, models.TransactionTypeTransfer, samples[1].Transaction.Type)
	assert.Equal(t, 1.0, samples[1].IsFraud)
}

func TestLoadCSV_SkipsMalformedRows(t *testing.T) {
	path := writeCSV(t, header+
		"1,PAYMENT,9839.64,C1,170136.0,160296.36,M1,0.0,0.0,0,0\n"+
		"oops,PAYMENT,1.0,C2,0.0,0.0,M2,0.0,0.0,0,0\n"+
		"1,BOGUS_TYPE,1.0,C3,0.0,0.0,M3,0.0,0.0,0,0\n")

	samples, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Len(t, samples, 1)
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	path := writeCSV(t, "step,type,amount\n1,PAYMENT,10\n")

	_, err := LoadCSV(path)
	assert.ErrorContains(t, err, "missing column")
}

func TestLoadCSV_NoUsableRows(t *testing.T) {
	path := writeCSV(t, header)

	_, err := LoadCSV(path)
	assert.ErrorContains(t, err, "no usable rows")
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

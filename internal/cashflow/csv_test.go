package cashflow

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"nuclear-lcoe/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLedgerCSV(t *testing.T) {
	p := model.DefaultProjectParams()
	c := model.DefaultCostParams()

	result, err := BuildLedger(p, c)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, WriteLedgerCSV(path, result.Ledger))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(result.Ledger)+1)

	header := records[0]
	require.Len(t, header, 12)
	assert.Equal(t, "year", header[0])
	assert.Equal(t, "operational_reactors", header[1])
	assert.Equal(t, "cum_discounted_energy_mwh", header[11])

	// Spot-check the first data row against the ledger.
	first := records[1]
	year, err := strconv.Atoi(first[0])
	require.NoError(t, err)
	assert.Equal(t, result.Ledger[0].Year, year)
	capex, err := strconv.ParseFloat(first[2], 64)
	require.NoError(t, err)
	assert.InDelta(t, result.Ledger[0].CapexUSD, capex, 1e-3)
}

func TestWriteLedgerCSVBadPath(t *testing.T) {
	err := WriteLedgerCSV(filepath.Join(t.TempDir(), "missing", "ledger.csv"), nil)
	assert.Error(t, err)
}

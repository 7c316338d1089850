package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canetrack/internal/dto"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleData() ([]dto.HarvestResponse, *dto.ComparisonResponse) {
	harvests := []dto.HarvestResponse{
		{
			LotID: "LOT-1", Type: "manual",
			HarvestDate:     time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			ExpectedTonnes:  dec("100.0"), HarvestedTonnes: dec("85.0"),
			EfficiencyPct: dec("85"), LossPct: dec("15"),
		},
		{
			LotID: "LOT-2", Type: "mechanized",
			HarvestDate:     time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC),
			ExpectedTonnes:  dec("50.0"), HarvestedTonnes: dec("47.5"),
			EfficiencyPct: dec("95"), LossPct: dec("5"),
		},
	}
	comparison := &dto.ComparisonResponse{
		Total: 2,
		Manual: dto.TypeStats{Count: 1, AvgEfficiency: dec("85"), AvgLoss: dec("15"),
			MinEfficiency: dec("85"), MaxEfficiency: dec("85")},
		Mechanized: dto.TypeStats{Count: 1, AvgEfficiency: dec("95"), AvgLoss: dec("5"),
			MinEfficiency: dec("95"), MaxEfficiency: dec("95")},
		EfficiencyGap:   dec("10"),
		Recommendations: []string{"Mechanized harvesting is 10.00% more efficient than manual."},
	}
	return harvests, comparison
}

func TestRenderContainsRecordsAndComparison(t *testing.T) {
	harvests, comparison := sampleData()
	out := Render(harvests, comparison, time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "SUGARCANE HARVEST EFFICIENCY REPORT")
	assert.Contains(t, out, "Generated: 26/08/2026 12:00:00")
	assert.Contains(t, out, "Lot LOT-1 - manual - 10/08/2026")
	assert.Contains(t, out, "Efficiency: 85.00% | Loss: 15.00%")
	assert.Contains(t, out, "Lot LOT-2 - mechanized - 11/08/2026")
	assert.Contains(t, out, "Efficiency: 95.00% | Loss: 5.00%")
	assert.Contains(t, out, "COMPARISON: MANUAL vs MECHANIZED")
	assert.Contains(t, out, "Efficiency gap: 10.00%")
	assert.Contains(t, out, "- Mechanized harvesting is 10.00% more efficient than manual.")
}

func TestRenderEmpty(t *testing.T) {
	out := Render(nil, &dto.ComparisonResponse{}, time.Now())
	assert.Contains(t, out, "No harvests registered.")
}

func TestWriteText(t *testing.T) {
	harvests, comparison := sampleData()
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := WriteText(harvests, comparison, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "harvest_report_"))
	assert.True(t, strings.HasSuffix(path, ".txt"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUGARCANE HARVEST EFFICIENCY REPORT")
}

func TestWritePDF(t *testing.T) {
	harvests, comparison := sampleData()
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := WritePDF(harvests, comparison, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

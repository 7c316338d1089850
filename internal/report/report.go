// Package report renders the analytical harvest report. The text layout is
// the contract consumers read; PDF export is a convenience mirror of it.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"canetrack/internal/dto"
)

const divider = "=================================================="

// Render produces the plain-text report body: header, per-record
// efficiency/loss lines, and the manual-vs-mechanized comparison.
func Render(harvests []dto.HarvestResponse, comparison *dto.ComparisonResponse, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b, "      SUGARCANE HARVEST EFFICIENCY REPORT")
	fmt.Fprintf(&b, "      Generated: %s\n", generatedAt.Format("02/01/2006 15:04:05"))
	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b)

	if len(harvests) == 0 {
		fmt.Fprintln(&b, "No harvests registered.")
		return b.String()
	}

	fmt.Fprintln(&b, "SUMMARY")
	fmt.Fprintf(&b, "Total records: %d\n", comparison.Total)
	fmt.Fprintf(&b, "Manual harvests: %d\n", comparison.Manual.Count)
	fmt.Fprintf(&b, "Mechanized harvests: %d\n", comparison.Mechanized.Count)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "RECORDS")
	for _, h := range harvests {
		fmt.Fprintf(&b, "Lot %s - %s - %s\n", h.LotID, h.Type, h.HarvestDate.Format("02/01/2006"))
		fmt.Fprintf(&b, "  Expected: %st | Harvested: %st\n",
			h.ExpectedTonnes.StringFixed(2), h.HarvestedTonnes.StringFixed(2))
		fmt.Fprintf(&b, "  Efficiency: %s%% | Loss: %s%%\n",
			h.EfficiencyPct.StringFixed(2), h.LossPct.StringFixed(2))
		if h.Notes != nil && *h.Notes != "" {
			fmt.Fprintf(&b, "  Notes: %s\n", *h.Notes)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, "COMPARISON: MANUAL vs MECHANIZED")
	writeCohort(&b, "Manual", comparison.Manual)
	writeCohort(&b, "Mechanized", comparison.Mechanized)
	fmt.Fprintf(&b, "Efficiency gap: %s%%\n", comparison.EfficiencyGap.StringFixed(2))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "RECOMMENDATIONS")
	for _, r := range comparison.Recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	return b.String()
}

func writeCohort(b *strings.Builder, name string, stats dto.TypeStats) {
	if stats.Count == 0 {
		fmt.Fprintf(b, "%s: no records\n", name)
		return
	}
	fmt.Fprintf(b, "%s: %d record(s) | avg efficiency %s%% | avg loss %s%% | min %s%% | max %s%%\n",
		name, stats.Count,
		stats.AvgEfficiency.StringFixed(2), stats.AvgLoss.StringFixed(2),
		stats.MinEfficiency.StringFixed(2), stats.MaxEfficiency.StringFixed(2))
}

// WriteText renders the report and writes it to a timestamped file under dir.
// Returns the path of the generated artifact.
func WriteText(harvests []dto.HarvestResponse, comparison *dto.ComparisonResponse, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create output dir: %w", err)
	}
	now := time.Now()
	path := filepath.Join(dir, fmt.Sprintf("harvest_report_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(Render(harvests, comparison, now)), 0o644); err != nil {
		return "", fmt.Errorf("report: write: %w", err)
	}
	return path, nil
}

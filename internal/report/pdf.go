package report

// pdf.go — PDF export of the harvest report using go-pdf/fpdf. A4 portrait:
//   - Title header with generation timestamp
//   - Per-lot table (lot, type, expected, harvested, efficiency, loss)
//   - Cohort comparison block and recommendations
// The output file is saved to dir/harvest_report_{timestamp}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"canetrack/internal/dto"
)

// WritePDF generates the PDF rendition of the report and returns its path.
func WritePDF(harvests []dto.HarvestResponse, comparison *dto.ComparisonResponse, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create output dir: %w", err)
	}
	now := time.Now()
	path := filepath.Join(dir, fmt.Sprintf("harvest_report_%s.pdf", now.Format("20060102_150405")))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Sugarcane Harvest Efficiency Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Generated: "+now.Format("02/01/2006 15:04:05"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(harvests) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW, 6, "No harvests registered.", "", 1, "L", false, 0, "")
		return path, pdf.OutputFileAndClose(path)
	}

	// ── Records table ─────────────────────────────────────────────────────────
	colLot := contentW * 0.18
	colType := contentW * 0.18
	colNum := contentW * 0.16

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colLot, 6, "Lot", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colType, 6, "Type", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colNum, 6, "Expected (t)", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colNum, 6, "Harvested (t)", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colNum, 6, "Efficiency %", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colNum, 6, "Loss %", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, h := range harvests {
		pdf.CellFormat(colLot, 6, h.LotID, "", 0, "L", false, 0, "")
		pdf.CellFormat(colType, 6, h.Type, "", 0, "L", false, 0, "")
		pdf.CellFormat(colNum, 6, h.ExpectedTonnes.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(colNum, 6, h.HarvestedTonnes.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(colNum, 6, h.EfficiencyPct.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(colNum, 6, h.LossPct.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Comparison ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Comparison: Manual vs Mechanized", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	writePDFCohort(pdf, contentW, "Manual", comparison.Manual)
	writePDFCohort(pdf, contentW, "Mechanized", comparison.Mechanized)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Efficiency gap: %s%%", comparison.EfficiencyGap.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Recommendations", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, r := range comparison.Recommendations {
		pdf.MultiCell(contentW, 5, "- "+r, "", "L", false)
	}

	return path, pdf.OutputFileAndClose(path)
}

func writePDFCohort(pdf *fpdf.Fpdf, w float64, name string, stats dto.TypeStats) {
	if stats.Count == 0 {
		pdf.CellFormat(w, 5, name+": no records", "", 1, "L", false, 0, "")
		return
	}
	line := fmt.Sprintf("%s: %d record(s), avg efficiency %s%%, avg loss %s%%, min %s%%, max %s%%",
		name, stats.Count,
		stats.AvgEfficiency.StringFixed(2), stats.AvgLoss.StringFixed(2),
		stats.MinEfficiency.StringFixed(2), stats.MaxEfficiency.StringFixed(2))
	pdf.CellFormat(w, 5, line, "", 1, "L", false, 0, "")
}

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HarvestType distinguishes manual cutting from mechanized harvesters.
type HarvestType string

const (
	Manual     HarvestType = "manual"
	Mechanized HarvestType = "mechanized"
)

// ParseHarvestType normalizes user input into a HarvestType.
func ParseHarvestType(s string) (HarvestType, bool) {
	switch HarvestType(strings.ToLower(strings.TrimSpace(s))) {
	case Manual:
		return Manual, true
	case Mechanized:
		return Mechanized, true
	}
	return "", false
}

// Harvest represents one sugarcane harvest lot. A record is written once and
// never mutated; corrections are modeled as delete + re-create so the ledger
// stays immutable.
type Harvest struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	LotID           string          `gorm:"uniqueIndex;not null" json:"lot_id"`
	Type            HarvestType     `gorm:"not null" json:"harvest_type"`
	HarvestDate     time.Time       `gorm:"not null" json:"harvest_date"`
	ExpectedTonnes  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"expected_tonnes"`
	HarvestedTonnes decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"harvested_tonnes"`
	// EfficiencyPct and LossPct are derived from the two quantities. They are
	// stored for human inspection of the raw table/file but recomputed on
	// every read — the quantities are the source of truth.
	EfficiencyPct decimal.Decimal `gorm:"type:decimal(5,2)" json:"efficiency_pct"`
	LossPct       decimal.Decimal `gorm:"type:decimal(5,2)" json:"loss_pct"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (Harvest) TableName() string { return "harvests" }

var hundred = decimal.NewFromInt(100)

// Efficiency returns harvested/expected as a percentage, rounded to two
// decimal places. Harvesting more than expected counts as 100%, not more.
func (h *Harvest) Efficiency() decimal.Decimal {
	if h.ExpectedTonnes.Sign() <= 0 {
		return decimal.Zero
	}
	eff := h.HarvestedTonnes.Div(h.ExpectedTonnes).Mul(hundred)
	if eff.GreaterThan(hundred) {
		return hundred
	}
	return eff.Round(2)
}

// Loss returns the complement of Efficiency, rounded to two decimal places.
func (h *Harvest) Loss() decimal.Decimal {
	if h.ExpectedTonnes.Sign() <= 0 {
		return decimal.Zero
	}
	return hundred.Sub(h.Efficiency()).Round(2)
}

// Recompute refreshes the derived columns from the stored quantities. Called
// on every read path so drift in a persisted copy never survives a load.
func (h *Harvest) Recompute() {
	h.EfficiencyPct = h.Efficiency()
	h.LossPct = h.Loss()
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterHarvestRequest struct {
	LotID           string          `json:"lot_id"           validate:"required,min=1"`
	Type            string          `json:"harvest_type"     validate:"required,oneof=manual mechanized"`
	HarvestDate     time.Time       `json:"harvest_date"     validate:"required"`
	ExpectedTonnes  decimal.Decimal `json:"expected_tonnes"`
	HarvestedTonnes decimal.Decimal `json:"harvested_tonnes"`
	Notes           *string         `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type HarvestResponse struct {
	ID              string          `json:"id"`
	LotID           string          `json:"lot_id"`
	Type            string          `json:"harvest_type"`
	HarvestDate     time.Time       `json:"harvest_date"`
	ExpectedTonnes  decimal.Decimal `json:"expected_tonnes"`
	HarvestedTonnes decimal.Decimal `json:"harvested_tonnes"`
	EfficiencyPct   decimal.Decimal `json:"efficiency_pct"`
	LossPct         decimal.Decimal `json:"loss_pct"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TypeStats aggregates one harvest-type cohort.
type TypeStats struct {
	Count         int             `json:"count"`
	AvgEfficiency decimal.Decimal `json:"avg_efficiency"`
	AvgLoss       decimal.Decimal `json:"avg_loss"`
	MinEfficiency decimal.Decimal `json:"min_efficiency"`
	MaxEfficiency decimal.Decimal `json:"max_efficiency"`
}

type ComparisonResponse struct {
	Total           int             `json:"total"`
	Manual          TypeStats       `json:"manual"`
	Mechanized      TypeStats       `json:"mechanized"`
	EfficiencyGap   decimal.Decimal `json:"efficiency_gap"`
	Recommendations []string        `json:"recommendations"`
}

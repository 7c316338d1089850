package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHarvest(expected, harvested string) *Harvest {
	return &Harvest{
		LotID:           "LOT-1",
		Type:            Manual,
		ExpectedTonnes:  decimal.RequireFromString(expected),
		HarvestedTonnes: decimal.RequireFromString(harvested),
	}
}

func TestEfficiencyAndLoss(t *testing.T) {
	cases := []struct {
		name      string
		expected  string
		harvested string
		wantEff   string
		wantLoss  string
	}{
		{"typical", "100.0", "85.0", "85", "15"},
		{"fractional", "50.0", "47.5", "95", "5"},
		{"total loss", "80.0", "0", "0", "100"},
		{"full harvest", "120.0", "120.0", "100", "0"},
		{"over-harvest clamps to 100", "50.0", "60.0", "100", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarvest(tc.expected, tc.harvested)
			assert.True(t, h.Efficiency().Equal(decimal.RequireFromString(tc.wantEff)),
				"efficiency = %s", h.Efficiency())
			assert.True(t, h.Loss().Equal(decimal.RequireFromString(tc.wantLoss)),
				"loss = %s", h.Loss())
		})
	}
}

func TestEfficiencyPlusLossIsAlwaysHundred(t *testing.T) {
	pairs := [][2]string{
		{"100", "85"}, {"50", "47.5"}, {"0.1", "0.07"}, {"10000", "9333.33"},
		{"3", "1"}, {"7", "6.99"},
	}
	for _, p := range pairs {
		h := newHarvest(p[0], p[1])
		sum := h.Efficiency().Add(h.Loss())
		assert.True(t, sum.Equal(decimal.NewFromInt(100)),
			"expected=%s harvested=%s: efficiency+loss = %s", p[0], p[1], sum)
	}
}

func TestEfficiencyZeroExpected(t *testing.T) {
	h := newHarvest("0", "10")
	assert.True(t, h.Efficiency().IsZero())
	assert.True(t, h.Loss().IsZero())
}

func TestRecomputeOverwritesDriftedMetrics(t *testing.T) {
	h := newHarvest("100.0", "85.0")
	// Simulate a persisted copy whose derived columns drifted.
	h.EfficiencyPct = decimal.NewFromInt(50)
	h.LossPct = decimal.NewFromInt(50)

	h.Recompute()
	assert.True(t, h.EfficiencyPct.Equal(decimal.NewFromInt(85)))
	assert.True(t, h.LossPct.Equal(decimal.NewFromInt(15)))
}

func TestParseHarvestType(t *testing.T) {
	for _, in := range []string{"manual", "Manual", "  MANUAL "} {
		got, ok := ParseHarvestType(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, Manual, got)
	}

	got, ok := ParseHarvestType("mechanized")
	require.True(t, ok)
	assert.Equal(t, Mechanized, got)

	_, ok = ParseHarvestType("combine")
	assert.False(t, ok)
}

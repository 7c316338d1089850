package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canetrack/internal/apperror"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertCode(t *testing.T, err error, code apperror.ValidationCode) {
	t.Helper()
	var ve *apperror.ValidationError
	require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
	assert.Equal(t, code, ve.Code)
}

func TestValidateAccepts(t *testing.T) {
	cases := []struct {
		name      string
		expected  string
		harvested string
	}{
		{"typical", "100.0", "85.0"},
		{"lower bound", "0.1", "0"},
		{"upper bound", "10000.0", "10000.0"},
		{"over-harvest", "50.0", "60.0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, Validate(dec(tc.expected), dec(tc.harvested), "LOT-1", nil))
		})
	}
}

func TestValidateExpectedOutOfRange(t *testing.T) {
	assertCode(t, Validate(dec("0.05"), dec("0"), "LOT-1", nil), apperror.OutOfRange)
	assertCode(t, Validate(dec("10000.01"), dec("0"), "LOT-1", nil), apperror.OutOfRange)
	assertCode(t, Validate(dec("0"), dec("0"), "LOT-1", nil), apperror.OutOfRange)
	assertCode(t, Validate(dec("-5"), dec("0"), "LOT-1", nil), apperror.OutOfRange)
}

func TestValidateHarvestedBounds(t *testing.T) {
	assertCode(t, Validate(dec("100"), dec("-0.01"), "LOT-1", nil), apperror.NegativeQuantity)
	assertCode(t, Validate(dec("100"), dec("10000.01"), "LOT-1", nil), apperror.OutOfRange)
}

func TestValidateDuplicateLot(t *testing.T) {
	existing := IDSet{"LOT-1": {}, "LOT-2": {}}
	assertCode(t, Validate(dec("100"), dec("80"), "LOT-1", existing), apperror.DuplicateLot)
	assert.NoError(t, Validate(dec("100"), dec("80"), "LOT-3", existing))
}

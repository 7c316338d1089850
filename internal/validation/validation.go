// Package validation holds the pure business rules for harvest drafts. No
// I/O, no side effects — the service feeds in the current ID set and the
// quantities and gets back the first broken rule.
package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"canetrack/internal/apperror"
)

// Tonnage bounds for one lot. A reading below the minimum is an entry error,
// not a harvest; above the maximum is beyond any single lot's capacity.
var (
	MinExpectedTonnes = decimal.RequireFromString("0.1")
	MaxTonnes         = decimal.NewFromInt(10000)
)

// IDSet is the set of lot IDs already known to either store.
type IDSet map[string]struct{}

// Validate checks a harvest draft against the business rules. Returns nil
// when the draft is acceptable, otherwise a *apperror.ValidationError.
func Validate(expected, harvested decimal.Decimal, lotID string, existing IDSet) error {
	if expected.LessThan(MinExpectedTonnes) || expected.GreaterThan(MaxTonnes) {
		return apperror.NewValidation(apperror.OutOfRange, "expected_tonnes",
			fmt.Sprintf("must be between %s and %s tonnes, got %s", MinExpectedTonnes, MaxTonnes, expected))
	}
	if harvested.IsNegative() {
		return apperror.NewValidation(apperror.NegativeQuantity, "harvested_tonnes",
			fmt.Sprintf("must not be negative, got %s", harvested))
	}
	if harvested.GreaterThan(MaxTonnes) {
		return apperror.NewValidation(apperror.OutOfRange, "harvested_tonnes",
			fmt.Sprintf("must not exceed %s tonnes, got %s", MaxTonnes, harvested))
	}
	if _, dup := existing[lotID]; dup {
		return apperror.NewValidation(apperror.DuplicateLot, "lot_id",
			fmt.Sprintf("lot %q is already registered", lotID))
	}
	return nil
}

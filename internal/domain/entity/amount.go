package entity

import (
	"fmt"
	"math"

	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
)

// Donation amounts are whole Kenyan shillings; the partner API only accepts
// integer amounts, so every submitted value is rounded to the nearest unit.

// ValidateAmount checks that a submitted donation amount is a positive,
// finite value and rounds it to the nearest whole unit.
func ValidateAmount(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: not a finite number", errs.ErrInvalidAmount)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: must be positive, got %v", errs.ErrInvalidAmount, amount)
	}

	rounded := int64(math.Round(amount))
	if rounded <= 0 {
		return 0, fmt.Errorf("%w: rounds to zero", errs.ErrInvalidAmount)
	}

	return rounded, nil
}

// RoundAmount rounds a contribution amount to the nearest whole unit.
// Used on the callback path, where the partner reports the paid amount
// as a JSON number.
func RoundAmount(amount float64) int64 {
	return int64(math.Round(amount))
}

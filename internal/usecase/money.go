package usecase

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be greater than zero")

// MinorUnits converts a major-unit amount to integer minor units, rounding
// half-up to exactly 2 decimal places before scaling by 100.
//
// Exact for any currency with a 2-decimal minor unit. Currencies with 0 or
// 3 decimals (JPY, BHD, ...) are not supported.
func MinorUnits(amount float64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return decimal.NewFromFloat(amount).Round(2).Mul(decimal.NewFromInt(100)).IntPart(), nil
}

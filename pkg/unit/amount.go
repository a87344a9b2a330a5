package unit

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits carried by the wire form.
const Decimals = 18

var (
	// ErrInvalidAmount is returned when the input is not a valid decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount is returned when the input is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrPrecisionLoss is returned when the input carries more than 18
	// fractional digits and converting it would silently truncate value.
	ErrPrecisionLoss = errors.New("amount exceeds 18 decimal places")
)

// ToWire parses a display-form decimal string and returns the equivalent
// amount in base units (scaled by 10^18).
func ToWire(display string) (*big.Int, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	return DecimalToWire(d)
}

// DecimalToWire converts a display-form decimal value to base units.
func DecimalToWire(d decimal.Decimal) (*big.Int, error) {
	if d.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativeAmount, d.String())
	}
	shifted := d.Shift(Decimals)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("%w: %s", ErrPrecisionLoss, d.String())
	}
	return shifted.BigInt(), nil
}

// FromWire converts a base-unit amount to its display-form decimal value.
// A nil input is treated as zero.
func FromWire(wire *big.Int) decimal.Decimal {
	if wire == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wire, -Decimals)
}

// ToDisplay converts a base-unit amount to a display-form decimal string.
func ToDisplay(wire *big.Int) string {
	return FromWire(wire).String()
}

// Package rates derives hourly rates from contracted order prices and checks
// stored billable amounts against them.
//
// Rounding policy: every conversion to minor currency units rounds half-up
// (x.5 goes to x+1). Inputs are always positive, so decimal.Round(0), which
// rounds half away from zero, is exactly half-up here.
package rates

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid rate input")

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

func toMinorUnits(d decimal.Decimal, what string) (int64, error) {
	if d.GreaterThan(maxMinorUnits) {
		return 0, fmt.Errorf("%w: %s %s overflows int64 minor units", ErrInvalidInput, what, d.String())
	}
	return d.IntPart(), nil
}

// Drift is the result of comparing a stored billable amount with the amount
// recomputed from hours and rate.
type Drift struct {
	Expected  int64
	Stored    int64
	Delta     int64
	Tolerance int64
	Exceeded  bool
}

// DeriveHourlyRate returns totalPrice / plannedHours rounded half-up to the
// minor unit.
func DeriveHourlyRate(totalPrice int64, plannedHours decimal.Decimal) (int64, error) {
	if totalPrice <= 0 {
		return 0, fmt.Errorf("%w: total price must be positive, got %d", ErrInvalidInput, totalPrice)
	}
	if !plannedHours.IsPositive() {
		return 0, fmt.Errorf("%w: planned hours must be positive, got %s", ErrInvalidInput, plannedHours.String())
	}
	q, r := decimal.NewFromInt(totalPrice).QuoRem(plannedHours, 0)
	if r.Add(r).GreaterThanOrEqual(plannedHours) {
		q = q.Add(decimal.NewFromInt(1))
	}
	return toMinorUnits(q, "hourly rate")
}

// ExpectedBillableAmount returns hours * hourlyRate rounded half-up.
func ExpectedBillableAmount(hours decimal.Decimal, hourlyRate int64) (int64, error) {
	if !hours.IsPositive() {
		return 0, fmt.Errorf("%w: hours must be positive, got %s", ErrInvalidInput, hours.String())
	}
	if hourlyRate < 0 {
		return 0, fmt.Errorf("%w: hourly rate must not be negative, got %d", ErrInvalidInput, hourlyRate)
	}
	return toMinorUnits(hours.Mul(decimal.NewFromInt(hourlyRate)).Round(0), "billable amount")
}

// CheckBillable recomputes the billable amount for hours at hourlyRate and
// reports how far stored is from it. Exceeded is set when the absolute delta
// is strictly greater than tolerance.
func CheckBillable(hours decimal.Decimal, hourlyRate, stored, tolerance int64) (Drift, error) {
	expected, err := ExpectedBillableAmount(hours, hourlyRate)
	if err != nil {
		return Drift{}, err
	}
	if tolerance < 0 {
		tolerance = 0
	}
	delta := stored - expected
	if delta < 0 {
		delta = -delta
	}
	return Drift{
		Expected:  expected,
		Stored:    stored,
		Delta:     delta,
		Tolerance: tolerance,
		Exceeded:  delta > tolerance,
	}, nil
}

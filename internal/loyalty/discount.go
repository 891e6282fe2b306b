// Package loyalty computes the volume discount a customer earns from the
// total of their orders.
package loyalty

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/customer-report/internal/domain/customer"
)

// ErrNegativeRate is returned by NewPolicy when the discount rate is below zero.
var ErrNegativeRate = errors.New("discount rate must not be negative")

var (
	defaultThreshold = decimal.NewFromInt(1000)
	defaultRate      = decimal.New(1, -1)
)

// Policy grants Rate of the total once the total strictly exceeds Threshold.
type Policy struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// DefaultPolicy returns 10% off totals above 1000.
func DefaultPolicy() Policy {
	return Policy{Threshold: defaultThreshold, Rate: defaultRate}
}

// NewPolicy parses threshold and rate from their decimal string form.
func NewPolicy(threshold, rate string) (Policy, error) {
	t, err := decimal.NewFromString(threshold)
	if err != nil {
		return Policy{}, errors.Wrapf(err, "parse threshold %q", threshold)
	}
	r, err := decimal.NewFromString(rate)
	if err != nil {
		return Policy{}, errors.Wrapf(err, "parse rate %q", rate)
	}
	if r.IsNegative() {
		return Policy{}, errors.Wrapf(ErrNegativeRate, "rate %s", r)
	}
	return Policy{Threshold: t, Rate: r}, nil
}

// Discount returns total*Rate when total > Threshold, otherwise zero.
// A total equal to the threshold earns nothing.
func (p Policy) Discount(total decimal.Decimal) decimal.Decimal {
	if !total.GreaterThan(p.Threshold) {
		return decimal.Zero
	}
	return total.Mul(p.Rate)
}

// Calculate returns the discount for the customer's current order total.
func (p Policy) Calculate(c *customer.Customer) decimal.Decimal {
	return p.Discount(c.TotalAmount())
}

// CalculateDiscount applies DefaultPolicy to c.
func CalculateDiscount(c *customer.Customer) decimal.Decimal {
	return DefaultPolicy().Calculate(c)
}

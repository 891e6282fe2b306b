// Package report builds per-customer summaries and renders them.
package report

import (
	"os"

	"github.com/shopspring/decimal"

	"github.com/xenking/customer-report/internal/domain/customer"
	"github.com/xenking/customer-report/internal/loyalty"
)

// Report is a snapshot of one customer's order aggregates.
type Report struct {
	CustomerName string
	OrderCount   int
	TotalAmount  decimal.Decimal
	Discount     decimal.Decimal
	AverageOrder decimal.Decimal
}

// Build computes the report for c under the given discount policy.
//
// With no orders AverageOrder is set to the total (always zero in that case)
// instead of dividing by the count.
func Build(c *customer.Customer, policy loyalty.Policy) Report {
	count := c.OrderCount()
	total := c.TotalAmount()

	average := total
	if count > 0 {
		average = total.Div(decimal.NewFromInt(int64(count)))
	}

	return Report{
		CustomerName: c.Name(),
		OrderCount:   count,
		TotalAmount:  total,
		Discount:     policy.Calculate(c),
		AverageOrder: average,
	}
}

// PrintCustomerReport writes the five-line text report for c to standard
// output using the default discount policy.
func PrintCustomerReport(c *customer.Customer) error {
	return TextRenderer{}.Render(os.Stdout, Build(c, loyalty.DefaultPolicy()))
}

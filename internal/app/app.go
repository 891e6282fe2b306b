package app

import (
	"context"
	"io"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/customer-report/internal/domain/customer"
	"github.com/xenking/customer-report/internal/loyalty"
	"github.com/xenking/customer-report/internal/report"
)

// DemoCustomers returns the fixed demonstration data set: one customer with
// two orders and one with none.
func DemoCustomers() []*customer.Customer {
	sap := customer.NewCustomer(1, "SAP Customer")
	sap.AddOrder(customer.NewOrder(101, decimal.NewFromInt(500)))
	sap.AddOrder(customer.NewOrder(102, decimal.NewFromInt(800)))

	empty := customer.NewCustomer(2, "Empty Customer")

	return []*customer.Customer{sap, empty}
}

// Run renders a report for every demo customer to w. It is the single wiring
// point for the application.
func Run(ctx context.Context, lg *zap.Logger, opts *Options, w io.Writer) error {
	lg.Info("Starting demo", zap.String("format", opts.Format))

	customers := DemoCustomers()
	for _, c := range customers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := render(lg, opts.Renderer, opts.Policy, c, w); err != nil {
			return errors.Wrapf(err, "report for customer %d", c.ID())
		}
	}

	lg.Info("Demo completed", zap.Int("customers", len(customers)))
	return nil
}

func render(lg *zap.Logger, renderer report.Renderer, policy loyalty.Policy, c *customer.Customer, w io.Writer) error {
	r := report.Build(c, policy)
	lg.Debug("Rendering report",
		zap.Int64("customer_id", c.ID()),
		zap.Int("orders", r.OrderCount),
		zap.Stringer("total", r.TotalAmount),
		zap.Stringer("discount", r.Discount),
	)
	return renderer.Render(w, r)
}

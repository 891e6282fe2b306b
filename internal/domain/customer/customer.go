package customer

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Customer owns an ordered, append-only sequence of orders.
//
// A Customer is not safe for concurrent use: AddOrder must not run alongside
// any of the read methods.
type Customer struct {
	id     int64
	name   string
	orders []Order
}

// NewCustomer creates a Customer with no orders.
func NewCustomer(id int64, name string) *Customer {
	return &Customer{id: id, name: name}
}

// ID returns the caller-assigned customer identifier.
func (c *Customer) ID() int64 { return c.id }

// Name returns the customer display name.
func (c *Customer) Name() string { return c.name }

// AddOrder appends o to the end of the order sequence.
func (c *Customer) AddOrder(o Order) {
	c.orders = append(c.orders, o)
}

// Orders returns a copy of the orders in insertion order.
func (c *Customer) Orders() []Order {
	return slices.Clone(c.orders)
}

// OrderCount returns the number of orders added so far.
func (c *Customer) OrderCount() int { return len(c.orders) }

// TotalAmount returns the sum of all order amounts, or zero when there are no
// orders. The sum is recomputed on every call.
func (c *Customer) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, o := range c.orders {
		total = total.Add(o.amount)
	}
	return total
}

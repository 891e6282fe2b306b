package customer

import "github.com/shopspring/decimal"

// Order is a single purchase. It has no mutators: once built, its id and
// amount stay as passed to NewOrder.
type Order struct {
	id     int64
	amount decimal.Decimal
}

// NewOrder creates an Order. Neither the id nor the amount is validated.
func NewOrder(id int64, amount decimal.Decimal) Order {
	return Order{id: id, amount: amount}
}

// ID returns the caller-assigned order identifier.
func (o Order) ID() int64 { return o.id }

// Amount returns the order cost.
func (o Order) Amount() decimal.Decimal { return o.amount }

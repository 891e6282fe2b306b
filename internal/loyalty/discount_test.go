package loyalty

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/customer-report/internal/domain/customer"
)

func customerWith(amounts ...string) *customer.Customer {
	c := customer.NewCustomer(1, "test")
	for i, a := range amounts {
		c.AddOrder(customer.NewOrder(int64(i+1), decimal.RequireFromString(a)))
	}
	return c
}

func TestCalculateDiscount(t *testing.T) {
	tests := []struct {
		name    string
		amounts []string
		want    string
	}{
		{name: "no orders", want: "0"},
		{name: "below threshold", amounts: []string{"999.99"}, want: "0"},
		{name: "exactly at threshold", amounts: []string{"1000"}, want: "0"},
		{name: "exactly at threshold with fraction", amounts: []string{"1000.0"}, want: "0"},
		{name: "just above threshold", amounts: []string{"1000.01"}, want: "100.001"},
		{name: "two orders above threshold", amounts: []string{"500", "800"}, want: "130"},
		{name: "two orders summing to threshold", amounts: []string{"400", "600"}, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDiscount(customerWith(tt.amounts...))
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestPolicy_Discount_Custom(t *testing.T) {
	p := Policy{Threshold: decimal.NewFromInt(100), Rate: decimal.RequireFromString("0.25")}

	assert.True(t, decimal.Zero.Equal(p.Discount(decimal.NewFromInt(100))))
	assert.True(t, decimal.NewFromInt(50).Equal(p.Discount(decimal.NewFromInt(200))))
}

func TestNewPolicy(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := NewPolicy("1000", "0.1")
		require.NoError(t, err)
		assert.True(t, DefaultPolicy().Threshold.Equal(p.Threshold))
		assert.True(t, DefaultPolicy().Rate.Equal(p.Rate))
	})

	t.Run("bad threshold", func(t *testing.T) {
		_, err := NewPolicy("lots", "0.1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse threshold")
	})

	t.Run("bad rate", func(t *testing.T) {
		_, err := NewPolicy("1000", "ten percent")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse rate")
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := NewPolicy("1000", "-0.1")
		require.ErrorIs(t, err, ErrNegativeRate)
	})
}

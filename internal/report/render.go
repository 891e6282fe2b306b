package report

import (
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// ErrUnknownFormat is returned by NewRenderer for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown report format")

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer writes a Report to w.
type Renderer interface {
	Render(w io.Writer, r Report) error
}

// NewRenderer returns the Renderer for the named format.
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case FormatText:
		return TextRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// TextRenderer writes one "<label> <value>" line per report field.
type TextRenderer struct{}

// Render implements Renderer.
func (TextRenderer) Render(w io.Writer, r Report) error {
	lines := []struct {
		label string
		value any
	}{
		{"Customer Report for:", r.CustomerName},
		{"Total Orders:", r.OrderCount},
		{"Total Amount:", r.TotalAmount},
		{"Discount:", r.Discount},
		{"Average Order:", r.AverageOrder},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l.label, l.value); err != nil {
			return errors.Wrapf(err, "write %q", l.label)
		}
	}
	return nil
}

// JSONRenderer writes the report as a single JSON object followed by a newline.
// Monetary values are encoded as JSON numbers.
type JSONRenderer struct{}

// Render implements Renderer.
func (JSONRenderer) Render(w io.Writer, r Report) error {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("customer_name", func(e *jx.Encoder) { e.Str(r.CustomerName) })
		e.Field("order_count", func(e *jx.Encoder) { e.Int(r.OrderCount) })
		e.Field("total_amount", encodeDecimal(r.TotalAmount))
		e.Field("discount", encodeDecimal(r.Discount))
		e.Field("average_order", encodeDecimal(r.AverageOrder))
	})

	buf := append(e.Bytes(), '\n')
	if _, err := w.Write(buf); err != nil {
		return errors.Wrap(err, "write json report")
	}
	return nil
}

func encodeDecimal(d decimal.Decimal) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		e.Num(jx.Num(d.String()))
	}
}

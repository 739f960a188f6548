package orders

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Reconciliation compares the declared order total with the sum of line items
// that carry a numeric price.
type Reconciliation struct {
	Declared  decimal.Decimal
	LineTotal decimal.Decimal
	Priced    int
	Unpriced  int
}

// Matches reports whether the priced line items add up to the declared total.
// Orders with no priced lines cannot be checked and always match.
func (r Reconciliation) Matches() bool {
	if r.Priced == 0 {
		return true
	}
	return r.Declared.Round(2).Equal(r.LineTotal.Round(2))
}

// Reconcile sums price × quantity across items. A missing quantity counts as 1.
func Reconcile(items []map[string]any, total float64) Reconciliation {
	rec := Reconciliation{Declared: decimal.NewFromFloat(total), LineTotal: decimal.Zero}
	for _, item := range items {
		price, ok := numeric(item["price"])
		if !ok {
			rec.Unpriced++
			continue
		}
		qty := decimal.NewFromInt(1)
		if raw, present := item["quantity"]; present {
			if q, ok := numeric(raw); ok {
				qty = q
			}
		}
		rec.LineTotal = rec.LineTotal.Add(price.Mul(qty))
		rec.Priced++
	}
	return rec
}

func numeric(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case string:
		if _, err := strconv.ParseFloat(n, 64); err != nil {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(n)
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

package receipt

import (
	"math"
	"strconv"

	"zassprint/internal/model"
)

// Fallback unit prices used when a row is missing from the price table.
// These model a degraded mode; a normally seeded table always wins.
const (
	defaultBlackWhitePrice   = 0.15
	defaultColorPrice        = 1.50
	defaultBindingPrice      = 25.00
	defaultStickerLabelPrice = 10.00
	defaultPaperLabelPrice   = 5.00
)

const (
	cdStickerLabel     = "Sticker Label"
	collectionDelivery = "Delivery"
)

// Breakdown is the full receipt computation: every per-line unit price and
// total plus the three closing figures.
type Breakdown struct {
	ColorUnit       float64
	ColorTotal      float64
	BlackWhiteUnit  float64
	BlackWhiteTotal float64
	CoverUnit       float64
	CoverTotal      float64
	LabelUnit       float64
	LabelTotal      float64
	ShippingTotal   float64
	GrandTotal      float64
	Deposit         float64
	Balance         float64
}

// Calculate derives the receipt breakdown for an order against the unit
// price table. It is a pure function of its inputs.
//
// A missing delivery price has no fallback: the shipping line becomes NaN
// and poisons the grand total. That reproduces a known gap in the shop's
// pricing flow rather than inventing a default.
func Calculate(o *model.ThesisOrder, prices model.PriceList) Breakdown {
	var b Breakdown

	b.ColorUnit = lookupOr(prices, model.PriceColor, defaultColorPrice)
	b.ColorTotal = float64(o.Copies) * float64(o.ColorPages) * b.ColorUnit

	b.BlackWhiteUnit = lookupOr(prices, model.PriceBlackWhite, defaultBlackWhitePrice)
	b.BlackWhiteTotal = float64(o.Copies) * float64(o.BlackWhitePages) * b.BlackWhiteUnit

	b.CoverUnit = lookupOr(prices, model.PriceBinding, defaultBindingPrice)
	b.CoverTotal = float64(o.Copies) * b.CoverUnit

	if o.CDCopies != nil && *o.CDCopies > 0 {
		if o.CDLabel != nil && *o.CDLabel == cdStickerLabel {
			b.LabelUnit = lookupOr(prices, model.PriceStickerLabel, defaultStickerLabelPrice)
		} else {
			b.LabelUnit = lookupOr(prices, model.PricePaperLabel, defaultPaperLabelPrice)
		}
		b.LabelTotal = float64(*o.CDCopies) * b.LabelUnit
	}

	if o.CollectionMethod == collectionDelivery {
		amount, ok := prices.Lookup(model.PriceDelivery)
		if !ok {
			amount = math.NaN()
		}
		b.ShippingTotal = amount
	}

	b.GrandTotal = b.ColorTotal + b.BlackWhiteTotal + b.CoverTotal + b.LabelTotal + b.ShippingTotal
	b.Deposit = math.Trunc(b.GrandTotal / 2)
	b.Balance = b.GrandTotal - b.Deposit

	return b
}

func lookupOr(prices model.PriceList, name string, fallback float64) float64 {
	if amount, ok := prices.Lookup(name); ok {
		return amount
	}
	return fallback
}

// Money formats an amount with two decimal places for display.
func Money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Package pricing computes the itemized monetary breakdown for a cart
// snapshot. Settle is pure: no I/O, no mutation, and invalid numeric input is
// normalized instead of rejected so the checkout path always gets a number.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/fabzclean/pos/pos/pkg/cart"
)

var (
	// ExpressRate is the surcharge applied to the base subtotal of an
	// express order.
	ExpressRate = decimal.New(5, -1)
	// GSTRate is the tax applied to the taxable base when GST is enabled.
	GSTRate = decimal.New(18, -2)

	oneHundred = decimal.NewFromInt(100)
)

type Breakdown struct {
	ItemCount        int32           `json:"item_count"`
	BaseSubtotal     decimal.Decimal `json:"base_subtotal"`
	AddOnTotal       decimal.Decimal `json:"add_on_total"`
	ExpressSurcharge decimal.Decimal `json:"express_surcharge"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	DeliveryAmount   decimal.Decimal `json:"delivery_amount"`
	ExtraCharges     decimal.Decimal `json:"extra_charges"`
	GSTAmount        decimal.Decimal `json:"gst_amount"`
	Total            decimal.Decimal `json:"total"`
}

// Settle applies the fixed order of operations: base subtotal, express
// surcharge, discount, delivery, extra charges, GST, total. Surcharge and
// discount apply to the goods value only (base subtotal, add-ons excluded);
// tax applies after discount to a base that includes add-ons, delivery and
// extra charges. Amounts stay unrounded; display rounding is the caller's
// concern.
func Settle(c cart.Cart) Breakdown {
	b := Breakdown{
		BaseSubtotal:     decimal.Zero,
		AddOnTotal:       decimal.Zero,
		ExpressSurcharge: decimal.Zero,
		DiscountAmount:   decimal.Zero,
		DeliveryAmount:   decimal.Zero,
		ExtraCharges:     decimal.Zero,
		GSTAmount:        decimal.Zero,
		Total:            decimal.Zero,
	}

	for _, item := range c.Items {
		if item.Quantity < 1 {
			continue
		}
		b.ItemCount += item.Quantity
		if sub := item.Subtotal(); sub.IsPositive() {
			b.BaseSubtotal = b.BaseSubtotal.Add(sub)
		}
		if sub := item.AddOnSubtotal(); sub.IsPositive() {
			b.AddOnTotal = b.AddOnTotal.Add(sub)
		}
	}

	if c.IsExpressOrder {
		b.ExpressSurcharge = b.BaseSubtotal.Mul(ExpressRate)
	}

	b.DiscountAmount = discountAmount(c, b.BaseSubtotal.Add(b.ExpressSurcharge))

	if c.FulfillmentType == cart.FulfillmentDelivery && c.DeliveryCharges.IsPositive() {
		b.DeliveryAmount = c.DeliveryCharges
	}
	if c.ExtraCharges.IsPositive() {
		b.ExtraCharges = c.ExtraCharges
	}

	taxable := b.BaseSubtotal.
		Add(b.AddOnTotal).
		Add(b.ExpressSurcharge).
		Sub(b.DiscountAmount).
		Add(b.DeliveryAmount).
		Add(b.ExtraCharges)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	if c.EnableGST {
		b.GSTAmount = taxable.Mul(GSTRate)
	}

	b.Total = taxable.Add(b.GSTAmount)
	return b
}

// discountAmount clamps to [0, goods] where goods is baseSubtotal plus
// express surcharge. A coupon never reaches this code directly: coupon
// application already rewrote DiscountType and DiscountValue on the cart.
func discountAmount(c cart.Cart, goods decimal.Decimal) decimal.Decimal {
	value := c.DiscountValue
	if value.IsNegative() {
		value = decimal.Zero
	}

	switch c.DiscountType {
	case cart.DiscountPercentage:
		amount := goods.Mul(value).Div(oneHundred)
		if amount.GreaterThan(goods) {
			return goods
		}
		return amount
	case cart.DiscountFixed:
		if value.GreaterThan(goods) {
			return goods
		}
		return value
	default:
		return decimal.Zero
	}
}

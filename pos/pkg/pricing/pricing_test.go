package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fabzclean/pos/pos/pkg/cart"
)

func assertBreakdown(t *testing.T, expected, actual Breakdown) {
	t.Helper()
	assert.EqualValues(t, expected.ItemCount, actual.ItemCount, "item count should be equal")
	assertDecimal(t, expected.BaseSubtotal, actual.BaseSubtotal, "base subtotal")
	assertDecimal(t, expected.AddOnTotal, actual.AddOnTotal, "add-on total")
	assertDecimal(t, expected.ExpressSurcharge, actual.ExpressSurcharge, "express surcharge")
	assertDecimal(t, expected.DiscountAmount, actual.DiscountAmount, "discount amount")
	assertDecimal(t, expected.DeliveryAmount, actual.DeliveryAmount, "delivery amount")
	assertDecimal(t, expected.ExtraCharges, actual.ExtraCharges, "extra charges")
	assertDecimal(t, expected.GSTAmount, actual.GSTAmount, "gst amount")
	assertDecimal(t, expected.Total, actual.Total, "total")
}

func assertDecimal(t *testing.T, expected, actual decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, expected.Equal(actual), "%s should be %s but got %s", field, expected, actual)
}

func item(price int64, quantity int32) cart.Item {
	return cart.Item{
		ServiceName: "Wash & Fold",
		Quantity:    quantity,
		Price:       decimal.NewFromInt(price),
		AddOns:      []cart.AddOn{},
	}
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name     string
		input    cart.Cart
		expected Breakdown
	}{
		{
			name: "given one item price 100 quantity 2 with gst off should total 200",
			input: cart.Cart{
				Items: []cart.Item{item(100, 2)},
			},
			expected: Breakdown{
				ItemCount:    2,
				BaseSubtotal: decimal.NewFromInt(200),
				Total:        decimal.NewFromInt(200),
			},
		},
		{
			name: "given express order should surcharge half the base subtotal",
			input: cart.Cart{
				Items:          []cart.Item{item(100, 2)},
				IsExpressOrder: true,
			},
			expected: Breakdown{
				ItemCount:        2,
				BaseSubtotal:     decimal.NewFromInt(200),
				ExpressSurcharge: decimal.NewFromInt(100),
				Total:            decimal.NewFromInt(300),
			},
		},
		{
			name: "given ten percent discount on subtotal 200 should discount 20",
			input: cart.Cart{
				Items:         []cart.Item{item(100, 2)},
				DiscountType:  cart.DiscountPercentage,
				DiscountValue: decimal.NewFromInt(10),
			},
			expected: Breakdown{
				ItemCount:      2,
				BaseSubtotal:   decimal.NewFromInt(200),
				DiscountAmount: decimal.NewFromInt(20),
				Total:          decimal.NewFromInt(180),
			},
		},
		{
			name: "given percentage discount on express order should discount base plus surcharge",
			input: cart.Cart{
				Items:          []cart.Item{item(100, 2)},
				IsExpressOrder: true,
				DiscountType:   cart.DiscountPercentage,
				DiscountValue:  decimal.NewFromInt(10),
			},
			expected: Breakdown{
				ItemCount:        2,
				BaseSubtotal:     decimal.NewFromInt(200),
				ExpressSurcharge: decimal.NewFromInt(100),
				DiscountAmount:   decimal.NewFromInt(30),
				Total:            decimal.NewFromInt(270),
			},
		},
		{
			name: "given gst enabled should tax the discounted base",
			input: cart.Cart{
				Items:     []cart.Item{item(100, 2)},
				EnableGST: true,
			},
			expected: Breakdown{
				ItemCount:    2,
				BaseSubtotal: decimal.NewFromInt(200),
				GSTAmount:    decimal.NewFromInt(36),
				Total:        decimal.NewFromInt(236),
			},
		},
		{
			name: "given fixed discount larger than goods value should clamp to goods value",
			input: cart.Cart{
				Items:         []cart.Item{item(100, 1)},
				DiscountType:  cart.DiscountFixed,
				DiscountValue: decimal.NewFromInt(150),
			},
			expected: Breakdown{
				ItemCount:      1,
				BaseSubtotal:   decimal.NewFromInt(100),
				DiscountAmount: decimal.NewFromInt(100),
				Total:          decimal.Zero,
			},
		},
		{
			name: "given percentage discount above one hundred should clamp to goods value",
			input: cart.Cart{
				Items:         []cart.Item{item(100, 1)},
				DiscountType:  cart.DiscountPercentage,
				DiscountValue: decimal.NewFromInt(250),
			},
			expected: Breakdown{
				ItemCount:      1,
				BaseSubtotal:   decimal.NewFromInt(100),
				DiscountAmount: decimal.NewFromInt(100),
				Total:          decimal.Zero,
			},
		},
		{
			name: "given negative discount value should discount nothing",
			input: cart.Cart{
				Items:         []cart.Item{item(100, 1)},
				DiscountType:  cart.DiscountFixed,
				DiscountValue: decimal.NewFromInt(-40),
			},
			expected: Breakdown{
				ItemCount:    1,
				BaseSubtotal: decimal.NewFromInt(100),
				Total:        decimal.NewFromInt(100),
			},
		},
		{
			name: "given delivery charges on a pickup order should not charge delivery",
			input: cart.Cart{
				Items:           []cart.Item{item(100, 1)},
				FulfillmentType: cart.FulfillmentPickup,
				DeliveryCharges: decimal.NewFromInt(40),
			},
			expected: Breakdown{
				ItemCount:    1,
				BaseSubtotal: decimal.NewFromInt(100),
				Total:        decimal.NewFromInt(100),
			},
		},
		{
			name: "given delivery order should add delivery charges after the discount",
			input: cart.Cart{
				Items:           []cart.Item{item(100, 1)},
				FulfillmentType: cart.FulfillmentDelivery,
				DeliveryCharges: decimal.NewFromInt(40),
				DiscountType:    cart.DiscountPercentage,
				DiscountValue:   decimal.NewFromInt(50),
			},
			expected: Breakdown{
				ItemCount:      1,
				BaseSubtotal:   decimal.NewFromInt(100),
				DiscountAmount: decimal.NewFromInt(50),
				DeliveryAmount: decimal.NewFromInt(40),
				Total:          decimal.NewFromInt(90),
			},
		},
		{
			name: "given add-ons should tax them but never surcharge them",
			input: cart.Cart{
				Items: []cart.Item{
					{
						ServiceName: "Dry Clean",
						Quantity:    1,
						Price:       decimal.NewFromInt(100),
						AddOns: []cart.AddOn{
							{Name: "Stain Treatment", Price: decimal.NewFromInt(20)},
						},
					},
				},
				IsExpressOrder: true,
				EnableGST:      true,
			},
			expected: Breakdown{
				ItemCount:        1,
				BaseSubtotal:     decimal.NewFromInt(100),
				AddOnTotal:       decimal.NewFromInt(20),
				ExpressSurcharge: decimal.NewFromInt(50),
				GSTAmount:        decimal.NewFromFloat(30.6),
				Total:            decimal.NewFromFloat(200.6),
			},
		},
		{
			name: "given extra charges should include them in the taxable base",
			input: cart.Cart{
				Items:        []cart.Item{item(100, 1)},
				ExtraCharges: decimal.NewFromInt(25),
				EnableGST:    true,
			},
			expected: Breakdown{
				ItemCount:    1,
				BaseSubtotal: decimal.NewFromInt(100),
				ExtraCharges: decimal.NewFromInt(25),
				GSTAmount:    decimal.NewFromFloat(22.5),
				Total:        decimal.NewFromFloat(147.5),
			},
		},
		{
			name: "given zero quantity item should contribute nothing",
			input: cart.Cart{
				Items: []cart.Item{item(100, 0)},
			},
			expected: Breakdown{},
		},
		{
			name: "given negative price item should keep the subtotal at zero",
			input: cart.Cart{
				Items: []cart.Item{item(-10, 1)},
			},
			expected: Breakdown{ItemCount: 1},
		},
		{
			name:     "given empty cart should settle to zero",
			input:    cart.Cart{},
			expected: Breakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Settle(tt.input)
			assertBreakdown(t, tt.expected, actual)
		})
	}
}

func TestSettleDeterminism(t *testing.T) {
	input := cart.Cart{
		Items: []cart.Item{
			{
				ServiceName: "Wash & Iron",
				Quantity:    3,
				Price:       decimal.NewFromInt(90),
				AddOns: []cart.AddOn{
					{Name: "Fabric Softener", Price: decimal.NewFromInt(10)},
				},
			},
		},
		IsExpressOrder:  true,
		EnableGST:       true,
		FulfillmentType: cart.FulfillmentDelivery,
		DeliveryCharges: decimal.NewFromInt(40),
		DiscountType:    cart.DiscountPercentage,
		DiscountValue:   decimal.NewFromInt(15),
	}

	first := Settle(input)
	second := Settle(input)

	assert.EqualValues(t, first, second, "repeated settlement of the same cart should be identical")
}

func TestSettleQuantityMonotonicity(t *testing.T) {
	base := cart.Cart{
		Items:          []cart.Item{item(100, 2)},
		IsExpressOrder: true,
		EnableGST:      true,
		DiscountType:   cart.DiscountPercentage,
		DiscountValue:  decimal.NewFromInt(10),
	}
	more := base
	more.Items = []cart.Item{item(100, 3)}

	assert.True(
		t,
		Settle(more).Total.GreaterThanOrEqual(Settle(base).Total),
		"raising a quantity should never lower the total",
	)
}

func TestSettleGSTMonotonicity(t *testing.T) {
	withoutGST := cart.Cart{Items: []cart.Item{item(100, 2)}}
	withGST := withoutGST
	withGST.EnableGST = true

	assert.True(
		t,
		Settle(withGST).Total.GreaterThanOrEqual(Settle(withoutGST).Total),
		"enabling gst should never lower the total",
	)
}

func TestSettleDiscountBound(t *testing.T) {
	tests := []struct {
		name  string
		input cart.Cart
	}{
		{
			name: "fixed discount far above goods value",
			input: cart.Cart{
				Items:         []cart.Item{item(100, 1)},
				DiscountType:  cart.DiscountFixed,
				DiscountValue: decimal.NewFromInt(100000),
			},
		},
		{
			name: "percentage discount far above one hundred",
			input: cart.Cart{
				Items:          []cart.Item{item(100, 2)},
				IsExpressOrder: true,
				DiscountType:   cart.DiscountPercentage,
				DiscountValue:  decimal.NewFromInt(400),
			},
		},
		{
			name: "discount on an empty cart",
			input: cart.Cart{
				DiscountType:  cart.DiscountFixed,
				DiscountValue: decimal.NewFromInt(50),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Settle(tt.input)
			goods := b.BaseSubtotal.Add(b.ExpressSurcharge)
			assert.True(
				t,
				b.DiscountAmount.LessThanOrEqual(goods),
				"discount should never exceed base subtotal plus surcharge",
			)
			assert.False(t, b.Total.IsNegative(), "total should never be negative")
		})
	}
}

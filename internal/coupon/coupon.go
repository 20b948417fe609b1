package coupon

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/pos/pkg/cart"
)

// Coupon is a discount rule keyed by its customer-facing code. MinOrder is
// checked against the cart's base subtotal, before surcharges and tax.
type Coupon struct {
	Code     string            `json:"code"`
	Type     cart.DiscountType `json:"type"`
	Value    decimal.Decimal   `json:"value"`
	MinOrder decimal.Decimal   `json:"min_order"`
}

type Store interface {
	FindByCode(c context.Context, code string) (Coupon, error)
}

// Normalize maps user input to the canonical form codes are stored in.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type Memory struct {
	mu      sync.RWMutex
	coupons map[string]Coupon
}

func NewMemory(coupons []Coupon) *Memory {
	m := &Memory{coupons: map[string]Coupon{}}
	for _, cp := range coupons {
		cp.Code = Normalize(cp.Code)
		m.coupons[cp.Code] = cp
	}
	return m
}

func NewSeededMemory() *Memory {
	return NewMemory([]Coupon{
		{
			Code:     "WELCOME10",
			Type:     cart.DiscountPercentage,
			Value:    decimal.NewFromInt(10),
			MinOrder: decimal.NewFromInt(100),
		},
		{
			Code:     "FLAT50",
			Type:     cart.DiscountFixed,
			Value:    decimal.NewFromInt(50),
			MinOrder: decimal.NewFromInt(300),
		},
	})
}

func (m *Memory) FindByCode(c context.Context, code string) (Coupon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cp, ok := m.coupons[Normalize(code)]
	if !ok {
		return Coupon{}, inErrors.ErrCouponNotFound
	}
	return cp, nil
}

package coupon

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/pos/pkg/cart"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase is uppercased", input: "welcome10", expected: "WELCOME10"},
		{name: "surrounding whitespace is trimmed", input: "  FLAT50\t", expected: "FLAT50"},
		{name: "mixed case with whitespace", input: " wElCoMe10 ", expected: "WELCOME10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualValues(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestMemoryFindByCode(t *testing.T) {
	c := context.Background()
	store := NewSeededMemory()

	tests := []struct {
		name        string
		code        string
		expected    Coupon
		expectedErr error
	}{
		{
			name: "given exact code should find the coupon",
			code: "WELCOME10",
			expected: Coupon{
				Code:     "WELCOME10",
				Type:     cart.DiscountPercentage,
				Value:    decimal.NewFromInt(10),
				MinOrder: decimal.NewFromInt(100),
			},
		},
		{
			name: "given lowercase code with whitespace should find the coupon",
			code: "  flat50 ",
			expected: Coupon{
				Code:     "FLAT50",
				Type:     cart.DiscountFixed,
				Value:    decimal.NewFromInt(50),
				MinOrder: decimal.NewFromInt(300),
			},
		},
		{
			name:        "given unknown code should return not found",
			code:        "NOSUCHCODE",
			expectedErr: inErrors.ErrCouponNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := store.FindByCode(c, tt.code)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr, "error should be equal to expected")
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tt.expected.Code, actual.Code)
			assert.EqualValues(t, tt.expected.Type, actual.Type)
			assert.True(t, tt.expected.Value.Equal(actual.Value), "coupon value should be equal to expected")
			assert.True(t, tt.expected.MinOrder.Equal(actual.MinOrder), "coupon minimum order should be equal to expected")
		})
	}
}

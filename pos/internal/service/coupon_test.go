package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/pos/pkg/cart"
	"github.com/fabzclean/pos/pos/pkg/request"
)

func TestApplyCoupon(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	addItems(t, f, cartId, f.dryClean.ID, 2)

	detail, err := f.manager.ApplyCoupon(c, cartId, request.ApplyCoupon{Code: "WELCOME10"})
	assert.NoError(t, err)
	assert.NotNil(t, detail)
	assert.EqualValues(t, cart.DiscountPercentage, detail.Cart.DiscountType)
	assert.True(t, detail.Cart.DiscountValue.Equal(decimal.NewFromInt(10)))
	assert.EqualValues(t, "WELCOME10", detail.Cart.CouponCode)
	assert.True(
		t,
		detail.Breakdown.DiscountAmount.Equal(decimal.NewFromInt(20)),
		"ten percent of a 200 subtotal should discount 20",
	)
}

func TestApplyCouponNormalizesCode(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	addItems(t, f, cartId, f.dryClean.ID, 2)

	detail, err := f.manager.ApplyCoupon(c, cartId, request.ApplyCoupon{Code: "  welcome10 "})
	assert.NoError(t, err)
	assert.EqualValues(t, "WELCOME10", detail.Cart.CouponCode, "the cart should keep the canonical code")
}

func TestApplyCouponBelowMinimumOrder(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	addItems(t, f, cartId, f.washFold.ID, 1)

	detail, err := f.manager.ApplyCoupon(c, cartId, request.ApplyCoupon{Code: "FLAT50"})
	assert.Nil(t, detail)

	minOrderErr := &inErrors.CouponMinOrderError{}
	assert.True(t, errors.As(err, &minOrderErr), "an ineligible coupon should fail with the minimum order error")
	assert.EqualValues(t, "FLAT50", minOrderErr.Code)
	assert.True(t, minOrderErr.MinOrder.Equal(decimal.NewFromInt(300)))
	assert.True(t, minOrderErr.Subtotal.Equal(decimal.NewFromInt(60)))

	unchanged := f.manager.FindCartById(c, cartId)
	assert.EqualValues(t, cart.DiscountNone, unchanged.Cart.DiscountType, "a failed coupon should leave the cart untouched")
	assert.True(t, unchanged.Cart.DiscountValue.IsZero())
	assert.Empty(t, unchanged.Cart.CouponCode)
}

func TestApplyCouponMinimumIgnoresSurcharge(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	addItems(t, f, cartId, f.dryClean.ID, 2)

	express := true
	f.manager.UpdateCart(c, cartId, request.UpdateCart{IsExpressOrder: &express})

	_, err := f.manager.ApplyCoupon(c, cartId, request.ApplyCoupon{Code: "FLAT50"})
	assert.Error(t, err, "eligibility should count the base subtotal only, not the express surcharge")

	minOrderErr := &inErrors.CouponMinOrderError{}
	assert.True(t, errors.As(err, &minOrderErr))
	assert.True(t, minOrderErr.Subtotal.Equal(decimal.NewFromInt(200)))
}

func TestApplyCouponUnknownCode(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	addItems(t, f, cartId, f.dryClean.ID, 2)

	detail, err := f.manager.ApplyCoupon(c, cartId, request.ApplyCoupon{Code: "NOSUCHCODE"})
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, inErrors.ErrCouponNotFound)

	unchanged := f.manager.FindCartById(c, cartId)
	assert.EqualValues(t, cart.DiscountNone, unchanged.Cart.DiscountType)
}

func TestApplyCouponUnknownCart(t *testing.T) {
	c := testContext()
	f := setupManager(5)

	detail, err := f.manager.ApplyCoupon(c, uuid.New(), request.ApplyCoupon{Code: "WELCOME10"})
	assert.Nil(t, detail)
	assert.NoError(t, err)
}

func TestApplyCouponReplacesPreviousCoupon(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	addItems(t, f, cartId, f.dryClean.ID, 3)

	_, err := f.manager.ApplyCoupon(c, cartId, request.ApplyCoupon{Code: "WELCOME10"})
	assert.NoError(t, err)

	detail, err := f.manager.ApplyCoupon(c, cartId, request.ApplyCoupon{Code: "FLAT50"})
	assert.NoError(t, err)
	assert.EqualValues(t, cart.DiscountFixed, detail.Cart.DiscountType, "the newest coupon should win")
	assert.True(t, detail.Cart.DiscountValue.Equal(decimal.NewFromInt(50)))
	assert.EqualValues(t, "FLAT50", detail.Cart.CouponCode)
}

func TestRemoveCoupon(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	addItems(t, f, cartId, f.dryClean.ID, 2)

	_, err := f.manager.ApplyCoupon(c, cartId, request.ApplyCoupon{Code: "WELCOME10"})
	assert.NoError(t, err)

	detail := f.manager.RemoveCoupon(c, cartId)
	assert.NotNil(t, detail)
	assert.EqualValues(t, cart.DiscountNone, detail.Cart.DiscountType)
	assert.True(t, detail.Cart.DiscountValue.IsZero())
	assert.Empty(t, detail.Cart.CouponCode)
	assert.True(t, detail.Breakdown.DiscountAmount.IsZero())

	assert.Nil(t, f.manager.RemoveCoupon(c, uuid.New()))
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/internal/log"
	"github.com/fabzclean/pos/internal/otel"
	"github.com/fabzclean/pos/pos/pkg/cart"
	"github.com/fabzclean/pos/pos/pkg/pricing"
	"github.com/fabzclean/pos/pos/pkg/request"
	"github.com/fabzclean/pos/pos/pkg/response"
)

// ApplyCoupon validates the coupon's minimum order against the cart's base
// subtotal only; surcharges, add-ons and tax never count toward eligibility.
// On any failure the cart keeps its previous discount untouched.
func (m *CartSessionManager) ApplyCoupon(
	c context.Context,
	cartId uuid.UUID,
	param request.ApplyCoupon,
) (*response.CartDetail, error) {
	c, span := otel.Tracer.Start(c, "CartSessionManager ApplyCoupon")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager ApplyCoupon").
		Str(log.KeyCartID, cartId.String()).
		Str(log.KeyCouponCode, param.Code).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		logger.Info().Msg("cart not found, coupon not applied")
		span.AddEvent("cart not found")
		return nil, nil
	}

	logger = logger.With().Str(log.KeyProcess, "find-coupon").Logger()
	logger.Info().Msg("finding coupon")
	span.AddEvent("finding coupon")
	found, err := m.coupons.FindByCode(c, param.Code)
	if err != nil {
		err = fmt.Errorf("failed finding coupon with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("found coupon")
	span.AddEvent("found coupon")

	logger = logger.With().Str(log.KeyProcess, "validate-min-order").Logger()
	logger.Info().Msg("validating minimum order")
	span.AddEvent("validating minimum order")
	baseSubtotal := pricing.Settle(*live.Clone()).BaseSubtotal
	if baseSubtotal.LessThan(found.MinOrder) {
		err = fmt.Errorf("failed applying coupon with error=%w", &inErrors.CouponMinOrderError{
			Code:     found.Code,
			MinOrder: found.MinOrder,
			Subtotal: baseSubtotal,
		})
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("validated minimum order")
	span.AddEvent("validated minimum order")

	live.DiscountType = found.Type
	live.DiscountValue = found.Value
	live.CouponCode = found.Code
	live.UpdatedAt = time.Now()
	logger.Info().Msg("applied coupon")
	span.AddEvent("applied coupon")

	return m.detailLocked(live), nil
}

func (m *CartSessionManager) RemoveCoupon(
	c context.Context,
	cartId uuid.UUID,
) *response.CartDetail {
	c, span := otel.Tracer.Start(c, "CartSessionManager RemoveCoupon")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager RemoveCoupon").
		Str(log.KeyCartID, cartId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		return nil
	}
	live.DiscountType = cart.DiscountNone
	live.DiscountValue = decimal.Zero
	live.CouponCode = ""
	live.UpdatedAt = time.Now()
	logger.Info().Msg("removed coupon")
	span.AddEvent("removed coupon")

	return m.detailLocked(live)
}

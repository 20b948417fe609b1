package errors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrCartLimitReached = errors.New("cart limit reached")
	ErrCartNotFound     = errors.New("cart not found")
	ErrEmptyCart        = errors.New("cart has no items")
	ErrServiceNotFound  = errors.New("service not found")
	ErrServiceInactive  = errors.New("service is inactive")
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrNoHeldCart       = errors.New("no held cart")
)

// CouponMinOrderError reports a coupon rejected because the cart's base
// subtotal is below the coupon's minimum-order threshold.
type CouponMinOrderError struct {
	Code     string
	MinOrder decimal.Decimal
	Subtotal decimal.Decimal
}

func (e *CouponMinOrderError) Error() string {
	return fmt.Sprintf(
		"coupon %s requires a minimum order of %s but cart subtotal is %s",
		e.Code,
		e.MinOrder.StringFixed(2),
		e.Subtotal.StringFixed(2),
	)
}

// OrderSubmitError reports the order service refusing an order. The cart
// that produced the order must stay intact so the cashier can retry.
type OrderSubmitError struct {
	StatusCode int
	Message    string
}

func (e *OrderSubmitError) Error() string {
	return fmt.Sprintf(
		"order service returned status code=%d with message=%s",
		e.StatusCode,
		e.Message,
	)
}

func HandleError(err error, span trace.Span) {
	if err == nil {
		return
	}
	span.AddEvent(err.Error())
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/internal/log"
	"github.com/fabzclean/pos/internal/orderclient"
	"github.com/fabzclean/pos/internal/otel"
	"github.com/fabzclean/pos/pos/pkg/pricing"
	"github.com/fabzclean/pos/pos/pkg/response"
)

// Checkout settles the cart and submits it to the order service. The cart is
// cleared only after the order service confirms; any failure leaves it fully
// intact so the cashier can retry.
func (m *CartSessionManager) Checkout(
	c context.Context,
	cartId uuid.UUID,
) (*response.Checkout, error) {
	c, span := otel.Tracer.Start(c, "CartSessionManager Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager Checkout").
		Str(log.KeyCartID, cartId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		err := fmt.Errorf("failed checkout with error=%w", inErrors.ErrCartNotFound)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	if len(live.Items) == 0 {
		err := fmt.Errorf("failed checkout with error=%w", inErrors.ErrEmptyCart)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	logger = logger.With().Str(log.KeyProcess, "settle-cart").Logger()
	logger.Info().Msg("settling cart")
	span.AddEvent("settling cart")
	breakdown := pricing.Settle(*live.Clone())
	logger.Info().Any(log.KeyBreakdown, breakdown).Msg("settled cart")
	span.AddEvent("settled cart")

	logger = logger.With().Str(log.KeyProcess, "submit-order").Logger()
	logger.Info().Msg("submitting order")
	span.AddEvent("submitting order")
	c = logger.WithContext(c)
	receipt, err := m.submitter.Submit(c, orderclient.NewOrder(*live.Clone(), breakdown))
	if err != nil {
		err = fmt.Errorf("failed submitting order with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().
		Str(log.KeyOrderID, receipt.ID.String()).
		Msg("submitted order")
	span.AddEvent("submitted order")

	live.Reset()
	logger.Info().Msg("marked cart as processed")
	span.AddEvent("marked cart as processed")

	return &response.Checkout{
		OrderId:     receipt.ID,
		OrderNumber: receipt.OrderNumber,
		Status:      receipt.Status,
		Breakdown:   breakdown,
	}, nil
}

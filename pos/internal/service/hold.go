package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/internal/log"
	"github.com/fabzclean/pos/internal/otel"
	"github.com/fabzclean/pos/pos/pkg/response"
)

// HoldCart snapshots the cart into the durable single-slot store, replacing
// whatever was held before, then clears the live cart for the next customer.
func (m *CartSessionManager) HoldCart(
	c context.Context,
	cartId uuid.UUID,
) (*response.Session, error) {
	c, span := otel.Tracer.Start(c, "CartSessionManager HoldCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager HoldCart").
		Str(log.KeyCartID, cartId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		logger.Info().Msg("cart not found, nothing held")
		span.AddEvent("cart not found")
		return nil, nil
	}

	logger = logger.With().Str(log.KeyProcess, "store-held-cart").Logger()
	logger.Info().Msg("storing held cart")
	span.AddEvent("storing held cart")
	if err := m.holds.Put(c, *live.Clone()); err != nil {
		err = fmt.Errorf("failed storing held cart with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("stored held cart")
	span.AddEvent("stored held cart")

	live.Reset()
	logger.Info().Msg("held cart and cleared live cart")
	span.AddEvent("held cart and cleared live cart")

	session := m.sessionLocked()
	return &session, nil
}

// RestoreHeldCart pops the single hold slot back into the session. When a
// cart with the snapshot's id is still present its state is replaced
// field-for-field and it becomes active; otherwise the snapshot takes over
// the currently active cart wholesale, id and name included.
func (m *CartSessionManager) RestoreHeldCart(
	c context.Context,
) (*response.CartDetail, error) {
	c, span := otel.Tracer.Start(c, "CartSessionManager RestoreHeldCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager RestoreHeldCart").
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	logger = logger.With().Str(log.KeyProcess, "fetch-held-cart").Logger()
	logger.Info().Msg("fetching held cart")
	span.AddEvent("fetching held cart")
	snapshot, err := m.holds.Get(c)
	if err != nil {
		err = fmt.Errorf("failed fetching held cart with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("fetched held cart")
	span.AddEvent("fetched held cart")

	logger = logger.With().Str(log.KeyProcess, "release-hold-slot").Logger()
	logger.Info().Msg("releasing hold slot")
	span.AddEvent("releasing hold slot")
	if err := m.holds.Delete(c); err != nil {
		err = fmt.Errorf("failed releasing hold slot with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("released hold slot")
	span.AddEvent("released hold slot")

	if existing := m.findLocked(snapshot.ID); existing != nil {
		*existing = snapshot
		m.activeCartId = existing.ID
	} else {
		active := m.findLocked(m.activeCartId)
		*active = snapshot
		m.activeCartId = snapshot.ID
	}
	logger.Info().Str(log.KeyCartID, snapshot.ID.String()).Msg("restored held cart")
	span.AddEvent("restored held cart")

	return m.detailLocked(m.findLocked(m.activeCartId)), nil
}

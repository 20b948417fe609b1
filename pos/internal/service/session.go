package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fabzclean/pos/internal/catalog"
	"github.com/fabzclean/pos/internal/coupon"
	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/internal/holdstore"
	"github.com/fabzclean/pos/internal/log"
	"github.com/fabzclean/pos/internal/orderclient"
	"github.com/fabzclean/pos/internal/otel"
	"github.com/fabzclean/pos/pos/pkg/cart"
	"github.com/fabzclean/pos/pos/pkg/pricing"
	"github.com/fabzclean/pos/pos/pkg/request"
	"github.com/fabzclean/pos/pos/pkg/response"
)

const DefaultMaxCarts = 5

// CartSessionManager owns the carts of one operator session. Every method
// serializes on the internal mutex; the pricing engine stays pure and is
// called on snapshots only. Methods addressed at an id that is not in the
// session return nil and change nothing.
type CartSessionManager struct {
	mu           sync.Mutex
	carts        []*cart.Cart
	activeCartId uuid.UUID
	seq          int

	maxCarts  int
	catalog   catalog.Store
	coupons   coupon.Store
	holds     holdstore.Store
	submitter orderclient.Submitter
}

func NewCartSessionManager(
	maxCarts int,
	catalogStore catalog.Store,
	couponStore coupon.Store,
	holdStore holdstore.Store,
	submitter orderclient.Submitter,
) *CartSessionManager {
	if maxCarts < 1 {
		maxCarts = DefaultMaxCarts
	}
	first := cart.New("Cart 1")
	return &CartSessionManager{
		carts:        []*cart.Cart{first},
		activeCartId: first.ID,
		seq:          1,
		maxCarts:     maxCarts,
		catalog:      catalogStore,
		coupons:      couponStore,
		holds:        holdStore,
		submitter:    submitter,
	}
}

func (m *CartSessionManager) Session(c context.Context) response.Session {
	_, span := otel.Tracer.Start(c, "CartSessionManager Session")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sessionLocked()
}

func (m *CartSessionManager) CreateCart(
	c context.Context,
	param request.CreateCart,
) (*response.CartDetail, error) {
	c, span := otel.Tracer.Start(c, "CartSessionManager CreateCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager CreateCart").
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	logger.Info().Msg("creating cart")
	span.AddEvent("creating cart")
	if len(m.carts) >= m.maxCarts {
		err := fmt.Errorf(
			"failed creating cart with error=%w",
			inErrors.ErrCartLimitReached,
		)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	m.seq++
	name := param.Name
	if name == "" {
		name = fmt.Sprintf("Cart %d", m.seq)
	}
	created := cart.New(name)
	m.carts = append(m.carts, created)
	m.activeCartId = created.ID
	logger.Info().Str(log.KeyCartID, created.ID.String()).Msg("created cart")
	span.AddEvent("created cart")

	return m.detailLocked(created), nil
}

func (m *CartSessionManager) FindCartById(
	c context.Context,
	cartId uuid.UUID,
) *response.CartDetail {
	_, span := otel.Tracer.Start(c, "CartSessionManager FindCartById")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		return nil
	}
	return m.detailLocked(live)
}

func (m *CartSessionManager) ActiveCart(c context.Context) response.CartDetail {
	_, span := otel.Tracer.Start(c, "CartSessionManager ActiveCart")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	return *m.detailLocked(m.findLocked(m.activeCartId))
}

func (m *CartSessionManager) SetActiveCart(
	c context.Context,
	cartId uuid.UUID,
) *response.Session {
	c, span := otel.Tracer.Start(c, "CartSessionManager SetActiveCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager SetActiveCart").
		Str(log.KeyCartID, cartId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findLocked(cartId) == nil {
		logger.Info().Msg("cart not found, keeping current active cart")
		span.AddEvent("cart not found")
		return nil
	}
	m.activeCartId = cartId
	logger.Info().Msg("activated cart")
	span.AddEvent("activated cart")

	session := m.sessionLocked()
	return &session
}

func (m *CartSessionManager) RenameCart(
	c context.Context,
	cartId uuid.UUID,
	param request.RenameCart,
) *response.CartDetail {
	c, span := otel.Tracer.Start(c, "CartSessionManager RenameCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager RenameCart").
		Str(log.KeyCartID, cartId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		return nil
	}
	live.Name = param.Name
	live.UpdatedAt = time.Now()
	logger.Info().Msg("renamed cart")
	span.AddEvent("renamed cart")

	return m.detailLocked(live)
}

// DeleteCart removes the cart and reactivates deterministically: the first
// remaining cart, or a fresh empty cart when the last one was deleted. The
// session never has fewer than one cart.
func (m *CartSessionManager) DeleteCart(
	c context.Context,
	cartId uuid.UUID,
) *response.Session {
	c, span := otel.Tracer.Start(c, "CartSessionManager DeleteCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager DeleteCart").
		Str(log.KeyCartID, cartId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	index := -1
	for i, candidate := range m.carts {
		if candidate.ID == cartId {
			index = i
			break
		}
	}
	if index == -1 {
		logger.Info().Msg("cart not found, nothing deleted")
		span.AddEvent("cart not found")
		return nil
	}

	m.carts = append(m.carts[:index], m.carts[index+1:]...)
	logger.Info().Msg("deleted cart")
	span.AddEvent("deleted cart")

	if len(m.carts) == 0 {
		m.seq++
		fresh := cart.New(fmt.Sprintf("Cart %d", m.seq))
		m.carts = append(m.carts, fresh)
		m.activeCartId = fresh.ID
		logger.Info().
			Str(log.KeyCartID, fresh.ID.String()).
			Msg("session empty, created fresh cart")
		span.AddEvent("created fresh cart")
	} else if m.activeCartId == cartId {
		m.activeCartId = m.carts[0].ID
		logger.Info().
			Str(log.KeyCartID, m.activeCartId.String()).
			Msg("activated first remaining cart")
		span.AddEvent("activated first remaining cart")
	}

	session := m.sessionLocked()
	return &session
}

func (m *CartSessionManager) ClearCart(
	c context.Context,
	cartId uuid.UUID,
) *response.CartDetail {
	c, span := otel.Tracer.Start(c, "CartSessionManager ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager ClearCart").
		Str(log.KeyCartID, cartId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		return nil
	}
	live.Reset()
	logger.Info().Msg("cleared cart")
	span.AddEvent("cleared cart")

	return m.detailLocked(live)
}

// MarkAsProcessed is the clear invoked after an order was confirmed
// downstream; the cart identity and name stay so the terminal tab survives.
func (m *CartSessionManager) MarkAsProcessed(
	c context.Context,
	cartId uuid.UUID,
) *response.CartDetail {
	c, span := otel.Tracer.Start(c, "CartSessionManager MarkAsProcessed")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager MarkAsProcessed").
		Str(log.KeyCartID, cartId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		return nil
	}
	live.Reset()
	logger.Info().Msg("marked cart as processed")
	span.AddEvent("marked cart as processed")

	return m.detailLocked(live)
}

func (m *CartSessionManager) UpdateCart(
	c context.Context,
	cartId uuid.UUID,
	param request.UpdateCart,
) *response.CartDetail {
	c, span := otel.Tracer.Start(c, "CartSessionManager UpdateCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager UpdateCart").
		Str(log.KeyCartID, cartId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		return nil
	}

	if param.Name != nil && *param.Name != "" {
		live.Name = *param.Name
	}
	if param.Customer != nil {
		customer := *param.Customer
		live.Customer = &customer
	}
	if param.IsExpressOrder != nil {
		live.IsExpressOrder = *param.IsExpressOrder
	}
	if param.DiscountType != nil || param.DiscountValue != nil {
		// A manual discount replaces whatever coupon set the fields before.
		live.CouponCode = ""
	}
	if param.DiscountType != nil {
		live.DiscountType = *param.DiscountType
	}
	if param.DiscountValue != nil {
		live.DiscountValue = *param.DiscountValue
	}
	if param.ExtraCharges != nil {
		live.ExtraCharges = *param.ExtraCharges
	}
	if param.FulfillmentType != nil {
		live.FulfillmentType = *param.FulfillmentType
	}
	if param.DeliveryAddress != nil {
		address := *param.DeliveryAddress
		live.DeliveryAddress = &address
	}
	if param.DeliveryCharges != nil {
		live.DeliveryCharges = *param.DeliveryCharges
	}
	if param.EnableGST != nil {
		live.EnableGST = *param.EnableGST
	}
	if param.PaymentMethod != nil {
		live.PaymentMethod = *param.PaymentMethod
	}
	if param.PaymentStatus != nil {
		live.PaymentStatus = *param.PaymentStatus
	}
	if param.SpecialInstructions != nil {
		live.SpecialInstructions = *param.SpecialInstructions
	}
	if param.PickupDate != nil {
		pickup := *param.PickupDate
		live.PickupDate = &pickup
	}
	live.UpdatedAt = time.Now()
	logger.Info().Msg("updated cart")
	span.AddEvent("updated cart")

	return m.detailLocked(live)
}

func (m *CartSessionManager) Breakdown(
	c context.Context,
	cartId uuid.UUID,
) *pricing.Breakdown {
	_, span := otel.Tracer.Start(c, "CartSessionManager Breakdown")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		return nil
	}
	breakdown := pricing.Settle(*live.Clone())
	return &breakdown
}

func (m *CartSessionManager) ActiveBreakdown(c context.Context) pricing.Breakdown {
	_, span := otel.Tracer.Start(c, "CartSessionManager ActiveBreakdown")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	return pricing.Settle(*m.findLocked(m.activeCartId).Clone())
}

func (m *CartSessionManager) findLocked(cartId uuid.UUID) *cart.Cart {
	for _, candidate := range m.carts {
		if candidate.ID == cartId {
			return candidate
		}
	}
	return nil
}

func (m *CartSessionManager) detailLocked(live *cart.Cart) *response.CartDetail {
	detail := response.NewCartDetail(*live.Clone())
	return &detail
}

func (m *CartSessionManager) sessionLocked() response.Session {
	snapshots := make([]cart.Cart, len(m.carts))
	for i, candidate := range m.carts {
		snapshots[i] = *candidate.Clone()
	}
	return response.NewSession(snapshots, m.activeCartId)
}

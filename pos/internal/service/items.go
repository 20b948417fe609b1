package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/internal/log"
	"github.com/fabzclean/pos/internal/otel"
	"github.com/fabzclean/pos/internal/xid"
	"github.com/fabzclean/pos/pos/pkg/cart"
	"github.com/fabzclean/pos/pos/pkg/request"
	"github.com/fabzclean/pos/pos/pkg/response"
)

// AddItem resolves the service against the catalog and either bumps the
// quantity of an equivalent line or appends a fresh one. A line is equivalent
// only while untouched: same service, unchanged price, no add-ons, no tag
// note. Lines stop merging the moment they diverge; garment barcodes are
// assigned once and never merge.
func (m *CartSessionManager) AddItem(
	c context.Context,
	cartId uuid.UUID,
	param request.AddItem,
) (*response.CartDetail, error) {
	c, span := otel.Tracer.Start(c, "CartSessionManager AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager AddItem").
		Str(log.KeyCartID, cartId.String()).
		Str(log.KeyServiceID, param.ServiceId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		logger.Info().Msg("cart not found, item not added")
		span.AddEvent("cart not found")
		return nil, nil
	}

	logger = logger.With().Str(log.KeyProcess, "find-service").Logger()
	logger.Info().Msg("finding service in catalog")
	span.AddEvent("finding service in catalog")
	svc, err := m.catalog.FindServiceById(c, param.ServiceId)
	if err != nil {
		err = fmt.Errorf("failed finding service in catalog with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	if !svc.Active {
		err = fmt.Errorf(
			"failed adding service=%s with error=%w",
			svc.Name,
			inErrors.ErrServiceInactive,
		)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found service=%s in catalog", svc.Name)
	span.AddEvent("found service in catalog")

	logger = logger.With().Str(log.KeyProcess, "merge-or-append").Logger()
	for i := range live.Items {
		item := &live.Items[i]
		mergeable := item.ServiceID == svc.ID &&
			item.Price.Equal(svc.Price) &&
			len(item.AddOns) == 0 &&
			item.TagNote == ""
		if mergeable {
			item.Quantity++
			live.UpdatedAt = time.Now()
			logger.Info().Msgf("merged into existing line, quantity=%d", item.Quantity)
			span.AddEvent("merged into existing line")
			return m.detailLocked(live), nil
		}
	}

	live.Items = append(live.Items, cart.Item{
		ID:             uuid.New(),
		ServiceID:      svc.ID,
		ServiceName:    svc.Name,
		Quantity:       1,
		Price:          svc.Price,
		AddOns:         []cart.AddOn{},
		GarmentBarcode: xid.New("FZ"),
	})
	live.UpdatedAt = time.Now()
	logger.Info().Msg("appended new item line")
	span.AddEvent("appended new item line")

	return m.detailLocked(live), nil
}

func (m *CartSessionManager) UpdateItem(
	c context.Context,
	cartId uuid.UUID,
	itemId uuid.UUID,
	param request.UpdateItem,
) *response.CartDetail {
	c, span := otel.Tracer.Start(c, "CartSessionManager UpdateItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager UpdateItem").
		Str(log.KeyCartID, cartId.String()).
		Str(log.KeyCartItemID, itemId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		return nil
	}
	index := live.ItemIndex(itemId)
	if index == -1 {
		logger.Info().Msg("item not found, nothing updated")
		span.AddEvent("item not found")
		return nil
	}

	if param.Quantity != nil && *param.Quantity < 1 {
		live.Items = append(live.Items[:index], live.Items[index+1:]...)
		live.UpdatedAt = time.Now()
		logger.Info().Msg("quantity below one, removed item")
		span.AddEvent("removed item")
		return m.detailLocked(live)
	}

	item := &live.Items[index]
	if param.Price != nil {
		item.Price = *param.Price
	}
	if param.Quantity != nil {
		item.Quantity = *param.Quantity
	}
	if param.TagNote != nil {
		item.TagNote = *param.TagNote
	}
	live.UpdatedAt = time.Now()
	logger.Info().Msg("updated item")
	span.AddEvent("updated item")

	return m.detailLocked(live)
}

// UpdateItemQuantity sets the line quantity; zero or less removes the line.
func (m *CartSessionManager) UpdateItemQuantity(
	c context.Context,
	cartId uuid.UUID,
	itemId uuid.UUID,
	param request.UpdateItemQuantity,
) *response.CartDetail {
	quantity := param.Quantity
	return m.UpdateItem(c, cartId, itemId, request.UpdateItem{Quantity: &quantity})
}

func (m *CartSessionManager) RemoveItem(
	c context.Context,
	cartId uuid.UUID,
	itemId uuid.UUID,
) *response.CartDetail {
	c, span := otel.Tracer.Start(c, "CartSessionManager RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager RemoveItem").
		Str(log.KeyCartID, cartId.String()).
		Str(log.KeyCartItemID, itemId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		return nil
	}
	index := live.ItemIndex(itemId)
	if index == -1 {
		logger.Info().Msg("item not found, nothing removed")
		span.AddEvent("item not found")
		return nil
	}

	live.Items = append(live.Items[:index], live.Items[index+1:]...)
	live.UpdatedAt = time.Now()
	logger.Info().Msg("removed item")
	span.AddEvent("removed item")

	return m.detailLocked(live)
}

// AddItemAddOn is idempotent by add-on id: re-adding an add-on the item
// already carries changes nothing.
func (m *CartSessionManager) AddItemAddOn(
	c context.Context,
	cartId uuid.UUID,
	itemId uuid.UUID,
	param request.AddItemAddOn,
) *response.CartDetail {
	c, span := otel.Tracer.Start(c, "CartSessionManager AddItemAddOn")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager AddItemAddOn").
		Str(log.KeyCartID, cartId.String()).
		Str(log.KeyCartItemID, itemId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		return nil
	}
	index := live.ItemIndex(itemId)
	if index == -1 {
		logger.Info().Msg("item not found, add-on not added")
		span.AddEvent("item not found")
		return nil
	}

	item := &live.Items[index]
	if param.ID != uuid.Nil && item.HasAddOn(param.ID) {
		logger.Info().Msgf("add-on=%s already on item", param.ID.String())
		span.AddEvent("add-on already on item")
		return m.detailLocked(live)
	}

	id := param.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	item.AddOns = append(item.AddOns, cart.AddOn{
		ID:    id,
		Name:  param.Name,
		Price: param.Price,
	})
	live.UpdatedAt = time.Now()
	logger.Info().Msgf("added add-on=%s to item", id.String())
	span.AddEvent("added add-on to item")

	return m.detailLocked(live)
}

func (m *CartSessionManager) RemoveItemAddOn(
	c context.Context,
	cartId uuid.UUID,
	itemId uuid.UUID,
	addOnId uuid.UUID,
) *response.CartDetail {
	c, span := otel.Tracer.Start(c, "CartSessionManager RemoveItemAddOn")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartSessionManager RemoveItemAddOn").
		Str(log.KeyCartID, cartId.String()).
		Str(log.KeyCartItemID, itemId.String()).
		Logger()

	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.findLocked(cartId)
	if live == nil {
		return nil
	}
	index := live.ItemIndex(itemId)
	if index == -1 {
		logger.Info().Msg("item not found, add-on not removed")
		span.AddEvent("item not found")
		return nil
	}

	item := &live.Items[index]
	for i, addOn := range item.AddOns {
		if addOn.ID == addOnId {
			item.AddOns = append(item.AddOns[:i], item.AddOns[i+1:]...)
			live.UpdatedAt = time.Now()
			logger.Info().Msgf("removed add-on=%s from item", addOnId.String())
			span.AddEvent("removed add-on from item")
			break
		}
	}

	return m.detailLocked(live)
}

package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/pos/pkg/request"
)

func TestAddItem(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId

	detail, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.washFold.ID})
	assert.NoError(t, err)
	assert.NotNil(t, detail)
	assert.Len(t, detail.Cart.Items, 1)

	item := detail.Cart.Items[0]
	assert.NotEqualValues(t, uuid.Nil, item.ID, "a new line should get a fresh id")
	assert.EqualValues(t, f.washFold.ID, item.ServiceID)
	assert.EqualValues(t, f.washFold.Name, item.ServiceName)
	assert.EqualValues(t, int32(1), item.Quantity)
	assert.True(t, item.Price.Equal(f.washFold.Price), "the line price should default to the catalog price")
	assert.Empty(t, item.AddOns)
	assert.NotEmpty(t, item.GarmentBarcode, "every line should get a garment barcode")
}

func TestAddItemMergesEquivalentLines(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId

	first, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.washFold.ID})
	assert.NoError(t, err)
	barcode := first.Cart.Items[0].GarmentBarcode

	second, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.washFold.ID})
	assert.NoError(t, err)
	assert.Len(t, second.Cart.Items, 1, "an equivalent line should merge instead of duplicating")
	assert.EqualValues(t, int32(2), second.Cart.Items[0].Quantity)
	assert.EqualValues(t, barcode, second.Cart.Items[0].GarmentBarcode, "merging should never touch the barcode")
}

func TestAddItemDivergedLineStopsMerging(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId

	first, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.washFold.ID})
	assert.NoError(t, err)

	note := "silk, cold wash"
	f.manager.UpdateItem(c, cartId, first.Cart.Items[0].ID, request.UpdateItem{TagNote: &note})

	second, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.washFold.ID})
	assert.NoError(t, err)
	assert.Len(t, second.Cart.Items, 2, "a tagged line should stay separate from a fresh add")
	assert.EqualValues(t, int32(1), second.Cart.Items[0].Quantity)
	assert.EqualValues(t, int32(1), second.Cart.Items[1].Quantity)
}

func TestAddItemUnknownService(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId

	detail, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: uuid.New()})
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, inErrors.ErrServiceNotFound)
}

func TestAddItemInactiveService(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId

	detail, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.inactive.ID})
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, inErrors.ErrServiceInactive)
}

func TestAddItemUnknownCart(t *testing.T) {
	c := testContext()
	f := setupManager(5)

	detail, err := f.manager.AddItem(c, uuid.New(), request.AddItem{ServiceId: f.washFold.ID})
	assert.Nil(t, detail, "an unknown cart should add nothing")
	assert.NoError(t, err, "an unknown cart is a silent no-op, not a failure")
}

func TestUpdateItem(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	added, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.washFold.ID})
	assert.NoError(t, err)
	itemId := added.Cart.Items[0].ID

	price := decimal.NewFromInt(75)
	quantity := int32(3)
	note := "heavy blanket"
	detail := f.manager.UpdateItem(c, cartId, itemId, request.UpdateItem{
		Price:    &price,
		Quantity: &quantity,
		TagNote:  &note,
	})
	assert.NotNil(t, detail)
	assert.True(t, detail.Cart.Items[0].Price.Equal(price), "the price override should stick")
	assert.EqualValues(t, quantity, detail.Cart.Items[0].Quantity)
	assert.EqualValues(t, note, detail.Cart.Items[0].TagNote)

	assert.Nil(t, f.manager.UpdateItem(c, cartId, uuid.New(), request.UpdateItem{Price: &price}))
	assert.Nil(t, f.manager.UpdateItem(c, uuid.New(), itemId, request.UpdateItem{Price: &price}))
}

func TestUpdateItemQuantityZeroRemovesItem(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	added, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.washFold.ID})
	assert.NoError(t, err)
	itemId := added.Cart.Items[0].ID

	detail := f.manager.UpdateItemQuantity(c, cartId, itemId, request.UpdateItemQuantity{Quantity: 0})
	assert.NotNil(t, detail)
	assert.Empty(t, detail.Cart.Items, "quantity zero should remove the line")
	assert.EqualValues(t, int32(0), detail.Breakdown.ItemCount)
	assert.True(t, detail.Breakdown.Total.IsZero())
}

func TestUpdateItemQuantity(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	added, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.dryClean.ID})
	assert.NoError(t, err)
	itemId := added.Cart.Items[0].ID

	detail := f.manager.UpdateItemQuantity(c, cartId, itemId, request.UpdateItemQuantity{Quantity: 4})
	assert.NotNil(t, detail)
	assert.EqualValues(t, int32(4), detail.Cart.Items[0].Quantity)
	assert.True(t, detail.Breakdown.BaseSubtotal.Equal(decimal.NewFromInt(400)))
}

func TestRemoveItem(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	added, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.washFold.ID})
	assert.NoError(t, err)
	itemId := added.Cart.Items[0].ID

	detail := f.manager.RemoveItem(c, cartId, itemId)
	assert.NotNil(t, detail)
	assert.Empty(t, detail.Cart.Items)

	assert.Nil(t, f.manager.RemoveItem(c, cartId, itemId), "removing twice should be a no-op")
}

func TestAddItemAddOn(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	added, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.washFold.ID})
	assert.NoError(t, err)
	itemId := added.Cart.Items[0].ID

	detail := f.manager.AddItemAddOn(c, cartId, itemId, request.AddItemAddOn{
		Name:  "Fabric Softener",
		Price: decimal.NewFromInt(10),
	})
	assert.NotNil(t, detail)
	assert.Len(t, detail.Cart.Items[0].AddOns, 1)
	assert.NotEqualValues(t, uuid.Nil, detail.Cart.Items[0].AddOns[0].ID, "an add-on without an id should get one")

	assert.Nil(t, f.manager.AddItemAddOn(c, cartId, uuid.New(), request.AddItemAddOn{Name: "ghost"}))
}

func TestAddItemAddOnIsIdempotent(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	added, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.washFold.ID})
	assert.NoError(t, err)
	itemId := added.Cart.Items[0].ID

	addOnId := uuid.New()
	param := request.AddItemAddOn{ID: addOnId, Name: "Stain Treatment", Price: decimal.NewFromInt(30)}

	f.manager.AddItemAddOn(c, cartId, itemId, param)
	detail := f.manager.AddItemAddOn(c, cartId, itemId, param)

	assert.NotNil(t, detail)
	assert.Len(t, detail.Cart.Items[0].AddOns, 1, "re-adding the same add-on id should change nothing")
	assert.EqualValues(t, addOnId, detail.Cart.Items[0].AddOns[0].ID)
}

func TestRemoveItemAddOn(t *testing.T) {
	c := testContext()
	f := setupManager(5)
	cartId := f.manager.Session(c).ActiveCartId
	added, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: f.washFold.ID})
	assert.NoError(t, err)
	itemId := added.Cart.Items[0].ID

	addOnId := uuid.New()
	f.manager.AddItemAddOn(c, cartId, itemId, request.AddItemAddOn{
		ID:    addOnId,
		Name:  "Starch Finish",
		Price: decimal.NewFromInt(15),
	})

	detail := f.manager.RemoveItemAddOn(c, cartId, itemId, addOnId)
	assert.NotNil(t, detail)
	assert.Empty(t, detail.Cart.Items[0].AddOns)

	detail = f.manager.RemoveItemAddOn(c, cartId, itemId, addOnId)
	assert.NotNil(t, detail, "removing an absent add-on should still answer with the cart")
}

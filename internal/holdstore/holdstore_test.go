package holdstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/pos/pkg/cart"
)

func heldFixture(name string) cart.Cart {
	held := cart.New(name)
	held.Customer = &cart.Customer{ID: uuid.New(), Name: "Asha", Phone: "9800000001"}
	held.Items = []cart.Item{
		{
			ID:          uuid.New(),
			ServiceID:   uuid.New(),
			ServiceName: "Wash & Fold",
			Quantity:    2,
			Price:       decimal.NewFromInt(60),
			AddOns:      []cart.AddOn{{ID: uuid.New(), Name: "Fabric Softener", Price: decimal.NewFromInt(10)}},
		},
	}
	held.IsExpressOrder = true
	return *held
}

func TestMemoryGetWithoutHold(t *testing.T) {
	c := context.Background()
	store := NewMemory()

	_, err := store.Get(c)
	assert.ErrorIs(t, err, inErrors.ErrNoHeldCart, "an empty slot should report no held cart")
}

func TestMemoryPutGetRoundtrip(t *testing.T) {
	c := context.Background()
	store := NewMemory()
	held := heldFixture("Cart 1")

	assert.NoError(t, store.Put(c, held))

	actual, err := store.Get(c)
	assert.NoError(t, err)
	assert.EqualValues(t, held, actual, "restored snapshot should be field-for-field equal")
}

func TestMemoryPutIsolatesSnapshot(t *testing.T) {
	c := context.Background()
	store := NewMemory()
	held := heldFixture("Cart 1")

	assert.NoError(t, store.Put(c, held))
	held.Items[0].Quantity = 99
	held.Customer.Name = "changed"

	actual, err := store.Get(c)
	assert.NoError(t, err)
	assert.EqualValues(t, int32(2), actual.Items[0].Quantity, "mutating the source should not touch the held snapshot")
	assert.EqualValues(t, "Asha", actual.Customer.Name)
}

func TestMemorySecondHoldOverwritesFirst(t *testing.T) {
	c := context.Background()
	store := NewMemory()
	first := heldFixture("Cart 1")
	second := heldFixture("Cart 2")

	assert.NoError(t, store.Put(c, first))
	assert.NoError(t, store.Put(c, second))

	actual, err := store.Get(c)
	assert.NoError(t, err)
	assert.EqualValues(t, second.ID, actual.ID, "the slot should only keep the newest snapshot")
	assert.EqualValues(t, "Cart 2", actual.Name)
}

func TestMemoryDelete(t *testing.T) {
	c := context.Background()
	store := NewMemory()

	assert.NoError(t, store.Delete(c), "deleting an empty slot should succeed")

	assert.NoError(t, store.Put(c, heldFixture("Cart 1")))
	assert.NoError(t, store.Delete(c))

	_, err := store.Get(c)
	assert.ErrorIs(t, err, inErrors.ErrNoHeldCart, "the slot should be empty after delete")
}

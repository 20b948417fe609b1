// Package cart holds the in-memory data model shared by the session manager,
// the pricing engine and the order payload builders. Carts are plain values;
// all mutation goes through the session manager.
package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "pickup"
	FulfillmentDelivery FulfillmentType = "delivery"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentUpi  PaymentMethod = "upi"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type Customer struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Email string    `json:"email"`
}

type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

type AddOn struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Item struct {
	ID          uuid.UUID       `json:"id"`
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Quantity    int32           `json:"quantity"`
	// Price is the operator-editable override; it defaults to the catalog
	// base price at the time the item was added.
	Price          decimal.Decimal `json:"price"`
	AddOns         []AddOn         `json:"add_ons"`
	TagNote        string          `json:"tag_note"`
	GarmentBarcode string          `json:"garment_barcode"`
}

// Subtotal is the item's goods value, add-ons excluded.
func (i Item) Subtotal() decimal.Decimal {
	if i.Quantity < 1 {
		return decimal.Zero
	}
	return i.Price.Mul(decimal.NewFromInt32(i.Quantity))
}

// AddOnSubtotal is the add-on value across the item's quantity; each add-on
// price applies per unit.
func (i Item) AddOnSubtotal() decimal.Decimal {
	if i.Quantity < 1 {
		return decimal.Zero
	}
	perUnit := decimal.Zero
	for _, a := range i.AddOns {
		perUnit = perUnit.Add(a.Price)
	}
	return perUnit.Mul(decimal.NewFromInt32(i.Quantity))
}

func (i Item) HasAddOn(id uuid.UUID) bool {
	for _, a := range i.AddOns {
		if a.ID == id {
			return true
		}
	}
	return false
}

type Cart struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Customer            *Customer       `json:"customer,omitempty"`
	Items               []Item          `json:"items"`
	IsExpressOrder      bool            `json:"is_express_order"`
	DiscountType        DiscountType    `json:"discount_type"`
	DiscountValue       decimal.Decimal `json:"discount_value"`
	CouponCode          string          `json:"coupon_code"`
	ExtraCharges        decimal.Decimal `json:"extra_charges"`
	FulfillmentType     FulfillmentType `json:"fulfillment_type"`
	DeliveryAddress     *Address        `json:"delivery_address,omitempty"`
	DeliveryCharges     decimal.Decimal `json:"delivery_charges"`
	EnableGST           bool            `json:"enable_gst"`
	PaymentMethod       PaymentMethod   `json:"payment_method"`
	PaymentStatus       PaymentStatus   `json:"payment_status"`
	SpecialInstructions string          `json:"special_instructions"`
	PickupDate          *time.Time      `json:"pickup_date,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// New returns an empty cart with default billing flags.
func New(name string) *Cart {
	now := time.Now()
	return &Cart{
		ID:              uuid.New(),
		Name:            name,
		Items:           []Item{},
		DiscountType:    DiscountNone,
		FulfillmentType: FulfillmentPickup,
		EnableGST:       true,
		PaymentMethod:   PaymentCash,
		PaymentStatus:   PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Reset empties the cart back to its just-created defaults while preserving
// its identity, display name and creation time.
func (c *Cart) Reset() {
	id, name, createdAt := c.ID, c.Name, c.CreatedAt
	fresh := New(name)
	*c = *fresh
	c.ID = id
	c.CreatedAt = createdAt
}

// Clone returns a deep copy so callers can read or serialize the cart while
// the session keeps mutating the live instance.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Items = make([]Item, len(c.Items))
	for i, item := range c.Items {
		cloned := item
		cloned.AddOns = make([]AddOn, len(item.AddOns))
		copy(cloned.AddOns, item.AddOns)
		clone.Items[i] = cloned
	}
	if c.Customer != nil {
		customer := *c.Customer
		clone.Customer = &customer
	}
	if c.DeliveryAddress != nil {
		address := *c.DeliveryAddress
		clone.DeliveryAddress = &address
	}
	if c.PickupDate != nil {
		pickup := *c.PickupDate
		clone.PickupDate = &pickup
	}
	return &clone
}

// ItemIndex returns the position of the item with the given id, or -1.
func (c *Cart) ItemIndex(itemID uuid.UUID) int {
	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fabzclean/pos/pos/pkg/cart"
)

type CreateCart struct {
	Name string `json:"name"`
}

type RenameCart struct {
	Name string `validate:"required" json:"name"`
}

type AddItem struct {
	ServiceId uuid.UUID `validate:"required,uuid" json:"service_id"`
}

type UpdateItem struct {
	Price    *decimal.Decimal `validate:"omitempty,gte=0" json:"price"`
	Quantity *int32           `                           json:"quantity"`
	TagNote  *string          `                           json:"tag_note"`
}

type UpdateItemQuantity struct {
	Quantity int32 `json:"quantity"`
}

type AddItemAddOn struct {
	ID    uuid.UUID       `validate:"omitempty,uuid" json:"id"`
	Name  string          `validate:"required"       json:"name"`
	Price decimal.Decimal `validate:"gte=0"          json:"price"`
}

type ApplyCoupon struct {
	Code string `validate:"required" json:"code"`
}

type UpdateCart struct {
	Name                *string               `                                             json:"name"`
	Customer            *cart.Customer        `                                             json:"customer"`
	IsExpressOrder      *bool                 `                                             json:"is_express_order"`
	DiscountType        *cart.DiscountType    `validate:"omitempty,oneof=none percentage fixed" json:"discount_type"`
	DiscountValue       *decimal.Decimal      `validate:"omitempty,gte=0"                   json:"discount_value"`
	ExtraCharges        *decimal.Decimal      `validate:"omitempty,gte=0"                   json:"extra_charges"`
	FulfillmentType     *cart.FulfillmentType `validate:"omitempty,oneof=pickup delivery"   json:"fulfillment_type"`
	DeliveryAddress     *cart.Address         `                                             json:"delivery_address"`
	DeliveryCharges     *decimal.Decimal      `validate:"omitempty,gte=0"                   json:"delivery_charges"`
	EnableGST           *bool                 `                                             json:"enable_gst"`
	PaymentMethod       *cart.PaymentMethod   `validate:"omitempty,oneof=cash card upi"     json:"payment_method"`
	PaymentStatus       *cart.PaymentStatus   `validate:"omitempty,oneof=pending paid"      json:"payment_status"`
	SpecialInstructions *string               `                                             json:"special_instructions"`
	PickupDate          *time.Time            `                                             json:"pickup_date"`
}

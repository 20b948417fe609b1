package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fabzclean/pos/pos/pkg/cart"
	"github.com/fabzclean/pos/pos/pkg/pricing"
)

type Session struct {
	ActiveCartId uuid.UUID     `json:"active_cart_id"`
	Carts        []CartSummary `json:"carts"`
}

type CartSummary struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	ItemCount int32           `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

type CartDetail struct {
	Cart      cart.Cart         `json:"cart"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

type Checkout struct {
	OrderId     uuid.UUID         `json:"order_id"`
	OrderNumber string            `json:"order_number"`
	Status      string            `json:"status"`
	Breakdown   pricing.Breakdown `json:"breakdown"`
}

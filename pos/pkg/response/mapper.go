package response

import (
	"github.com/google/uuid"

	"github.com/fabzclean/pos/pos/pkg/cart"
	"github.com/fabzclean/pos/pos/pkg/pricing"
)

func NewCartDetail(c cart.Cart) CartDetail {
	return CartDetail{Cart: c, Breakdown: pricing.Settle(c)}
}

func NewSession(carts []cart.Cart, activeCartId uuid.UUID) Session {
	summaries := make([]CartSummary, len(carts))
	for i, c := range carts {
		breakdown := pricing.Settle(c)
		summaries[i] = CartSummary{
			ID:        c.ID,
			Name:      c.Name,
			ItemCount: breakdown.ItemCount,
			Total:     breakdown.Total,
		}
	}
	return Session{ActiveCartId: activeCartId, Carts: summaries}
}

package orderclient

import (
	"github.com/fabzclean/pos/pos/pkg/cart"
	"github.com/fabzclean/pos/pos/pkg/pricing"
)

// NewOrder flattens a settled cart into the order-service payload.
func NewOrder(c cart.Cart, breakdown pricing.Breakdown) Order {
	items := make([]OrderItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = OrderItem{
			ServiceID:      item.ServiceID,
			ServiceName:    item.ServiceName,
			Quantity:       item.Quantity,
			Price:          item.Price,
			AddOns:         item.AddOns,
			Subtotal:       item.Subtotal().Add(item.AddOnSubtotal()),
			TagNote:        item.TagNote,
			GarmentBarcode: item.GarmentBarcode,
		}
	}
	return Order{
		CartID:          c.ID,
		CartName:        c.Name,
		Customer:        c.Customer,
		Items:           items,
		FulfillmentType: c.FulfillmentType,
		DeliveryAddress: c.DeliveryAddress,
		PickupDate:      c.PickupDate,
		IsExpressOrder:  c.IsExpressOrder,
		CouponCode:      c.CouponCode,
		PaymentMethod:   c.PaymentMethod,
		PaymentStatus:   c.PaymentStatus,
		Note:            c.SpecialInstructions,
		Breakdown:       breakdown,
	}
}

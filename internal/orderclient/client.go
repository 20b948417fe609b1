// Package orderclient submits finished carts to the order service. The POS
// keeps no order history of its own; once the order service accepts an order
// the receipt it returns is the only artifact the terminal sees.
package orderclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/internal/log"
	"github.com/fabzclean/pos/internal/otel"
	"github.com/fabzclean/pos/pos/pkg/cart"
	"github.com/fabzclean/pos/pos/pkg/pricing"
)

type OrderItem struct {
	ServiceID      uuid.UUID       `json:"service_id"`
	ServiceName    string          `json:"service_name"`
	Quantity       int32           `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	AddOns         []cart.AddOn    `json:"add_ons"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TagNote        string          `json:"tag_note,omitempty"`
	GarmentBarcode string          `json:"garment_barcode,omitempty"`
}

// Order is the payload posted to the order service. The embedded breakdown
// flattens the settled amounts into the order body.
type Order struct {
	CartID          uuid.UUID            `json:"cart_id"`
	CartName        string               `json:"cart_name"`
	Customer        *cart.Customer       `json:"customer,omitempty"`
	Items           []OrderItem          `json:"items"`
	FulfillmentType cart.FulfillmentType `json:"fulfillment_type"`
	DeliveryAddress *cart.Address        `json:"delivery_address,omitempty"`
	PickupDate      *time.Time           `json:"pickup_date,omitempty"`
	IsExpressOrder  bool                 `json:"is_express_order"`
	CouponCode      string               `json:"coupon_code,omitempty"`
	PaymentMethod   cart.PaymentMethod   `json:"payment_method"`
	PaymentStatus   cart.PaymentStatus   `json:"payment_status"`
	Note            string               `json:"note,omitempty"`
	pricing.Breakdown
}

type Receipt struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
}

type Submitter interface {
	Submit(c context.Context, order Order) (Receipt, error)
}

type Client struct {
	baseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

type submitResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       struct {
		Order Receipt `json:"order"`
	} `json:"data"`
}

func (s *Client) Submit(c context.Context, order Order) (Receipt, error) {
	c, span := otel.Tracer.Start(c, "Client Submit")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Client Submit").
		Str(log.KeyCartID, order.CartID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "create-order-request").Logger()
	logger.Info().Msg("creating order request to order-service")
	span.AddEvent("creating order request to order-service")
	orderJson, err := json.Marshal(order)
	if err != nil {
		err = fmt.Errorf("failed marshaling order with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Receipt{}, err
	}
	req, err := http.NewRequestWithContext(
		c,
		http.MethodPost,
		s.baseURL+"/orders",
		bytes.NewBuffer(orderJson),
	)
	if err != nil {
		err = fmt.Errorf("failed creating request to order-service with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Receipt{}, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add(log.HeaderRequestID, log.RequestIDFromContext(c))
	logger.Info().Msg("created order request to order-service")
	span.AddEvent("created order request to order-service")

	logger = logger.With().Str(log.KeyProcess, "send-order-request").Logger()
	logger.Info().Msg("sending order request to order-service")
	span.AddEvent("sending order request to order-service")
	resp, err := otelhttp.DefaultClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed submitting order to order-service with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Receipt{}, err
	}
	defer resp.Body.Close()
	logger.Info().Msg("sent order request to order-service")
	span.AddEvent("sent order request to order-service")

	logger = logger.With().Str(log.KeyProcess, "unmarshal-order-response").Logger()
	logger.Info().Msg("unmarshaling order response")
	span.AddEvent("unmarshaling order response")
	respBody := submitResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		err = fmt.Errorf("failed unmarshaling order response with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Receipt{}, err
	}
	logger.Info().Msg("unmarshaled order response")
	span.AddEvent("unmarshaled order response")

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		err := &inErrors.OrderSubmitError{
			StatusCode: resp.StatusCode,
			Message:    respBody.Message,
		}
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Receipt{}, err
	}
	logger.Info().
		Str(log.KeyOrderID, respBody.Data.Order.ID.String()).
		Msg("order accepted by order-service")
	span.AddEvent("order accepted by order-service")

	return respBody.Data.Order, nil
}

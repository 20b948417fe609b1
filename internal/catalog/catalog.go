// Package catalog supplies the read-only service and add-on definitions the
// session manager resolves items against.
package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	DurationMinutes int32           `json:"duration_minutes"`
	Active          bool            `json:"active"`
}

// AddOn is a per-service add-on suggestion offered to the operator.
type AddOn struct {
	ID        uuid.UUID       `json:"id"`
	ServiceID uuid.UUID       `json:"service_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

type Store interface {
	FindServiceById(c context.Context, id uuid.UUID) (Service, error)
	FindServiceByName(c context.Context, name string) (Service, error)
	FindServices(c context.Context) ([]Service, error)
	FindAddOnsByServiceId(c context.Context, serviceID uuid.UUID) ([]AddOn, error)
}

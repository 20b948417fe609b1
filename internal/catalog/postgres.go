package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	inErrors "github.com/fabzclean/pos/internal/errors"
)

// Postgres reads the catalog from the services and add_ons tables. The POS
// never writes the catalog; the back office owns it.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const findServiceQuery = `
SELECT id, name, price, category, duration_minutes, active
FROM services
`

func (p *Postgres) FindServiceById(c context.Context, id uuid.UUID) (Service, error) {
	row := p.pool.QueryRow(c, findServiceQuery+"WHERE id = $1", id)
	return scanService(row)
}

func (p *Postgres) FindServiceByName(c context.Context, name string) (Service, error) {
	row := p.pool.QueryRow(c, findServiceQuery+"WHERE lower(name) = lower($1)", name)
	return scanService(row)
}

func (p *Postgres) FindServices(c context.Context) ([]Service, error) {
	rows, err := p.pool.Query(
		c,
		findServiceQuery+"WHERE active ORDER BY category, name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed querying services with error=%w", err)
	}
	defer rows.Close()

	services := []Service{}
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading services with error=%w", err)
	}
	return services, nil
}

func (p *Postgres) FindAddOnsByServiceId(
	c context.Context,
	serviceID uuid.UUID,
) ([]AddOn, error) {
	rows, err := p.pool.Query(
		c,
		`SELECT id, service_id, name, price FROM add_ons WHERE service_id = $1 ORDER BY name`,
		serviceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed querying add-ons with error=%w", err)
	}
	defer rows.Close()

	addOns := []AddOn{}
	for rows.Next() {
		var (
			a     AddOn
			price pgtype.Numeric
		)
		if err := rows.Scan(&a.ID, &a.ServiceID, &a.Name, &price); err != nil {
			return nil, fmt.Errorf("failed scanning add-on with error=%w", err)
		}
		a.Price = decimal.NewFromBigInt(price.Int, price.Exp)
		addOns = append(addOns, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading add-ons with error=%w", err)
	}
	return addOns, nil
}

func scanService(row pgx.Row) (Service, error) {
	var (
		svc   Service
		price pgtype.Numeric
	)
	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&price,
		&svc.Category,
		&svc.DurationMinutes,
		&svc.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Service{}, inErrors.ErrServiceNotFound
		}
		return Service{}, fmt.Errorf("failed scanning service with error=%w", err)
	}
	svc.Price = decimal.NewFromBigInt(price.Int, price.Exp)
	return svc, nil
}

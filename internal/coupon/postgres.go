package coupon

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	inErrors "github.com/fabzclean/pos/internal/errors"
)

type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) FindByCode(c context.Context, code string) (Coupon, error) {
	var (
		cp       Coupon
		value    pgtype.Numeric
		minOrder pgtype.Numeric
	)
	err := p.pool.
		QueryRow(
			c,
			`SELECT code, type, value, min_order FROM coupons WHERE code = $1 AND active`,
			Normalize(code),
		).
		Scan(&cp.Code, &cp.Type, &value, &minOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Coupon{}, inErrors.ErrCouponNotFound
		}
		return Coupon{}, fmt.Errorf("failed scanning coupon with error=%w", err)
	}
	cp.Value = decimal.NewFromBigInt(value.Int, value.Exp)
	cp.MinOrder = decimal.NewFromBigInt(minOrder.Int, minOrder.Exp)
	return cp, nil
}

package coupon

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	inErrors "github.com/fabzclean/pos/internal/errors"
)

func setupPostgres(t *testing.T, c context.Context) (*pgxpool.Pool, *postgres.PostgresContainer) {
	pgContainer, err := postgres.Run(
		c,
		"postgres:16.6-alpine3.21",
		testcontainers.WithEnv(map[string]string{
			"POSTGRES_DB":       "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_PORT":     "5432",
			"POSTGRES_USER":     "postgres",
		}),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithDatabase("postgres"),
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			filepath.Join("..", "..", "migrations", "20250618143902_create_table_coupons.up.sql"),
			filepath.Join("..", "..", "seed", "coupons.seed.sql"),
		),
	)
	if err != nil {
		t.Fatalf("failed running postgres container with error: %s", err)
	}

	pgConnStr, err := pgContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting postgres connection string with error: %s", err)
	}

	pgConfig, err := pgxpool.ParseConfig(pgConnStr)
	if err != nil {
		t.Fatalf("failed parsing pgx config with error: %s", err)
	}

	pool, err := pgxpool.NewWithConfig(c, pgConfig)
	if err != nil {
		t.Fatalf("failed creating postgres pool with error: %s", err)
	}

	if err = pool.Ping(c); err != nil {
		t.Fatalf("failed ping postgres pool with error: %s", err)
	}

	return pool, pgContainer
}

func teardownPostgres(t *testing.T, pool *pgxpool.Pool, pgContainer *postgres.PostgresContainer) {
	pool.Close()
	if err := testcontainers.TerminateContainer(pgContainer); err != nil {
		t.Fatalf("failed to terminate container: %s", err)
	}
}

func seededCoupons(t *testing.T) []Coupon {
	raw, err := os.ReadFile(filepath.Join("..", "..", "seed", "coupons.seed.json"))
	if err != nil {
		t.Fatalf("failed reading coupons.seed.json with error: %s", err)
	}
	coupons := []Coupon{}
	if err := json.Unmarshal(raw, &coupons); err != nil {
		t.Fatalf("failed decoding coupons.seed.json with error: %s", err)
	}
	return coupons
}

func TestPostgresFindByCode(t *testing.T) {
	c := context.Background()
	pool, pgContainer := setupPostgres(t, c)
	defer teardownPostgres(t, pool, pgContainer)

	store := NewPostgres(pool)

	for _, expected := range seededCoupons(t) {
		actual, err := store.FindByCode(c, expected.Code)
		assert.NoError(t, err)
		assert.EqualValues(t, expected.Code, actual.Code)
		assert.EqualValues(t, expected.Type, actual.Type)
		assert.Truef(t, expected.Value.Equal(actual.Value), "value should be %s but got %s", expected.Value, actual.Value)
		assert.Truef(t, expected.MinOrder.Equal(actual.MinOrder), "min order should be %s but got %s", expected.MinOrder, actual.MinOrder)
	}
}

func TestPostgresFindByCodeNormalizesInput(t *testing.T) {
	c := context.Background()
	pool, pgContainer := setupPostgres(t, c)
	defer teardownPostgres(t, pool, pgContainer)

	store := NewPostgres(pool)

	actual, err := store.FindByCode(c, "  welcome10 ")
	assert.NoError(t, err)
	assert.EqualValues(t, "WELCOME10", actual.Code)
}

func TestPostgresFindByCodeUnknownOrInactive(t *testing.T) {
	c := context.Background()
	pool, pgContainer := setupPostgres(t, c)
	defer teardownPostgres(t, pool, pgContainer)

	store := NewPostgres(pool)

	_, err := store.FindByCode(c, "NOSUCHCODE")
	assert.ErrorIs(t, err, inErrors.ErrCouponNotFound)

	_, err = store.FindByCode(c, "DIWALI25")
	assert.ErrorIs(t, err, inErrors.ErrCouponNotFound, "an inactive coupon should be invisible")
}

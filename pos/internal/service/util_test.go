package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fabzclean/pos/internal/catalog"
	"github.com/fabzclean/pos/internal/coupon"
	"github.com/fabzclean/pos/internal/holdstore"
	"github.com/fabzclean/pos/internal/orderclient"
	"github.com/fabzclean/pos/pos/pkg/request"
	"github.com/fabzclean/pos/pos/pkg/response"
)

// stubSubmitter records submitted orders and answers with a canned receipt
// so checkout tests never leave the process.
type stubSubmitter struct {
	receipt orderclient.Receipt
	err     error
	orders  []orderclient.Order
}

func (s *stubSubmitter) Submit(_ context.Context, order orderclient.Order) (orderclient.Receipt, error) {
	s.orders = append(s.orders, order)
	if s.err != nil {
		return orderclient.Receipt{}, s.err
	}
	return s.receipt, nil
}

type managerFixture struct {
	manager   *CartSessionManager
	washFold  catalog.Service
	dryClean  catalog.Service
	inactive  catalog.Service
	holds     *holdstore.Memory
	submitter *stubSubmitter
}

func setupManager(maxCarts int) *managerFixture {
	washFold := catalog.Service{
		ID:              uuid.New(),
		Name:            "Wash & Fold",
		Price:           decimal.NewFromInt(60),
		Category:        "laundry",
		DurationMinutes: 1440,
		Active:          true,
	}
	dryClean := catalog.Service{
		ID:              uuid.New(),
		Name:            "Dry Clean",
		Price:           decimal.NewFromInt(100),
		Category:        "dry-clean",
		DurationMinutes: 2880,
		Active:          true,
	}
	inactive := catalog.Service{
		ID:              uuid.New(),
		Name:            "Shoe Cleaning",
		Price:           decimal.NewFromInt(350),
		Category:        "specialty",
		DurationMinutes: 4320,
		Active:          false,
	}
	holds := holdstore.NewMemory()
	submitter := &stubSubmitter{
		receipt: orderclient.Receipt{
			ID:          uuid.New(),
			OrderNumber: "FZ-2025-000113",
			Status:      "confirmed",
		},
	}
	manager := NewCartSessionManager(
		maxCarts,
		catalog.NewMemory([]catalog.Service{washFold, dryClean, inactive}, nil),
		coupon.NewSeededMemory(),
		holds,
		submitter,
	)
	return &managerFixture{
		manager:   manager,
		washFold:  washFold,
		dryClean:  dryClean,
		inactive:  inactive,
		holds:     holds,
		submitter: submitter,
	}
}

func testContext() context.Context {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(context.Background())
}

// addItems puts quantity units of the service into the cart through the
// public operation, the same way the controller would.
func addItems(
	t *testing.T,
	f *managerFixture,
	cartId uuid.UUID,
	serviceId uuid.UUID,
	quantity int,
) *response.CartDetail {
	t.Helper()
	c := testContext()
	detail := (*response.CartDetail)(nil)
	for range quantity {
		added, err := f.manager.AddItem(c, cartId, request.AddItem{ServiceId: serviceId})
		assert.NoError(t, err, "seeding an item should not fail")
		detail = added
	}
	return detail
}

// assertOneActive checks the session invariant: the active cart id always
// names exactly one cart in the collection.
func assertOneActive(t *testing.T, session response.Session) {
	t.Helper()
	found := 0
	for _, summary := range session.Carts {
		if summary.ID == session.ActiveCartId {
			found++
		}
	}
	assert.EqualValues(t, 1, found, "exactly one cart should match the active cart id")
}

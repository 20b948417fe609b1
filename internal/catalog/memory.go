package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	inErrors "github.com/fabzclean/pos/internal/errors"
)

// Memory is an in-process catalog used in development and tests.
type Memory struct {
	mu       sync.RWMutex
	services map[uuid.UUID]Service
	addOns   map[uuid.UUID][]AddOn
}

func NewMemory(services []Service, addOns []AddOn) *Memory {
	m := &Memory{
		services: make(map[uuid.UUID]Service, len(services)),
		addOns:   make(map[uuid.UUID][]AddOn),
	}
	for _, svc := range services {
		m.services[svc.ID] = svc
	}
	for _, a := range addOns {
		m.addOns[a.ServiceID] = append(m.addOns[a.ServiceID], a)
	}
	return m
}

// NewSeededMemory returns a catalog preloaded with the standard laundry
// services so the service can run without a database.
func NewSeededMemory() *Memory {
	washFold := Service{
		ID:              uuid.New(),
		Name:            "Wash & Fold",
		Price:           decimal.NewFromInt(60),
		Category:        "laundry",
		DurationMinutes: 1440,
		Active:          true,
	}
	washIron := Service{
		ID:              uuid.New(),
		Name:            "Wash & Iron",
		Price:           decimal.NewFromInt(90),
		Category:        "laundry",
		DurationMinutes: 1440,
		Active:          true,
	}
	dryClean := Service{
		ID:              uuid.New(),
		Name:            "Dry Clean",
		Price:           decimal.NewFromInt(150),
		Category:        "dry-clean",
		DurationMinutes: 2880,
		Active:          true,
	}
	steamIron := Service{
		ID:              uuid.New(),
		Name:            "Steam Iron",
		Price:           decimal.NewFromInt(25),
		Category:        "ironing",
		DurationMinutes: 720,
		Active:          true,
	}
	services := []Service{washFold, washIron, dryClean, steamIron}
	addOns := []AddOn{
		{ID: uuid.New(), ServiceID: washFold.ID, Name: "Fabric Softener", Price: decimal.NewFromInt(10)},
		{ID: uuid.New(), ServiceID: washFold.ID, Name: "Stain Treatment", Price: decimal.NewFromInt(30)},
		{ID: uuid.New(), ServiceID: dryClean.ID, Name: "Express Stain Removal", Price: decimal.NewFromInt(50)},
		{ID: uuid.New(), ServiceID: steamIron.ID, Name: "Starch Finish", Price: decimal.NewFromInt(15)},
	}
	return NewMemory(services, addOns)
}

func (m *Memory) FindServiceById(_ context.Context, id uuid.UUID) (Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	svc, ok := m.services[id]
	if !ok {
		return Service{}, inErrors.ErrServiceNotFound
	}
	return svc, nil
}

func (m *Memory) FindServiceByName(_ context.Context, name string) (Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, svc := range m.services {
		if strings.EqualFold(svc.Name, name) {
			return svc, nil
		}
	}
	return Service{}, inErrors.ErrServiceNotFound
}

func (m *Memory) FindServices(_ context.Context) ([]Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	services := make([]Service, 0, len(m.services))
	for _, svc := range m.services {
		if !svc.Active {
			continue
		}
		services = append(services, svc)
	}
	sort.Slice(services, func(i, j int) bool {
		if services[i].Category != services[j].Category {
			return services[i].Category < services[j].Category
		}
		return services[i].Name < services[j].Name
	})
	return services, nil
}

func (m *Memory) FindAddOnsByServiceId(
	_ context.Context,
	serviceID uuid.UUID,
) ([]AddOn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	addOns := make([]AddOn, len(m.addOns[serviceID]))
	copy(addOns, m.addOns[serviceID])
	sort.Slice(addOns, func(i, j int) bool { return addOns[i].Name < addOns[j].Name })
	return addOns, nil
}

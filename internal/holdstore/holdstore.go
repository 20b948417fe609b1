// Package holdstore persists the single held cart so an interrupted order
// survives process restarts. The store keeps at most one snapshot; putting a
// new one overwrites the previous snapshot.
package holdstore

import (
	"context"
	"sync"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/pos/pkg/cart"
)

type Store interface {
	Put(c context.Context, snapshot cart.Cart) error
	Get(c context.Context) (cart.Cart, error)
	Delete(c context.Context) error
}

type Memory struct {
	mu   sync.Mutex
	held *cart.Cart
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Put(c context.Context, snapshot cart.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.held = snapshot.Clone()
	return nil
}

func (m *Memory) Get(c context.Context) (cart.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.held == nil {
		return cart.Cart{}, inErrors.ErrNoHeldCart
	}
	return *m.held.Clone(), nil
}

func (m *Memory) Delete(c context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.held = nil
	return nil
}

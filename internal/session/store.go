// Package session holds the logged-in warehouseman as an explicit
// value bound to login and logout, instead of ambient global state.
// Handlers read the actor from here and pass it into whatever call
// needs it.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/HIBA-BEG/Warehouse-Management/internal/domain/models"
)

// ErrNoSession indicates no warehouseman is currently logged in.
var ErrNoSession = errors.New("no active session")

// Store persists the logged-in warehouseman across requests.
type Store interface {
	Save(ctx context.Context, w models.Warehouseman) error
	Get(ctx context.Context) (*models.Warehouseman, error)
	Clear(ctx context.Context) error
}

// MemoryStore is the default in-process implementation.
type MemoryStore struct {
	mu      sync.RWMutex
	current *models.Warehouseman
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save records the warehouseman as the active session.
func (s *MemoryStore) Save(_ context.Context, w models.Warehouseman) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &w
	return nil
}

// Get returns the active warehouseman, or ErrNoSession.
func (s *MemoryStore) Get(_ context.Context) (*models.Warehouseman, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNoSession
	}
	w := *s.current
	return &w, nil
}

// Clear drops the active session.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}

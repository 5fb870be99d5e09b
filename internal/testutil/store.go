package testutil

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pedroramon/hotel-backend/internal/domain"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
)

// CopyFunc returns a detached copy of an entity so callers never share
// memory with the store.
type CopyFunc[T any] func(item T) T

// AssignIDFunc sets the store generated id on a new entity.
type AssignIDFunc[T any] func(item T, id int64)

type toucher interface {
	Touch(now time.Time)
}

// InMemoryStore implements domain.Repository over a map. Ids are assigned
// from an auto increment counter starting at 1.
type InMemoryStore[T domain.Entity] struct {
	mu       sync.RWMutex
	items    map[int64]T
	nextID   int64
	copyFn   CopyFunc[T]
	assignID AssignIDFunc[T]
	saveErr  error
	gets     atomic.Int64
}

// NewInMemoryStore creates a new InMemoryStore
func NewInMemoryStore[T domain.Entity](copyFn CopyFunc[T], assignID AssignIDFunc[T]) *InMemoryStore[T] {
	return &InMemoryStore[T]{
		items:    make(map[int64]T),
		copyFn:   copyFn,
		assignID: assignID,
	}
}

// List returns every item in ascending id order
func (s *InMemoryStore[T]) List(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]T, 0, len(ids))
	for _, id := range ids {
		result = append(result, s.copyFn(s.items[id]))
	}
	return result, nil
}

// Get retrieves an item by ID
func (s *InMemoryStore[T]) Get(ctx context.Context, id int64) (T, error) {
	s.gets.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item, exists := s.items[id]; exists {
		return s.copyFn(item), nil
	}

	var zero T
	return zero, ierr.NewError("item not found").
		WithHint("Item not found").
		WithReportableDetails(map[string]any{"id": id}).
		Mark(ierr.ErrNotFound)
}

// Save inserts items without an id and replaces the others
func (s *InMemoryStore[T]) Save(ctx context.Context, item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(item)
}

func (s *InMemoryStore[T]) saveLocked(item T) (T, error) {
	var zero T
	if s.saveErr != nil {
		err := s.saveErr
		s.saveErr = nil
		return zero, err
	}

	stored := s.copyFn(item)
	if t, ok := any(stored).(toucher); ok {
		t.Touch(time.Now().UTC())
	}

	if stored.GetID() == 0 {
		s.nextID++
		s.assignID(stored, s.nextID)
	} else if _, exists := s.items[stored.GetID()]; !exists {
		return zero, ierr.NewError("item not found").
			WithHint("Item not found").
			WithReportableDetails(map[string]any{"id": stored.GetID()}).
			Mark(ierr.ErrNotFound)
	}

	s.items[stored.GetID()] = stored
	return s.copyFn(stored), nil
}

// Delete removes an item from the store. Absent ids are ignored.
func (s *InMemoryStore[T]) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// Put stores item as is, keeping its id and timestamps. Used to seed
// fixtures with known values.
func (s *InMemoryStore[T]) Put(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.GetID()] = s.copyFn(item)
	if item.GetID() > s.nextID {
		s.nextID = item.GetID()
	}
}

// FailNextSave makes the next Save return err without storing anything
func (s *InMemoryStore[T]) FailNextSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// GetCalls returns how many times Get was called
func (s *InMemoryStore[T]) GetCalls() int64 {
	return s.gets.Load()
}

// Len returns the number of stored items
func (s *InMemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear removes all items from the store
func (s *InMemoryStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[int64]T)
	s.nextID = 0
	s.saveErr = nil
	s.gets.Store(0)
}

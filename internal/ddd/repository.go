package ddd

import (
	"context"
	"errors"
	"sync"
)

var ErrAggregateNotFound = errors.New("aggregate not found")

// Identifiable is what a repository needs from an aggregate.
type Identifiable[ID comparable] interface {
	ID() ID
}

type Repository[ID comparable, T Identifiable[ID]] interface {
	FindByID(ctx context.Context, id ID) (T, error)
	Save(ctx context.Context, aggregate T) error
	Delete(ctx context.Context, aggregate T) error
}

// MemoryRepository keeps aggregates in a map. Safe for concurrent use.
type MemoryRepository[ID comparable, T Identifiable[ID]] struct {
	mu    sync.RWMutex
	items map[ID]T
}

func NewMemoryRepository[ID comparable, T Identifiable[ID]]() *MemoryRepository[ID, T] {
	return &MemoryRepository[ID, T]{items: make(map[ID]T)}
}

var _ Repository[string, Identifiable[string]] = (*MemoryRepository[string, Identifiable[string]])(nil)

func (r *MemoryRepository[ID, T]) FindByID(ctx context.Context, id ID) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return zero, ErrAggregateNotFound
	}
	return it, nil
}

func (r *MemoryRepository[ID, T]) Save(ctx context.Context, aggregate T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[aggregate.ID()] = aggregate
	return nil
}

func (r *MemoryRepository[ID, T]) Delete(ctx context.Context, aggregate T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[aggregate.ID()]; !ok {
		return ErrAggregateNotFound
	}
	delete(r.items, aggregate.ID())
	return nil
}

func (r *MemoryRepository[ID, T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

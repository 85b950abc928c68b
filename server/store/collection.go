package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type Record interface {
	Key() ID
}

func NewCollection[T Record](records []T) (*Collection[T], error) {
	c := &Collection[T]{
		records: make([]T, 0, len(records)),
		index:   make(map[ID]int, len(records)),
	}
	for _, record := range records {
		if err := c.Append(record); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Collection is an ordered, append-only sequence of records with an id index.
// Records are stored by value, callers always receive copies.
type Collection[T Record] struct {
	mu      sync.RWMutex
	records []T
	index   map[ID]int
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.records)
}

func (c *Collection[T]) Find(id ID) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("id %q: %w", id, ErrNotFound)
	}
	return c.records[i], nil
}

func (c *Collection[T]) Filter(fn func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var records []T
	for _, record := range c.records {
		if fn(record) {
			records = append(records, record)
		}
	}
	return records
}

func (c *Collection[T]) Append(record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := record.Key()
	if _, ok := c.index[id]; ok {
		return fmt.Errorf("id %q: %w", id, ErrConflict)
	}

	c.index[id] = len(c.records)
	c.records = append(c.records, record)
	return nil
}

// Replace rewrites the record with the given id in place. fn must keep the id.
func (c *Collection[T]) Replace(id ID, fn func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i, ok := c.index[id]
	if !ok {
		return zero, fmt.Errorf("id %q: %w", id, ErrNotFound)
	}

	record := fn(c.records[i])
	if record.Key() != id {
		return zero, fmt.Errorf("id %q changed to %q: %w", id, record.Key(), ErrConflict)
	}

	c.records[i] = record
	return record, nil
}

package storage

import (
	"sync"

	"github.com/rs/zerolog"
)

// PersistentStorageMonoid is a single-slot lazily-constructed cell: at most
// one object of type T exists at a time, built on first demand and shared
// by every subsequent caller. Safe for concurrent use.
type PersistentStorageMonoid[T any] struct {
	signature uint32
	mu        sync.RWMutex
	object    *T
	log       *zerolog.Logger
}

// MonoidOption configures a PersistentStorageMonoid at construction time.
type MonoidOption[T any] func(*PersistentStorageMonoid[T])

// WithMonoidLogger attaches a zerolog logger for debug-level lifecycle
// breadcrumbs. A nil logger (the default) emits nothing.
func WithMonoidLogger[T any](logger *zerolog.Logger) MonoidOption[T] {
	return func(m *PersistentStorageMonoid[T]) { m.log = logger }
}

// NewPersistentStorageMonoid creates an empty monoid cell tagged with
// signature. seed, if non-nil, pre-populates the cell.
func NewPersistentStorageMonoid[T any](signature uint32, seed *T, opts ...MonoidOption[T]) *PersistentStorageMonoid[T] {
	m := &PersistentStorageMonoid[T]{signature: signature, object: seed}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Signature returns the monoid's signature.
func (m *PersistentStorageMonoid[T]) Signature() uint32 { return m.signature }

// Get returns the currently stored object, or nil if the cell is empty.
func (m *PersistentStorageMonoid[T]) Get() *T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.object
}

// Set replaces the stored object, discarding any prior value.
func (m *PersistentStorageMonoid[T]) Set(obj *T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.object = obj
	if m.log != nil {
		m.log.Debug().Uint32("signature", m.signature).Msg("monoid object set")
	}
}

// Empty reports whether the cell currently holds no object.
func (m *PersistentStorageMonoid[T]) Empty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.object == nil
}

// CreateIfEmpty returns the stored object, constructing one with build if
// the cell is currently empty. Uses double-checked locking: an optimistic
// read under RLock, then a second check under the write lock in case
// another goroutine won the race to construct first.
func (m *PersistentStorageMonoid[T]) CreateIfEmpty(build func() T) *T {
	m.mu.RLock()
	if m.object != nil {
		obj := m.object
		m.mu.RUnlock()
		return obj
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.object != nil {
		return m.object
	}
	built := build()
	m.object = &built
	if m.log != nil {
		m.log.Debug().Uint32("signature", m.signature).Msg("monoid object created")
	}
	return m.object
}

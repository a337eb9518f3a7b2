// internal/store/memory.go
//
// In-memory implementation of Store.
// This is the default persistence layer for live rounds; state is lost when
// the process restarts.
//
// Characteristics:
//   - Stores *game.Round objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Callers only ever see clones, never the stored pointer.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNotFound is returned for unknown round IDs.
var ErrNotFound = errors.New("round not found")

// Store defines the persistence interface for live rounds.
// Implementations may be backed by memory (this file) or SQLite (sqlite.go).
type Store interface {
	// Save inserts or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Get retrieves a copy of a round by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Round, error)

	// Update runs fn on a copy of the round and stores the result if fn
	// returns nil. Updates of the same round are serialized. The stored
	// round is returned on success.
	Update(ctx context.Context, id string, fn func(*game.Round) error) (*game.Round, error)

	// Close releases resources held by the store.
	Close() error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex           // guards rounds map
	rounds map[string]*game.Round // keyed by Round.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

// Save adds or replaces the round in the map.
func (m *memory) Save(ctx context.Context, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = r.Clone()
	return nil
}

// Get looks up a round by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return r.Clone(), nil
	}
	return nil, ErrNotFound
}

// Update applies fn under the write lock.
func (m *memory) Update(ctx context.Context, id string, fn func(*game.Round) error) (*game.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rounds[id]
	if !ok {
		return nil, ErrNotFound
	}
	next := cur.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	m.rounds[id] = next
	return next.Clone(), nil
}

func (m *memory) Close() error { return nil }

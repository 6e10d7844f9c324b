// Package inventory implements the player's held-item store and the slot
// projection that mirrors it onto the HUD.
package inventory

import (
	"log/slog"
	"sync"

	"vecerka/internal/item"
)

// DefaultCapacity is the store size used when none is configured.
const DefaultCapacity = 20

// Store is an ordered, capacity-bounded sequence of held items.
// All mutation goes through Add and Remove; observers are notified after
// every successful Add and after every Remove.
type Store struct {
	mu        sync.Mutex
	items     []*item.Item
	capacity  int
	observers []*observer
	logger    *slog.Logger
}

type observer struct{ fn func() }

// New creates an empty store. A non-positive capacity uses DefaultCapacity.
func New(capacity int, logger *slog.Logger) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		items:    make([]*item.Item, 0, capacity),
		capacity: capacity,
		logger:   logger,
	}
}

// Add appends it when there is room. Returns false without mutation when
// the store is full.
func (s *Store) Add(it *item.Item) bool {
	s.mu.Lock()
	if len(s.items) >= s.capacity {
		s.mu.Unlock()
		s.logger.Info("inventory full", "item", it.String(), "capacity", s.capacity)
		return false
	}
	s.items = append(s.items, it)
	n := len(s.items)
	s.mu.Unlock()

	s.logger.Debug("item added to inventory", "item", it.String(), "count", n)
	s.notify()
	return true
}

// Remove deletes the first occurrence of it (pointer equality), keeping the
// order of the rest. Observers are notified even when it was not held.
func (s *Store) Remove(it *item.Item) {
	s.mu.Lock()
	for i, held := range s.items {
		if held == it {
			copy(s.items[i:], s.items[i+1:])
			s.items[len(s.items)-1] = nil
			s.items = s.items[:len(s.items)-1]
			break
		}
	}
	s.mu.Unlock()

	s.logger.Debug("item removed from inventory", "item", it.String())
	s.notify()
}

// Items returns a snapshot of the held items in insertion order.
func (s *Store) Items() []*item.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*item.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of held items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Capacity returns the maximum number of held items.
func (s *Store) Capacity() int { return s.capacity }

// Full reports whether Add would currently fail.
func (s *Store) Full() bool { return s.Len() >= s.capacity }

// Subscribe registers fn to run after each change notification. Observers
// run outside the store's lock, in subscription order. The returned func
// removes the registration.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	o := &observer{fn: fn}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, other := range s.observers {
			if other == o {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	obs := make([]*observer, len(s.observers))
	copy(obs, s.observers)
	s.mu.Unlock()
	for _, o := range obs {
		o.fn()
	}
}

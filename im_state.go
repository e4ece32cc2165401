package uikit

import "sync"

// stateStore holds per-id widget state for the immediate-mode API.
// Entries are created on first use and live for the process lifetime;
// nothing is cleaned up per frame.
type stateStore[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

type imResettable interface{ reset() }

var (
	imStoresMu sync.Mutex
	imStores   []imResettable
)

func newStateStore[T any]() *stateStore[T] {
	s := &stateStore[T]{items: make(map[string]*T)}
	imStoresMu.Lock()
	imStores = append(imStores, s)
	imStoresMu.Unlock()
	return s
}

// get returns the state for id, creating a zero value on first use.
func (s *stateStore[T]) get(id string) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.items[id]
	if !ok {
		st = new(T)
		s.items[id] = st
	}
	return st
}

func (s *stateStore[T]) reset() {
	s.mu.Lock()
	s.items = make(map[string]*T)
	s.mu.Unlock()
}

// ResetImmediateState drops all per-id immediate-mode widget state.
// Useful when switching screens so stale ids do not accumulate.
func ResetImmediateState() {
	imStoresMu.Lock()
	defer imStoresMu.Unlock()
	for _, s := range imStores {
		s.reset()
	}
}

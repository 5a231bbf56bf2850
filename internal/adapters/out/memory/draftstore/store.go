// Package draftstore holds the single in-progress draft of the session.
// Drafts never outlive the process; there is nothing to persist.
package draftstore

import (
	"sync"

	"backoffice/internal/core/domain/model/order"
)

// Store owns the session draft. The draft is created lazily on first access and
// lives until the process exits; submission resets it in place rather than
// replacing it.
//
// Only the lazy creation is lock-guarded. The draft aggregate itself is mutated
// unlocked: the session model has a single operator driving one request at a
// time, so draft edits never race. The history and the print coordinator guard
// themselves because background goroutines touch them.
type Store struct {
	mu    sync.Mutex
	draft *order.Draft
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Draft returns the session draft, creating an empty one on first use.
func (s *Store) Draft() *order.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		s.draft = order.NewDraft()
	}
	return s.draft
}

// Package otp holds pending one-time passwords keyed by the mobile
// number they were issued for.
package otp

import (
	"context"
	"sync"
	"time"

	chatapp_errors "chatapp/pkg/errors"
)

// Pending is a code waiting to be verified.
type Pending struct {
	Code      string
	ExpiresAt time.Time
}

// Store keeps at most one pending code per subject. Put overwrites any
// prior entry for the same subject (last-write-wins).
type Store interface {
	Put(ctx context.Context, subject, code string, ttl time.Duration) error
	// Get returns chatapp_errors.ErrNotFound when no live entry exists.
	Get(ctx context.Context, subject string) (Pending, error)
	Delete(ctx context.Context, subject string) error
}

// MemoryStore is the in-process Store. Expired entries are evicted
// lazily, on the next Get or Put for the same subject.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Pending
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Pending),
		now:     time.Now,
	}
}

// NewMemoryStoreWithClock injects the time source, for tests.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Pending),
		now:     now,
	}
}

func (s *MemoryStore) Put(_ context.Context, subject, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[subject] = Pending{
		Code:      code,
		ExpiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, subject string) (Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[subject]
	if !ok {
		return Pending{}, chatapp_errors.ErrNotFound
	}
	if s.now().After(entry.ExpiresAt) {
		delete(s.entries, subject)
		return Pending{}, chatapp_errors.ErrNotFound
	}
	return entry, nil
}

func (s *MemoryStore) Delete(_ context.Context, subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, subject)
	return nil
}

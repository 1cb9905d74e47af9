package cache

import (
	"context"
	"sync"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
)

type undoEntry struct {
	replacement ledger.DocumentReplacement
	expiresAt   time.Time
}

// InMemoryUndoStore keeps one replacement per project for ttl
type InMemoryUndoStore struct {
	ttl       time.Duration
	now       func() time.Time
	mu        sync.Mutex
	entries   map[uuid.UUID]undoEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryUndoStore creates the store and starts its cleanup loop
func NewInMemoryUndoStore(ttl time.Duration) *InMemoryUndoStore {
	s := &InMemoryUndoStore{
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[uuid.UUID]undoEntry),
		stopChan: make(chan struct{}),
	}
	s.wg.Add(1)
	go s.cleanupLoop()
	return s
}

// Put overwrites the project's slot
func (s *InMemoryUndoStore) Put(ctx context.Context, projectID uuid.UUID, r ledger.DocumentReplacement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[projectID] = undoEntry{replacement: r, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Take removes and returns the project's slot, nil when empty or expired
func (s *InMemoryUndoStore) Take(ctx context.Context, projectID uuid.UUID) (*ledger.DocumentReplacement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[projectID]
	delete(s.entries, projectID)
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, nil
	}
	r := e.replacement
	return &r, nil
}

// Discard empties the slot while it still holds r
func (s *InMemoryUndoStore) Discard(ctx context.Context, projectID uuid.UUID, r ledger.DocumentReplacement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[projectID]; ok && e.replacement.Same(r) {
		delete(s.entries, projectID)
	}
	return nil
}

// Size returns the number of slots, expired ones included
func (s *InMemoryUndoStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemoryUndoStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemoryUndoStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(cleanupInterval(s.ttl))
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemoryUndoStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}

// Ensure InMemoryUndoStore implements UndoStore
var _ ledger.UndoStore = (*InMemoryUndoStore)(nil)

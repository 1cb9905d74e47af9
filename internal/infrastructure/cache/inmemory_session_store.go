package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
)

// InMemorySessionLinkStore implements SessionLinkStore as a per-project set
// whose members expire ttl after their last Add
type InMemorySessionLinkStore struct {
	ttl       time.Duration
	now       func() time.Time
	mu        sync.RWMutex
	projects  map[uuid.UUID]map[string]time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemorySessionLinkStore creates the store and starts its cleanup loop
func NewInMemorySessionLinkStore(ttl time.Duration) *InMemorySessionLinkStore {
	s := &InMemorySessionLinkStore{
		ttl:      ttl,
		now:      time.Now,
		projects: make(map[uuid.UUID]map[string]time.Time),
		stopChan: make(chan struct{}),
	}
	s.wg.Add(1)
	go s.cleanupLoop()
	return s
}

// Add marks supplierID linked and restarts its TTL
func (s *InMemorySessionLinkStore) Add(ctx context.Context, projectID uuid.UUID, supplierID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.projects[projectID]
	if !ok {
		set = make(map[string]time.Time)
		s.projects[projectID] = set
	}
	set[supplierID] = s.now().Add(s.ttl)
	return nil
}

// Remove drops supplierID from the project's set
func (s *InMemorySessionLinkStore) Remove(ctx context.Context, projectID uuid.UUID, supplierID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.projects[projectID]; ok {
		delete(set, supplierID)
		if len(set) == 0 {
			delete(s.projects, projectID)
		}
	}
	return nil
}

// Members returns the unexpired suppliers of a project, sorted
func (s *InMemorySessionLinkStore) Members(ctx context.Context, projectID uuid.UUID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	members := make([]string, 0, len(s.projects[projectID]))
	for id, expiresAt := range s.projects[projectID] {
		if now.Before(expiresAt) {
			members = append(members, id)
		}
	}
	sort.Strings(members)
	return members, nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemorySessionLinkStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemorySessionLinkStore) cleanupLoop() {
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

func (s *InMemorySessionLinkStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for projectID, set := range s.projects {
		for id, expiresAt := range set {
			if !now.Before(expiresAt) {
				delete(set, id)
			}
		}
		if len(set) == 0 {
			delete(s.projects, projectID)
		}
	}
}

// cleanupInterval sweeps at most every five minutes
func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > 5*time.Minute {
		return 5 * time.Minute
	}
	return ttl
}

// Ensure InMemorySessionLinkStore implements SessionLinkStore
var _ ledger.SessionLinkStore = (*InMemorySessionLinkStore)(nil)

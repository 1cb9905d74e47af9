package cache

import (
	"context"
	"sync"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
)

type wizardEntry struct {
	wizard    *ledger.InvoiceWizard
	expiresAt time.Time
}

// InMemoryWizardStore keeps invoice wizards for ttl after their last save
type InMemoryWizardStore struct {
	ttl       time.Duration
	now       func() time.Time
	mu        sync.Mutex
	entries   map[uuid.UUID]wizardEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryWizardStore creates the store and starts its cleanup loop
func NewInMemoryWizardStore(ttl time.Duration) *InMemoryWizardStore {
	s := &InMemoryWizardStore{
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[uuid.UUID]wizardEntry),
		stopChan: make(chan struct{}),
	}
	s.wg.Add(1)
	go s.cleanupLoop()
	return s
}

// Get returns a copy of the stored wizard or ErrWizardNotFound
func (s *InMemoryWizardStore) Get(ctx context.Context, id uuid.UUID) (*ledger.InvoiceWizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return nil, ledger.ErrWizardNotFound
	}
	return cloneWizard(e.wizard), nil
}

// Save stores a copy of wizard and restarts its TTL
func (s *InMemoryWizardStore) Save(ctx context.Context, wizard *ledger.InvoiceWizard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[wizard.ID] = wizardEntry{
		wizard:    cloneWizard(wizard),
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

// Delete removes a wizard
func (s *InMemoryWizardStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Size returns the number of stored wizards, expired ones included
func (s *InMemoryWizardStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemoryWizardStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemoryWizardStore) cleanupLoop() {
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

func (s *InMemoryWizardStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}

// cloneWizard copies the slices and pointers a caller could mutate
func cloneWizard(w *ledger.InvoiceWizard) *ledger.InvoiceWizard {
	c := *w
	c.Items = append([]ledger.LineItemDraft(nil), w.Items...)
	if w.Attachment != nil {
		a := *w.Attachment
		c.Attachment = &a
	}
	if w.Header.Supplier.Draft != nil {
		d := *w.Header.Supplier.Draft
		c.Header.Supplier.Draft = &d
	}
	return &c
}

// Ensure InMemoryWizardStore implements WizardStore
var _ ledger.WizardStore = (*InMemoryWizardStore)(nil)

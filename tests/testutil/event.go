package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
)

// ChangeRecorder collects the change notices delivered by a subscriber
type ChangeRecorder struct {
	mu      sync.Mutex
	notices []ledger.ChangeNotice
}

// RecordChanges subscribes a recorder to sub until the test ends
func RecordChanges(t *testing.T, sub ledger.ChangeSubscriber) *ChangeRecorder {
	t.Helper()
	r := &ChangeRecorder{}
	t.Cleanup(sub.Subscribe(r.record))
	return r
}

func (r *ChangeRecorder) record(n ledger.ChangeNotice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of everything recorded so far
func (r *ChangeRecorder) Notices() []ledger.ChangeNotice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ledger.ChangeNotice(nil), r.notices...)
}

// Tables returns the table of every recorded notice, in arrival order
func (r *ChangeRecorder) Tables() []string {
	notices := r.Notices()
	out := make([]string, len(notices))
	for i, n := range notices {
		out[i] = n.Table
	}
	return out
}

// Count returns the number of recorded notices
func (r *ChangeRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notices)
}

// Reset drops every recorded notice
func (r *ChangeRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = nil
}

// WaitForCount waits until at least n notices arrived
func (r *ChangeRecorder) WaitForCount(t *testing.T, n int, timeout time.Duration) bool {
	t.Helper()
	return WaitForCondition(t, func() bool { return r.Count() >= n }, timeout, 10*time.Millisecond)
}

package websocket

import (
	"sync"

	"github.com/meinwort/meinwort-go/models"
)

// CountTracker mirrors the signature counts currently shown by connected
// clients. A view registers the server-confirmed count once on mount; after
// that, verified signature events bump the displayed value by exactly one
// without another count query. Server-confirmed counts remain the ground
// truth: every explicit reload overwrites the tracked value.
type CountTracker struct {
	mu     sync.Mutex
	counts map[uint]int64
}

func NewCountTracker() *CountTracker {
	return &CountTracker{counts: make(map[uint]int64)}
}

// Set records the server-confirmed count for a displayed petition.
func (t *CountTracker) Set(petitionID uint, count int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[petitionID] = count
}

// Apply increments the displayed count for the event's petition when the
// event carries a verified signature. Events for petitions nobody displays,
// or with any other status, change nothing.
func (t *CountTracker) Apply(event SignatureEvent) {
	if event.VerificationStatus != string(models.VerificationVerified) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if count, ok := t.counts[event.PetitionID]; ok {
		t.counts[event.PetitionID] = count + 1
	}
}

// Get returns the displayed count, if the petition is currently displayed.
func (t *CountTracker) Get(petitionID uint) (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	count, ok := t.counts[petitionID]
	return count, ok
}

// Forget drops the petition from the tracker when its last view unmounts.
func (t *CountTracker) Forget(petitionID uint) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.counts, petitionID)
}

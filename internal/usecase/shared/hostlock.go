package shared

import (
	"sync"

	"github.com/google/uuid"
)

// HostLocks serializes check-then-commit per host. The conflict check and the
// subsequent booking write are separate steps, so without this two concurrent
// requests can both observe a free slot and double-book it. Entries are
// reference-counted and removed when the last holder releases.
type HostLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*hostLock
}

type hostLock struct {
	mu   sync.Mutex
	refs int
}

func NewHostLocks() *HostLocks {
	return &HostLocks{locks: make(map[uuid.UUID]*hostLock)}
}

// Lock acquires the host's lock and returns the matching unlock function.
func (h *HostLocks) Lock(hostID uuid.UUID) func() {
	h.mu.Lock()
	l, ok := h.locks[hostID]
	if !ok {
		l = &hostLock{}
		h.locks[hostID] = l
	}
	l.refs++
	h.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		h.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(h.locks, hostID)
		}
		h.mu.Unlock()
	}
}

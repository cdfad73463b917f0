//go:build unit

package shared_test

import (
	"sync"
	"testing"

	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHostLocksSerializesPerHost(t *testing.T) {
	locks := shared.NewHostLocks()
	hostID := uuid.New()

	var (
		wg      sync.WaitGroup
		counter int
	)

	// Without mutual exclusion per host this races under -race.
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(hostID)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestHostLocksIndependentHosts(t *testing.T) {
	locks := shared.NewHostLocks()
	hostA := uuid.New()
	hostB := uuid.New()

	unlockA := locks.Lock(hostA)
	// A second host must not block while the first is held.
	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock(hostB)
		unlockB()
		close(done)
	}()
	<-done
	unlockA()

	// Re-acquiring after release works.
	unlock := locks.Lock(hostA)
	unlock()
}

// Package workers bounds the amount of CPU-expensive work running at once.
//
// bcrypt hashing and verification take tens of milliseconds each; without a
// bound a burst of registrations could occupy every scheduler thread and
// starve unrelated request handling. HashPool caps the number of concurrent
// bcrypt computations while leaving all other requests free to proceed.
package workers

import (
	"context"
	"runtime"

	"github.com/MKhiriev/go-user-manager/internal/utils"
)

// HashPool executes bcrypt operations under a concurrency cap.
// Safe for concurrent use; all state is read-only after construction.
type HashPool struct {
	sem  chan struct{}
	cost int
}

// NewHashPool constructs a HashPool that allows at most size concurrent
// bcrypt computations, each at the given cost factor. A non-positive size
// defaults to the number of schedulable CPUs.
func NewHashPool(size, cost int) *HashPool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}

	return &HashPool{
		sem:  make(chan struct{}, size),
		cost: cost,
	}
}

// Hash derives a bcrypt hash of plaintext inside the pool.
//
// Blocks until a pool slot is free or ctx is done; a cancelled context is
// returned as ctx.Err() without starting the computation.
func (p *HashPool) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := p.acquire(ctx); err != nil {
		return "", err
	}
	defer p.release()

	return utils.HashPassword(plaintext, p.cost)
}

// Verify compares plaintext against a stored bcrypt hash inside the pool.
// Verification costs as much as hashing, so it shares the same cap.
//
// The bool result is false on any mismatch or malformed hash; the error is
// non-nil only when ctx is done before a slot frees up.
func (p *HashPool) Verify(ctx context.Context, plaintext, hashed string) (bool, error) {
	if err := p.acquire(ctx); err != nil {
		return false, err
	}
	defer p.release()

	return utils.VerifyPassword(plaintext, hashed), nil
}

func (p *HashPool) acquire(ctx context.Context) error {
	select {
	case p.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *HashPool) release() {
	<-p.sem
}

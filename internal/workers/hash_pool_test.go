package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPool_RoundTrip(t *testing.T) {
	pool := NewHashPool(2, bcrypt.MinCost)
	ctx := context.Background()

	hash, err := pool.Hash(ctx, "pw123")
	require.NoError(t, err)

	ok, err := pool.Verify(ctx, "pw123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = pool.Verify(ctx, "wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPool_DefaultSize(t *testing.T) {
	pool := NewHashPool(0, bcrypt.MinCost)
	require.NotNil(t, pool)
	assert.Greater(t, cap(pool.sem), 0)
}

// TestHashPool_CancelledContext verifies that a full pool respects context
// cancellation instead of blocking forever.
func TestHashPool_CancelledContext(t *testing.T) {
	pool := NewHashPool(1, bcrypt.MinCost)

	// occupy the single slot
	pool.sem <- struct{}{}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := pool.Hash(ctx, "pw123")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	<-pool.sem
}

// TestHashPool_ConcurrencyBound verifies that no more than size hashes run
// at the same time.
func TestHashPool_ConcurrencyBound(t *testing.T) {
	const size = 2
	pool := NewHashPool(size, bcrypt.MinCost)

	var mu sync.Mutex
	var running, maxRunning int

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, pool.acquire(context.Background()))
			mu.Lock()
			running++
			if running > maxRunning {
				maxRunning = running
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
			pool.release()
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, maxRunning, size)
}

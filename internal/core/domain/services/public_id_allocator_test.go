package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChecker records allocated tokens and reports collisions against
// a seeded set, standing in for the order store. With reserveOnCheck
// set, a free token is claimed at check time, the way a placement's
// find-then-insert serializes against the unique index.
type fakeChecker struct {
	mu             sync.Mutex
	taken          map[string]bool
	err            error
	calls          int
	reserveOnCheck bool
}

func newFakeChecker(taken ...string) *fakeChecker {
	set := make(map[string]bool, len(taken))
	for _, tok := range taken {
		set[tok] = true
	}
	return &fakeChecker{taken: set}
}

func (f *fakeChecker) ExistsWithPublicID(_ context.Context, publicID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return false, f.err
	}

	if f.taken[publicID] {
		return true, nil
	}
	if f.reserveOnCheck {
		f.taken[publicID] = true
	}
	return false, nil
}

func TestPublicIDAllocator_Allocate(t *testing.T) {
	t.Run("returns a well-formed token", func(t *testing.T) {
		allocator := services.NewPublicIDAllocator(newFakeChecker())

		token, err := allocator.Allocate(context.Background())

		require.NoError(t, err)
		require.NoError(t, order.ValidatePublicID(token))
	})

	t.Run("always consults the store before returning", func(t *testing.T) {
		checker := newFakeChecker()
		allocator := services.NewPublicIDAllocator(checker)

		_, err := allocator.Allocate(context.Background())

		require.NoError(t, err)
		assert.GreaterOrEqual(t, checker.calls, 1)
	})

	t.Run("store failure aborts without retry", func(t *testing.T) {
		checker := newFakeChecker()
		checker.err = errors.New("connection refused")
		allocator := services.NewPublicIDAllocator(checker)

		_, err := allocator.Allocate(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "uniqueness")
		assert.Equal(t, 1, checker.calls)
	})

	t.Run("cancelled context stops allocation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		allocator := services.NewPublicIDAllocator(newFakeChecker())

		_, err := allocator.Allocate(ctx)

		require.Error(t, err)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("concurrent allocations yield distinct tokens", func(t *testing.T) {
		const n = 64

		checker := newFakeChecker()
		checker.reserveOnCheck = true
		allocator := services.NewPublicIDAllocator(checker)

		var (
			mu     sync.Mutex
			tokens = make(map[string]int, n)
			wg     sync.WaitGroup
		)

		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				token, err := allocator.Allocate(context.Background())
				assert.NoError(t, err)

				mu.Lock()
				defer mu.Unlock()
				tokens[token]++
			}()
		}
		wg.Wait()

		assert.Len(t, tokens, n, "expected %d distinct tokens", n)
	})
}

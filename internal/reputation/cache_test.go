package reputation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

type countingFetcher struct {
	calls atomic.Int64
	rank  int
	err   error
	block chan struct{} // when set, fetch waits until closed
}

func (f *countingFetcher) HashReputation(ctx context.Context, hash string) (*client.HashReputation, error) {
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return &client.HashReputation{Rank: f.rank}, nil
}

func TestLookup_cachesSecondCall(t *testing.T) {
	f := &countingFetcher{rank: 7}
	c, err := New(f, 8)
	require.NoError(t, err)

	rep, err := c.Lookup(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, 7, rep.Rank)

	_, err = c.Lookup(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.calls.Load())
	assert.Equal(t, 1, c.Len())
}

func TestLookup_keyIsCaseInsensitive(t *testing.T) {
	f := &countingFetcher{rank: 3}
	c, err := New(f, 8)
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), "ABC123")
	require.NoError(t, err)
	_, err = c.Lookup(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, int64(1), f.calls.Load())
}

func TestLookup_errorsAreNotCached(t *testing.T) {
	f := &countingFetcher{err: errors.New("console unavailable")}
	c, err := New(f, 8)
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), "abc")
	require.Error(t, err)
	assert.Zero(t, c.Len())

	f.err = nil
	f.rank = 2
	rep, err := c.Lookup(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Rank)
	assert.Equal(t, int64(2), f.calls.Load())
}

func TestLookup_concurrentLookupsCollapse(t *testing.T) {
	f := &countingFetcher{rank: 5, block: make(chan struct{})}
	c, err := New(f, 8)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rep, err := c.Lookup(context.Background(), "deadbeef")
			assert.NoError(t, err)
			assert.Equal(t, 5, rep.Rank)
		}()
	}

	// Let every goroutine park inside the shared flight before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(f.block)
	wg.Wait()
	assert.Equal(t, int64(1), f.calls.Load(), "concurrent lookups share one upstream call")
}

func TestCache_evictsBeyondCapacity(t *testing.T) {
	f := &countingFetcher{rank: 1}
	c, err := New(f, 2)
	require.NoError(t, err)

	for _, h := range []string{"a", "b", "c"} {
		_, err := c.Lookup(context.Background(), h)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())
}

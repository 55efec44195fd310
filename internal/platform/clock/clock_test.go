package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID_StrictlyIncreasingWithFrozenTime(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 14, 7, 0, 0, time.UTC)
	c := NewWithSource(func() time.Time { return fixed })

	a := c.NextID()
	b := c.NextID()
	d := c.NextID()

	assert.Equal(t, fixed.UnixMilli(), a)
	assert.Equal(t, a+1, b)
	assert.Equal(t, b+1, d)
	assert.Equal(t, "2:07 PM", c.Label())
}

func TestNextID_UniqueUnderConcurrency(t *testing.T) {
	c := New()
	const n = 200
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- c.NextID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, n)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

package pq

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockedConcurrentEnqueue(t *testing.T) {
	var (
		queue = NewLocked(NewPriorityQueue[int](1))
		wg    sync.WaitGroup
	)

	for w := 0; w < 8; w++ {
		wg.Add(1)

		go func(w int) {
			defer wg.Done()

			for i := 0; i < 100; i++ {
				queue.Enqueue(w*100 + i)
			}
		}(w)
	}

	wg.Wait()

	require.Equal(t, 800, queue.Len())
	require.False(t, queue.Empty())

	max, ok := queue.Peek()
	require.True(t, ok)
	require.Equal(t, 799, max)

	prev := 800

	require.NoError(t, queue.Drain(func(v int) error {
		require.Less(t, v, prev)
		prev = v

		return nil
	}))

	require.True(t, queue.Empty())
}

func TestLockedConcurrentDequeue(t *testing.T) {
	inner := NewPriorityQueue[int](1)

	for i := 0; i < 1000; i++ {
		inner.Enqueue(i)
	}

	var (
		queue = NewLocked(inner)
		seen  = make([]int, 1000)
		wg    sync.WaitGroup
	)

	for w := 0; w < 4; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for {
				v, ok := queue.Dequeue()
				if !ok {
					return
				}

				// Each value is dequeued exactly once so each goroutine writes to a distinct index
				seen[v]++
			}
		}()
	}

	wg.Wait()

	for v, count := range seen {
		require.Equalf(t, 1, count, "value %d dequeued %d times", v, count)
	}

	_, ok := queue.Dequeue()
	require.False(t, ok)
}

func TestLockedDrainWithError(t *testing.T) {
	queue := NewLocked(NewPriorityQueue[int](1))

	queue.Enqueue(1)
	queue.Enqueue(2)

	require.ErrorIs(t, queue.Drain(func(_ int) error { return assert.AnError }), assert.AnError)
	require.Equal(t, 1, queue.Len())
}

package pq

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heapworks/collections/core/log"
)

func TestNewItemQueue(t *testing.T) {
	var (
		expected = &PriorityQueue[Item[int]]{
			items:    make([]Item[int], 6),
			initial:  5,
			ordering: ByPriority[int]{},
			logger:   log.NewWrappedLogger(nil),
		}
		actual = NewItemQueue[int](5)
	)

	require.Equal(t, expected, actual)
}

func TestItemQueueNoPriority(t *testing.T) {
	queue := NewItemQueue[int](5)

	for i := 0; i < 5; i++ {
		queue.Enqueue(Item[int]{Payload: i})
	}

	require.Equal(t, 5, queue.Len())

	var (
		expected = map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}, 4: {}}
		actual   = make(map[int]struct{})
	)

	require.NoError(t, queue.Drain(func(item Item[int]) error { actual[item.Payload] = struct{}{}; return nil }))
	require.Equal(t, expected, actual)
}

func TestItemQueueWithPriority(t *testing.T) {
	queue := NewItemQueue[int](5)

	for i := 0; i < 5; i++ {
		queue.Enqueue(Item[int]{Payload: i, Priority: i})
	}

	var (
		expected = []int{4, 3, 2, 1, 0}
		actual   = make([]int, 0, 5)
	)

	require.NoError(t, queue.Drain(func(item Item[int]) error { actual = append(actual, item.Payload); return nil }))
	require.Equal(t, expected, actual)
}

func TestItemQueueJobs(t *testing.T) {
	var (
		queue = NewItemQueue[uuid.UUID](1)
		jobs  = []Item[uuid.UUID]{
			{Payload: uuid.New(), Priority: 1},
			{Payload: uuid.New(), Priority: 100},
			{Payload: uuid.New(), Priority: -3},
			{Payload: uuid.New(), Priority: 50},
		}
	)

	for _, job := range jobs {
		queue.Enqueue(job)
	}

	expected := []uuid.UUID{jobs[1].Payload, jobs[3].Payload, jobs[0].Payload, jobs[2].Payload}

	actual := make([]uuid.UUID, 0, len(jobs))
	for _, item := range dequeueAll(t, queue) {
		actual = append(actual, item.Payload)
	}

	require.Equal(t, expected, actual)
}

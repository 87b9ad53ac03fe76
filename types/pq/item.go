package pq

// Item encapsulates a payload and its priority.
type Item[T any] struct {
	Payload  T
	Priority int
}

// ByPriority orders items by their integer priority, the payload is not considered.
type ByPriority[T any] struct{}

// Compare implements the 'Ordering' interface.
func (ByPriority[T]) Compare(a, b Item[T]) int {
	return compare(a.Priority, b.Priority)
}

// NewItemQueue creates a new priority queue of items, where the item with the highest priority is dequeued first.
func NewItemQueue[T any](capacity int) *PriorityQueue[Item[T]] {
	return newPriorityQueue[Item[T]](Options[Item[T]]{Capacity: capacity}, ByPriority[T]{})
}

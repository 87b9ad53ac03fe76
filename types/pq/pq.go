// Package pq exposes a generic priority queue implemented using a binary heap.
//
// The queue is a max-heap under its ordering, to use it as a min-heap supply an inverted comparator (or wrap the
// ordering using 'Reverse') at construction time.
package pq

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/heapworks/collections/core/log"
	"github.com/heapworks/collections/maths"
)

const (
	// growthFactor is the factor by which the capacity of the heap buffer increases when it's full.
	growthFactor = 2

	// shrinkThreshold is the divisor of the capacity at or below which the heap buffer is halved after a removal.
	shrinkThreshold = 4
)

// PriorityQueue is a priority queue which returns the greatest element (under its ordering) first.
//
// The elements are stored in an implicit binary tree packed into a slice, slot zero is unused so that the children of
// slot k are 2k and 2k+1, and its parent is k/2.
//
// NOTE: PriorityQueue is not safe for concurrent use, see 'Locked' for a wrapper which is.
type PriorityQueue[T any] struct {
	// items is the heap buffer, 'len(items)-1' is the capacity.
	items []T

	// n is the number of occupied slots, they're 1..n inclusive.
	n int

	// initial is the capacity the queue was created with, it's restored by 'Clear'.
	initial int

	ordering Ordering[T]
	logger   log.WrappedLogger
}

// NewPriorityQueue creates a new priority queue for an ordered type, where the underlying capacity is set to the given
// value.
//
// NOTE: The capacity is a hint, the queue will grow beyond it (and shrink back towards one) as elements are added and
// removed.
func NewPriorityQueue[T constraints.Ordered](capacity int) *PriorityQueue[T] {
	return newPriorityQueue[T](Options[T]{Capacity: capacity}, NaturalOrder[T]{})
}

// NewPriorityQueueFunc creates a new priority queue, with a capacity of one, which orders elements using the given
// comparison function.
func NewPriorityQueueFunc[T any](cmp func(a, b T) int) *PriorityQueue[T] {
	return NewPriorityQueueWithCapacityFunc(defaultCapacity, cmp)
}

// NewPriorityQueueWithCapacityFunc creates a new priority queue with the given capacity, which orders elements using
// the given comparison function.
//
// NOTE: Passing a <nil> comparison function is a programming error and will result in a panic.
func NewPriorityQueueWithCapacityFunc[T any](capacity int, cmp func(a, b T) int) *PriorityQueue[T] {
	if cmp == nil {
		panic(&OrderingError{typ: typeName[T]()})
	}

	return newPriorityQueue[T](Options[T]{Capacity: capacity}, CompareFunc[T](cmp))
}

// NewPriorityQueueWithOptions creates a new priority queue using the given options, an 'OrderingError' is returned if
// no ordering could be determined for T.
func NewPriorityQueueWithOptions[T any](options Options[T]) (*PriorityQueue[T], error) {
	ordering, err := options.ordering()
	if err != nil {
		return nil, fmt.Errorf("failed to create priority queue: %w", err)
	}

	return newPriorityQueue[T](options, ordering), nil
}

func newPriorityQueue[T any](options Options[T], ordering Ordering[T]) *PriorityQueue[T] {
	logger := log.NewWrappedLogger(options.Logger)

	if options.Capacity < 0 {
		logger.Warnf("(pq) capacity hint %d is negative, using %d", options.Capacity, defaultCapacity)
	}

	options.defaults()

	return &PriorityQueue[T]{
		items:    make([]T, options.Capacity+1),
		initial:  options.Capacity,
		ordering: ordering,
		logger:   logger,
	}
}

// Len returns the number of elements in the priority queue.
func (p *PriorityQueue[T]) Len() int {
	return p.n
}

// Empty returns whether or not there are no elements in the priority queue.
func (p *PriorityQueue[T]) Empty() bool {
	return p.n == 0
}

// Cap returns the number of elements the priority queue can hold before its buffer is grown.
func (p *PriorityQueue[T]) Cap() int {
	return len(p.items) - 1
}

// Peek returns the greatest element without removing it, returning the default value and false if the queue is
// empty.
func (p *PriorityQueue[T]) Peek() (T, bool) {
	if p.Empty() {
		return *new(T), false
	}

	return p.items[1], true
}

// Enqueue adds the given element to the priority queue, growing the heap buffer if it's full.
func (p *PriorityQueue[T]) Enqueue(v T) {
	if p.n >= p.Cap() {
		p.resize(growthFactor * p.Cap())
	}

	p.n++
	p.items[p.n] = v

	p.swim(p.n)
}

// Dequeue removes and returns the greatest element, returning the default value and false if the queue is empty.
// Where multiple elements compare equal, they're returned in an arbitrary order.
func (p *PriorityQueue[T]) Dequeue() (T, bool) {
	if p.Empty() {
		return *new(T), false
	}

	top := p.items[1]

	p.items[1] = p.items[p.n]

	// Release the vacated slot so we don't hold a reference to an element which is no longer in the queue
	p.items[p.n] = *new(T)
	p.n--

	p.sink(1)

	if p.n > 0 && p.n <= p.Cap()/shrinkThreshold {
		p.resize(p.Cap() / growthFactor)
	}

	return top, true
}

// Drain removes all elements from the queue running the given function on each element in priority order. In the
// event of an error, dequeuing stops early, and returns the error.
func (p *PriorityQueue[T]) Drain(fn func(v T) error) error {
	for !p.Empty() {
		v, _ := p.Dequeue()

		if err := fn(v); err != nil {
			return err
		}
	}

	return nil
}

// Clear removes all elements from the queue, and resets its capacity to the one it was created with.
func (p *PriorityQueue[T]) Clear() {
	p.logger.Debugf("(pq) cleared %d elements, resetting capacity from %d to %d", p.n, p.Cap(), p.initial)

	p.items = make([]T, p.initial+1)
	p.n = 0
}

// Slots returns a copy of the occupied slots in storage order.
//
// NOTE: Storage order is not priority order, beyond the first element being the greatest, the position of an element
// in the returned slice must not be used to infer its priority relative to another.
func (p *PriorityQueue[T]) Slots() []T {
	return slices.Clone(p.items[1 : p.n+1])
}

// String returns the occupied slots in storage order separated by spaces, it's only intended for debugging.
//
// NOTE: Storage order is not priority order, see 'Slots'.
func (p *PriorityQueue[T]) String() string {
	var sb strings.Builder

	for i := 1; i <= p.n; i++ {
		if i > 1 {
			sb.WriteByte(' ')
		}

		fmt.Fprint(&sb, p.items[i])
	}

	return sb.String()
}

// MarshalJSON encodes the occupied slots, in storage order, as a JSON array.
//
// NOTE: Storage order is not priority order, see 'Slots'.
func (p *PriorityQueue[T]) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(p.Slots())
}

// resize replaces the heap buffer with one which can hold capacity elements, copying the occupied slots across. The
// new buffer is fully populated before it replaces the old one.
func (p *PriorityQueue[T]) resize(capacity int) {
	capacity = maths.Max(capacity, maths.Max(p.n, defaultCapacity))

	if capacity == p.Cap() {
		return
	}

	items := make([]T, capacity+1)
	copy(items[1:], p.items[1:p.n+1])

	p.logger.Tracef("(pq) resized heap buffer from %d to %d with %d elements", p.Cap(), capacity, p.n)

	p.items = items
}

// swim moves the element at slot k towards the root until its parent is not less than it.
func (p *PriorityQueue[T]) swim(k int) {
	for k > 1 && p.less(k/2, k) {
		p.swap(k/2, k)
		k /= 2
	}
}

// sink moves the element at slot k towards the leaves until neither child is greater than it.
func (p *PriorityQueue[T]) sink(k int) {
	for 2*k <= p.n {
		j := 2 * k

		// Prefer the greater child, so that it becomes the parent of the other
		if j < p.n && p.less(j, j+1) {
			j++
		}

		if !p.less(k, j) {
			break
		}

		p.swap(k, j)
		k = j
	}
}

func (p *PriorityQueue[T]) less(i, j int) bool {
	return p.ordering.Compare(p.items[i], p.items[j]) < 0
}

func (p *PriorityQueue[T]) swap(i, j int) {
	p.items[i], p.items[j] = p.items[j], p.items[i]
}

package pq

import "sync"

// Locked wraps a priority queue allowing it to be shared between goroutines, each method acquires a lock for its
// whole duration.
type Locked[T any] struct {
	lock  sync.Mutex
	inner *PriorityQueue[T]
}

// NewLocked returns a Locked which takes ownership of the given queue; the queue must not be used directly afterwards.
func NewLocked[T any](inner *PriorityQueue[T]) *Locked[T] {
	return &Locked[T]{inner: inner}
}

// Len - see 'PriorityQueue.Len'.
func (l *Locked[T]) Len() int {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.inner.Len()
}

// Empty - see 'PriorityQueue.Empty'.
func (l *Locked[T]) Empty() bool {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.inner.Empty()
}

// Peek - see 'PriorityQueue.Peek'.
func (l *Locked[T]) Peek() (T, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.inner.Peek()
}

// Enqueue - see 'PriorityQueue.Enqueue'.
func (l *Locked[T]) Enqueue(v T) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.inner.Enqueue(v)
}

// Dequeue - see 'PriorityQueue.Dequeue'.
func (l *Locked[T]) Dequeue() (T, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.inner.Dequeue()
}

// Drain - see 'PriorityQueue.Drain'.
//
// NOTE: The lock is held whilst fn is run, fn must not call back into the Locked queue.
func (l *Locked[T]) Drain(fn func(v T) error) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.inner.Drain(fn)
}

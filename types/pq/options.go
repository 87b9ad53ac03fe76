package pq

import (
	"github.com/heapworks/collections/core/log"
	"github.com/heapworks/collections/maths"
)

// defaultCapacity is the capacity used when no (or a non-positive) capacity hint is given.
const defaultCapacity = 1

// Options encapsulates the available options which can be used when creating a priority queue.
type Options[T any] struct {
	// Capacity is the number of elements which can be stored before the heap buffer is grown. Values less than one are
	// treated as one.
	Capacity int

	// Comparator is the function used to order elements, when supplied it takes precedence over both 'Ordering' and
	// any order intrinsic to T.
	Comparator func(a, b T) int

	// Ordering is used to order elements when no 'Comparator' is supplied. If both are omitted the order intrinsic to
	// T is used, which requires T to either implement 'Comparable' or have an ordered underlying type.
	Ordering Ordering[T]

	// Logger is the passed Logger struct that implements the Log method for logger the user wants to use.
	Logger log.Logger
}

// defaults fills any missing attributes to a sane default.
func (o *Options[T]) defaults() {
	o.Capacity = maths.Max(defaultCapacity, o.Capacity)
}

// ordering resolves the single ordering which will be used for the lifetime of the queue.
func (o *Options[T]) ordering() (Ordering[T], error) {
	if o.Comparator != nil {
		return CompareFunc[T](o.Comparator), nil
	}

	if o.Ordering != nil {
		if !usable[T](o.Ordering) {
			return nil, &OrderingError{typ: typeName[T]()}
		}

		return o.Ordering, nil
	}

	return intrinsicOrdering[T]()
}

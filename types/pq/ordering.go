package pq

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Ordering compares two elements, returning a negative number when a is less than b, zero when they're equal and a
// positive number when a is greater than b.
//
// A priority queue holds exactly one Ordering for its whole lifetime, the greatest element under that Ordering is the
// one returned by 'Peek' and 'Dequeue'.
type Ordering[T any] interface {
	Compare(a, b T) int
}

// Comparable is implemented by types which carry their own total order.
type Comparable[T any] interface {
	CompareTo(other T) int
}

// NaturalOrder orders elements using the built-in comparison operators.
//
// NOTE: NaN is treated as less than any other float, and equal to other NaNs, so that it still forms a total order.
type NaturalOrder[T constraints.Ordered] struct{}

// Compare implements the 'Ordering' interface.
func (NaturalOrder[T]) Compare(a, b T) int {
	return compare(a, b)
}

// ComparableOrder orders elements using their 'CompareTo' method.
type ComparableOrder[T Comparable[T]] struct{}

// Compare implements the 'Ordering' interface.
func (ComparableOrder[T]) Compare(a, b T) int {
	return a.CompareTo(b)
}

// CompareFunc adapts a plain comparison function into an 'Ordering'.
type CompareFunc[T any] func(a, b T) int

// Compare implements the 'Ordering' interface.
func (c CompareFunc[T]) Compare(a, b T) int {
	return c(a, b)
}

// reversed inverts the wrapped ordering.
type reversed[T any] struct {
	inner Ordering[T]
}

func (r reversed[T]) Compare(a, b T) int {
	return r.inner.Compare(b, a)
}

// Reverse returns an ordering which is the inverse of the given ordering; a priority queue using it will return the
// smallest element first (i.e. behave as a min-heap).
//
// NOTE: Reversing a <nil> ordering results in an ordering which 'NewPriorityQueueWithOptions' rejects.
func Reverse[T any](o Ordering[T]) Ordering[T] {
	if r, ok := o.(reversed[T]); ok && r.inner != nil {
		return r.inner
	}

	return reversed[T]{inner: o}
}

// usable reports whether the given ordering can be called, catching typed <nil> functions and reversed <nil>
// orderings which would otherwise only fail on the first comparison.
func usable[T any](o Ordering[T]) bool {
	switch v := o.(type) {
	case nil:
		return false
	case CompareFunc[T]:
		return v != nil
	case reversed[T]:
		return usable[T](v.inner)
	}

	return true
}

// compare returns the three-way comparison of a and b.
func compare[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)

	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// isNaN reports whether x is a NaN without requiring a math import (only floats are ever unequal to themselves).
func isNaN[T constraints.Ordered](x T) bool {
	return x != x //nolint:staticcheck
}

// intrinsicOrdering returns the ordering built into T, either because it implements 'Comparable' or because its
// underlying kind is one of the ordered basic kinds.
func intrinsicOrdering[T any]() (Ordering[T], error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()

	if typ.Implements(reflect.TypeOf((*Comparable[T])(nil)).Elem()) {
		return CompareFunc[T](func(a, b T) int { return any(a).(Comparable[T]).CompareTo(b) }), nil
	}

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return CompareFunc[T](func(a, b T) int {
			return compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return CompareFunc[T](func(a, b T) int {
			return compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}), nil
	case reflect.Float32, reflect.Float64:
		return CompareFunc[T](func(a, b T) int {
			return compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}), nil
	case reflect.String:
		return CompareFunc[T](func(a, b T) int {
			return compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}), nil
	}

	return nil, &OrderingError{typ: typ.String()}
}

// typeName returns the name of T, including when T is an interface type.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

package pq

import (
	"errors"
	"fmt"
)

// ErrNoOrdering is the sentinel wrapped by an 'OrderingError', it may be used with 'errors.Is'.
var ErrNoOrdering = errors.New("no ordering available")

// OrderingError is returned when a priority queue is constructed for an element type which has no intrinsic order,
// and no comparator was supplied.
type OrderingError struct {
	typ string
}

func (o *OrderingError) Error() string {
	return fmt.Sprintf("cannot order elements of type '%s': %s, supply a comparator", o.typ, ErrNoOrdering)
}

func (o *OrderingError) Unwrap() error {
	return ErrNoOrdering
}

// IsOrderingError returns a boolean indicating whether the given error is an 'OrderingError'.
func IsOrderingError(err error) bool {
	var ordering *OrderingError
	return errors.As(err, &ordering)
}

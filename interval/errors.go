package interval

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleComparators is returned when a binary operation is
	// invoked across two intervals whose comparator keys differ. This is a
	// programmer error, not an environmental failure; callers are expected
	// to fix the call site rather than recover.
	ErrIncompatibleComparators = errors.New("incompatible interval comparators")

	// ErrNilCompareFunc is returned by WithComparator when the supplied
	// comparator carries no compare function.
	ErrNilCompareFunc = errors.New("comparator has no compare function")
)

// InvalidEndpointsError is returned by the interval constructors when the
// minimum sorts after the maximum under the interval's comparator. It
// carries both endpoint values for diagnostics.
type InvalidEndpointsError[T any] struct {
	Min T
	Max T
}

func (e *InvalidEndpointsError[T]) Error() string {
	return fmt.Sprintf("illegal interval endpoints: minimum %v is greater than maximum %v", e.Min, e.Max)
}

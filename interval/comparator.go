package interval

// Ordered is the set of types with an intrinsic total order usable by
// Natural. The ~ prefix allows custom types based on these underlying
// types to satisfy the constraint as well.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// CompareFunc is a total-order function over T. It returns a negative
// number when a sorts before b, zero when they are equal, and a positive
// number when a sorts after b. It must be pure and side-effect free for
// the interval algebra's invariants to hold.
type CompareFunc[T any] func(a, b T) int

// NaturalOrderKey is the comparator key shared by every comparator built
// with NaturalOrder, so intervals over the same domain type interoperate.
const NaturalOrderKey = "natural"

// Comparator defines the ordering an interval uses for its bounds.
//
// The key identifies the ordering: two intervals may only be combined by a
// binary operation (Overlaps, Intersect, Compare, ...) when their keys are
// equal. Mixing keys fails with ErrIncompatibleComparators instead of
// silently computing nonsense.
type Comparator[T any] struct {
	key     string
	compare CompareFunc[T]
}

// NaturalOrder returns the comparator for the domain's intrinsic order.
func NaturalOrder[T Ordered]() Comparator[T] {
	return Comparator[T]{key: NaturalOrderKey, compare: naturalCompare[T]}
}

// OrderBy returns a comparator applying fn under the given identity key.
// The key should uniquely name the ordering; intervals built from
// comparators with equal keys are assumed to share the same order.
func OrderBy[T any](key string, fn CompareFunc[T]) Comparator[T] {
	return Comparator[T]{key: key, compare: fn}
}

// Key returns the identity key of the ordering.
func (c Comparator[T]) Key() string {
	return c.key
}

// Compare applies the comparator to a pair of values.
func (c Comparator[T]) Compare(a, b T) int {
	return c.compare(a, b)
}

func naturalCompare[T Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

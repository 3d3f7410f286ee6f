// Package interval implements a generic interval algebra: bounded ranges
// over an arbitrary ordered domain, with containment, overlap,
// intersection and a total ordering between intervals.
//
// An interval is an immutable value. It either holds a pair of bounds, an
// endpoint Policy and a Comparator, or it is the empty set, which holds
// nothing. All transformations produce new values; intervals are safe for
// concurrent use by construction.
package interval

// Interval is a bounded range over T, or the empty set.
//
// The zero value is the empty interval. Non-empty intervals are built with
// Natural, WithComparator or Single, which validate that the minimum does
// not sort after the maximum under the interval's comparator.
type Interval[T any] struct {
	min     T
	max     T
	policy  Policy
	cmp     Comparator[T]
	bounded bool
}

// Natural returns the interval [min, max] (subject to policy) under the
// domain's intrinsic order. It returns an *InvalidEndpointsError if min
// sorts after max.
func Natural[T Ordered](min, max T, policy Policy) (Interval[T], error) {
	return WithComparator(min, max, policy, NaturalOrder[T]())
}

// WithComparator returns an interval whose bounds are ordered by the
// supplied comparator instead of the domain's natural order. This enables
// orderings unrelated to the intrinsic one, such as ordering by a derived
// key. It returns an *InvalidEndpointsError if min sorts after max under
// the comparator.
func WithComparator[T any](min, max T, policy Policy, cmp Comparator[T]) (Interval[T], error) {
	if cmp.compare == nil {
		return Interval[T]{}, ErrNilCompareFunc
	}
	if cmp.compare(min, max) > 0 {
		return Interval[T]{}, &InvalidEndpointsError[T]{Min: min, Max: max}
	}
	return Interval[T]{min: min, max: max, policy: policy, cmp: cmp, bounded: true}, nil
}

// Single returns the degenerate closed interval [v, v] containing exactly
// one value.
func Single[T Ordered](v T) Interval[T] {
	return Interval[T]{min: v, max: v, policy: PolicyClosed, cmp: NaturalOrder[T](), bounded: true}
}

// Closed returns the fully closed interval [min, max] under natural order.
func Closed[T Ordered](min, max T) (Interval[T], error) {
	return Natural(min, max, PolicyClosed)
}

// Open returns the fully open interval (min, max) under natural order.
func Open[T Ordered](min, max T) (Interval[T], error) {
	return Natural(min, max, PolicyOpen)
}

// Empty returns the empty interval: the unique interval containing no
// values. It is a subset of every interval and overlaps none.
func Empty[T any]() Interval[T] {
	return Interval[T]{}
}

// Minimum returns the lower bound. It panics when called on the empty
// interval, which has no bounds.
func (iv Interval[T]) Minimum() T {
	if !iv.bounded {
		panic("interval: Minimum called on the empty interval")
	}
	return iv.min
}

// Maximum returns the upper bound. It panics when called on the empty
// interval, which has no bounds.
func (iv Interval[T]) Maximum() T {
	if !iv.bounded {
		panic("interval: Maximum called on the empty interval")
	}
	return iv.max
}

// Policy returns the endpoint policy of the interval.
func (iv Interval[T]) Policy() Policy {
	return iv.policy
}

// Comparator returns the ordering the interval's bounds live under.
func (iv Interval[T]) Comparator() Comparator[T] {
	return iv.cmp
}

// IsDegenerate reports whether the two bounds compare equal. The empty
// interval is not degenerate.
func (iv Interval[T]) IsDegenerate() bool {
	return iv.bounded && iv.cmp.compare(iv.min, iv.max) == 0
}

// IsEmpty reports whether the interval contains no values: the empty
// interval itself, or a degenerate interval that is not closed at both
// ends, e.g. (4, 4).
func (iv Interval[T]) IsEmpty() bool {
	if !iv.bounded {
		return true
	}
	c := iv.cmp.compare(iv.min, iv.max)
	if c > 0 {
		return true
	}
	return c == 0 && !(iv.policy.StartInclusive() && iv.policy.EndInclusive())
}

// IsSingleValue reports whether the interval contains exactly one value,
// i.e. it is degenerate and closed at both ends.
func (iv Interval[T]) IsSingleValue() bool {
	return iv.IsDegenerate() && iv.policy.StartInclusive() && iv.policy.EndInclusive()
}

// SingleValue returns the single value contained in the interval and true,
// or the zero value and false when the interval does not contain exactly
// one value.
func (iv Interval[T]) SingleValue() (T, bool) {
	if iv.IsSingleValue() {
		return iv.min, true
	}
	var zero T
	return zero, false
}

// Contains reports whether v lies within the interval, honoring the
// endpoint policy. The empty interval contains nothing.
func (iv Interval[T]) Contains(v T) bool {
	if !iv.bounded {
		return false
	}
	cs := iv.cmp.compare(v, iv.min)
	ce := iv.cmp.compare(v, iv.max)
	afterStart := cs > 0 || (cs == 0 && iv.policy.StartInclusive())
	beforeEnd := ce < 0 || (ce == 0 && iv.policy.EndInclusive())
	return afterStart && beforeEnd
}

// OnStartEndpoint reports whether v sits exactly on an inclusive start
// endpoint.
func (iv Interval[T]) OnStartEndpoint(v T) bool {
	return iv.bounded && iv.policy.StartInclusive() && iv.cmp.compare(iv.min, v) == 0
}

// OnEndEndpoint reports whether v sits exactly on an inclusive end
// endpoint.
func (iv Interval[T]) OnEndEndpoint(v T) bool {
	return iv.bounded && iv.policy.EndInclusive() && iv.cmp.compare(iv.max, v) == 0
}

// StartsAfter reports whether every value of the interval sorts after v.
// When the start bound equals v the answer is true exactly when the start
// is exclusive. It is false on the empty interval, which has no endpoints.
func (iv Interval[T]) StartsAfter(v T) bool {
	if !iv.bounded {
		return false
	}
	c := iv.cmp.compare(iv.min, v)
	if c != 0 {
		return c > 0
	}
	return !iv.policy.StartInclusive()
}

// StartsAfterStrictly reports whether the start bound sorts strictly after
// v and is inclusive. Note the asymmetry with StartsAfter: the strict
// variant requires the endpoint to be inclusive, not exclusive.
func (iv Interval[T]) StartsAfterStrictly(v T) bool {
	return iv.bounded && iv.policy.StartInclusive() && iv.cmp.compare(iv.min, v) > 0
}

// EndsBefore reports whether every value of the interval sorts before v.
// When the end bound equals v the answer is true exactly when the end is
// exclusive. It is false on the empty interval.
func (iv Interval[T]) EndsBefore(v T) bool {
	if !iv.bounded {
		return false
	}
	c := iv.cmp.compare(iv.max, v)
	if c != 0 {
		return c < 0
	}
	return !iv.policy.EndInclusive()
}

// EndsBeforeStrictly reports whether the end bound sorts strictly before v
// and is inclusive. See StartsAfterStrictly for the endpoint asymmetry.
func (iv Interval[T]) EndsBeforeStrictly(v T) bool {
	return iv.bounded && iv.policy.EndInclusive() && iv.cmp.compare(iv.max, v) < 0
}

// Equal reports whether the two intervals are the same value: both empty,
// or sharing the comparator key, bounds and endpoint policy. Unlike the
// binary algebra it never fails; intervals under different orderings are
// simply not equal.
func (iv Interval[T]) Equal(other Interval[T]) bool {
	if !iv.bounded || !other.bounded {
		return iv.bounded == other.bounded
	}
	if iv.cmp.key != other.cmp.key || iv.policy != other.policy {
		return false
	}
	return iv.cmp.compare(iv.min, other.min) == 0 && iv.cmp.compare(iv.max, other.max) == 0
}

// String renders the interval in mathematical bracket notation, or the
// empty-set symbol for the empty interval.
func (iv Interval[T]) String() string {
	if !iv.bounded {
		return EmptySetSymbol
	}
	return Format(iv.min, iv.max, iv.policy)
}

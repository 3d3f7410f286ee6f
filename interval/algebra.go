package interval

import "fmt"

// The binary algebra. Every operation here combines two intervals and
// therefore requires comparator compatibility: both sides must carry the
// same comparator key. The empty interval is exempt — its results are
// fixed by set semantics and never consult a comparator.

func (iv Interval[T]) requireCompatible(other Interval[T]) error {
	if iv.cmp.key != other.cmp.key {
		return fmt.Errorf("%w: %q vs %q", ErrIncompatibleComparators, iv.cmp.key, other.cmp.key)
	}
	return nil
}

// ContainsInterval reports whether other is a subset of the interval,
// honoring endpoint inclusiveness: at an equal bound the receiver must be
// at least as inclusive as other. The empty interval is a subset of
// everything; nothing but the empty interval is a subset of it.
func (iv Interval[T]) ContainsInterval(other Interval[T]) (bool, error) {
	if !other.bounded {
		return true, nil
	}
	if !iv.bounded {
		return false, nil
	}
	if err := iv.requireCompatible(other); err != nil {
		return false, err
	}
	cs := iv.cmp.compare(other.min, iv.min)
	if cs < 0 || (cs == 0 && !iv.policy.StartInclusive() && other.policy.StartInclusive()) {
		return false, nil
	}
	ce := iv.cmp.compare(other.max, iv.max)
	if ce > 0 || (ce == 0 && !iv.policy.EndInclusive() && other.policy.EndInclusive()) {
		return false, nil
	}
	return true, nil
}

// IsContainedBy reports whether the interval is a subset of other.
func (iv Interval[T]) IsContainedBy(other Interval[T]) (bool, error) {
	return other.ContainsInterval(iv)
}

// Overlaps reports whether the two intervals share at least one value.
// Touching bounds only count when both touching endpoints are inclusive.
// An empty operand never overlaps anything.
func (iv Interval[T]) Overlaps(other Interval[T]) (bool, error) {
	if !iv.bounded || !other.bounded {
		return false, nil
	}
	if err := iv.requireCompatible(other); err != nil {
		return false, err
	}
	if iv.IsEmpty() || other.IsEmpty() {
		return false, nil
	}
	c := iv.cmp.compare(iv.min, other.max)
	if c > 0 {
		return false, nil
	}
	if c == 0 && !(iv.policy.StartInclusive() && other.policy.EndInclusive()) {
		return false, nil
	}
	c = iv.cmp.compare(iv.max, other.min)
	if c < 0 {
		return false, nil
	}
	if c == 0 && !(iv.policy.EndInclusive() && other.policy.StartInclusive()) {
		return false, nil
	}
	return true, nil
}

// Intersect returns the interval shared by both operands. The second
// result is false when the operands do not overlap. When either operand is
// the empty interval the result is the empty interval itself.
//
// When the two operands tie on a bound, the resulting endpoint is
// inclusive only if it is inclusive on both sides; a bound contributed by
// a single operand keeps that operand's inclusiveness.
func (iv Interval[T]) Intersect(other Interval[T]) (Interval[T], bool, error) {
	if !iv.bounded {
		return iv, true, nil
	}
	if !other.bounded {
		return other, true, nil
	}
	if err := iv.requireCompatible(other); err != nil {
		return Interval[T]{}, false, err
	}
	overlaps, err := iv.Overlaps(other)
	if err != nil {
		return Interval[T]{}, false, err
	}
	if !overlaps {
		return Interval[T]{}, false, nil
	}

	min, startInc := iv.min, iv.policy.StartInclusive()
	switch c := iv.cmp.compare(iv.min, other.min); {
	case c < 0:
		min, startInc = other.min, other.policy.StartInclusive()
	case c == 0:
		startInc = startInc && other.policy.StartInclusive()
	}

	max, endInc := iv.max, iv.policy.EndInclusive()
	switch c := iv.cmp.compare(iv.max, other.max); {
	case c > 0:
		max, endInc = other.max, other.policy.EndInclusive()
	case c == 0:
		endInc = endInc && other.policy.EndInclusive()
	}

	res := Interval[T]{
		min:     min,
		max:     max,
		policy:  PolicyFor(startInc, endInc),
		cmp:     iv.cmp,
		bounded: true,
	}
	return res, true, nil
}

// Compare totally orders compatible intervals: lexicographically by
// (minimum, maximum, start inclusiveness, end inclusiveness), where an
// inclusive endpoint sorts after an exclusive one at an equal bound, so
// [a, b] > (a, b] > (a, b). The empty interval sorts below every non-empty
// interval.
func (iv Interval[T]) Compare(other Interval[T]) (int, error) {
	if !iv.bounded || !other.bounded {
		switch {
		case iv.bounded:
			return 1, nil
		case other.bounded:
			return -1, nil
		default:
			return 0, nil
		}
	}
	if err := iv.requireCompatible(other); err != nil {
		return 0, err
	}
	if c := iv.cmp.compare(iv.min, other.min); c != 0 {
		return c, nil
	}
	if c := iv.cmp.compare(iv.max, other.max); c != 0 {
		return c, nil
	}
	if c := compareInclusiveness(iv.policy.StartInclusive(), other.policy.StartInclusive()); c != 0 {
		return c, nil
	}
	return compareInclusiveness(iv.policy.EndInclusive(), other.policy.EndInclusive()), nil
}

func compareInclusiveness(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

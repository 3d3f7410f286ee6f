//go:generate go run github.com/dmarkham/enumer -type=Policy -trimprefix=Policy -transform=kebab
package interval

// Policy describes which of an interval's two endpoints are inclusive.
//
// The four variants cover every combination:
//
//	PolicyOpen       (a, b)   neither endpoint included
//	PolicyClosed     [a, b]   both endpoints included
//	PolicyOpenClosed (a, b]   only the end included
//	PolicyClosedOpen [a, b)   only the start included
type Policy int

const (
	PolicyOpen Policy = iota
	PolicyClosed
	PolicyOpenClosed
	PolicyClosedOpen
)

// PolicyFor returns the policy matching the given pair of inclusiveness
// flags. The mapping is total: every combination of the two booleans maps
// to exactly one of the four policies.
func PolicyFor(startInclusive, endInclusive bool) Policy {
	switch {
	case startInclusive && endInclusive:
		return PolicyClosed
	case startInclusive:
		return PolicyClosedOpen
	case endInclusive:
		return PolicyOpenClosed
	default:
		return PolicyOpen
	}
}

// StartInclusive reports whether the start endpoint is part of the interval.
func (p Policy) StartInclusive() bool {
	return p == PolicyClosed || p == PolicyClosedOpen
}

// EndInclusive reports whether the end endpoint is part of the interval.
func (p Policy) EndInclusive() bool {
	return p == PolicyClosed || p == PolicyOpenClosed
}

// StartSymbol returns the mathematical bracket used for the start of the
// interval: '[' when inclusive, '(' otherwise.
func (p Policy) StartSymbol() rune {
	if p.StartInclusive() {
		return '['
	}
	return '('
}

// EndSymbol returns the mathematical bracket used for the end of the
// interval: ']' when inclusive, ')' otherwise.
func (p Policy) EndSymbol() rune {
	if p.EndInclusive() {
		return ']'
	}
	return ')'
}

package interval

import "fmt"

// EmptySetSymbol is the rendering of the empty interval.
const EmptySetSymbol = "∅"

// Format renders a pair of bounds in mathematical bracket notation, e.g.
// "[2, 6]" or "(4, 6]". It is deliberately decoupled from the Interval
// value type so that callers holding raw bounds can reuse it.
func Format[T any](min, max T, policy Policy) string {
	return fmt.Sprintf("%c%v, %v%c", policy.StartSymbol(), min, max, policy.EndSymbol())
}

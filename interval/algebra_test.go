package interval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		in1      Interval[int]
		in2      Interval[int]
		expected bool
	}{
		{
			"disjoint",
			mustNatural(t, 2, 6, PolicyClosed),
			mustNatural(t, 7, 9, PolicyClosed),
			false,
		},
		{
			"touching, both inclusive",
			mustNatural(t, 2, 6, PolicyClosed),
			mustNatural(t, 6, 9, PolicyClosed),
			true,
		},
		{
			"touching, one exclusive",
			mustNatural(t, 2, 6, PolicyClosed),
			mustNatural(t, 6, 9, PolicyOpenClosed),
			false,
		},
		{
			"touching, both exclusive",
			mustNatural(t, 2, 6, PolicyClosedOpen),
			mustNatural(t, 6, 9, PolicyOpenClosed),
			false,
		},
		{
			"proper overlap",
			mustNatural(t, 2, 6, PolicyOpen),
			mustNatural(t, 4, 9, PolicyOpen),
			true,
		},
		{
			"nested",
			mustNatural(t, 2, 9, PolicyClosed),
			mustNatural(t, 4, 6, PolicyOpen),
			true,
		},
		{
			"degenerate empty operand",
			mustNatural(t, 2, 6, PolicyClosed),
			mustNatural(t, 4, 4, PolicyOpen),
			false,
		},
		{
			"empty set operand",
			mustNatural(t, 2, 6, PolicyClosed),
			Empty[int](),
			false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := test.in1.Overlaps(test.in2)
			require.NoError(t, err)
			assert.Equal(t, test.expected, res)

			// overlap is symmetric
			rev, err := test.in2.Overlaps(test.in1)
			require.NoError(t, err)
			assert.Equal(t, res, rev)
		})
	}
}

func TestContainsInterval(t *testing.T) {
	tests := []struct {
		name     string
		outer    Interval[int]
		inner    Interval[int]
		expected bool
	}{
		{
			"strictly nested",
			mustNatural(t, 2, 9, PolicyOpen),
			mustNatural(t, 4, 6, PolicyClosed),
			true,
		},
		{
			"equal bounds, outer at least as inclusive",
			mustNatural(t, 2, 6, PolicyClosed),
			mustNatural(t, 2, 6, PolicyOpen),
			true,
		},
		{
			"equal bounds, inner more inclusive at start",
			mustNatural(t, 2, 6, PolicyOpenClosed),
			mustNatural(t, 2, 6, PolicyClosed),
			false,
		},
		{
			"equal bounds, inner more inclusive at end",
			mustNatural(t, 2, 6, PolicyClosedOpen),
			mustNatural(t, 2, 6, PolicyClosed),
			false,
		},
		{
			"identical",
			mustNatural(t, 2, 6, PolicyOpenClosed),
			mustNatural(t, 2, 6, PolicyOpenClosed),
			true,
		},
		{
			"inner sticks out",
			mustNatural(t, 2, 6, PolicyClosed),
			mustNatural(t, 4, 9, PolicyClosed),
			false,
		},
		{
			"empty inner",
			mustNatural(t, 2, 6, PolicyOpen),
			Empty[int](),
			true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := test.outer.ContainsInterval(test.inner)
			require.NoError(t, err)
			assert.Equal(t, test.expected, res)

			rev, err := test.inner.IsContainedBy(test.outer)
			require.NoError(t, err)
			assert.Equal(t, res, rev)
		})
	}
}

func TestContainmentAntisymmetry(t *testing.T) {
	ivs := []Interval[int]{
		mustNatural(t, 2, 6, PolicyClosed),
		mustNatural(t, 2, 6, PolicyOpen),
		mustNatural(t, 2, 6, PolicyOpenClosed),
		mustNatural(t, 2, 9, PolicyClosed),
		mustNatural(t, 4, 6, PolicyClosedOpen),
	}

	for _, a := range ivs {
		for _, b := range ivs {
			ab, err := a.ContainsInterval(b)
			require.NoError(t, err)
			ba, err := b.ContainsInterval(a)
			require.NoError(t, err)
			if ab && ba {
				assert.True(t, a.Equal(b), "%v and %v contain each other but differ", a, b)
			}
		}
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name     string
		in1      Interval[int]
		in2      Interval[int]
		ok       bool
		expected string
	}{
		{
			"partial overlap keeps single-sided inclusiveness",
			mustNatural(t, 2, 6, PolicyClosed),
			mustNatural(t, 4, 9, PolicyOpenClosed),
			true,
			"(4, 6]",
		},
		{
			"tie on both bounds ANDs inclusiveness",
			mustNatural(t, 2, 6, PolicyClosed),
			mustNatural(t, 2, 6, PolicyOpenClosed),
			true,
			"(2, 6]",
		},
		{
			"touching point",
			mustNatural(t, 2, 6, PolicyClosed),
			mustNatural(t, 6, 9, PolicyClosed),
			true,
			"[6, 6]",
		},
		{
			"nested",
			mustNatural(t, 2, 9, PolicyOpen),
			mustNatural(t, 4, 6, PolicyClosed),
			true,
			"[4, 6]",
		},
		{
			"disjoint",
			mustNatural(t, 2, 4, PolicyClosed),
			mustNatural(t, 6, 9, PolicyClosed),
			false,
			"",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, ok, err := test.in1.Intersect(test.in2)
			require.NoError(t, err)
			require.Equal(t, test.ok, ok)
			if ok {
				assert.Equal(t, test.expected, res.String())
			}

			// intersection is commutative
			rev, revOK, err := test.in2.Intersect(test.in1)
			require.NoError(t, err)
			require.Equal(t, ok, revOK)
			if ok {
				assert.True(t, cmp.Equal(res, rev), "a∩b = %v but b∩a = %v", res, rev)
			}
		})
	}
}

func TestIntersectWithEmpty(t *testing.T) {
	bounded := mustNatural(t, 2, 6, PolicyClosed)
	empty := Empty[int]()

	res, ok, err := empty.Intersect(bounded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, res.IsEmpty())

	res, ok, err = bounded.Intersect(empty)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, res.IsEmpty())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		in1      Interval[int]
		in2      Interval[int]
		expected int
	}{
		{"by minimum", mustNatural(t, 2, 6, PolicyClosed), mustNatural(t, 4, 6, PolicyClosed), -1},
		{"by maximum", mustNatural(t, 2, 9, PolicyClosed), mustNatural(t, 2, 6, PolicyClosed), 1},
		{"inclusive start sorts above", mustNatural(t, 2, 6, PolicyClosed), mustNatural(t, 2, 6, PolicyOpenClosed), 1},
		{"inclusive end sorts above", mustNatural(t, 2, 6, PolicyOpenClosed), mustNatural(t, 2, 6, PolicyOpen), 1},
		{"fully closed above fully open", mustNatural(t, 2, 6, PolicyClosed), mustNatural(t, 2, 6, PolicyOpen), 1},
		{"equal", mustNatural(t, 2, 6, PolicyClosedOpen), mustNatural(t, 2, 6, PolicyClosedOpen), 0},
		{"empty below non-empty", Empty[int](), mustNatural(t, 2, 6, PolicyOpen), -1},
		{"non-empty above empty", mustNatural(t, 2, 6, PolicyOpen), Empty[int](), 1},
		{"empty equals empty", Empty[int](), Empty[int](), 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := test.in1.Compare(test.in2)
			require.NoError(t, err)
			assert.Equal(t, test.expected, sign(res))

			rev, err := test.in2.Compare(test.in1)
			require.NoError(t, err)
			assert.Equal(t, -test.expected, sign(rev))
		})
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func TestIncompatibleComparators(t *testing.T) {
	natural := mustNatural(t, 2, 6, PolicyClosed)
	reversed, err := WithComparator(6, 2, PolicyClosed, OrderBy("reverse", func(a, b int) int { return b - a }))
	require.NoError(t, err)

	_, err = natural.ContainsInterval(reversed)
	assert.ErrorIs(t, err, ErrIncompatibleComparators)

	_, err = natural.IsContainedBy(reversed)
	assert.ErrorIs(t, err, ErrIncompatibleComparators)

	_, err = natural.Overlaps(reversed)
	assert.ErrorIs(t, err, ErrIncompatibleComparators)

	_, _, err = natural.Intersect(reversed)
	assert.ErrorIs(t, err, ErrIncompatibleComparators)

	_, err = natural.Compare(reversed)
	assert.ErrorIs(t, err, ErrIncompatibleComparators)

	// the empty interval combines with any ordering without error
	res, err := reversed.Overlaps(Empty[int]())
	require.NoError(t, err)
	assert.False(t, res)

	sub, err := reversed.ContainsInterval(Empty[int]())
	require.NoError(t, err)
	assert.True(t, sub)
}

func TestEmptyAlgebra(t *testing.T) {
	empty := Empty[int]()
	bounded := mustNatural(t, 2, 6, PolicyClosed)

	res, err := empty.ContainsInterval(empty)
	require.NoError(t, err)
	assert.True(t, res, "the empty set contains itself")

	res, err = empty.ContainsInterval(bounded)
	require.NoError(t, err)
	assert.False(t, res, "the empty set contains no non-empty interval")

	res, err = empty.IsContainedBy(bounded)
	require.NoError(t, err)
	assert.True(t, res, "the empty set is a subset of everything")

	res, err = bounded.Overlaps(empty)
	require.NoError(t, err)
	assert.False(t, res)

	res, err = empty.Overlaps(empty)
	require.NoError(t, err)
	assert.False(t, res)
}

func TestComparatorOrderedAlgebra(t *testing.T) {
	// Order strings by length; ties broken lexicographically.
	byLen := OrderBy("by-length", func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})

	short, err := WithComparator("ab", "abcd", PolicyClosed, byLen)
	require.NoError(t, err)
	long, err := WithComparator("abc", "abcdef", PolicyClosed, byLen)
	require.NoError(t, err)

	assert.True(t, short.Contains("xyz"))
	assert.False(t, short.Contains("abcde"))

	overlap, err := short.Overlaps(long)
	require.NoError(t, err)
	assert.True(t, overlap)

	res, ok, err := short.Intersect(long)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[abc, abcd]", res.String())
}

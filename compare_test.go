package checkedint

import (
	"slices"
	"testing"

	"github.com/hupe1980/checkedint/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	a, b := Of[int8](-3), Of[int8](4)

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))

	assert.True(t, a.Lt(b))
	assert.True(t, a.Le(b))
	assert.True(t, a.Le(a))
	assert.True(t, b.Gt(a))
	assert.True(t, b.Ge(a))
	assert.True(t, a.Ne(b))
	assert.True(t, a.Eq(Of[int8](-3)))
}

func TestCompareValue(t *testing.T) {
	x := Of[uint16](500)

	assert.Equal(t, 0, x.CmpValue(500))
	assert.Equal(t, 1, x.CmpValue(499))
	assert.Equal(t, -1, x.CmpValue(501))
	assert.True(t, x.EqValue(500))
	assert.True(t, x.NeValue(1))
	assert.True(t, x.LtValue(501))
	assert.True(t, x.LeValue(500))
	assert.True(t, x.GtValue(0))
	assert.True(t, x.GeValue(500))

	// Bare value on the left.
	assert.True(t, Of[uint16](1).Lt(x))
}

func TestCompareTotality(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, p := range testutil.Pairs[int64](rng, 5000) {
		a, b := Of(p[0]), Of(p[1])
		n := 0
		if a.Lt(b) {
			n++
		}
		if a.Eq(b) {
			n++
		}
		if a.Gt(b) {
			n++
		}
		assert.Equal(t, 1, n)

		switch {
		case p[0] < p[1]:
			assert.Equal(t, -1, a.Cmp(b))
		case p[0] > p[1]:
			assert.Equal(t, 1, a.Cmp(b))
		default:
			assert.Equal(t, 0, a.Cmp(b))
		}
	}
}

func TestSortFunc(t *testing.T) {
	xs := []Int[int32]{Of[int32](3), Min[int32](), Of[int32](-1), Max[int32]()}
	slices.SortFunc(xs, Compare[int32])
	assert.Equal(t, []Int[int32]{Min[int32](), Of[int32](-1), Of[int32](3), Max[int32]()}, xs)
}

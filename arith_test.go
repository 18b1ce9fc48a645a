package checkedint

import (
	"math"
	"math/big"
	"testing"

	"github.com/hupe1980/checkedint/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

type binaryCase[T constraints.Integer] struct {
	name string
	a, b T
	want T
	kind Kind
}

func runBinary[T constraints.Integer](t *testing.T, op func(Int[T], Int[T]) (Int[T], error), tests []binaryCase[T]) {
	t.Helper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := op(Of(tc.a), Of(tc.b))
			if tc.kind != 0 {
				require.Error(t, err)
				kind, ok := KindOf(err)
				require.True(t, ok)
				assert.Equal(t, tc.kind, kind)
				assert.Equal(t, Int[T]{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Value())
		})
	}
}

func TestAddInt8(t *testing.T) {
	runBinary(t, Add[int8], []binaryCase[int8]{
		{"at max", 100, 27, 127, 0},
		{"past max", 100, 28, 0, Overflow},
		{"max plus one", 127, 1, 0, Overflow},
		{"min minus one", -128, -1, 0, Underflow},
		{"min plus max", -128, 127, -1, 0},
		{"identity", -5, 0, -5, 0},
		{"negatives at min", -64, -64, -128, 0},
	})
}

func TestSubInt8(t *testing.T) {
	runBinary(t, Sub[int8], []binaryCase[int8]{
		{"min minus one", -128, 1, 0, Underflow},
		{"zero minus min", 0, -128, 0, Overflow},
		{"minus one minus min", -1, -128, 127, 0},
		{"max minus negative", 127, -1, 0, Overflow},
		{"self", 42, 42, 0, 0},
	})
}

func TestMulInt8(t *testing.T) {
	runBinary(t, Mul[int8], []binaryCase[int8]{
		{"min times minus one", -128, -1, 0, Overflow},
		{"minus one times min", -1, -128, 0, Overflow},
		{"negative times positive at min", -2, 64, -128, 0},
		{"positive times negative at min", 2, -64, -128, 0},
		{"positive overflow", 16, 8, 0, Overflow},
		{"negative overflow", -16, -8, 0, Overflow},
		{"underflow", 3, -43, 0, Underflow},
		{"near underflow", 3, -42, -126, 0},
		{"zero left", 0, -128, 0, 0},
		{"zero right", -128, 0, 0, 0},
		{"both negative", -63, -2, 126, 0},
	})
}

func TestQuoInt8(t *testing.T) {
	runBinary(t, Quo[int8], []binaryCase[int8]{
		{"min by minus one", -128, -1, 0, Overflow},
		{"zero by zero", 0, 0, 0, DivideByZero},
		{"max by zero", 127, 0, 0, DivideByZero},
		{"truncates toward zero", -7, 2, -3, 0},
		{"truncates positive", 7, -2, -3, 0},
		{"min by one", -128, 1, -128, 0},
	})
}

func TestRemInt8(t *testing.T) {
	runBinary(t, Rem[int8], []binaryCase[int8]{
		{"min by minus one", -128, -1, 0, Overflow},
		{"by zero", 5, 0, 0, DivideByZero},
		{"sign of dividend", -7, 2, -1, 0},
		{"sign of dividend positive", 7, -2, 1, 0},
		{"exact", -128, 2, 0, 0},
	})
}

func TestUint8(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		runBinary(t, Add[uint8], []binaryCase[uint8]{
			{"max plus one", 255, 1, 0, Overflow},
			{"at max", 200, 55, 255, 0},
		})
	})
	t.Run("sub", func(t *testing.T) {
		runBinary(t, Sub[uint8], []binaryCase[uint8]{
			{"zero minus one", 0, 1, 0, Underflow},
			{"to zero", 9, 9, 0, 0},
		})
	})
	t.Run("mul", func(t *testing.T) {
		runBinary(t, Mul[uint8], []binaryCase[uint8]{
			{"overflow", 16, 16, 0, Overflow},
			{"at max", 15, 17, 255, 0},
			{"zero", 0, 255, 0, 0},
		})
	})
	t.Run("quo", func(t *testing.T) {
		runBinary(t, Quo[uint8], []binaryCase[uint8]{
			{"by zero", 1, 0, 0, DivideByZero},
			{"max by max", 255, 255, 1, 0},
		})
	})
	t.Run("rem", func(t *testing.T) {
		runBinary(t, Rem[uint8], []binaryCase[uint8]{
			{"by zero", 1, 0, 0, DivideByZero},
			{"max by two", 255, 2, 1, 0},
		})
	})
}

func TestNeg(t *testing.T) {
	t.Run("signed", func(t *testing.T) {
		_, err := Of[int8](math.MinInt8).Neg()
		require.ErrorIs(t, err, ErrOverflow)

		got, err := Of[int8](math.MaxInt8).Neg()
		require.NoError(t, err)
		assert.Equal(t, int8(-127), got.Value())

		_, err = Neg(Min[int64]())
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("unsigned", func(t *testing.T) {
		_, err := Of[uint8](1).Neg()
		require.ErrorIs(t, err, ErrUnderflow)

		_, err = Max[uint64]().Neg()
		require.ErrorIs(t, err, ErrUnderflow)

		got, err := Of[uint8](0).Neg()
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})
}

func TestAbs(t *testing.T) {
	got, err := Of[int16](-300).Abs()
	require.NoError(t, err)
	assert.Equal(t, int16(300), got.Value())

	gotU, err := Of[uint16](300).Abs()
	require.NoError(t, err)
	assert.Equal(t, uint16(300), gotU.Value())

	_, err = Min[int16]().Abs()
	require.ErrorIs(t, err, ErrOverflow)
}

func TestValueForms(t *testing.T) {
	x := Of[int32](10)

	got, err := x.AddValue(5)
	require.NoError(t, err)
	assert.Equal(t, int32(15), got.Value())

	got, err = x.SubValue(15)
	require.NoError(t, err)
	assert.Equal(t, int32(-5), got.Value())

	got, err = x.MulValue(-3)
	require.NoError(t, err)
	assert.Equal(t, int32(-30), got.Value())

	got, err = x.QuoValue(3)
	require.NoError(t, err)
	assert.Equal(t, int32(3), got.Value())

	got, err = x.RemValue(3)
	require.NoError(t, err)
	assert.Equal(t, int32(1), got.Value())

	_, err = Max[int32]().AddValue(1)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestCompoundAssign(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		x := Of[int16](100)
		require.NoError(t, x.AddAssign(Of[int16](20)))
		require.NoError(t, x.SubAssign(Of[int16](10)))
		require.NoError(t, x.MulAssign(Of[int16](-3)))
		require.NoError(t, x.QuoAssign(Of[int16](4)))
		require.NoError(t, x.RemAssign(Of[int16](50)))
		assert.Equal(t, int16(-32), x.Value())
	})

	t.Run("unchanged on failure", func(t *testing.T) {
		x := Of[int8](100)
		require.ErrorIs(t, x.AddAssign(Of[int8](28)), ErrOverflow)
		require.ErrorIs(t, x.MulAssign(Of[int8](2)), ErrOverflow)
		require.ErrorIs(t, x.QuoAssign(Of[int8](0)), ErrDivideByZero)
		require.ErrorIs(t, x.RemAssign(Of[int8](0)), ErrDivideByZero)
		assert.Equal(t, int8(100), x.Value())

		m := Min[int8]()
		require.ErrorIs(t, m.SubAssign(Of[int8](1)), ErrUnderflow)
		assert.Equal(t, Min[int8](), m)
	})
}

func TestIncDec(t *testing.T) {
	t.Run("prefix returns new value", func(t *testing.T) {
		x := Of[uint8](9)
		got, err := x.Inc()
		require.NoError(t, err)
		assert.Equal(t, uint8(10), got.Value())
		assert.Equal(t, uint8(10), x.Value())

		got, err = x.Dec()
		require.NoError(t, err)
		assert.Equal(t, uint8(9), got.Value())
		assert.Equal(t, uint8(9), x.Value())
	})

	t.Run("postfix returns prior value", func(t *testing.T) {
		x := Of[int8](-1)
		got, err := x.PostInc()
		require.NoError(t, err)
		assert.Equal(t, int8(-1), got.Value())
		assert.Equal(t, int8(0), x.Value())

		got, err = x.PostDec()
		require.NoError(t, err)
		assert.Equal(t, int8(0), got.Value())
		assert.Equal(t, int8(-1), x.Value())
	})

	t.Run("bounds", func(t *testing.T) {
		hi := Max[int8]()
		_, err := hi.Inc()
		require.ErrorIs(t, err, ErrOverflow)
		_, err = hi.PostInc()
		require.ErrorIs(t, err, ErrOverflow)
		assert.Equal(t, Max[int8](), hi)

		zero := Of[uint32](0)
		_, err = zero.Dec()
		require.ErrorIs(t, err, ErrUnderflow)
		_, err = zero.PostDec()
		require.ErrorIs(t, err, ErrUnderflow)
		assert.True(t, zero.IsZero())
	})
}

func TestSum(t *testing.T) {
	got, err := Sum(Of[int8](100), Of[int8](27), Of[int8](-27))
	require.NoError(t, err)
	assert.Equal(t, int8(100), got.Value())

	_, err = Sum(Of[int8](100), Of[int8](28), Of[int8](-28))
	require.ErrorIs(t, err, ErrOverflow)

	got, err = Sum[int8]()
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

// exact computes op over unbounded integers; ok is false for a zero divisor.
func exact(op string, a, b *big.Int) (r *big.Int, ok bool) {
	r = new(big.Int)
	switch op {
	case "add":
		return r.Add(a, b), true
	case "sub":
		return r.Sub(a, b), true
	case "mul":
		return r.Mul(a, b), true
	case "quo", "rem":
		if b.Sign() == 0 {
			return nil, false
		}
		if op == "quo" {
			return r.Quo(a, b), true
		}
		return r.Rem(a, b), true
	}
	panic("unknown op " + op)
}

func checkAgainstExact[T constraints.Integer](t *testing.T, pairs [][2]T) {
	t.Helper()

	ops := map[string]func(Int[T], Int[T]) (Int[T], error){
		"add": Add[T], "sub": Sub[T], "mul": Mul[T], "quo": Quo[T], "rem": Rem[T],
	}
	lo, hi := Min[T]().Big(), Max[T]().Big()

	for name, op := range ops {
		failures := 0
		for _, p := range pairs {
			a, b := Of(p[0]), Of(p[1])
			got, err := op(a, b)

			want, ok := exact(name, a.Big(), b.Big())
			var wantKind Kind
			switch {
			case !ok:
				wantKind = DivideByZero
			case (name == "quo" || name == "rem") && a.Eq(Min[T]()) && lo.Sign() < 0 && b.EqValue(^T(0)):
				wantKind = Overflow
			case want.Cmp(hi) > 0:
				wantKind = Overflow
			case want.Cmp(lo) < 0:
				wantKind = Underflow
			}

			if wantKind != 0 {
				kind, _ := KindOf(err)
				if !assert.Equal(t, wantKind, kind, "%s(%v, %v)", name, a, b) {
					failures++
				}
			} else if assert.NoError(t, err, "%s(%v, %v)", name, a, b) {
				if !assert.Equal(t, 0, want.Cmp(got.Big()), "%s(%v, %v)", name, a, b) {
					failures++
				}
			} else {
				failures++
			}
			if failures > 10 {
				t.Fatalf("too many failures for %s", name)
			}
		}
	}
}

func allPairs[T constraints.Integer]() [][2]T {
	vals := testutil.All[T]()
	pairs := make([][2]T, 0, len(vals)*len(vals))
	for _, a := range vals {
		for _, b := range vals {
			pairs = append(pairs, [2]T{a, b})
		}
	}
	return pairs
}

func TestExhaustive8Bit(t *testing.T) {
	t.Run("int8", func(t *testing.T) { checkAgainstExact(t, allPairs[int8]()) })
	t.Run("uint8", func(t *testing.T) { checkAgainstExact(t, allPairs[uint8]()) })
}

func TestRandomWide(t *testing.T) {
	rng := testutil.NewRNG(4711)

	t.Run("int16", func(t *testing.T) { checkAgainstExact(t, testutil.Pairs[int16](rng, 5000)) })
	t.Run("uint16", func(t *testing.T) { checkAgainstExact(t, testutil.Pairs[uint16](rng, 5000)) })
	t.Run("int32", func(t *testing.T) { checkAgainstExact(t, testutil.Pairs[int32](rng, 5000)) })
	t.Run("uint32", func(t *testing.T) { checkAgainstExact(t, testutil.Pairs[uint32](rng, 5000)) })
	t.Run("int64", func(t *testing.T) { checkAgainstExact(t, testutil.Pairs[int64](rng, 5000)) })
	t.Run("uint64", func(t *testing.T) { checkAgainstExact(t, testutil.Pairs[uint64](rng, 5000)) })
}

func TestIdentities(t *testing.T) {
	rng := testutil.NewRNG(42)

	for _, v := range testutil.Values[int32](rng, 2000) {
		a := Of(v)

		sum, err := a.Add(Int[int32]{})
		require.NoError(t, err)
		assert.True(t, sum.Eq(a))

		diff, err := a.Sub(a)
		require.NoError(t, err)
		assert.True(t, diff.IsZero())

		if a.Eq(Min[int32]()) {
			continue
		}
		neg, err := a.Neg()
		require.NoError(t, err)
		back, err := neg.Neg()
		require.NoError(t, err)
		assert.True(t, back.Eq(a))
	}
}

func BenchmarkMul(b *testing.B) {
	rng := testutil.NewRNG(4711)
	pairs := testutil.Pairs[int64](rng, 1024)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := pairs[i%len(pairs)]
		_, _ = Of(p[0]).Mul(Of(p[1]))
	}
}

package checkedint

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	var x Int[int64]
	assert.True(t, x.IsZero())
	assert.Equal(t, int64(0), x.Value())
	assert.Equal(t, 0, x.Sign())
	assert.Equal(t, "0", x.String())
}

func TestFrom(t *testing.T) {
	t.Run("unsigned to signed", func(t *testing.T) {
		got, err := From[int8](uint16(127))
		require.NoError(t, err)
		assert.Equal(t, int8(127), got.Value())

		_, err = From[int8](uint16(128))
		require.ErrorIs(t, err, ErrOverflow)

		_, err = From[int64](uint64(math.MaxUint64))
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("signed to unsigned", func(t *testing.T) {
		_, err := From[uint16](int16(-1))
		require.ErrorIs(t, err, ErrUnderflow)

		got, err := From[uint16](int64(math.MaxUint16))
		require.NoError(t, err)
		assert.Equal(t, uint16(math.MaxUint16), got.Value())

		_, err = From[uint16](int64(math.MaxUint16 + 1))
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("signed to signed", func(t *testing.T) {
		_, err := From[int8](int32(-129))
		require.ErrorIs(t, err, ErrUnderflow)

		got, err := From[int8](int32(-128))
		require.NoError(t, err)
		assert.Equal(t, int8(-128), got.Value())

		_, err = From[int32](int64(math.MaxInt32 + 1))
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("unsigned to unsigned", func(t *testing.T) {
		_, err := From[uint8](uint32(256))
		require.ErrorIs(t, err, ErrOverflow)

		got, err := From[uint64](uint8(255))
		require.NoError(t, err)
		assert.Equal(t, uint64(255), got.Value())
	})

	t.Run("named type", func(t *testing.T) {
		type celsius int16
		got, err := From[celsius](-40)
		require.NoError(t, err)
		assert.Equal(t, celsius(-40), got.Value())

		_, err = From[celsius](40000)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Contains(t, e.Type, "celsius")
	})
}

func TestMustFrom(t *testing.T) {
	assert.Equal(t, uint8(200), MustFrom[uint8](200).Value())
	assert.Panics(t, func() { MustFrom[uint8](-1) })
}

func TestAssign(t *testing.T) {
	x := Of[int16](5)
	require.NoError(t, Assign(&x, uint64(300)))
	assert.Equal(t, int16(300), x.Value())

	require.ErrorIs(t, Assign(&x, uint64(math.MaxInt16+1)), ErrOverflow)
	assert.Equal(t, int16(300), x.Value())

	require.ErrorIs(t, Assign(&x, int64(math.MinInt16-1)), ErrUnderflow)
	assert.Equal(t, int16(300), x.Value())
}

func TestConvert(t *testing.T) {
	wide := Of[int64](-7)
	narrow, err := Convert[int8](wide)
	require.NoError(t, err)
	assert.Equal(t, int8(-7), narrow.Value())

	_, err = Convert[uint32](wide)
	require.ErrorIs(t, err, ErrUnderflow)

	back, err := Convert[int64](narrow)
	require.NoError(t, err)
	assert.True(t, back.Eq(wide))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, int8(math.MinInt8), Min[int8]().Value())
	assert.Equal(t, int8(math.MaxInt8), Max[int8]().Value())
	assert.Equal(t, uint16(0), Min[uint16]().Value())
	assert.Equal(t, uint16(math.MaxUint16), Max[uint16]().Value())
	assert.Equal(t, int64(math.MinInt64), Min[int64]().Value())
	assert.Equal(t, uint64(math.MaxUint64), Max[uint64]().Value())
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1, Of[int8](-3).Sign())
	assert.Equal(t, 1, Of[uint8](3).Sign())
	assert.Equal(t, "-3", Of[int8](-3).String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		base int
		want int16
		err  error
	}{
		{"123", 10, 123, nil},
		{" -32768 ", 10, math.MinInt16, nil},
		{"0x7fff", 0, math.MaxInt16, nil},
		{"1_000", 0, 1000, nil},
		{"32768", 10, 0, ErrOverflow},
		{"-32769", 10, 0, ErrUnderflow},
		{"99999999999999999999999", 10, 0, ErrOverflow},
		{"-99999999999999999999999", 10, 0, ErrUnderflow},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse[int16](tc.in, tc.base)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Value())
		})
	}

	t.Run("syntax", func(t *testing.T) {
		_, err := Parse[int16]("12a", 10)
		require.Error(t, err)
		_, ok := KindOf(err)
		assert.False(t, ok)
	})
}

func TestBig(t *testing.T) {
	assert.Equal(t, "18446744073709551615", Max[uint64]().Big().String())
	assert.Equal(t, "-9223372036854775808", Min[int64]().Big().String())

	n, _ := new(big.Int).SetString("18446744073709551616", 10)
	_, err := FromBig[uint64](n)
	require.ErrorIs(t, err, ErrOverflow)
}

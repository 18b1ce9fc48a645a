package checkedint

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/hupe1980/checkedint/internal/conv"
	"golang.org/x/exp/constraints"
)

// Parse interprets s in the given base and range checks the result against T.
// Base 0 selects the base from the prefix, as in strconv.ParseInt, and permits
// underscores. Values of any magnitude are classified as overflow or
// underflow rather than rejected as syntax errors.
func Parse[T constraints.Integer](s string, base int) (Int[T], error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), base)
	if !ok {
		return Int[T]{}, fmt.Errorf("checkedint: invalid %s literal %q", conv.RepOf[T](), s)
	}
	return FromBig[T](n)
}

// FromBig converts n into an Int[T].
func FromBig[T constraints.Integer](n *big.Int) (Int[T], error) {
	switch {
	case n.IsInt64():
		return From[T](n.Int64())
	case n.IsUint64():
		return From[T](n.Uint64())
	case n.Sign() < 0:
		return Int[T]{}, newError[T](Underflow, "convert", n)
	default:
		return Int[T]{}, newError[T](Overflow, "convert", n)
	}
}

// Big returns x as a big.Int.
func (x Int[T]) Big() *big.Int {
	if x.value < 0 {
		return big.NewInt(int64(x.value))
	}
	return new(big.Int).SetUint64(uint64(x.value))
}

// fromAny converts a decoded number into an Int[T]. Decoders hand over
// whatever integer type their wire format produced.
func fromAny[T constraints.Integer](v any) (Int[T], error) {
	switch n := v.(type) {
	case int:
		return From[T](n)
	case int8:
		return From[T](n)
	case int16:
		return From[T](n)
	case int32:
		return From[T](n)
	case int64:
		return From[T](n)
	case uint:
		return From[T](n)
	case uint8:
		return From[T](n)
	case uint16:
		return From[T](n)
	case uint32:
		return From[T](n)
	case uint64:
		return From[T](n)
	case *big.Int:
		return FromBig[T](n)
	case big.Int:
		return FromBig[T](&n)
	case Int[T]:
		return n, nil
	default:
		return Int[T]{}, fmt.Errorf("checkedint: cannot decode %T into %s", v, conv.RepOf[T]())
	}
}

package checkedint

import (
	"fmt"

	"github.com/hupe1980/checkedint/internal/conv"
	"golang.org/x/exp/constraints"
)

// Int is a fixed-width integer whose every transition is range checked.
//
// The zero value is 0. An Int is a plain value: copying it is cheap and it
// owns no resources. Methods with pointer receivers mutate only the receiver
// and are not safe for concurrent use on the same instance.
type Int[T constraints.Integer] struct {
	value T
}

// From converts v into an Int[T], failing with ErrOverflow or ErrUnderflow if
// v is outside the range of T.
func From[T, V constraints.Integer](v V) (Int[T], error) {
	switch conv.Classify[T](v) {
	case conv.Above:
		return Int[T]{}, newError[T](Overflow, "convert", v)
	case conv.Below:
		return Int[T]{}, newError[T](Underflow, "convert", v)
	}
	return Int[T]{value: T(v)}, nil
}

// MustFrom is like From but panics if v is out of range.
func MustFrom[T, V constraints.Integer](v V) Int[T] {
	x, err := From[T](v)
	if err != nil {
		panic(err)
	}
	return x
}

// Of wraps v. It never fails since every T is in range of itself.
func Of[T constraints.Integer](v T) Int[T] {
	return Int[T]{value: v}
}

// Assign stores v into dst after a range check. dst is left unchanged on
// failure.
func Assign[T, V constraints.Integer](dst *Int[T], v V) error {
	x, err := From[T](v)
	if err != nil {
		return err
	}
	*dst = x
	return nil
}

// Convert changes the representation of x, failing if its value does not fit
// into T.
func Convert[T, U constraints.Integer](x Int[U]) (Int[T], error) {
	return From[T](x.value)
}

// Min returns the smallest value of T.
func Min[T constraints.Integer]() Int[T] {
	lo, _ := conv.Bounds[T]()
	return Int[T]{value: lo}
}

// Max returns the largest value of T.
func Max[T constraints.Integer]() Int[T] {
	_, hi := conv.Bounds[T]()
	return Int[T]{value: hi}
}

// Value returns the underlying integer.
func (x Int[T]) Value() T { return x.value }

// IsZero reports whether x is 0.
func (x Int[T]) IsZero() bool { return x.value == 0 }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int[T]) Sign() int {
	switch {
	case x.value < 0:
		return -1
	case x.value > 0:
		return 1
	}
	return 0
}

func (x Int[T]) String() string { return fmt.Sprint(x.value) }

package checkedint

import (
	"github.com/hupe1980/checkedint/internal/conv"
	"golang.org/x/exp/constraints"
)

// limits returns the bounds of T and whether T is signed.
func limits[T constraints.Integer]() (lo, hi T, signed bool) {
	lo, hi = conv.Bounds[T]()
	return lo, hi, lo < 0
}

// Add returns x + y.
func (x Int[T]) Add(y Int[T]) (Int[T], error) {
	lo, hi, _ := limits[T]()
	a, b := x.value, y.value
	switch {
	case b > 0 && a > hi-b:
		return Int[T]{}, newError[T](Overflow, "add", a, b)
	case b < 0 && a < lo-b:
		return Int[T]{}, newError[T](Underflow, "add", a, b)
	}
	return Int[T]{value: a + b}, nil
}

// Sub returns x - y.
func (x Int[T]) Sub(y Int[T]) (Int[T], error) {
	lo, hi, _ := limits[T]()
	a, b := x.value, y.value
	switch {
	case b > 0 && a < lo+b:
		return Int[T]{}, newError[T](Underflow, "sub", a, b)
	case b < 0 && a > hi+b:
		return Int[T]{}, newError[T](Overflow, "sub", a, b)
	}
	return Int[T]{value: a - b}, nil
}

// Mul returns x * y.
func (x Int[T]) Mul(y Int[T]) (Int[T], error) {
	lo, hi, _ := limits[T]()
	a, b := x.value, y.value

	// Every bound below divides by an operand known to be nonzero; a zero
	// operand falls through all cases.
	var kind Kind
	switch {
	case a > 0 && b > 0:
		if a > hi/b {
			kind = Overflow
		}
	case a > 0 && b < 0:
		if b < lo/a {
			kind = Underflow
		}
	case a < 0 && b > 0:
		if a < lo/b {
			kind = Underflow
		}
	case a < 0 && b < 0:
		if b < hi/a {
			kind = Overflow
		}
	}
	if kind != 0 {
		return Int[T]{}, newError[T](kind, "mul", a, b)
	}
	return Int[T]{value: a * b}, nil
}

// Quo returns the quotient x / y truncated toward zero.
func (x Int[T]) Quo(y Int[T]) (Int[T], error) {
	if err := checkDivisor("quo", x.value, y.value); err != nil {
		return Int[T]{}, err
	}
	return Int[T]{value: x.value / y.value}, nil
}

// Rem returns the remainder x % y, which has the sign of x.
//
// Rem fails for min(T) % -1 in the same way Quo does, although the remainder
// itself would be 0.
func (x Int[T]) Rem(y Int[T]) (Int[T], error) {
	if err := checkDivisor("rem", x.value, y.value); err != nil {
		return Int[T]{}, err
	}
	return Int[T]{value: x.value % y.value}, nil
}

func checkDivisor[T constraints.Integer](op string, a, b T) error {
	lo, _, signed := limits[T]()
	switch {
	case b == 0:
		return newError[T](DivideByZero, op, a, b)
	case signed && a == lo && b == ^T(0):
		return newError[T](Overflow, op, a, b)
	}
	return nil
}

// Neg returns -x.
//
// For signed T it fails with ErrOverflow on min(T). For unsigned T every
// nonzero operand fails with ErrUnderflow, and -0 is 0.
func (x Int[T]) Neg() (Int[T], error) {
	lo, _, signed := limits[T]()
	a := x.value
	switch {
	case signed && a == lo:
		return Int[T]{}, newError[T](Overflow, "neg", a)
	case !signed && a != 0:
		return Int[T]{}, newError[T](Underflow, "neg", a)
	}
	return Int[T]{value: -a}, nil
}

// Abs returns |x|. It fails with ErrOverflow on the signed minimum.
func (x Int[T]) Abs() (Int[T], error) {
	if x.value >= 0 {
		return x, nil
	}
	return x.Neg()
}

// AddValue returns x + v.
func (x Int[T]) AddValue(v T) (Int[T], error) { return x.Add(Of(v)) }

// SubValue returns x - v.
func (x Int[T]) SubValue(v T) (Int[T], error) { return x.Sub(Of(v)) }

// MulValue returns x * v.
func (x Int[T]) MulValue(v T) (Int[T], error) { return x.Mul(Of(v)) }

// QuoValue returns x / v.
func (x Int[T]) QuoValue(v T) (Int[T], error) { return x.Quo(Of(v)) }

// RemValue returns x % v.
func (x Int[T]) RemValue(v T) (Int[T], error) { return x.Rem(Of(v)) }

// AddAssign sets x to x + y. x is unchanged on failure.
func (x *Int[T]) AddAssign(y Int[T]) error { return x.apply(Int[T].Add, y) }

// SubAssign sets x to x - y. x is unchanged on failure.
func (x *Int[T]) SubAssign(y Int[T]) error { return x.apply(Int[T].Sub, y) }

// MulAssign sets x to x * y. x is unchanged on failure.
func (x *Int[T]) MulAssign(y Int[T]) error { return x.apply(Int[T].Mul, y) }

// QuoAssign sets x to x / y. x is unchanged on failure.
func (x *Int[T]) QuoAssign(y Int[T]) error { return x.apply(Int[T].Quo, y) }

// RemAssign sets x to x % y. x is unchanged on failure.
func (x *Int[T]) RemAssign(y Int[T]) error { return x.apply(Int[T].Rem, y) }

func (x *Int[T]) apply(op func(Int[T], Int[T]) (Int[T], error), y Int[T]) error {
	r, err := op(*x, y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// Inc increments x and returns the new value.
func (x *Int[T]) Inc() (Int[T], error) {
	if err := x.AddAssign(Of(T(1))); err != nil {
		return Int[T]{}, err
	}
	return *x, nil
}

// Dec decrements x and returns the new value.
func (x *Int[T]) Dec() (Int[T], error) {
	if err := x.SubAssign(Of(T(1))); err != nil {
		return Int[T]{}, err
	}
	return *x, nil
}

// PostInc increments x and returns the value it held before.
func (x *Int[T]) PostInc() (Int[T], error) {
	prev := *x
	if _, err := x.Inc(); err != nil {
		return Int[T]{}, err
	}
	return prev, nil
}

// PostDec decrements x and returns the value it held before.
func (x *Int[T]) PostDec() (Int[T], error) {
	prev := *x
	if _, err := x.Dec(); err != nil {
		return Int[T]{}, err
	}
	return prev, nil
}

// Add returns a + b.
func Add[T constraints.Integer](a, b Int[T]) (Int[T], error) { return a.Add(b) }

// Sub returns a - b.
func Sub[T constraints.Integer](a, b Int[T]) (Int[T], error) { return a.Sub(b) }

// Mul returns a * b.
func Mul[T constraints.Integer](a, b Int[T]) (Int[T], error) { return a.Mul(b) }

// Quo returns a / b.
func Quo[T constraints.Integer](a, b Int[T]) (Int[T], error) { return a.Quo(b) }

// Rem returns a % b.
func Rem[T constraints.Integer](a, b Int[T]) (Int[T], error) { return a.Rem(b) }

// Neg returns -a.
func Neg[T constraints.Integer](a Int[T]) (Int[T], error) { return a.Neg() }

// Sum adds xs from left to right and stops at the first failure.
func Sum[T constraints.Integer](xs ...Int[T]) (Int[T], error) {
	var acc Int[T]
	for _, x := range xs {
		if err := acc.AddAssign(x); err != nil {
			return Int[T]{}, err
		}
	}
	return acc, nil
}

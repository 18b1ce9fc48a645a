// Package checkedint provides fixed-width integers with checked arithmetic.
//
// An Int[T] wraps a single value of any Go integer type and replaces silent
// wraparound with an explicit error. Every operation checks the exact result
// against the bounds of T before it commits anything:
//
//	a := checkedint.Of[int8](127)
//	_, err := a.AddValue(1)        // ErrOverflow
//	b, _ := checkedint.From[int8](uint16(127))
//	_, err = checkedint.From[int8](uint16(128)) // ErrOverflow
//
// # Construction
//
// From converts any integer, of any width or signedness, after a range check.
// Of wraps a value that already has type T. Assign re-checks and stores into an
// existing Int. Parse and FromBig accept values of arbitrary magnitude.
//
// # Arithmetic
//
// Add, Sub, Mul, Quo, Rem and Neg return a new Int or an *Error. Quo and Rem
// truncate toward zero. The single asymmetric two's complement case, min(T)
// divided by or modulo -1, fails with ErrOverflow. Negating a nonzero unsigned
// value fails with ErrUnderflow.
//
// The pointer methods AddAssign, SubAssign, MulAssign, QuoAssign, RemAssign,
// Inc, Dec, PostInc and PostDec mutate the receiver only on success.
//
// # Errors
//
// Failures are one of three kinds and can be matched with errors.Is:
//
//	if errors.Is(err, checkedint.ErrOverflow) { ... }
//	if errors.Is(err, checkedint.ErrUnderflow) { ... }
//	if errors.Is(err, checkedint.ErrDivideByZero) { ... }
//
// # Encoding
//
// An Int encodes as a record with the single field "value" in JSON, CBOR and
// YAML, and exposes that field through FieldNames, Field and SetField for
// generic encoders such as codec.MsgPack. Decoding goes through the same range
// check as From.
package checkedint

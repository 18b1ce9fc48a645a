package checkedint

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOverflow is returned when the exact result exceeds the maximum of the
	// representation.
	ErrOverflow = errors.New("overflow")

	// ErrUnderflow is returned when the exact result is below the minimum of
	// the representation.
	ErrUnderflow = errors.New("underflow")

	// ErrDivideByZero is returned when the divisor of a division or remainder
	// is zero.
	ErrDivideByZero = errors.New("divide by zero")
)

// Kind classifies an arithmetic failure.
type Kind uint8

const (
	// Overflow indicates a result above the representable maximum.
	Overflow Kind = iota + 1
	// Underflow indicates a result below the representable minimum.
	Underflow
	// DivideByZero indicates a zero divisor.
	DivideByZero
)

func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) sentinel() error {
	switch k {
	case Overflow:
		return ErrOverflow
	case Underflow:
		return ErrUnderflow
	case DivideByZero:
		return ErrDivideByZero
	default:
		return nil
	}
}

// Error describes a checked operation that did not complete.
//
// The underlying sentinel (ErrOverflow, ErrUnderflow or ErrDivideByZero) can
// be matched with errors.Is.
type Error struct {
	Kind     Kind
	Op       string
	Type     string
	Operands []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("checkedint: %s %s(%s): %s", e.Type, e.Op, strings.Join(e.Operands, ", "), e.Kind)
}

func (e *Error) Unwrap() error { return e.Kind.sentinel() }

// KindOf extracts the failure kind from err.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	switch {
	case errors.Is(err, ErrOverflow):
		return Overflow, true
	case errors.Is(err, ErrUnderflow):
		return Underflow, true
	case errors.Is(err, ErrDivideByZero):
		return DivideByZero, true
	}
	return 0, false
}

func newError[T any](kind Kind, op string, operands ...any) *Error {
	var zero T
	e := &Error{
		Kind:     kind,
		Op:       op,
		Type:     fmt.Sprintf("%T", zero),
		Operands: make([]string, len(operands)),
	}
	for i, o := range operands {
		e.Operands[i] = fmt.Sprint(o)
	}
	return e
}

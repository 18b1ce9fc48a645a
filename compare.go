package checkedint

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int[T]) Cmp(y Int[T]) int { return cmp.Compare(x.value, y.value) }

// CmpValue compares x with a bare value of the underlying type.
func (x Int[T]) CmpValue(v T) int { return cmp.Compare(x.value, v) }

// Eq reports whether x == y.
func (x Int[T]) Eq(y Int[T]) bool { return x.value == y.value }

// Ne reports whether x != y.
func (x Int[T]) Ne(y Int[T]) bool { return x.value != y.value }

// Lt reports whether x < y.
func (x Int[T]) Lt(y Int[T]) bool { return x.value < y.value }

// Le reports whether x <= y.
func (x Int[T]) Le(y Int[T]) bool { return x.value <= y.value }

// Gt reports whether x > y.
func (x Int[T]) Gt(y Int[T]) bool { return x.value > y.value }

// Ge reports whether x >= y.
func (x Int[T]) Ge(y Int[T]) bool { return x.value >= y.value }

// EqValue reports whether x == v.
func (x Int[T]) EqValue(v T) bool { return x.value == v }

// NeValue reports whether x != v.
func (x Int[T]) NeValue(v T) bool { return x.value != v }

// LtValue reports whether x < v.
func (x Int[T]) LtValue(v T) bool { return x.value < v }

// LeValue reports whether x <= v.
func (x Int[T]) LeValue(v T) bool { return x.value <= v }

// GtValue reports whether x > v.
func (x Int[T]) GtValue(v T) bool { return x.value > v }

// GeValue reports whether x >= v.
func (x Int[T]) GeValue(v T) bool { return x.value >= v }

// Compare orders a and b; it is suitable for slices.SortFunc.
func Compare[T constraints.Integer](a, b Int[T]) int { return a.Cmp(b) }

package conv

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Rep describes a fixed-width integer representation.
type Rep struct {
	Signed bool
	Bits   uint
}

// Common representations.
var (
	Int8   = Rep{Signed: true, Bits: 8}
	Int16  = Rep{Signed: true, Bits: 16}
	Int32  = Rep{Signed: true, Bits: 32}
	Int64  = Rep{Signed: true, Bits: 64}
	Uint8  = Rep{Signed: false, Bits: 8}
	Uint16 = Rep{Signed: false, Bits: 16}
	Uint32 = Rep{Signed: false, Bits: 32}
	Uint64 = Rep{Signed: false, Bits: 64}
)

// Reps lists the fixed-width representations in ascending width, signed first.
var Reps = []Rep{Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64}

// RepOf returns the representation of T.
func RepOf[T constraints.Integer]() Rep {
	var zero T
	return Rep{
		Signed: ^zero < 0,
		Bits:   uint(unsafe.Sizeof(zero)) * 8,
	}
}

// ParseRep parses a representation name such as "int8" or "uint64".
func ParseRep(name string) (Rep, error) {
	for _, r := range Reps {
		if r.String() == strings.ToLower(strings.TrimSpace(name)) {
			return r, nil
		}
	}
	return Rep{}, fmt.Errorf("unknown integer representation %q", name)
}

// MinInt64 returns the smallest value of the representation.
func (r Rep) MinInt64() int64 {
	if !r.Signed {
		return 0
	}
	return math.MinInt64 >> (64 - r.Bits)
}

// MaxUint64 returns the largest value of the representation.
func (r Rep) MaxUint64() uint64 {
	if r.Signed {
		return math.MaxUint64 >> (65 - r.Bits)
	}
	return math.MaxUint64 >> (64 - r.Bits)
}

func (r Rep) String() string {
	if r.Signed {
		return fmt.Sprintf("int%d", r.Bits)
	}
	return fmt.Sprintf("uint%d", r.Bits)
}

// Bounds returns the minimum and maximum values of T.
func Bounds[T constraints.Integer]() (lo, hi T) {
	r := RepOf[T]()
	if r.Signed {
		hi = T(r.MaxUint64())
		return -hi - 1, hi
	}
	return 0, ^T(0)
}

package conv

import "golang.org/x/exp/constraints"

// Range is the position of a value relative to a representation's bounds.
type Range int8

const (
	// InRange means the value is representable.
	InRange Range = iota
	// Above means the value exceeds the maximum.
	Above
	// Below means the value is less than the minimum.
	Below
)

func (r Range) String() string {
	switch r {
	case InRange:
		return "in range"
	case Above:
		return "above"
	case Below:
		return "below"
	default:
		return "unknown"
	}
}

// paths selects the comparison used for a (source signed, target signed)
// pairing. Every path receives the source value widened to 64 bits, so signed
// sources arrive sign-extended.
var paths = [2][2]func(raw uint64, dst Rep) Range{
	{unsignedToUnsigned, unsignedToSigned},
	{signedToUnsigned, signedToSigned},
}

func index(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Classify reports whether v fits into the representation of T.
func Classify[T, V constraints.Integer](v V) Range {
	return Classify64(uint64(v), RepOf[V](), RepOf[T]())
}

// Classify64 classifies raw, the 64-bit widening of a value of representation
// src, against dst.
func Classify64(raw uint64, src, dst Rep) Range {
	return paths[index(src.Signed)][index(dst.Signed)](raw, dst)
}

func signedToSigned(raw uint64, dst Rep) Range {
	v := int64(raw)
	switch {
	case v < dst.MinInt64():
		return Below
	case v > int64(dst.MaxUint64()):
		return Above
	}
	return InRange
}

func unsignedToUnsigned(raw uint64, dst Rep) Range {
	if raw > dst.MaxUint64() {
		return Above
	}
	return InRange
}

func signedToUnsigned(raw uint64, dst Rep) Range {
	if int64(raw) < 0 {
		return Below
	}
	return unsignedToUnsigned(raw, dst)
}

func unsignedToSigned(raw uint64, dst Rep) Range {
	// An unsigned source never reaches the negative half.
	if raw > dst.MaxUint64() {
		return Above
	}
	return InRange
}

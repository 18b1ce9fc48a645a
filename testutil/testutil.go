package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/checkedint/internal/conv"
	"golang.org/x/exp/constraints"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Draw returns a value of T drawn uniformly from its whole range.
func Draw[T constraints.Integer](r *RNG) T {
	// Truncating 64 random bits keeps the distribution uniform for every
	// width.
	return T(r.Uint64())
}

// DrawEdgy returns a boundary value of T half of the time and a uniform value
// otherwise.
func DrawEdgy[T constraints.Integer](r *RNG) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rand.Intn(2) == 0 {
		b := Boundary[T]()
		return b[r.rand.Intn(len(b))]
	}
	return T(r.rand.Uint64())
}

// Values returns n edgy values of T.
func Values[T constraints.Integer](r *RNG, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = DrawEdgy[T](r)
	}
	return out
}

// Pairs returns n pairs of edgy operands.
func Pairs[T constraints.Integer](r *RNG, n int) [][2]T {
	out := make([][2]T, n)
	for i := range out {
		out[i] = [2]T{DrawEdgy[T](r), DrawEdgy[T](r)}
	}
	return out
}

// Boundary returns the values of T around zero and around both bounds, in
// ascending order and without duplicates.
func Boundary[T constraints.Integer]() []T {
	lo, hi := conv.Bounds[T]()
	vals := []T{lo, lo + 1, 0, 1, hi - 1, hi}
	if lo < 0 {
		vals = append(vals, ^T(0)) // -1
	}
	slices.Sort(vals)
	return slices.Compact(vals)
}

// All returns every value of T in ascending order. It panics for types wider
// than 16 bits.
func All[T constraints.Integer]() []T {
	if conv.RepOf[T]().Bits > 16 {
		panic("testutil: All is limited to 16-bit types")
	}
	lo, hi := conv.Bounds[T]()
	out := make([]T, 0, int(uint64(hi)-uint64(lo))+1)
	for v := lo; ; v++ {
		out = append(out, v)
		if v == hi {
			break
		}
	}
	return out
}

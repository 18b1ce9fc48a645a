// Package testutil provides testing utilities for checkedint.
//
// This package is intended for use in tests, benchmarks and the differential
// verifier. It provides a seeded RNG that draws integers of any
// representation, biased toward the edges of the range where checked
// arithmetic is most likely to be wrong.
//
// # Random Operands
//
//	rng := testutil.NewRNG(seed)
//	a := testutil.Draw[int16](rng)       // uniform over all int16 values
//	b := testutil.DrawEdgy[int16](rng)   // boundary values half of the time
//	ps := testutil.Pairs[uint32](rng, 1000)
//
// # Boundary Values
//
//	testutil.Boundary[int8]()  // -128, -127, -1, 0, 1, 126, 127
package testutil

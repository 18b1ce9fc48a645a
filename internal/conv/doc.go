// Package conv describes fixed-width integer representations and classifies
// values against them.
//
// A Rep carries the signedness and width of a representation as data, so a
// single generic algorithm can reason about every source/target pairing.
// Classify decides whether a value of one representation fits another without
// ever comparing across mixed signedness directly:
//
//   - signed → signed: compare against [min, max] as int64
//   - unsigned → unsigned: only the upper bound matters
//   - signed → unsigned: reject negatives first, then compare as uint64
//   - unsigned → signed: compare as uint64 against max
//
// Use cases:
//   - Checked construction and assignment of bounded integers
//   - Validating decoded numbers before truncating them into a narrower type
package conv

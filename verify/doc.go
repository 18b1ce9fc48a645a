// Package verify checks checkedint against an exact oracle.
//
// Every operator is evaluated both through checkedint and over math/big, and
// the outcomes are compared: the exact result when it fits the
// representation, or the failure kind (overflow, underflow, divide by zero)
// when it does not. Eight-bit binary operators and sixteen-bit unary
// operators are swept exhaustively; wider representations are checked on all
// boundary combinations plus a seeded random sample.
//
//	v := verify.New(verify.WithSamples(1_000_000), verify.WithWorkers(8))
//	report, err := v.Run(ctx, "int32")
//	if err != nil { ... }
//	if !report.OK() { ... }
//
// Case indices are kept per outcome in roaring bitmaps so large sweeps can
// be inspected without storing every operand.
package verify

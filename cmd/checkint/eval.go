package main

import (
	"fmt"
	"io"

	"github.com/hupe1980/checkedint"
	"github.com/hupe1980/checkedint/codec"
	"github.com/hupe1980/checkedint/internal/conv"
	"github.com/hupe1980/checkedint/verify"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <type> <a> <op> [b]",
		Short: "Evaluate one checked operation.",
		Long: `Evaluate one checked operation and print the result.

Operands accept base prefixes (0x, 0o, 0b). Operators are add, sub, mul, quo,
rem, neg, inc and dec, or one of + - * / % ++. Place negative operands after
"--" so they are not read as flags:

  checkint eval int8 -- -128 / -1`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := outputCodec(cmd)
			if err != nil {
				return err
			}
			rep, err := conv.ParseRep(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch rep {
			case conv.Int8:
				return evalFor[int8](w, c, args[1:])
			case conv.Int16:
				return evalFor[int16](w, c, args[1:])
			case conv.Int32:
				return evalFor[int32](w, c, args[1:])
			case conv.Int64:
				return evalFor[int64](w, c, args[1:])
			case conv.Uint8:
				return evalFor[uint8](w, c, args[1:])
			case conv.Uint16:
				return evalFor[uint16](w, c, args[1:])
			case conv.Uint32:
				return evalFor[uint32](w, c, args[1:])
			case conv.Uint64:
				return evalFor[uint64](w, c, args[1:])
			}
			return fmt.Errorf("unsupported type %s", rep)
		},
	}
}

// evalFor evaluates "a op [b]" as Int[T]. Checked failures are returned
// unwrapped so callers can match them with errors.Is.
func evalFor[T constraints.Integer](w io.Writer, c codec.Codec, args []string) error {
	a, err := checkedint.Parse[T](args[0], 0)
	if err != nil {
		return err
	}
	op, err := verify.ParseOp(args[1])
	if err != nil {
		return err
	}

	var b checkedint.Int[T]
	switch {
	case op.Unary() && len(args) > 2:
		return fmt.Errorf("%s takes one operand", op)
	case !op.Unary() && len(args) < 3:
		return fmt.Errorf("%s takes two operands", op)
	case !op.Unary():
		if b, err = checkedint.Parse[T](args[2], 0); err != nil {
			return err
		}
	}

	var r checkedint.Int[T]
	switch op {
	case verify.OpAdd:
		r, err = a.Add(b)
	case verify.OpSub:
		r, err = a.Sub(b)
	case verify.OpMul:
		r, err = a.Mul(b)
	case verify.OpQuo:
		r, err = a.Quo(b)
	case verify.OpRem:
		r, err = a.Rem(b)
	case verify.OpNeg:
		r, err = a.Neg()
	case verify.OpInc:
		r, err = a.Inc()
	case verify.OpDec:
		r, err = a.Dec()
	default:
		return fmt.Errorf("unsupported operator %s", op)
	}
	if err != nil {
		return err
	}

	if c == nil {
		_, err = fmt.Fprintln(w, r)
		return err
	}
	return writeEncoded(w, c, r)
}

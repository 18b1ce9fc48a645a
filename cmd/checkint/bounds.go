package main

import (
	"fmt"
	"io"

	"github.com/hupe1980/checkedint"
	"github.com/hupe1980/checkedint/codec"
	"github.com/hupe1980/checkedint/internal/conv"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"
)

func newBoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds [type...]",
		Short: "Print the smallest and largest value of integer types.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := outputCodec(cmd)
			if err != nil {
				return err
			}
			reps := conv.Reps
			if len(args) > 0 {
				reps = make([]conv.Rep, 0, len(args))
				for _, arg := range args {
					rep, err := conv.ParseRep(arg)
					if err != nil {
						return err
					}
					reps = append(reps, rep)
				}
			}

			w := cmd.OutOrStdout()
			for _, rep := range reps {
				if err := writeBounds(w, c, rep); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func writeBounds(w io.Writer, c codec.Codec, rep conv.Rep) error {
	switch rep {
	case conv.Int8:
		return writeBoundsFor[int8](w, c)
	case conv.Int16:
		return writeBoundsFor[int16](w, c)
	case conv.Int32:
		return writeBoundsFor[int32](w, c)
	case conv.Int64:
		return writeBoundsFor[int64](w, c)
	case conv.Uint8:
		return writeBoundsFor[uint8](w, c)
	case conv.Uint16:
		return writeBoundsFor[uint16](w, c)
	case conv.Uint32:
		return writeBoundsFor[uint32](w, c)
	case conv.Uint64:
		return writeBoundsFor[uint64](w, c)
	}
	return fmt.Errorf("unsupported type %s", rep)
}

// bounds is the encoded form of a type's range.
type bounds[T constraints.Integer] struct {
	Type string `json:"type" cbor:"type" yaml:"type"`
	Min  T      `json:"min" cbor:"min" yaml:"min"`
	Max  T      `json:"max" cbor:"max" yaml:"max"`
}

func (b bounds[T]) FieldNames() []string { return []string{"type", "min", "max"} }

func (b bounds[T]) Field(name string) (any, error) {
	switch name {
	case "type":
		return b.Type, nil
	case "min":
		return b.Min, nil
	case "max":
		return b.Max, nil
	}
	return nil, fmt.Errorf("unknown field %q", name)
}

func writeBoundsFor[T constraints.Integer](w io.Writer, c codec.Codec) error {
	b := bounds[T]{
		Type: conv.RepOf[T]().String(),
		Min:  checkedint.Min[T]().Value(),
		Max:  checkedint.Max[T]().Value(),
	}
	if c == nil {
		_, err := fmt.Fprintf(w, "%s\t%v\t%v\n", b.Type, b.Min, b.Max)
		return err
	}
	return writeEncoded(w, c, b)
}

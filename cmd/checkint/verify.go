package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hupe1980/checkedint/codec"
	"github.com/hupe1980/checkedint/internal/conv"
	"github.com/hupe1980/checkedint/verify"
	"github.com/spf13/cobra"
)

var errMismatches = errors.New("verification found mismatches")

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify checked arithmetic against arbitrary precision results.",
		Long: `Verify checked arithmetic against arbitrary precision results.

8-bit types, and the unary operators of 16-bit types, are checked for every
operand. Wider types are checked at their boundaries plus --samples random
operand sets per operator. The command fails if any case disagrees.

The report is written to --output. A .zst, .gz or .lz4 extension compresses it.
Binary formats are written raw to files and as hex to standard output. The
msgpack format cannot encode reports.`,
		Args: cobra.NoArgs,
		RunE: runVerify,
	}

	names := make([]string, len(conv.Reps))
	for i, rep := range conv.Reps {
		names[i] = rep.String()
	}
	cmd.Flags().StringSlice("type", names, "integer types to verify")
	cmd.Flags().StringSlice("ops", nil, "operators to verify (default all)")
	cmd.Flags().Int("samples", 100_000, "random operand sets per operator for wide types")
	cmd.Flags().Int64("seed", 1, "seed for random operands")
	cmd.Flags().Int("workers", 0, "concurrent workers (default GOMAXPROCS)")
	cmd.Flags().Int("max-mismatches", 32, "mismatches recorded per operator")
	cmd.Flags().StringP("output", "o", stdio, "report file")
	return cmd
}

func runVerify(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	types, _ := flags.GetStringSlice("type")
	opNames, _ := flags.GetStringSlice("ops")
	samples, _ := flags.GetInt("samples")
	seed, _ := flags.GetInt64("seed")
	workers, _ := flags.GetInt("workers")
	maxMismatches, _ := flags.GetInt("max-mismatches")

	c, err := outputCodec(cmd)
	if err != nil {
		return err
	}
	if c != nil && !codec.Supports(c, []*verify.Report(nil)) {
		return fmt.Errorf("format %s cannot encode reports", c.Name())
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	opts := []verify.Option{
		verify.WithLogger(logger),
		verify.WithSamples(samples),
		verify.WithSeed(seed),
		verify.WithWorkers(workers),
		verify.WithMaxMismatches(maxMismatches),
	}
	if len(opNames) > 0 {
		ops := make([]verify.Op, 0, len(opNames))
		for _, name := range opNames {
			op, err := verify.ParseOp(name)
			if err != nil {
				return err
			}
			ops = append(ops, op)
		}
		opts = append(opts, verify.WithOps(ops...))
	}

	reports, err := verify.New(opts...).RunAll(cmd.Context(), types...)
	if err != nil {
		return err
	}

	path := getString(cmd, "output")
	out, err := createOutput(path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	switch {
	case c == nil:
		err = writeSummary(out, reports)
	case isStdio(path):
		err = writeEncoded(out, c, reports)
	default:
		err = writeRaw(out, c, reports)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	for _, r := range reports {
		if !r.OK() {
			return errMismatches
		}
	}
	return nil
}

// writeSummary prints one line per verified operator.
func writeSummary(w io.Writer, reports []*verify.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tOP\tMODE\tCASES\tOK\tOVERFLOW\tUNDERFLOW\tDIV0\tMISMATCHES")
	for _, r := range reports {
		for _, op := range r.Ops {
			mode := "sampled"
			if op.Exhaustive {
				mode = "exhaustive"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d", r.Type, op.Op, mode, op.Total)
			for o := verify.OK; o <= verify.DivideByZero; o++ {
				fmt.Fprintf(tw, "\t%d", op.Counts[o.String()])
			}
			fmt.Fprintf(tw, "\t%d\n", op.MismatchCount)
		}
	}
	for _, r := range reports {
		for _, op := range r.Ops {
			for _, m := range op.Mismatches {
				fmt.Fprintf(tw, "mismatch: %s %s(%s, %s): want %s, got %s\n", r.Type, m.Op, m.A, m.B, m.Want, m.Got)
			}
		}
	}
	return tw.Flush()
}

package main

import (
	"fmt"
	"io"

	"github.com/hupe1980/checkedint/codec"
	"github.com/hupe1980/checkedint/verify"
	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [report]",
		Short: "Summarize a report written by verify.",
		Long: `Summarize a report written by verify.

The report is decoded with --format, which defaults to json here, after
decompressing it according to its extension. Without an argument the report
is read from standard input, where binary formats are expected as hex.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := outputCodec(cmd)
			if err != nil {
				return err
			}
			if c == nil {
				c = codec.Default
			}
			path := stdio
			if len(args) == 1 {
				path = args[0]
			}

			in, err := openInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}
			if data, err = readEncoded(data, c, isStdio(path)); err != nil {
				return err
			}
			var reports []*verify.Report
			if err := c.Unmarshal(data, &reports); err != nil {
				return fmt.Errorf("decode %s report: %w", c.Name(), err)
			}
			return writeSummary(cmd.OutOrStdout(), reports)
		},
	}
}

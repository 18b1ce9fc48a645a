package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	"github.com/hupe1980/checkedint/codec"
	"github.com/hupe1980/checkedint/verify"
	"github.com/spf13/cobra"
)

// textFormat prints plain values instead of encoding them.
const textFormat = "text"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "checkint",
		Short:        "Checked fixed-width integer arithmetic.",
		Long:         "Evaluate checked integer arithmetic and verify it against arbitrary precision results.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("format", textFormat, fmt.Sprintf("output format (%s or one of %v)", textFormat, codec.Names))
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	cmd.AddCommand(
		newEvalCmd(),
		newBoundsCmd(),
		newVerifyCmd(),
		newSummaryCmd(),
	)
	return cmd
}

// getString returns a string flag. Flags are registered by the commands that
// read them, so a lookup failure is a programming error.
func getString(cmd *cobra.Command, flag string) string {
	s, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	return s
}

// outputCodec returns the codec selected by --format, or nil for text output.
func outputCodec(cmd *cobra.Command) (codec.Codec, error) {
	name := getString(cmd, "format")
	if name == textFormat {
		return nil, nil
	}
	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return c, nil
}

// writeEncoded encodes v with c for a terminal. Binary encodings are written
// as hex.
func writeEncoded(w io.Writer, c codec.Codec, v any) error {
	data, err := c.Marshal(v)
	if err != nil {
		return err
	}
	if codec.Binary(c) {
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", bytes.TrimRight(data, "\n"))
	return err
}

// writeRaw encodes v with c and writes the bytes unchanged.
func writeRaw(w io.Writer, c codec.Codec, v any) error {
	data, err := c.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// readEncoded reverses writeEncoded when the data came from a terminal and
// writeRaw otherwise.
func readEncoded(data []byte, c codec.Codec, fromStdio bool) ([]byte, error) {
	if !fromStdio || !codec.Binary(c) {
		return data, nil
	}
	raw, err := hex.DecodeString(string(bytes.TrimSpace(data)))
	if err != nil {
		return nil, fmt.Errorf("decode hex %s input: %w", c.Name(), err)
	}
	return raw, nil
}

// newLogger builds the logger selected by --log-level and --log-format. Logs
// go to the command's error stream.
func newLogger(cmd *cobra.Command) (*verify.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(getString(cmd, "log-level"))); err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch format := getString(cmd, "log-format"); format {
	case "text":
		return verify.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), opts)), nil
	case "json":
		return verify.NewLogger(slog.NewJSONHandler(cmd.ErrOrStderr(), opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

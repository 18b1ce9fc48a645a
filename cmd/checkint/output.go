package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// stdio is the path naming standard input or output.
const stdio = "-"

func isStdio(path string) bool { return path == "" || path == stdio }

// stacked closes its closers in order after use.
type stacked struct {
	closers []io.Closer
}

func (s stacked) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

type stackedWriter struct {
	io.Writer
	stacked
}

type stackedReader struct {
	io.Reader
	stacked
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// createOutput creates path for writing, compressed according to its
// extension: .zst, .gz or .lz4. Any other extension is written as is.
func createOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if isStdio(path) {
		return nopWriteCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	var w io.WriteCloser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case ".gz":
		w = gzip.NewWriter(f)
	case ".lz4":
		w = lz4.NewWriter(f)
	default:
		return f, nil
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return stackedWriter{Writer: w, stacked: stacked{closers: []io.Closer{w, f}}}, nil
}

// openInput opens a file written by createOutput.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if isStdio(path) {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var r io.ReadCloser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		var d *zstd.Decoder
		if d, err = zstd.NewReader(f); err == nil {
			r = d.IOReadCloser()
		}
	case ".gz":
		r, err = gzip.NewReader(f)
	case ".lz4":
		r = io.NopCloser(lz4.NewReader(f))
	default:
		return f, nil
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return stackedReader{Reader: r, stacked: stacked{closers: []io.Closer{r, f}}}, nil
}

package vecio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the compression algorithm of a vector file.
type Compression uint8

const (
	// CompressionNone indicates a plain CSV file.
	CompressionNone Compression = iota
	// CompressionLZ4 indicates an LZ4 frame (fast, larger files).
	CompressionLZ4
	// CompressionZSTD indicates a zstd stream (better ratio).
	CompressionZSTD
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// CompressionFromPath returns the compression implied by the file extension.
func CompressionFromPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZSTD
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// NewReader wraps r with the decompressor for c.
// Closing the returned reader does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("create zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %v", c)
	}
}

// NewWriter wraps w with the compressor for c.
// Close must be called to flush the compressor; it does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("create zstd writer: %w", err)
		}
		return enc, nil
	default:
		return nil, fmt.Errorf("unsupported compression: %v", c)
	}
}

// OpenReader opens the file at path and decompresses it according to its extension.
func OpenReader(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vector file: %w", err)
	}

	r, err := NewReader(f, CompressionFromPath(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &readCloser{Reader: r, closers: []io.Closer{r, f}}, nil
}

// CreateWriter creates the file at path and compresses it according to its extension.
func CreateWriter(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create vector file: %w", err)
	}

	w, err := NewWriter(f, CompressionFromPath(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &writeCloser{Writer: w, closers: []io.Closer{w, f}}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	return closeAll(r.closers)
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	return closeAll(w.closers)
}

// closeAll closes in order, so compressors flush before the file closes.
func closeAll(closers []io.Closer) error {
	var errs []error
	for _, c := range closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SPDX-License-Identifier: MIT
// Package: hopdist/loader

package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ErrEmptyPath is returned when no input path is configured.
var ErrEmptyPath = errors.New("loader: empty path")

// gzipFile closes both the decompressor and the underlying file.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	return errors.Join(g.Reader.Close(), g.f.Close())
}

// Open opens path for reading. A ".gz" suffix selects gzip decompression.
// The path "-" reads standard input.
func Open(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("loader: gzip %s: %w", path, err)
	}

	return &gzipFile{Reader: zr, f: f}, nil
}

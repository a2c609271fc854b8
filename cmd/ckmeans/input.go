package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// open returns a reader over the decompressed content of path.
// "-" reads stdin; the compression is chosen by file extension.
func open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := decompress(f, filepath.Ext(path))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &stack{ReadCloser: rc, file: f}, nil
}

func decompress(r io.Reader, ext string) (io.ReadCloser, error) {
	switch strings.ToLower(ext) {
	case ".gz", ".gzip":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case ".lz4":
		return io.NopCloser(lz4.NewReader(r)), nil
	}
	return io.NopCloser(r), nil
}

// stack closes the decompressor, then the file under it.
type stack struct {
	io.ReadCloser
	file *os.File
}

func (s *stack) Close() error {
	return errors.Join(s.ReadCloser.Close(), s.file.Close())
}

// readValues parses numbers separated by commas, semicolons or whitespace.
// Empty lines and anything after '#' are ignored.
func readValues(r io.Reader) ([]float64, error) {
	var (
		values []float64
		line   int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

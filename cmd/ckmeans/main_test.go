package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/ckmeans"
)

const sample = "1, 2, 3\n# comment line\n10 11\t12\n\n"

func TestReadValues(t *testing.T) {
	test := []struct {
		name   string
		input  string
		expect []float64
	}{
		{"lines", "1\n2\n3\n", []float64{1, 2, 3}},
		{"mixed_separators", sample, []float64{1, 2, 3, 10, 11, 12}},
		{"semicolons_crlf", "1.5;2.5\r\n-3e2\r\n", []float64{1.5, 2.5, -300}},
		{"trailing_comment", "4 # four\n5", []float64{4, 5}},
		{"empty", "", nil},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readValues(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}

	_, err := readValues(strings.NewReader("1\n2\nthree\n"))
	assert.ErrorContains(t, err, "line 3")
}

func writeCompressed(t *testing.T, dir, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	var w io.WriteCloser
	switch filepath.Ext(name) {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".zst":
		w, err = zstd.NewWriter(f)
		require.NoError(t, err)
	case ".lz4":
		w = lz4.NewWriter(f)
	default:
		_, err = f.WriteString(content)
		require.NoError(t, err)
		return path
	}
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return path
}

func TestOpenCompressed(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"plain.txt", "values.gz", "values.zst", "values.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := writeCompressed(t, dir, name, sample)
			rc, err := open(path, nil)
			require.NoError(t, err)
			got, err := readValues(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			assert.Equal(t, []float64{1, 2, 3, 10, 11, 12}, got)
		})
	}

	_, err := open(filepath.Join(dir, "missing.txt"), nil)
	assert.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-k", "3", "-mode", "analyze", "-format", "json", "-ladder", "nice", "-parallel", "2"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.k)
	assert.Equal(t, "-", cfg.in)
	assert.Equal(t, "analyze", cfg.mode)
	assert.Equal(t, "json", cfg.format)
	assert.Equal(t, ckmeans.LadderNice, cfg.ladder)
	assert.Equal(t, 2, cfg.parallel)

	for _, args := range [][]string{
		{"-format", "xml"},
		{"-mode", "plot"},
		{"-ladder", "golden"},
		{"-nope"},
	} {
		_, err := parseFlags(args, io.Discard)
		assert.Error(t, err, "%v", args)
	}
}

func runWith(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cfg, err := parseFlags(args, io.Discard)
	require.NoError(t, err)
	var out bytes.Buffer
	logger := slog.New(slog.DiscardHandler)
	err = run(cfg, strings.NewReader(input), &out, logger)
	return out.String(), err
}

func TestRunModes(t *testing.T) {
	test := []struct {
		name   string
		args   []string
		expect string
	}{
		{"cluster_text", []string{"-k", "2"}, "1 2 3\n10 11 12\n"},
		{"cluster_json", []string{"-k", "2", "-format", "json"}, "[[1,2,3],[10,11,12]]\n"},
		{"breaks_text", []string{"-k", "2", "-mode", "breaks"}, "7\n"},
		{"breaks_nice", []string{"-k", "2", "-mode", "breaks", "-ladder", "nice"}, "5\n"},
		{"breaks_json", []string{"-k", "2", "-mode", "breaks", "-format", "json"}, "[7]\n"},
		{"analyze_text", []string{"-k", "2", "-mode", "analyze"},
			"class 0: n=3 range=[1, 3] center=2 withinss=2\n" +
				"class 1: n=3 range=[10, 12] center=11 withinss=2\n" +
				"breaks: 7\n" +
				"raw breaks: 6.5\n" +
				"withinss=4 betweenss=121.5 totss=125.5\n"},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runWith(t, sample, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestRunAnalyzeJSON(t *testing.T) {
	got, err := runWith(t, "12 1 11 3 10 2", "-k", "2", "-mode", "analyze", "-format", "json")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(got), &r))
	assert.Equal(t, 2, r.K)
	assert.Equal(t, []int{3, 3}, r.Sizes)
	assert.Equal(t, []float64{7}, r.RoundBreaks)
	assert.Equal(t, []float64{6.5}, r.RawBreaks)
	assert.Equal(t, []int{1, 0, 1, 0, 1, 0}, r.Labels)
}

func TestRunErrors(t *testing.T) {
	_, err := runWith(t, "", "-k", "2")
	assert.ErrorIs(t, err, ckmeans.ErrInvalidData)

	_, err = runWith(t, "1 2 3", "-k", "4")
	assert.ErrorIs(t, err, ckmeans.ErrInvalidClusterCount)

	_, err = runWith(t, "1 2 NaN 4", "-k", "2")
	var de *ckmeans.DataError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Index)

	_, err = runWith(t, "1 2 x", "-k", "2")
	assert.ErrorContains(t, err, "line 1")
}

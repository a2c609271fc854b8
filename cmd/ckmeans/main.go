// Command ckmeans clusters a column of numbers read from a file or stdin
// and prints the groups, the round breaks, or a full summary.
//
//	ckmeans -k 5 -in incomes.csv.gz
//	seq 1 100 | ckmeans -k 3 -mode breaks -ladder nice
//	ckmeans -k 7 -in values.zst -mode analyze -format json
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/lmittmann/tint"
	"github.com/yyyoichi/ckmeans"
)

type config struct {
	k        int
	in       string
	format   string
	mode     string
	ladder   ckmeans.Ladder
	parallel int
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var (
		cfg    config
		ladder string
	)
	fs := flag.NewFlagSet("ckmeans", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.k, "k", 0, "number of groups (required)")
	fs.StringVar(&cfg.in, "in", "-", "input file, - for stdin; .gz, .zst and .lz4 are decompressed")
	fs.StringVar(&cfg.format, "format", "text", "output format: text or json")
	fs.StringVar(&cfg.mode, "mode", "cluster", "output: cluster, breaks or analyze")
	fs.StringVar(&ladder, "ladder", "decimal", "round break steps: decimal or nice")
	fs.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "goroutines per row of the solver")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug records")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	if cfg.ladder, err = ckmeans.ParseLadder(ladder); err != nil {
		return nil, err
	}
	switch cfg.format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.format)
	}
	switch cfg.mode {
	case "cluster", "breaks", "analyze":
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.mode)
	}
	return &cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := newLogger(os.Stderr, cfg.verbose)
	if err := run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("ckmeans failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	rc, err := open(cfg.in, stdin)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := readValues(rc)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.in, err)
	}
	logger.Debug("input read", "path", cfg.in, "values", len(data))

	c, err := ckmeans.New(
		ckmeans.WithParallelism(cfg.parallel),
		ckmeans.WithRoundLadder(cfg.ladder),
		ckmeans.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out := newWriter(stdout, cfg.format)
	switch cfg.mode {
	case "breaks":
		b, err := c.Breaks(data, cfg.k)
		if err != nil {
			return err
		}
		return out.breaks(b)
	case "analyze":
		r, err := c.Analyze(data, cfg.k)
		if err != nil {
			return err
		}
		return out.analyze(r)
	default:
		groups, err := c.Cluster(data, cfg.k)
		if err != nil {
			return err
		}
		return out.groups(groups)
	}
}

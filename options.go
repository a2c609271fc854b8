package ckmeans

import (
	"fmt"
	"log/slog"

	"github.com/yyyoichi/ckmeans/internal/breaks"
)

type Option func(*Ckmeans) error

// Ladder selects the candidate steps tried by the round break search.
type Ladder = breaks.Ladder

const (
	// LadderDecimal rounds to powers of ten only: the gap (3, 10) yields 7.
	LadderDecimal = breaks.LadderDecimal
	// LadderNice also tries 5 and 2 times a power of ten, coarsest first:
	// the gap (3, 10) yields 5.
	LadderNice = breaks.LadderNice
)

// ParseLadder parses "decimal" or "nice".
func ParseLadder(s string) (Ladder, error) { return breaks.ParseLadder(s) }

// WithParallelism lets up to n goroutines fill independent column ranges of
// one row of the cost matrix. Results do not depend on n.
// Values of 0 and 1 keep the computation on the calling goroutine.
func WithParallelism(n int) Option {
	return func(c *Ckmeans) error {
		if n < 0 {
			return fmt.Errorf("parallelism must not be negative: %d", n)
		}
		c.parallelism = n
		return nil
	}
}

// WithRoundLadder selects the steps used by Breaks. The default is LadderDecimal.
func WithRoundLadder(l Ladder) Option {
	return func(c *Ckmeans) error {
		if !l.Valid() {
			return fmt.Errorf("unknown round ladder: %s", l)
		}
		c.ladder = l
		return nil
	}
}

// WithLogger sets the logger receiving debug records about each solve.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Ckmeans) error {
		c.logger = l
		return nil
	}
}

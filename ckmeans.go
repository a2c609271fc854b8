// Package ckmeans clusters one-dimensional data into k ordered groups with
// the smallest possible total within-group sum of squares, and picks round
// values separating the groups for legends and class labels.
//
// The partition is computed by dynamic programming and is globally optimal,
// unlike Jenks natural breaks or iterative k-means.
package ckmeans

import (
	"log/slog"
	"time"

	"github.com/yyyoichi/ckmeans/internal/breaks"
	"github.com/yyyoichi/ckmeans/internal/dp"
	"github.com/yyyoichi/ckmeans/internal/prefix"
	"github.com/yyyoichi/ckmeans/internal/sortview"
)

// Cluster partitions data into k groups with a default engine.
// See (*Ckmeans).Cluster.
func Cluster(data []float64, k int, opts ...Option) ([][]float64, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Cluster(data, k)
}

// Breaks returns the k-1 round breaks of data with a default engine.
// See (*Ckmeans).Breaks.
func Breaks(data []float64, k int, opts ...Option) ([]float64, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Breaks(data, k)
}

// Analyze clusters data and summarises the result with a default engine.
// See (*Ckmeans).Analyze.
func Analyze(data []float64, k int, opts ...Option) (*Result, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Analyze(data, k)
}

// Ckmeans holds the settings of the clustering engine.
// It keeps no state between calls and is safe for concurrent use.
type Ckmeans struct {
	parallelism int
	ladder      Ladder
	logger      *slog.Logger
}

// New initializes an engine. Without options it solves on the calling
// goroutine, rounds breaks to powers of ten and does not log.
func New(opts ...Option) (*Ckmeans, error) {
	c := new(Ckmeans)
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Ckmeans) init(opts ...Option) error {
	c.ladder = LadderDecimal
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return nil
}

// Cluster partitions data into k groups.
//
// The groups are sorted ascending, every value of group i is <= every value
// of group i+1, together they hold every value of data, and no other split
// of the sorted data into k contiguous groups has a smaller total
// within-group sum of squares. data is not modified.
//
// When equal values could sit on either side of a boundary, the boundary is
// placed as far left as the optimum allows, so repeated calls return
// identical groups.
func (c *Ckmeans) Cluster(data []float64, k int) ([][]float64, error) {
	p, err := c.partition(data, k)
	if err != nil {
		return nil, err
	}
	return p.groups(), nil
}

// Breaks returns k-1 values separating adjacent groups of the optimal
// partition, each the roundest value strictly between the largest value of
// one group and the smallest value of the next. When those two values are
// equal, the break is that value. Breaks ascend strictly unless such ties occur.
func (c *Ckmeans) Breaks(data []float64, k int) ([]float64, error) {
	p, err := c.partition(data, k)
	if err != nil {
		return nil, err
	}
	return breaks.Rounds(p.groups(), c.ladder), nil
}

// Analyze clusters data and returns the groups together with their
// statistics, raw and round breaks, and the group of every observation.
func (c *Ckmeans) Analyze(data []float64, k int) (*Result, error) {
	p, err := c.partition(data, k)
	if err != nil {
		return nil, err
	}
	return newResult(p, c.ladder), nil
}

// partition is the optimal split of one input, in sorted order.
type partition struct {
	view  *sortview.View
	stats *prefix.Stats
	sol   *dp.Solution
}

func (p *partition) groups() [][]float64 {
	out := make([][]float64, len(p.sol.Bounds))
	for i, b := range p.sol.Bounds {
		out[i] = p.view.Range(b[0], b[1])
	}
	return out
}

func (c *Ckmeans) partition(data []float64, k int) (*partition, error) {
	if err := Validate(data, k); err != nil {
		return nil, err
	}
	view := sortview.New(data)
	stats := prefix.New(view.Values)
	sol, err := c.solve(stats, k)
	if err != nil {
		return nil, err
	}
	return &partition{view: view, stats: stats, sol: sol}, nil
}

func (c *Ckmeans) solve(costs dp.Costs, k int) (*dp.Solution, error) {
	start := time.Now()
	sol, err := dp.Solve(costs, k, c.parallelism)
	if err != nil {
		c.logger.Error("ckmeans solve failed", "n", costs.Len(), "k", k, "error", err)
		return nil, computationError(err)
	}
	c.logger.Debug("ckmeans solved",
		"n", costs.Len(),
		"k", k,
		"withinss", sol.Cost,
		"parallelism", c.parallelism,
		"elapsed", time.Since(start),
	)
	return sol, nil
}

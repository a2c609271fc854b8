package dp

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

var (
	ErrNegativeCost = errors.New("negative within-group cost")
	ErrBacktrack    = errors.New("inconsistent backtrack state")
)

// parallelThreshold is the smallest column range handed to another goroutine.
const parallelThreshold = 2048

// Costs gives the within-group sum of squares of any range of a sorted
// sequence. *prefix.Stats implements it.
type Costs interface {
	Len() int
	// Cost returns the sum of squares of [a, b); negative means broken.
	Cost(a, b int) float64
}

// Solution is an optimal partition of a sorted sequence.
type Solution struct {
	// Bounds holds the half-open [start, end) range of every group, in order.
	Bounds [][2]int
	// Withinss holds the sum of squares of every group.
	Withinss []float64
	// Cost is the total within-group sum of squares.
	Cost float64
}

// Solve partitions the sequence summarised by costs into k contiguous groups
// minimising the total within-group sum of squares.
//
// Row i of the table is filled with a divide and conquer over the columns:
// the optimal split of the middle column bounds the splits of both halves,
// since the leftmost optimal split never decreases as the prefix grows.
// When parallelism > 1, the halves of large ranges run concurrently.
//
// Among equal-cost splits the leftmost one is taken.
func Solve(costs Costs, k, parallelism int) (*Solution, error) {
	n := costs.Len()
	if k < 1 || k > n {
		return nil, fmt.Errorf("k=%d out of range for %d values", k, n)
	}
	t := newTable(costs, k, parallelism)
	if err := t.fill(); err != nil {
		return nil, err
	}
	return t.backtrack()
}

type table struct {
	costs       Costs
	n, k        int
	parallelism int

	// prev and cur are rows i-1 and i of the cost matrix.
	prev, cur []float64
	// back is the (k+1) x (n+1) backtrack matrix in row-major order.
	back []int32
}

func newTable(costs Costs, k, parallelism int) *table {
	n := costs.Len()
	return &table{
		costs:       costs,
		n:           n,
		k:           k,
		parallelism: parallelism,
		prev:        make([]float64, n+1),
		cur:         make([]float64, n+1),
		back:        make([]int32, (k+1)*(n+1)),
	}
}

func (t *table) row(i int) []int32 {
	w := t.n + 1
	return t.back[i*w : (i+1)*w : (i+1)*w]
}

func (t *table) fill() error {
	// S[1][j] = cost(0, j); J[1][j] = 0 already.
	t.cur[0] = math.Inf(1)
	for j := 1; j <= t.n; j++ {
		c := t.costs.Cost(0, j)
		if c < 0 {
			return fmt.Errorf("%w: cost(0,%d)=%g", ErrNegativeCost, j, c)
		}
		t.cur[j] = c
	}

	for i := 2; i <= t.k; i++ {
		t.prev, t.cur = t.cur, t.prev
		for j := range i {
			t.cur[j] = math.Inf(1)
		}
		r := &rowFill{
			table: t,
			i:     i,
			split: t.row(i),
		}
		if err := r.run(); err != nil {
			return err
		}
	}
	return nil
}

// rowFill computes one row of the cost and backtrack matrices.
type rowFill struct {
	*table
	i     int
	split []int32
	g     *errgroup.Group
}

func (r *rowFill) run() error {
	if r.parallelism <= 1 || r.n-r.i < parallelThreshold {
		return r.divide(r.i, r.n, r.i-1, r.n-1)
	}
	r.g = new(errgroup.Group)
	r.g.SetLimit(r.parallelism)
	r.g.Go(func() error {
		return r.divide(r.i, r.n, r.i-1, r.n-1)
	})
	return r.g.Wait()
}

// divide fills columns [jlo, jhi] knowing their splits lie in [optLo, optHi].
func (r *rowFill) divide(jlo, jhi, optLo, optHi int) error {
	for jlo <= jhi {
		j := (jlo + jhi) / 2
		best, err := r.column(j, optLo, optHi)
		if err != nil {
			return err
		}

		// The right half continues in this loop.
		if !r.spawn(jlo, j-1, optLo, best) {
			if err := r.divide(jlo, j-1, optLo, best); err != nil {
				return err
			}
		}
		jlo, optLo = j+1, best
	}
	return nil
}

// spawn hands a range to another goroutine when it is large enough and a
// slot is free. It reports whether the range was taken.
func (r *rowFill) spawn(jlo, jhi, optLo, optHi int) bool {
	if r.g == nil || jhi-jlo < parallelThreshold {
		return false
	}
	return r.g.TryGo(func() error {
		return r.divide(jlo, jhi, optLo, optHi)
	})
}

// column finds the leftmost split minimising S[i-1][m] + cost(m, j)
// for m in [max(optLo, i-1), min(optHi, j-1)] and stores it.
func (r *rowFill) column(j, optLo, optHi int) (int, error) {
	lo := max(optLo, r.i-1)
	hi := min(optHi, j-1)

	best, bestCost, bestSeg := -1, math.Inf(1), 0.0
	for m := lo; m <= hi; m++ {
		seg := r.costs.Cost(m, j)
		if c := r.prev[m] + seg; c < bestCost {
			best, bestCost, bestSeg = m, c, seg
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("%w: no split for S[%d][%d] in [%d,%d]", ErrBacktrack, r.i, j, lo, hi)
	}
	if bestSeg < 0 {
		return 0, fmt.Errorf("%w: cost(%d,%d)=%g", ErrNegativeCost, best, j, bestSeg)
	}
	r.cur[j] = bestCost
	r.split[j] = int32(best)
	return best, nil
}

func (t *table) backtrack() (*Solution, error) {
	sol := &Solution{
		Bounds:   make([][2]int, t.k),
		Withinss: make([]float64, t.k),
	}
	j := t.n
	for i := t.k; i >= 1; i-- {
		split := int(t.row(i)[j])
		if split < i-1 || split >= j {
			return nil, fmt.Errorf("%w: J[%d][%d]=%d", ErrBacktrack, i, j, split)
		}
		sol.Bounds[i-1] = [2]int{split, j}
		c := t.costs.Cost(split, j)
		if c < 0 {
			return nil, fmt.Errorf("%w: cost(%d,%d)=%g", ErrNegativeCost, split, j, c)
		}
		sol.Withinss[i-1] = c
		sol.Cost += c
		j = split
	}
	if j != 0 {
		return nil, fmt.Errorf("%w: first group starts at %d", ErrBacktrack, j)
	}
	return sol, nil
}

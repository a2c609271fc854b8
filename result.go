package ckmeans

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/yyyoichi/ckmeans/internal/breaks"
	"github.com/yyyoichi/ckmeans/labels"
)

// Result is an optimal partition together with its summary.
type Result struct {
	// Groups holds the values of every group, sorted ascending.
	Groups [][]float64
	// Sizes holds the number of values in every group.
	Sizes []int
	// Centers holds the mean of every group.
	Centers []float64
	// Withinss holds the sum of squared deviations from the group mean.
	Withinss []float64
	// TotWithinss is the sum of Withinss; the quantity minimised.
	TotWithinss float64
	// Totss is the sum of squared deviations of all data from its mean.
	Totss float64
	// Betweenss is Totss - TotWithinss.
	Betweenss float64

	// RawBreaks holds the midpoint between adjacent groups.
	RawBreaks []float64
	// RoundBreaks holds the roundest value separating adjacent groups.
	RoundBreaks []float64

	// Labels holds, for every position of the input, the index of the group
	// its value was assigned to.
	Labels []int

	members []*roaring.Bitmap
}

func newResult(p *partition, ladder Ladder) *Result {
	k := len(p.sol.Bounds)
	r := &Result{
		Groups:      p.groups(),
		Sizes:       make([]int, k),
		Centers:     make([]float64, k),
		Withinss:    append([]float64(nil), p.sol.Withinss...),
		TotWithinss: p.sol.Cost,
		Totss:       p.stats.Cost(0, p.stats.Len()),
		Labels:      make([]int, p.view.Len()),
		members:     make([]*roaring.Bitmap, k),
	}
	r.Betweenss = r.Totss - r.TotWithinss
	r.RawBreaks = breaks.Raw(r.Groups)
	r.RoundBreaks = breaks.Rounds(r.Groups, ladder)

	for g, b := range p.sol.Bounds {
		r.Sizes[g] = b[1] - b[0]
		r.Centers[g] = p.stats.Mean(b[0], b[1])
		bm := roaring.New()
		for _, orig := range p.view.Index[b[0]:b[1]] {
			r.Labels[orig] = g
			bm.Add(uint32(orig))
		}
		r.members[g] = bm
	}
	return r
}

// K returns the number of groups.
func (r *Result) K() int { return len(r.Groups) }

// Members returns the input positions assigned to group g.
// The bitmap is a copy and may be modified freely.
func (r *Result) Members(g int) *roaring.Bitmap {
	return r.members[g].Clone()
}

// Classify returns the group a value would fall in, using RoundBreaks as
// boundaries: a value below RoundBreaks[0] is in group 0, a value equal to a
// break belongs to the group above it.
func (r *Result) Classify(v float64) int {
	return sort.Search(len(r.RoundBreaks), func(i int) bool {
		return v < r.RoundBreaks[i]
	})
}

// PackLabels packs Labels into a bit stream of labels.Width(K()) bits per label.
func (r *Result) PackLabels() (*labels.Packed, error) {
	return labels.Encode(r.Labels, r.K())
}

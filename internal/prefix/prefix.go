package prefix

// NegativeTolerance is the amount, relative to the prefix sums of squares
// at both ends of a range, that a range cost may fall below zero through
// rounding before Cost stops clamping it. The sums carry about 106 bits,
// so anything beyond a few units of 2^-106 means the arithmetic broke.
const NegativeTolerance = 0x1p-96

// Stats holds prefix sums over a sorted sequence.
//
// Every value is shifted by the median of the sequence before it is
// accumulated, and the sums are kept in double-double precision. A range
// far from the median still pays for its distance in sumsq - sum²/n; the
// extra 53 bits absorb that cancellation for any spread float64 can hold
// between two values of the same input.
type Stats struct {
	shift float64
	sum   []dd
	sumsq []dd
}

// New builds prefix sums of length len(sorted)+1; index 0 is the empty prefix.
func New(sorted []float64) *Stats {
	n := len(sorted)
	s := &Stats{
		sum:   make([]dd, n+1),
		sumsq: make([]dd, n+1),
	}
	if n == 0 {
		return s
	}
	s.shift = sorted[n/2]
	for i, v := range sorted {
		// exact: v - shift as an unevaluated sum
		d := twoSum(v, -s.shift)
		s.sum[i+1] = s.sum[i].add(d)
		s.sumsq[i+1] = s.sumsq[i].add(d.mul(d))
	}
	return s
}

// Len returns the length of the underlying sequence.
func (s *Stats) Len() int { return len(s.sum) - 1 }

// Mean returns the mean of sorted[a:b] in the original scale.
// It returns 0 for an empty range.
func (s *Stats) Mean(a, b int) float64 {
	if b <= a {
		return 0
	}
	m := s.sum[b].sub(s.sum[a]).div(float64(b - a))
	return m.add(dd{hi: s.shift}).float()
}

// Cost returns the within-group sum of squares of sorted[a:b], 0 when b == a.
//
// Small negative results produced by rounding are clamped to 0.
// A result more negative than the tolerance is returned as is, so that
// callers can tell a broken computation apart from a perfect fit.
func (s *Stats) Cost(a, b int) float64 {
	if b <= a {
		return 0
	}
	sum := s.sum[b].sub(s.sum[a])
	sumsq := s.sumsq[b].sub(s.sumsq[a])
	c := sumsq.sub(sum.mul(sum).div(float64(b - a))).float()
	if c < 0 && -c <= s.tolerance(a, b) {
		return 0
	}
	return c
}

func (s *Stats) tolerance(a, b int) float64 {
	return NegativeTolerance * (s.sumsq[a].hi + s.sumsq[b].hi)
}

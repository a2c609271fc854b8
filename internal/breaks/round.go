package breaks

import (
	"fmt"
	"math"
)

// Ladder selects the step sizes tried within each decade, coarsest first.
type Ladder int

const (
	// LadderDecimal tries 10^e only.
	LadderDecimal Ladder = iota
	// LadderNice tries 5·10^e, 2·10^e and 10^e.
	LadderNice
)

// decades is how far below the gap's own magnitude the search goes
// before giving up; float64 carries about 17 significant digits.
const decades = 17

var multipliers = map[Ladder][]float64{
	LadderDecimal: {1},
	LadderNice:    {5, 2, 1},
}

func (l Ladder) String() string {
	switch l {
	case LadderDecimal:
		return "decimal"
	case LadderNice:
		return "nice"
	}
	return fmt.Sprintf("Ladder(%d)", int(l))
}

// Valid reports whether l is a known ladder.
func (l Ladder) Valid() bool {
	_, ok := multipliers[l]
	return ok
}

// ParseLadder parses the String form of a ladder.
func ParseLadder(s string) (Ladder, error) {
	switch s {
	case "decimal":
		return LadderDecimal, nil
	case "nice":
		return LadderNice, nil
	}
	return 0, fmt.Errorf("unknown ladder %q", s)
}

// Round returns the roundest value strictly inside (lo, hi).
//
// The midpoint of the gap is rounded to successively finer steps, starting
// one decade above the width of the gap; the first rounded value that lies
// strictly inside the gap is returned. Rounding is half away from zero.
// If lo == hi the gap is degenerate and lo is returned. If no step works,
// the midpoint itself is returned.
//
// For the gap (3, 10) LadderDecimal yields 7 and LadderNice yields 5.
func Round(lo, hi float64, ladder Ladder) float64 {
	if lo >= hi {
		return lo
	}
	mid := midpoint(lo, hi)
	span := hi - lo
	if math.IsInf(span, 0) {
		span = math.MaxFloat64
	}
	steps, ok := multipliers[ladder]
	if !ok {
		steps = multipliers[LadderDecimal]
	}

	e0 := int(math.Floor(math.Log10(span))) + 1
	for e := e0; e >= e0-decades; e-- {
		for _, m := range steps {
			if c := nearest(mid, m, e); lo < c && c < hi {
				return c
			}
		}
	}
	return mid
}

// nearest returns the multiple of m·10^e closest to v, halves away from zero.
//
// The count of steps is an integer, and for e < 0 it is divided by the exact
// power of ten, so the result is the double nearest to the decimal value.
// It returns NaN when 10^|e| is out of range.
func nearest(v, m float64, e int) float64 {
	if e >= 0 {
		p := math.Pow10(e)
		return math.Round(v/(m*p)) * m * p
	}
	p := math.Pow10(-e)
	return math.Round(v*p/m) * m / p
}

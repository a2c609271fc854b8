package sortview

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// View is a non-decreasing copy of an observation sequence.
// Index[i] is the position in the original sequence of Values[i];
// equal values keep their original relative order.
type View struct {
	Values []float64
	Index  []int
}

// New sorts a copy of data. data itself is left untouched.
func New(data []float64) *View {
	v := &View{
		Values: slices.Clone(data),
		Index:  make([]int, len(data)),
	}
	floats.ArgsortStable(v.Values, v.Index)
	return v
}

// Len returns the number of observations.
func (v *View) Len() int { return len(v.Values) }

// Range returns the sorted values in [a, b).
// The returned slice is capped so appending to it never overwrites a neighbour.
func (v *View) Range(a, b int) []float64 {
	return v.Values[a:b:b]
}

package breaks

// Raw returns the midpoint between every pair of adjacent groups:
// (max(groups[i]) + min(groups[i+1])) / 2.
// Groups must be non-empty and sorted ascending.
//
// The result separates the groups but carries whatever precision the
// data happens to have, so it is rarely fit for a legend. See Round.
func Raw(groups [][]float64) []float64 {
	if len(groups) < 2 {
		return []float64{}
	}
	out := make([]float64, len(groups)-1)
	for i := range out {
		lo, hi := gap(groups[i], groups[i+1])
		out[i] = midpoint(lo, hi)
	}
	return out
}

// Rounds returns the roundest value separating every pair of adjacent groups.
func Rounds(groups [][]float64, ladder Ladder) []float64 {
	if len(groups) < 2 {
		return []float64{}
	}
	out := make([]float64, len(groups)-1)
	for i := range out {
		lo, hi := gap(groups[i], groups[i+1])
		out[i] = Round(lo, hi, ladder)
	}
	return out
}

func gap(left, right []float64) (lo, hi float64) {
	return left[len(left)-1], right[0]
}

// midpoint avoids the overflow of (lo+hi)/2 near ±MaxFloat64.
func midpoint(lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	return lo/2 + hi/2
}

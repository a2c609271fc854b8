package prefix

import "math"

// dd is an unevaluated sum hi + lo with |lo| <= ulp(hi)/2, carrying about
// 106 bits of significand.
type dd struct {
	hi, lo float64
}

// twoSum returns a+b and its rounding error.
func twoSum(a, b float64) dd {
	s := a + b
	bb := s - a
	return dd{s, (a - (s - bb)) + (b - bb)}
}

// fastTwoSum requires |a| >= |b|.
func fastTwoSum(a, b float64) dd {
	s := a + b
	return dd{s, b - (s - a)}
}

// twoProd returns a*b and its rounding error.
func twoProd(a, b float64) dd {
	p := a * b
	return dd{p, math.FMA(a, b, -p)}
}

func (x dd) add(y dd) dd {
	s := twoSum(x.hi, y.hi)
	t := twoSum(x.lo, y.lo)
	s.lo += t.hi
	s = fastTwoSum(s.hi, s.lo)
	s.lo += t.lo
	return fastTwoSum(s.hi, s.lo)
}

func (x dd) neg() dd { return dd{-x.hi, -x.lo} }

func (x dd) sub(y dd) dd { return x.add(y.neg()) }

func (x dd) mul(y dd) dd {
	p := twoProd(x.hi, y.hi)
	p.lo += x.hi*y.lo + x.lo*y.hi
	return fastTwoSum(p.hi, p.lo)
}

// div divides by a float64.
func (x dd) div(b float64) dd {
	q1 := x.hi / b
	p := twoProd(q1, b)
	s := twoSum(x.hi, -p.hi)
	s.lo -= p.lo
	s.lo += x.lo
	q2 := (s.hi + s.lo) / b
	return fastTwoSum(q1, q2)
}

func (x dd) float() float64 { return x.hi + x.lo }

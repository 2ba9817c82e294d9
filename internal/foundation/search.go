package foundation

import (
	"math"
	"sort"
)

// Candidate is one plan size on the search grid
type Candidate struct {
	Length float64 // m
	Width  float64 // m
}

// Area returns the plan area
func (c Candidate) Area() float64 {
	return c.Length * c.Width
}

// Grid enumerates footing sizes around a base plan. Every dimension starts at
// base + 2·Margin and grows by 2·Step (Step on each side) until each side has
// been extended by MaxExtension.
type Grid struct {
	BaseLength   float64
	BaseWidth    float64
	Margin       float64
	MaxExtension float64
	Step         float64
}

// Extensions returns the per-side extensions 0, Step, 2·Step ... MaxExtension.
// Values come from an integer index so the upper bound is reached exactly.
func (g Grid) Extensions() []float64 {
	n := int(math.Floor(g.MaxExtension/g.Step + 1e-9))
	ext := make([]float64, n+1)
	for i := range ext {
		ext[i] = float64(i) * g.Step
	}
	return ext
}

// Candidates returns every length/width pair ordered by plan area, with ties
// going to the shorter length and then the narrower width
func (g Grid) Candidates() []Candidate {
	ext := g.Extensions()
	cands := make([]Candidate, 0, len(ext)*len(ext))
	for _, el := range ext {
		for _, eb := range ext {
			cands = append(cands, Candidate{
				Length: g.BaseLength + 2*(g.Margin+el),
				Width:  g.BaseWidth + 2*(g.Margin+eb),
			})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		ai, aj := cands[i].areaKey(), cands[j].areaKey()
		if ai != aj {
			return ai < aj
		}
		if cands[i].Length != cands[j].Length {
			return cands[i].Length < cands[j].Length
		}
		return cands[i].Width < cands[j].Width
	})
	return cands
}

// areaKey is the plan area in whole mm², so sizes that differ only by
// float rounding share a key
func (c Candidate) areaKey() int64 {
	return int64(math.Round(c.Area() * 1e6))
}

// Search evaluates candidates in order and stops at the first one the accept
// predicate takes. It also tracks the best evaluated trial by the better
// ordering so a caller can report something when nothing is accepted.
func Search[T any](cands []Candidate, eval func(Candidate) T, accept func(T) bool, better func(a, b T) bool) (found T, best T, tried int, ok bool) {
	for i, c := range cands {
		t := eval(c)
		tried++
		if i == 0 || better(t, best) {
			best = t
		}
		if accept(t) {
			return t, best, tried, true
		}
	}
	return found, best, tried, false
}

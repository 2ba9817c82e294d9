package irc

import "math"

// Factors of safety (IRC:78)
const (
	OverturningFoSMin = 2.0
	SlidingFoSMin     = 1.5

	// FoSNotGoverning is reported when nothing drives the check
	FoSNotGoverning = 999.0
)

// Verdict is the outcome of a single engineering check
type Verdict string

const (
	Unevaluated Verdict = "UNEVALUATED"
	Pass        Verdict = "PASS"
	Fail        Verdict = "FAIL"
)

// Check is a factor-of-safety check. It starts UNEVALUATED and becomes
// PASS or FAIL exactly once.
type Check struct {
	Name     string  `json:"name"`
	Factor   float64 `json:"factor"`
	Required float64 `json:"required"`
	Verdict  Verdict `json:"verdict"`
}

// NewCheck returns an unevaluated check against a required factor
func NewCheck(name string, required float64) Check {
	return Check{Name: name, Required: required, Verdict: Unevaluated}
}

// Evaluate returns the check evaluated for resisting/driving.
// The boundary is inclusive: a factor equal to the requirement passes.
func (c Check) Evaluate(resisting, driving float64) Check {
	if c.Verdict != Unevaluated {
		return c
	}
	c.Factor = FactorOfSafety(resisting, driving)
	c.Verdict = Fail
	if c.Factor >= c.Required {
		c.Verdict = Pass
	}
	return c
}

// Passed reports whether the check was evaluated and passed
func (c Check) Passed() bool { return c.Verdict == Pass }

// FactorOfSafety returns resisting/driving, or FoSNotGoverning when driving is zero
func FactorOfSafety(resisting, driving float64) float64 {
	driving = math.Abs(driving)
	if driving < 1e-9 {
		return FoSNotGoverning
	}
	return math.Min(resisting/driving, FoSNotGoverning)
}

// AllPassed reports whether every check passed
func AllPassed(checks ...Check) bool {
	for _, c := range checks {
		if !c.Passed() {
			return false
		}
	}
	return true
}

// Package foundation sizes an isolated footing under a vertical load with
// biaxial moments by searching a bounded grid of plan sizes for the smallest
// footing with no tension under the base and a peak pressure within the safe
// bearing capacity.
package foundation

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
)

// Search bounds
const (
	DefaultMargin       = 0.5  // m beyond the base on each side
	DefaultMaxExtension = 5.0  // m further on each side
	DefaultStep         = 0.25 // m per side

	MinStep = 0.05
	MaxStep = 0.5
)

// Load is the resultant at the footing centroid
type Load struct {
	P      float64 `json:"p_kn"`        // vertical (kN)
	MLong  float64 `json:"m_long_knm"`  // moment giving eccentricity along the length (kN-m)
	MTrans float64 `json:"m_trans_knm"` // moment giving eccentricity across the width (kN-m)
}

// Options controls the search grid
type Options struct {
	Margin       float64 `json:"margin_m"`
	MaxExtension float64 `json:"max_extension_m"`
	Step         float64 `json:"step_m"`

	// Footing and fill weight per unit plan area added to P (kN/m²)
	Overburden float64 `json:"overburden_kn_m2,omitempty"`
}

// DefaultOptions returns the standard search bounds
func DefaultOptions() Options {
	return Options{
		Margin:       DefaultMargin,
		MaxExtension: DefaultMaxExtension,
		Step:         DefaultStep,
	}
}

// Validate checks the search bounds
func (o Options) Validate() error {
	if err := calcerr.First(
		calcerr.NonNegative("margin_m", o.Margin),
		calcerr.NonNegative("max_extension_m", o.MaxExtension),
		calcerr.NonNegative("overburden_kn_m2", o.Overburden),
	); err != nil {
		return err
	}
	if o.Step < MinStep || o.Step > MaxStep {
		return &calcerr.InputValidationError{
			Field:  "step_m",
			Value:  o.Step,
			Reason: fmt.Sprintf("must lie in [%.2f, %.2f] m", MinStep, MaxStep),
		}
	}
	return nil
}

// Request is one footing to size
type Request struct {
	Load       Load    `json:"load"`
	BaseLength float64 `json:"base_length_m"` // plan of the pier or wall base along L
	BaseWidth  float64 `json:"base_width_m"`
	SBC        float64 `json:"sbc_kn_m2"`
}

// Validate checks the request
func (r Request) Validate() error {
	return calcerr.First(
		calcerr.Positive("p_kn", r.Load.P),
		calcerr.Positive("base_length_m", r.BaseLength),
		calcerr.Positive("base_width_m", r.BaseWidth),
		calcerr.Positive("sbc_kn_m2", r.SBC),
	)
}

// Trial is one evaluated footing size
type Trial struct {
	Length      float64 `json:"length_m"`
	Width       float64 `json:"width_m"`
	Area        float64 `json:"area_m2"`
	P           float64 `json:"p_kn"` // including overburden
	ELong       float64 `json:"e_long_m"`
	ETrans      float64 `json:"e_trans_m"`
	SigmaMax    float64 `json:"sigma_max_kn_m2"`
	SigmaMin    float64 `json:"sigma_min_kn_m2"`
	TensionArea float64 `json:"tension_area_m2"`
	Utilization float64 `json:"utilization"` // σmax / SBC
	Accepted    bool    `json:"accepted"`
}

// NoTension reports whether both eccentricities lie within the kern
func (t Trial) NoTension() bool {
	return t.TensionArea == 0
}

// Evaluate computes the base pressures for a footing of plan L × B.
// σ = P/(LB) ± 6·M_long/(B·L²) ± 6·M_trans/(L·B²).
func Evaluate(load Load, length, width, sbc, overburden float64) Trial {
	t := Trial{Length: length, Width: width, Area: length * width}
	t.P = load.P + overburden*t.Area

	mLong := math.Abs(load.MLong)
	mTrans := math.Abs(load.MTrans)
	t.ELong = mLong / t.P
	t.ETrans = mTrans / t.P

	direct := t.P / t.Area
	bendLong := 6 * mLong / (width * length * length)
	bendTrans := 6 * mTrans / (length * width * width)
	t.SigmaMax = direct + bendLong + bendTrans
	t.SigmaMin = direct - bendLong - bendTrans

	const eps = 1e-12
	if t.ELong > length/6+eps || t.ETrans > width/6+eps {
		t.TensionArea = t.Area * (1 - contactFraction(t.ELong, length)*contactFraction(t.ETrans, width))
	}

	t.Utilization = t.SigmaMax / sbc
	t.Accepted = t.NoTension() && t.SigmaMax <= sbc
	return t
}

// contactFraction approximates the share of a dimension left in contact
// once the eccentricity passes the kern: 3(½ − e/dim), clamped to [0, 1]
func contactFraction(e, dim float64) float64 {
	c := 3 * (0.5 - e/dim)
	return math.Max(0, math.Min(1, c))
}

// Result is an accepted footing
type Result struct {
	Trial   Trial   `json:"trial"`
	Tried   int     `json:"tried"`
	Options Options `json:"options"`
}

// ConvergenceFailure is returned when no footing on the grid is accepted.
// Best is the evaluated trial with the lowest peak pressure.
type ConvergenceFailure struct {
	Best  Trial
	Tried int
	SBC   float64
}

func (e *ConvergenceFailure) Error() string {
	reason := fmt.Sprintf("σmax %.1f kN/m² exceeds SBC %.1f kN/m²", e.Best.SigmaMax, e.SBC)
	if !e.Best.NoTension() {
		reason = fmt.Sprintf("tension area %.2f m² remains", e.Best.TensionArea)
	}
	return fmt.Sprintf("no footing accepted after %d trials; best %.2f × %.2f m: %s",
		e.Tried, e.Best.Length, e.Best.Width, reason)
}

// Size searches the grid for the smallest accepted footing
func Size(req Request, opt Options) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	if err := opt.Validate(); err != nil {
		return Result{}, err
	}

	grid := Grid{
		BaseLength:   req.BaseLength,
		BaseWidth:    req.BaseWidth,
		Margin:       opt.Margin,
		MaxExtension: opt.MaxExtension,
		Step:         opt.Step,
	}

	eval := func(c Candidate) Trial {
		return Evaluate(req.Load, c.Length, c.Width, req.SBC, opt.Overburden)
	}
	accept := func(t Trial) bool { return t.Accepted }
	lowerPressure := func(a, b Trial) bool { return a.SigmaMax < b.SigmaMax }

	found, best, tried, ok := Search(grid.Candidates(), eval, accept, lowerPressure)
	if !ok {
		return Result{}, &ConvergenceFailure{Best: best, Tried: tried, SBC: req.SBC}
	}
	return Result{Trial: found, Tried: tried, Options: opt}, nil
}

// Package hydraulics checks the discharge, velocity and waterway adequacy of a
// bridge opening using Manning's equation and Lacey's regime width.
package hydraulics

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/irc"
	"github.com/alexiusacademia/gobridge/internal/survey"
)

// Lacey regime width coefficient, L = 4.8·√Q
const RegimeCoefficient = 4.8

// Waterway ratio thresholds
const (
	AdequateRatio = 1.0
	MarginalRatio = 0.9
)

// Parameters holds the design flood inputs
type Parameters struct {
	Discharge       float64 `json:"discharge_m3s"`      // Q (m³/s)
	Area            float64 `json:"area_m2"`            // A (m²)
	WettedPerimeter float64 `json:"wetted_perimeter_m"` // P (m)
	ManningN        float64 `json:"manning_n"`          // roughness
	BedSlope        float64 `json:"bed_slope"`          // S (m/m)
	HFL             float64 `json:"hfl_m"`              // high flood level (m)

	// Adopted design velocity (m/s); zero uses the Manning velocity
	DesignVelocity float64 `json:"design_velocity_ms,omitempty"`
}

// Validate checks the flood parameters
func (p Parameters) Validate() error {
	return calcerr.First(
		calcerr.Positive("discharge_m3s", p.Discharge),
		calcerr.Positive("area_m2", p.Area),
		calcerr.Positive("wetted_perimeter_m", p.WettedPerimeter),
		calcerr.Positive("manning_n", p.ManningN),
		calcerr.Positive("bed_slope", p.BedSlope),
		calcerr.NonNegative("design_velocity_ms", p.DesignVelocity),
	)
}

// Waterway describes the bridge opening
type Waterway struct {
	Spans     int     `json:"spans"`
	SpanWidth float64 `json:"span_width_m"`      // clear span (m)
	PierWidth float64 `json:"pier_width_m"`      // obstruction per pier (m)
	Skew      float64 `json:"skew_deg,omitempty"` // angle between flow and the bridge normal (deg)
}

// Provided returns the gross waterway spans × span width
func (w Waterway) Provided() float64 {
	return float64(w.Spans) * w.SpanWidth
}

// Piers returns the number of intermediate piers
func (w Waterway) Piers() int {
	if w.Spans < 1 {
		return 0
	}
	return w.Spans - 1
}

// Effective returns the waterway net of pier obstruction
func (w Waterway) Effective() float64 {
	return w.Provided() - float64(w.Piers())*w.PierWidth
}

// Validate checks the opening
func (w Waterway) Validate() error {
	if w.Spans < 1 {
		return &calcerr.InputValidationError{Field: "spans", Value: float64(w.Spans), Reason: "at least one span is required"}
	}
	if err := calcerr.First(
		calcerr.Positive("span_width_m", w.SpanWidth),
		calcerr.NonNegative("pier_width_m", w.PierWidth),
		calcerr.Angle("skew_deg", w.Skew),
	); err != nil {
		return err
	}
	if w.Effective() <= 0 {
		return &calcerr.InputValidationError{Field: "pier_width_m", Value: w.PierWidth, Reason: "piers block the whole waterway"}
	}
	return nil
}

// Adequacy classifies the effective waterway against the regime width
type Adequacy string

const (
	Adequate   Adequacy = "ADEQUATE"
	Marginal   Adequacy = "MARGINAL"
	Inadequate Adequacy = "INADEQUATE"
)

// Result holds the hydraulic analysis trace
type Result struct {
	HydraulicRadius    float64 `json:"hydraulic_radius_m"`
	ManningVelocity    float64 `json:"manning_velocity_ms"`
	ContinuityVelocity float64 `json:"continuity_velocity_ms"` // Q/A
	DesignVelocity     float64 `json:"design_velocity_ms"`     // velocity carried into scour and current forces
	ObstructedVelocity float64 `json:"obstructed_velocity_ms"` // design velocity normal to a skewed opening

	RegimeWidth       float64  `json:"regime_width_m"`
	ProvidedWaterway  float64  `json:"provided_waterway_m"`
	Piers             int      `json:"piers"`
	EffectiveWaterway float64  `json:"effective_waterway_m"`
	WaterwayRatio     float64  `json:"waterway_ratio"`
	Adequacy          Adequacy `json:"adequacy"`

	Afflux float64 `json:"afflux_m"`

	IsAdequate bool   `json:"is_adequate"`
	Message    string `json:"message"`
}

// ManningVelocity calculates V = (1/n)·R^(2/3)·S^(1/2)
func ManningVelocity(n, r, s float64) float64 {
	return (1 / n) * math.Pow(r, 2.0/3.0) * math.Sqrt(s)
}

// RegimeWidth calculates Lacey's regime width 4.8·√Q
func RegimeWidth(q float64) float64 {
	return RegimeCoefficient * math.Sqrt(q)
}

// Afflux calculates the rise in water level from contracting the natural
// width to the effective waterway: V²/2g·((Lnat/Weff)² − 1), never negative
func Afflux(v, natural, effective float64) float64 {
	if effective <= 0 || effective >= natural {
		return 0
	}
	ratio := natural / effective
	return v * v / (2 * irc.Gravity) * (ratio*ratio - 1)
}

func classify(ratio float64) Adequacy {
	switch {
	case ratio >= AdequateRatio:
		return Adequate
	case ratio >= MarginalRatio:
		return Marginal
	default:
		return Inadequate
	}
}

// Analyze runs the hydraulic analysis for a flood and an opening
func Analyze(p Parameters, w Waterway) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if err := w.Validate(); err != nil {
		return Result{}, err
	}

	var r Result
	r.HydraulicRadius = p.Area / p.WettedPerimeter
	r.ManningVelocity = ManningVelocity(p.ManningN, r.HydraulicRadius, p.BedSlope)
	r.ContinuityVelocity = p.Discharge / p.Area

	r.DesignVelocity = r.ManningVelocity
	if p.DesignVelocity > 0 {
		r.DesignVelocity = p.DesignVelocity
	}
	r.ObstructedVelocity = r.DesignVelocity / math.Cos(w.Skew*math.Pi/180)

	r.RegimeWidth = RegimeWidth(p.Discharge)
	r.ProvidedWaterway = w.Provided()
	r.Piers = w.Piers()
	r.EffectiveWaterway = w.Effective()
	r.WaterwayRatio = r.EffectiveWaterway / r.RegimeWidth
	r.Adequacy = classify(r.WaterwayRatio)
	r.Afflux = Afflux(r.DesignVelocity, r.RegimeWidth, r.EffectiveWaterway)

	switch r.Adequacy {
	case Adequate:
		r.IsAdequate = true
		r.Message = fmt.Sprintf("Effective waterway %.2f m meets the regime width %.2f m", r.EffectiveWaterway, r.RegimeWidth)
	case Marginal:
		r.IsAdequate = true
		r.Message = fmt.Sprintf("Effective waterway %.2f m is within 10%% of the regime width %.2f m; afflux %.3f m",
			r.EffectiveWaterway, r.RegimeWidth, r.Afflux)
	default:
		r.Message = fmt.Sprintf("Effective waterway %.2f m is short of the regime width %.2f m (ratio %.3f); increase spans",
			r.EffectiveWaterway, r.RegimeWidth, r.WaterwayRatio)
	}

	return r, nil
}

// FromSurvey replaces the area and wetted perimeter with the cross-section
// below HFL
func FromSurvey(p Parameters, s survey.SiteSurvey) (Parameters, error) {
	if s.Empty() {
		return p, &calcerr.InputValidationError{Field: "cross_section", Value: 0, Reason: "survey has no cross-section"}
	}
	ws := s.Wetted(p.HFL)
	if ws.Area <= 0 {
		return p, &calcerr.InputValidationError{Field: "hfl_m", Value: p.HFL, Reason: "HFL is below the surveyed bed"}
	}
	p.Area = ws.Area
	p.WettedPerimeter = ws.WettedPerimeter
	return p, nil
}

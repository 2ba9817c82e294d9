// Package scour estimates scour depths at a bridge crossing: Lacey normal
// scour over the effective waterway, local scour at the piers, and the
// foundation level needed to clear the combined scour line.
package scour

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/irc"
)

const (
	// LaceyCoefficient in ds = 1.34·(q²/f)^(1/3)
	LaceyCoefficient = 1.34

	DefaultMultiplier = 1.5
	DefaultEmbedment  = 1.5 // m below the scour line

	// Neill's stone-size coefficient in d50 = V²/(5.75·g)
	neillCoefficient = 5.75
)

// Parameters holds the scour inputs
type Parameters struct {
	Discharge      float64 `json:"discharge_m3s"`        // Q (m³/s)
	EffectiveWidth float64 `json:"effective_waterway_m"` // W_eff (m)
	SiltFactor     float64 `json:"silt_factor"`          // Lacey f
	Velocity       float64 `json:"velocity_ms"`          // design velocity (m/s)
	PierWidth      float64 `json:"pier_width_m"`         // b (m); zero skips local scour
	BedLevel       float64 `json:"bed_level_m"`

	// Zero means DefaultMultiplier; a multiplier of zero would remove the
	// design scour altogether
	Multiplier float64 `json:"multiplier,omitempty"`

	// Nil means DefaultEmbedment; zero founds at the scour line
	Embedment *float64 `json:"embedment_m,omitempty"`
}

// Result holds the scour trace
type Result struct {
	UnitDischarge   float64 `json:"unit_discharge_m2s"` // q = Q/W_eff
	NormalScour     float64 `json:"normal_scour_m"`     // ds
	Multiplier      float64 `json:"multiplier"`
	DesignScour     float64 `json:"design_scour_m"`
	FroudeNumber    float64 `json:"froude_number"`
	LocalScour      float64 `json:"local_scour_m"`
	TotalScour      float64 `json:"total_scour_m"`
	ScourLevel      float64 `json:"scour_level_m"`
	Embedment       float64 `json:"embedment_m"`
	FoundationLevel float64 `json:"foundation_level_m"` // required founding level
	StoneSize       float64 `json:"stone_d50_m"`        // protection stone
}

// NormalScour calculates Lacey's normal scour depth 1.34·(q²/f)^(1/3)
func NormalScour(q, f float64) (float64, error) {
	if f <= 0 {
		return 0, &calcerr.ArithmeticDomainError{
			Formula: "ds = 1.34(q²/f)^(1/3)",
			Reason:  fmt.Sprintf("silt factor f = %g must be positive", f),
		}
	}
	return LaceyCoefficient * math.Cbrt(q*q/f), nil
}

// LocalScour calculates pier scour 2.0·b^0.65·y^0.35·Fr^0.43 for a pier of
// width b in flow depth y at velocity v. It grows with both b and v.
func LocalScour(b, y, v float64) float64 {
	if b <= 0 || y <= 0 || v <= 0 {
		return 0
	}
	fr := v / math.Sqrt(irc.Gravity*y)
	return 2.0 * math.Pow(b, 0.65) * math.Pow(y, 0.35) * math.Pow(fr, 0.43)
}

// StoneSize calculates the median protection stone size V²/(5.75·g)
func StoneSize(v float64) float64 {
	return v * v / (neillCoefficient * irc.Gravity)
}

// Analyze runs the scour analysis
func Analyze(p Parameters) (Result, error) {
	if err := calcerr.First(
		calcerr.Positive("discharge_m3s", p.Discharge),
		calcerr.Positive("effective_waterway_m", p.EffectiveWidth),
		calcerr.NonNegative("velocity_ms", p.Velocity),
		calcerr.NonNegative("pier_width_m", p.PierWidth),
		calcerr.NonNegative("multiplier", p.Multiplier),
	); err != nil {
		return Result{}, err
	}

	r := Result{Multiplier: p.Multiplier, Embedment: DefaultEmbedment}
	if r.Multiplier == 0 {
		r.Multiplier = DefaultMultiplier
	}
	if p.Embedment != nil {
		if err := calcerr.NonNegative("embedment_m", *p.Embedment); err != nil {
			return Result{}, err
		}
		r.Embedment = *p.Embedment
	}

	r.UnitDischarge = p.Discharge / p.EffectiveWidth
	ds, err := NormalScour(r.UnitDischarge, p.SiltFactor)
	if err != nil {
		return Result{}, err
	}
	r.NormalScour = ds
	r.DesignScour = r.Multiplier * ds

	if p.Velocity > 0 {
		r.FroudeNumber = p.Velocity / math.Sqrt(irc.Gravity*ds)
	}
	r.LocalScour = LocalScour(p.PierWidth, ds, p.Velocity)
	r.TotalScour = r.DesignScour + r.LocalScour

	r.ScourLevel = p.BedLevel - r.TotalScour
	r.FoundationLevel = r.ScourLevel - r.Embedment
	r.StoneSize = StoneSize(p.Velocity)

	return r, nil
}

package irc

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
)

// IRC / IS 456 constants used across the design calculators

const (
	Gravity = 9.81 // m/s²

	// Unit weights (kN/m³)
	ConcreteDensity    = 24.0
	WearingCoatDensity = 22.0
	WaterDensity       = 10.0

	// Steel mass density (kg/m³)
	SteelDensity = 7850.0

	// Clear cover to main reinforcement centroid (m)
	Cover = 0.075

	// Minimum reinforcement as a fraction of the gross section (IS 456 Cl. 26.5.2.1)
	MinSteelRatio = 0.0012
)

// ConcreteGrade is the characteristic cube strength fck in MPa
type ConcreteGrade int

const (
	M25 ConcreteGrade = 25
	M30 ConcreteGrade = 30
	M35 ConcreteGrade = 35
	M40 ConcreteGrade = 40
	M45 ConcreteGrade = 45
	M50 ConcreteGrade = 50
)

// SteelGrade is the characteristic yield strength fy in MPa
type SteelGrade int

const (
	Fe415 SteelGrade = 415
	Fe500 SteelGrade = 500
	Fe550 SteelGrade = 550
	Fe600 SteelGrade = 600
)

func (g ConcreteGrade) String() string { return fmt.Sprintf("M%d", int(g)) }
func (g SteelGrade) String() string    { return fmt.Sprintf("Fe%d", int(g)) }

// Materials holds the material properties used by the cost and steel-area formulas
type Materials struct {
	Concrete ConcreteGrade `json:"concrete_grade"` // fck (MPa)
	Steel    SteelGrade    `json:"steel_grade"`    // fy (MPa)

	// Unit weights (kN/m³); zero means the code default
	ConcreteDensity    float64 `json:"concrete_density_kn_m3,omitempty"`
	WearingCoatDensity float64 `json:"wearing_coat_density_kn_m3,omitempty"`
}

// Fck returns the concrete strength in MPa
func (m Materials) Fck() float64 { return float64(m.Concrete) }

// Fy returns the steel yield strength in MPa
func (m Materials) Fy() float64 { return float64(m.Steel) }

// UnitWeight returns the concrete unit weight, falling back to the code value
func (m Materials) UnitWeight() float64 {
	if m.ConcreteDensity > 0 {
		return m.ConcreteDensity
	}
	return ConcreteDensity
}

// WearingCoatWeight returns the wearing-coat unit weight
func (m Materials) WearingCoatWeight() float64 {
	if m.WearingCoatDensity > 0 {
		return m.WearingCoatDensity
	}
	return WearingCoatDensity
}

// Validate checks grades and densities
func (m Materials) Validate() error {
	if m.Concrete < 15 || m.Concrete > 80 {
		return &calcerr.InputValidationError{Field: "concrete_grade", Value: m.Fck(), Reason: "expected fck between 15 and 80 MPa"}
	}
	if m.Steel < 250 || m.Steel > 650 {
		return &calcerr.InputValidationError{Field: "steel_grade", Value: m.Fy(), Reason: "expected fy between 250 and 650 MPa"}
	}
	return calcerr.First(
		calcerr.NonNegative("concrete_density_kn_m3", m.ConcreteDensity),
		calcerr.NonNegative("wearing_coat_density_kn_m3", m.WearingCoatDensity),
	)
}

// ImpactFactor returns the live-load impact factor for an effective span (m).
// Fixed policy: 1.25 above 9 m, 1.5 otherwise.
func ImpactFactor(effectiveSpan float64) float64 {
	if effectiveSpan > 9 {
		return 1.25
	}
	return 1.5
}

// LeverArmFactor calculates j = 1 - k/3 from the working-stress neutral axis factor.
// IS 456 Annex B: m = 280/(3σcbc), so m·σcbc = 280/3 for every grade; σst ≈ 0.55fy.
func LeverArmFactor(fy float64) float64 {
	const mSigmaCbc = 280.0 / 3
	sigmaSt := 0.55 * fy
	k := mSigmaCbc / (mSigmaCbc + sigmaSt)
	return 1 - k/3
}

// SteelArea calculates Ast = M / (0.87·fy·d·j)
// moment in kN-m, fy in MPa, d in m; returns mm²
func SteelArea(moment, fy, d, j float64) float64 {
	if moment <= 0 || d <= 0 || fy <= 0 || j <= 0 {
		return 0
	}
	return math.Abs(moment) * 1e6 / (0.87 * fy * d * 1000 * j)
}

// MinSteelArea returns the minimum steel (mm²) for a section width b and overall depth D (m)
func MinSteelArea(b, depth float64) float64 {
	return MinSteelRatio * b * 1000 * depth * 1000
}

// Package earth computes Rankine lateral earth pressures on retaining faces.
package earth

import (
	"math"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
)

// Coefficients holds the Rankine pressure coefficients for a friction angle
type Coefficients struct {
	Phi float64 `json:"phi_deg"`
	Ka  float64 `json:"ka"` // tan²(45° − φ/2)
	Kp  float64 `json:"kp"` // tan²(45° + φ/2)
}

// Rankine returns Ka and Kp for a friction angle in degrees, 0 ≤ φ < 90
func Rankine(phi float64) (Coefficients, error) {
	if err := calcerr.Angle("phi_deg", phi); err != nil {
		return Coefficients{}, err
	}
	half := phi / 2 * math.Pi / 180
	quarter := math.Pi / 4
	ka := math.Pow(math.Tan(quarter-half), 2)
	kp := math.Pow(math.Tan(quarter+half), 2)
	return Coefficients{Phi: phi, Ka: ka, Kp: kp}, nil
}

// ActiveForce calculates Pa = ½·Ka·γ·H² (kN per m run), acting at H/3
func (c Coefficients) ActiveForce(gamma, height float64) float64 {
	return 0.5 * c.Ka * gamma * height * height
}

// PassiveForce calculates Pp = ½·Kp·γ·D² (kN per m run) over embedment D
func (c Coefficients) PassiveForce(gamma, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return 0.5 * c.Kp * gamma * depth * depth
}

// SurchargeForce calculates the uniform live-load surcharge thrust
// Ka·γ·hs·H (kN per m run) for an equivalent fill height hs, acting at H/2
func (c Coefficients) SurchargeForce(gamma, surchargeHeight, height float64) float64 {
	if surchargeHeight <= 0 {
		return 0
	}
	return c.Ka * gamma * surchargeHeight * height
}

// Thrust is the lateral force on a retaining face with its moment about the base
type Thrust struct {
	Active    float64 `json:"active_kn"`
	Surcharge float64 `json:"surcharge_kn"`
	Passive   float64 `json:"passive_kn"`
	Moment    float64 `json:"overturning_moment_knm"` // active·H/3 + surcharge·H/2
}

// Driving returns the total horizontal driving force
func (t Thrust) Driving() float64 {
	return t.Active + t.Surcharge
}

// Wall calculates the thrust on a wall of height H retaining soil of unit
// weight γ with embedment D in front and a surcharge height hs, per unit length
func (c Coefficients) Wall(gamma, height, embedment, surchargeHeight float64) Thrust {
	t := Thrust{
		Active:    c.ActiveForce(gamma, height),
		Surcharge: c.SurchargeForce(gamma, surchargeHeight, height),
		Passive:   c.PassiveForce(gamma, embedment),
	}
	t.Moment = t.Active*height/3 + t.Surcharge*height/2
	return t
}

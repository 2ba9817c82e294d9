package earth

import "github.com/alexiusacademia/gobridge/internal/calcerr"

// Soil holds the founding stratum and backfill properties
type Soil struct {
	SBC        float64 `json:"sbc_kn_m2"`     // safe bearing capacity (kN/m²)
	Phi        float64 `json:"phi_deg"`       // friction angle (deg)
	Gamma      float64 `json:"gamma_kn_m3"`   // unit weight (kN/m³)
	SiltFactor float64 `json:"silt_factor"`   // Lacey f
	Friction   float64 `json:"friction_coef"` // base friction coefficient μ
}

// Validate checks the soil parameters. The silt factor is left to the scour
// formula, which reports a domain error for f ≤ 0.
func (s Soil) Validate() error {
	return calcerr.First(
		calcerr.Positive("sbc_kn_m2", s.SBC),
		calcerr.Angle("phi_deg", s.Phi),
		calcerr.Positive("gamma_kn_m3", s.Gamma),
		calcerr.Positive("friction_coef", s.Friction),
	)
}

// Coefficients returns the Rankine coefficients for the soil
func (s Soil) Coefficients() (Coefficients, error) {
	return Rankine(s.Phi)
}

package irc

import "math"

// Member is a reinforced concrete section designed for one bending moment.
// Steel quantities are per member, across its full width.
type Member struct {
	Name      string  `json:"name"`
	Moment    float64 `json:"moment_knm"`   // design moment (kN-m)
	Width     float64 `json:"width_m"`      // section width resisting the moment
	Depth     float64 `json:"depth_m"`      // overall depth
	BarLength float64 `json:"bar_length_m"` // run of the main bars
	Layers    int     `json:"layers"`       // faces carrying the main steel

	EffectiveDepth float64 `json:"effective_depth_m"`
	Ast            float64 `json:"ast_mm2"`
	AstMin         float64 `json:"ast_min_mm2"`
	AstProvided    float64 `json:"ast_provided_mm2"`
	SteelMass      float64 `json:"steel_kg"`
}

// DesignMember sizes the main steel of a member: Ast from the moment, never
// less than the minimum ratio on the gross section
func DesignMember(name string, moment, width, depth, barLength float64, layers int, fy float64) Member {
	m := Member{
		Name:      name,
		Moment:    math.Abs(moment),
		Width:     width,
		Depth:     depth,
		BarLength: barLength,
		Layers:    layers,
	}
	m.EffectiveDepth = math.Max(depth-Cover, 0)
	m.Ast = SteelArea(m.Moment, fy, m.EffectiveDepth, LeverArmFactor(fy))
	m.AstMin = MinSteelArea(width, depth)
	m.AstProvided = math.Max(m.Ast, m.AstMin)
	m.SteelMass = m.AstProvided * 1e-6 * barLength * float64(layers) * SteelDensity
	return m
}

// TotalSteel sums the steel mass of members in kg
func TotalSteel(members ...Member) float64 {
	var total float64
	for _, m := range members {
		total += m.SteelMass
	}
	return total
}

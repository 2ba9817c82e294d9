// Package abutment designs the two abutment types evaluated for every bridge:
// a Type-1 battered gravity wall and a Type-2 cantilever L-wall. Both share
// the Rankine pressure core and hand their base to the footing search; they
// differ only in the geometry their self-weight comes from.
//
// Sections are taken across the wall with x measured from the toe toward the
// backfill. Forces are per metre run unless a field says otherwise.
package abutment

import "math"

// Kind tags the abutment section
type Kind string

const (
	Type1 Kind = "TYPE-1"
	Type2 Kind = "TYPE-2"
)

// Label returns the descriptive name of the section
func (k Kind) Label() string {
	switch k {
	case Type1:
		return "Type-1 Battered Face (Gravity)"
	case Type2:
		return "Type-2 Cantilever (L-Shaped)"
	default:
		return string(k)
	}
}

// Kinds lists every abutment section that is designed
var Kinds = []Kind{Type1, Type2}

// Fixed proportions
const (
	// Type-1
	gravityTopWidth      = 0.8
	gravityBatter        = 0.1 // horizontal per vertical, both faces
	gravityProjection    = 0.5 // base beyond each stem face
	gravityBaseThickness = 1.5

	// Type-2
	cantileverMinStem = 0.3
	cantileverMinBase = 0.6
	heelRatio         = 0.6
	toeRatio          = 0.3

	// Wall length beyond the deck width
	lengthAllowance = 2.0
)

// Geometry is the produced abutment section (m)
type Geometry struct {
	Kind       Kind    `json:"kind"`
	Height     float64 `json:"height_m"`      // deck to founding level
	StemHeight float64 `json:"stem_height_m"` // above the base
	Length     float64 `json:"length_m"`      // along the wall

	// Stem
	TopWidth    float64 `json:"top_width_m"`
	BottomWidth float64 `json:"bottom_width_m"`
	Batter      float64 `json:"batter,omitempty"`

	// Base
	Toe           float64 `json:"toe_m"`
	Heel          float64 `json:"heel_m"`
	BaseWidth     float64 `json:"base_width_m"`
	BaseThickness float64 `json:"base_thickness_m"`

	StemArea float64 `json:"stem_area_m2"` // cross-section
	BaseArea float64 `json:"base_area_m2"`
}

// StemVolume returns the stem concrete over the wall length
func (g Geometry) StemVolume() float64 { return g.StemArea * g.Length }

// BaseVolume returns the base concrete over the wall length
func (g Geometry) BaseVolume() float64 { return g.BaseArea * g.Length }

// StemCentreline returns x of the bearing line on top of the stem
func (g Geometry) StemCentreline() float64 {
	if g.Kind == Type1 {
		return g.Toe + g.Batter*g.StemHeight + g.TopWidth/2
	}
	return g.Toe + g.TopWidth/2
}

// NewGeometry proportions a section of the given kind for a total height
// and deck width
func NewGeometry(kind Kind, height, deckWidth float64) Geometry {
	g := Geometry{Kind: kind, Height: height, Length: deckWidth + lengthAllowance}

	switch kind {
	case Type1:
		g.BaseThickness = gravityBaseThickness
		g.StemHeight = height - g.BaseThickness
		g.Batter = gravityBatter
		g.TopWidth = gravityTopWidth
		g.BottomWidth = g.TopWidth + 2*g.Batter*g.StemHeight
		g.Toe = gravityProjection
		g.Heel = gravityProjection
		g.BaseWidth = g.BottomWidth + g.Toe + g.Heel
		g.StemArea = 0.5 * (g.TopWidth + g.BottomWidth) * g.StemHeight

	default:
		g.BaseThickness = math.Max(cantileverMinBase, height/10)
		g.StemHeight = height - g.BaseThickness
		g.TopWidth = math.Max(cantileverMinStem, height/12)
		g.BottomWidth = g.TopWidth
		g.Heel = heelRatio * height
		g.Toe = toeRatio * height
		g.BaseWidth = g.Toe + g.TopWidth + g.Heel
		g.StemArea = g.TopWidth * g.StemHeight
	}

	g.BaseArea = g.BaseWidth * g.BaseThickness
	return g
}

// Weight is a vertical force on the section with its lever arm about the toe
type Weight struct {
	Source string  `json:"source"`
	Force  float64 `json:"force_kn_m"`
	Lever  float64 `json:"lever_m"`
	Live   bool    `json:"live,omitempty"` // excluded from resistance
}

// Moment returns the moment about the toe
func (w Weight) Moment() float64 { return w.Force * w.Lever }

// weights returns the self-weight and retained fill acting on the section
func (g Geometry) weights(concrete, soil float64) []Weight {
	hs := g.StemHeight
	ws := []Weight{
		{Source: "Base", Force: g.BaseArea * concrete, Lever: g.BaseWidth / 2},
	}

	if g.Kind == Type1 {
		b := g.Batter * hs
		front := g.Toe
		back := front + b + g.TopWidth
		ws = append(ws,
			Weight{Source: "Stem front batter", Force: 0.5 * b * hs * concrete, Lever: front + 2*b/3},
			Weight{Source: "Stem core", Force: g.TopWidth * hs * concrete, Lever: front + b + g.TopWidth/2},
			Weight{Source: "Stem rear batter", Force: 0.5 * b * hs * concrete, Lever: back + b/3},
			Weight{Source: "Fill over rear batter", Force: 0.5 * b * hs * soil, Lever: back + 2*b/3},
			Weight{Source: "Fill over heel", Force: g.Heel * hs * soil, Lever: g.BaseWidth - g.Heel/2},
		)
		return ws
	}

	ws = append(ws,
		Weight{Source: "Stem", Force: g.StemArea * concrete, Lever: g.Toe + g.TopWidth/2},
		Weight{Source: "Fill over heel", Force: g.Heel * hs * soil, Lever: g.BaseWidth - g.Heel/2},
	)
	return ws
}

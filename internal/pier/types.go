// Package pier analyses an intermediate pier of a slab bridge: itemised dead
// loads, live load with impact, water current, wind and seismic forces, the
// resultant at the footing centroid, and the overturning and sliding checks
// once the footing has been sized.
//
// Axes: "long" runs along the pier length, parallel to the stream (current
// and wind act this way). "trans" runs along the traffic, across the stream
// (live-load eccentricity and seismic force act this way). The footing
// length L_f lies on the long axis and its width B_f on the trans axis.
package pier

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
)

// Geometry holds the pier dimensions (m)
type Geometry struct {
	CapLength        float64 `json:"cap_length_m"`    // along the stream
	CapWidth         float64 `json:"cap_width_m"`     // along the traffic
	CapThickness     float64 `json:"cap_thickness_m"` //
	StemLength       float64 `json:"stem_length_m"`   // along the stream
	StemWidth        float64 `json:"stem_width_m"`    // obstruction to flow
	FootingThickness float64 `json:"footing_thickness_m"`
}

// Validate checks the pier dimensions
func (g Geometry) Validate() error {
	if err := calcerr.First(
		calcerr.Positive("cap_length_m", g.CapLength),
		calcerr.Positive("cap_width_m", g.CapWidth),
		calcerr.Positive("cap_thickness_m", g.CapThickness),
		calcerr.Positive("stem_length_m", g.StemLength),
		calcerr.Positive("stem_width_m", g.StemWidth),
		calcerr.Positive("footing_thickness_m", g.FootingThickness),
	); err != nil {
		return err
	}
	if g.StemLength > g.CapLength {
		return &calcerr.InputValidationError{Field: "stem_length_m", Value: g.StemLength, Reason: "stem is longer than the cap"}
	}
	return nil
}

// Levels holds the fixed levels at the pier (m)
type Levels struct {
	Deck       float64 `json:"deck_level_m"`       // top of wearing coat
	Bed        float64 `json:"bed_level_m"`        // river bed at the pier
	HFL        float64 `json:"hfl_m"`              // high flood level
	Foundation float64 `json:"foundation_level_m"` // underside of footing
}

// LoadCase seeds the superstructure and live loads carried by one pier
type LoadCase struct {
	EffectiveSpan     float64 `json:"effective_span_m"`
	DeckWidth         float64 `json:"deck_width_m"`
	SlabThickness     float64 `json:"slab_thickness_m"`
	CarriagewayWidth  float64 `json:"carriageway_width_m"`
	WearingCoat       float64 `json:"wearing_coat_m"`
	FootpathWidth     float64 `json:"footpath_width_m,omitempty"` // total of both sides
	FootpathThickness float64 `json:"footpath_thickness_m,omitempty"`

	LiveLoad     float64 `json:"live_load_kn"`               // reaction before impact
	LiveEccLong  float64 `json:"live_ecc_long_m,omitempty"`  // off the carriageway centreline
	LiveEccTrans float64 `json:"live_ecc_trans_m,omitempty"` // one span loaded

	WindForce  float64 `json:"wind_force_kn,omitempty"`
	WindHeight float64 `json:"wind_height_m,omitempty"` // point of action above the footing base

	SeismicCoefficient float64 `json:"seismic_ah,omitempty"` // horizontal Ah
}

// Validate checks the load seeds
func (lc LoadCase) Validate() error {
	if err := calcerr.First(
		calcerr.Positive("effective_span_m", lc.EffectiveSpan),
		calcerr.Positive("deck_width_m", lc.DeckWidth),
		calcerr.Positive("slab_thickness_m", lc.SlabThickness),
		calcerr.Positive("carriageway_width_m", lc.CarriagewayWidth),
		calcerr.NonNegative("wearing_coat_m", lc.WearingCoat),
		calcerr.NonNegative("footpath_width_m", lc.FootpathWidth),
		calcerr.NonNegative("footpath_thickness_m", lc.FootpathThickness),
		calcerr.NonNegative("live_load_kn", lc.LiveLoad),
		calcerr.NonNegative("wind_force_kn", lc.WindForce),
		calcerr.NonNegative("wind_height_m", lc.WindHeight),
		calcerr.NonNegative("seismic_ah", lc.SeismicCoefficient),
	); err != nil {
		return err
	}
	if lc.CarriagewayWidth+lc.FootpathWidth > lc.DeckWidth+1e-9 {
		return &calcerr.InputValidationError{
			Field:  "carriageway_width_m",
			Value:  lc.CarriagewayWidth,
			Reason: fmt.Sprintf("carriageway and footpaths exceed the deck width %.2f m", lc.DeckWidth),
		}
	}
	return nil
}

// DeadLoad is one itemised self-weight
type DeadLoad struct {
	Source string  `json:"source"`
	Volume float64 `json:"volume_m3"`
	Weight float64 `json:"weight_kn"`
	Height float64 `json:"height_m"` // centroid above the footing base

	Superstructure bool `json:"superstructure,omitempty"` // carried by the deck
}

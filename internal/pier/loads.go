package pier

import (
	"math"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/foundation"
	"github.com/alexiusacademia/gobridge/internal/irc"
)

// Current pressure shape factor for square-ended piers (IRC:6)
const CurrentShapeFactor = 1.5

// Loads is the load summary of a pier about the footing base
type Loads struct {
	DeadLoads    []DeadLoad `json:"dead_loads"`
	DeadLoad     float64    `json:"dead_load_kn"`
	ImpactFactor float64    `json:"impact_factor"`
	LiveLoad     float64    `json:"live_load_kn"` // with impact
	P            float64    `json:"p_kn"`

	StemHeight float64 `json:"stem_height_m"`

	CurrentPressure    float64 `json:"current_pressure_kn_m2"` // at the surface
	CurrentForce       float64 `json:"current_force_kn"`
	CurrentLever       float64 `json:"current_lever_m"`
	WindForce          float64 `json:"wind_force_kn"`
	WindLever          float64 `json:"wind_lever_m"`
	SeismicCoefficient float64 `json:"seismic_ah"`
	SeismicForce       float64 `json:"seismic_force_kn"`
	SeismicMoment      float64 `json:"seismic_moment_knm"`

	MLong  float64 `json:"m_long_knm"`
	MTrans float64 `json:"m_trans_knm"`

	// Governing factored moment at the stem base and its combination
	StemMoment      float64 `json:"stem_moment_knm"`
	StemCombination string  `json:"stem_combination"`
	StemAxis        string  `json:"stem_axis"`

	geometry Geometry
}

// Resultant returns the load at the footing centroid for the foundation search
func (l Loads) Resultant() foundation.Load {
	return foundation.Load{P: l.P, MLong: l.MLong, MTrans: l.MTrans}
}

// HorizontalLong returns the horizontal force along the stream
func (l Loads) HorizontalLong() float64 {
	return l.CurrentForce + l.WindForce
}

// Superstructure returns the dead load carried by the deck
func (l Loads) Superstructure() float64 {
	var w float64
	for _, d := range l.DeadLoads {
		if d.Superstructure {
			w += d.Weight
		}
	}
	return w
}

// HorizontalTrans returns the horizontal force along the traffic
func (l Loads) HorizontalTrans() float64 {
	return l.SeismicForce
}

// CurrentPressure returns the IRC:6 surface pressure 52·K·V² kg/m² in kN/m²,
// with V = √2 × mean velocity
func CurrentPressure(meanVelocity float64) float64 {
	v := math.Sqrt2 * meanVelocity
	return 52 * CurrentShapeFactor * v * v * irc.Gravity / 1000
}

// Analyze builds the load summary for a pier. velocity is the adopted design
// velocity from the hydraulic analysis.
func Analyze(g Geometry, lv Levels, lc LoadCase, m irc.Materials, velocity float64) (Loads, error) {
	if err := g.Validate(); err != nil {
		return Loads{}, err
	}
	if err := lc.Validate(); err != nil {
		return Loads{}, err
	}
	if err := m.Validate(); err != nil {
		return Loads{}, err
	}
	if err := calcerr.NonNegative("velocity_ms", velocity); err != nil {
		return Loads{}, err
	}

	footingTop := lv.Foundation + g.FootingThickness
	capTop := lv.Deck - lc.WearingCoat - lc.SlabThickness
	capBottom := capTop - g.CapThickness
	stemHeight := capBottom - footingTop
	if stemHeight <= 0 {
		return Loads{}, &calcerr.InputValidationError{
			Field:  "foundation_level_m",
			Value:  lv.Foundation,
			Reason: "no room for a stem between the footing and the cap",
		}
	}
	if lv.Bed < footingTop {
		return Loads{}, &calcerr.InputValidationError{Field: "bed_level_m", Value: lv.Bed, Reason: "bed lies below the top of footing"}
	}

	gc := m.UnitWeight()
	span := lc.EffectiveSpan
	base := lv.Foundation

	slabMid := lv.Deck - lc.WearingCoat - lc.SlabThickness/2 - base
	items := []DeadLoad{
		{Source: "Deck slab", Volume: span * lc.DeckWidth * lc.SlabThickness, Height: slabMid, Superstructure: true},
		{Source: "Wearing coat", Volume: span * lc.CarriagewayWidth * lc.WearingCoat, Height: lv.Deck - lc.WearingCoat/2 - base, Superstructure: true},
		{Source: "Footpath", Volume: span * lc.FootpathWidth * lc.FootpathThickness, Height: lv.Deck + lc.FootpathThickness/2 - base, Superstructure: true},
		{Source: "Pier cap", Volume: g.CapLength * g.CapWidth * g.CapThickness, Height: capTop - g.CapThickness/2 - base},
		{Source: "Pier stem", Volume: g.StemLength * g.StemWidth * stemHeight, Height: g.FootingThickness + stemHeight/2},
	}

	var l Loads
	for i := range items {
		unit := gc
		if items[i].Source == "Wearing coat" {
			unit = m.WearingCoatWeight()
		}
		items[i].Weight = items[i].Volume * unit
		l.DeadLoad += items[i].Weight
	}
	l.DeadLoads = items
	l.StemHeight = stemHeight
	l.geometry = g

	l.ImpactFactor = irc.ImpactFactor(span)
	l.LiveLoad = lc.LiveLoad * l.ImpactFactor
	l.P = l.DeadLoad + l.LiveLoad

	// Current on the submerged stem, triangular from zero at the bed
	if depth := lv.HFL - lv.Bed; depth > 0 && velocity > 0 {
		l.CurrentPressure = CurrentPressure(velocity)
		l.CurrentForce = 0.5 * l.CurrentPressure * depth * g.StemWidth
		l.CurrentLever = lv.Bed - base + 2*depth/3
	}

	l.WindForce = lc.WindForce
	l.WindLever = lc.WindHeight
	if l.WindForce > 0 && l.WindLever == 0 {
		l.WindLever = slabMid
	}

	l.SeismicCoefficient = lc.SeismicCoefficient
	for _, it := range items {
		f := lc.SeismicCoefficient * it.Weight
		l.SeismicForce += f
		l.SeismicMoment += f * it.Height
	}

	liveLong := l.LiveLoad * lc.LiveEccLong
	liveTrans := l.LiveLoad * lc.LiveEccTrans

	l.MLong = l.CurrentForce*l.CurrentLever + l.WindForce*l.WindLever + liveLong
	l.MTrans = liveTrans + l.SeismicMoment

	l.governStem(g.FootingThickness, liveLong, liveTrans)
	return l, nil
}

// governStem finds the largest factored moment at the stem base over the
// ULS combinations on either axis
func (l *Loads) governStem(footingThickness, liveLong, liveTrans float64) {
	var seismicAtStem float64
	for _, it := range l.DeadLoads {
		seismicAtStem += l.SeismicCoefficient * it.Weight * math.Max(it.Height-footingThickness, 0)
	}

	long := irc.LoadEffects{
		Live:    liveLong,
		Wind:    l.WindForce * math.Max(l.WindLever-footingThickness, 0),
		Current: l.CurrentForce * math.Max(l.CurrentLever-footingThickness, 0),
	}
	trans := irc.LoadEffects{
		Live:    liveTrans,
		Seismic: seismicAtStem,
	}

	mLong, cLong := irc.Governing(long, irc.LoadCombinations)
	mTrans, cTrans := irc.Governing(trans, irc.LoadCombinations)
	if mLong >= mTrans {
		l.StemMoment, l.StemCombination, l.StemAxis = mLong, cLong.ID, "long"
	} else {
		l.StemMoment, l.StemCombination, l.StemAxis = mTrans, cTrans.ID, "trans"
	}
}

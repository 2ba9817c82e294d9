package cost

import (
	"math"

	"github.com/alexiusacademia/gobridge/internal/abutment"
	"github.com/alexiusacademia/gobridge/internal/irc"
	"github.com/alexiusacademia/gobridge/internal/pier"
)

// Excavation around a footing
const (
	ExcavationClearance  = 0.5 // m beyond each footing face
	ExcavationExtraDepth = 0.5 // m below the footing soffit for blinding
)

// Item is one priced line of an estimate
type Item struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

func item(desc string, qty float64, unit string, rate float64) Item {
	return Item{Description: desc, Quantity: qty, Unit: unit, Rate: rate, Amount: qty * rate}
}

// Estimate is an itemised cost with its allowances
type Estimate struct {
	Name   string  `json:"name"`
	Items  []Item  `json:"items"`
	Direct float64 `json:"direct"`
	Misc   float64 `json:"misc"`
	Profit float64 `json:"profit"`
	Total  float64 `json:"total"`
}

// NewEstimate totals the items and adds the allowances on the direct cost
func NewEstimate(name string, items ...Item) Estimate {
	e := Estimate{Name: name, Items: items}
	for _, it := range items {
		e.Direct += it.Amount
	}
	e.Misc = MiscRate * e.Direct
	e.Profit = ProfitRate * e.Direct
	e.Total = e.Direct + e.Misc + e.Profit
	return e
}

// Quantities are the measured quantities of one structure
type Quantities struct {
	Concrete   float64      `json:"concrete_m3"`
	Formwork   float64      `json:"formwork_m2"`
	Excavation float64      `json:"excavation_m3"`
	Members    []irc.Member `json:"members"`
}

// Steel returns the reinforcement in tonnes
func (q Quantities) Steel() float64 {
	return irc.TotalSteel(q.Members...) / 1000
}

// Price turns quantities into an estimate
func (q Quantities) Price(name string, r Rates) Estimate {
	return NewEstimate(name,
		item("RCC", q.Concrete, "m³", r.Concrete),
		item("Reinforcement", q.Steel(), "t", r.Steel),
		item("Formwork", q.Formwork, "m²", r.Formwork),
		item("Excavation", q.Excavation, "m³", r.Excavation),
	)
}

func excavation(length, width, thickness float64) float64 {
	return (length + 2*ExcavationClearance) * (width + 2*ExcavationClearance) * (thickness + ExcavationExtraDepth)
}

// PierQuantities measures one pier: cap, stem and the sized footing
func PierQuantities(l pier.Loads, s pier.Stability) Quantities {
	g := l.Geometry()
	h := l.StemHeight
	lf, bf, tf := s.FootingLength, s.FootingWidth, g.FootingThickness

	capVol := g.CapLength * g.CapWidth * g.CapThickness
	stemVol := g.StemLength * g.StemWidth * h
	footingVol := lf * bf * tf

	// Cap sides and soffit outside the stem, stem faces, footing edges
	formwork := 2*(g.CapLength+g.CapWidth)*g.CapThickness + g.CapLength*g.CapWidth - g.StemLength*g.StemWidth
	formwork += 2 * (g.StemLength + g.StemWidth) * h
	formwork += 2 * (lf + bf) * tf

	return Quantities{
		Concrete:   capVol + stemVol + footingVol,
		Formwork:   formwork,
		Excavation: excavation(lf, bf, tf),
		Members:    s.Members,
	}
}

// AbutmentQuantities measures one abutment: stem over the wall length and the
// base cast to the sized footing plan
func AbutmentQuantities(a abutment.Result) Quantities {
	g := a.Geometry
	lf, bf, tb := a.Footing.Length, a.Footing.Width, g.BaseThickness

	// Both stem faces; a battered face is measured on the slope
	face := g.StemHeight
	if g.Kind == abutment.Type1 {
		face = math.Hypot(g.StemHeight, g.Batter*g.StemHeight)
	}

	return Quantities{
		Concrete:   g.StemVolume() + lf*bf*tb,
		Formwork:   2*face*g.Length + 2*g.StemArea + 2*(lf+bf)*tb,
		Excavation: excavation(lf, bf, tb),
		Members:    a.Members,
	}
}

// Deck is the superstructure over every span
type Deck struct {
	Length    float64    `json:"length_m"`
	Slab      float64    `json:"slab_m3"`
	Wearing   float64    `json:"wearing_coat_m3"`
	Formwork  float64    `json:"formwork_m2"`
	Member    irc.Member `json:"member"`
	Governing string     `json:"governing_combination"`
}

// DeckQuantities measures the slab and wearing coat over the bridge length.
// The slab steel is designed for the governing ULS midspan moment of one span
// under its self-weight and the live reaction as a central point load.
func DeckQuantities(lc pier.LoadCase, spans int, m irc.Materials) Deck {
	length := float64(spans) * lc.EffectiveSpan
	d := Deck{
		Length:   length,
		Slab:     length * lc.DeckWidth * lc.SlabThickness,
		Wearing:  length * lc.CarriagewayWidth * lc.WearingCoat,
		Formwork: length*lc.DeckWidth + 2*length*lc.SlabThickness,
	}

	l := lc.EffectiveSpan
	w := lc.DeckWidth*lc.SlabThickness*m.UnitWeight() + lc.CarriagewayWidth*lc.WearingCoat*m.WearingCoatWeight()
	effects := irc.LoadEffects{
		Dead: w * l * l / 8,
		Live: lc.LiveLoad * irc.ImpactFactor(l) * l / 4,
	}
	moment, combo := irc.Governing(effects, irc.LoadCombinations)
	d.Governing = combo.ID
	d.Member = irc.DesignMember("Deck slab", moment, lc.DeckWidth, lc.SlabThickness, length, 1, m.Fy())
	return d
}

// Price returns the deck estimate
func (d Deck) Price(r Rates) Estimate {
	return NewEstimate("Deck",
		item("RCC deck slab", d.Slab, "m³", r.Concrete),
		item("Wearing coat", d.Wearing, "m³", r.WearingCoat),
		item("Reinforcement", d.Member.SteelMass/1000, "t", r.Steel),
		item("Formwork", d.Formwork, "m²", r.Formwork),
	)
}

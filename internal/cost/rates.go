// Package cost prices the quantities produced by the design: concrete,
// reinforcement, formwork and excavation for the deck, each pier and each
// abutment type, with the miscellaneous and contractor's profit allowances
// of a schedule of rates.
package cost

import (
	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/irc"
)

// Allowances on the direct cost
const (
	MiscRate   = 0.10
	ProfitRate = 0.12
)

// Default rates not tied to a grade
const (
	DefaultFormworkRate    = 450.0  // per m²
	DefaultExcavationRate  = 180.0  // per m³
	DefaultWearingCoatRate = 7000.0 // per m³
)

var concreteRates = map[irc.ConcreteGrade]float64{
	irc.M25: 8500,
	irc.M30: 9200,
	irc.M35: 9800,
	irc.M40: 10400,
	irc.M45: 11000,
	irc.M50: 11600,
}

var steelRates = map[irc.SteelGrade]float64{
	irc.Fe415: 75000,
	irc.Fe500: 78000,
	irc.Fe550: 81000,
	irc.Fe600: 84000,
}

// Rates is the schedule used to price quantities
type Rates struct {
	Concrete    float64 `json:"concrete_per_m3"`
	Steel       float64 `json:"steel_per_tonne"`
	Formwork    float64 `json:"formwork_per_m2"`
	Excavation  float64 `json:"excavation_per_m3"`
	WearingCoat float64 `json:"wearing_coat_per_m3"`
}

// DefaultRates returns the rate table for the material grades. Grades
// outside the table take the nearest lower listed rate.
func DefaultRates(m irc.Materials) Rates {
	return Rates{
		Concrete:    lookup(concreteRates, m.Concrete),
		Steel:       lookup(steelRates, m.Steel),
		Formwork:    DefaultFormworkRate,
		Excavation:  DefaultExcavationRate,
		WearingCoat: DefaultWearingCoatRate,
	}
}

func lookup[G ~int](table map[G]float64, grade G) float64 {
	var best G
	var rate float64
	for g, r := range table {
		if g <= grade && g > best {
			best, rate = g, r
		}
	}
	if rate == 0 {
		// Below the table: use the lowest entry
		for g, r := range table {
			if best == 0 || g < best {
				best, rate = g, r
			}
		}
	}
	return rate
}

// Merge returns r with every positive field of over replacing its value
func (r Rates) Merge(over Rates) Rates {
	pick := func(base, o float64) float64 {
		if o > 0 {
			return o
		}
		return base
	}
	return Rates{
		Concrete:    pick(r.Concrete, over.Concrete),
		Steel:       pick(r.Steel, over.Steel),
		Formwork:    pick(r.Formwork, over.Formwork),
		Excavation:  pick(r.Excavation, over.Excavation),
		WearingCoat: pick(r.WearingCoat, over.WearingCoat),
	}
}

// ValidateOverrides checks rates given over the grade table. Zero leaves a
// rate unset; a negative rate is rejected rather than replaced.
func (r Rates) ValidateOverrides() error {
	return calcerr.First(
		calcerr.NonNegative("concrete_per_m3", r.Concrete),
		calcerr.NonNegative("steel_per_tonne", r.Steel),
		calcerr.NonNegative("formwork_per_m2", r.Formwork),
		calcerr.NonNegative("excavation_per_m3", r.Excavation),
		calcerr.NonNegative("wearing_coat_per_m3", r.WearingCoat),
	)
}

// Validate checks that every rate is positive
func (r Rates) Validate() error {
	return calcerr.First(
		calcerr.Positive("concrete_per_m3", r.Concrete),
		calcerr.Positive("steel_per_tonne", r.Steel),
		calcerr.Positive("formwork_per_m2", r.Formwork),
		calcerr.Positive("excavation_per_m3", r.Excavation),
		calcerr.Positive("wearing_coat_per_m3", r.WearingCoat),
	)
}

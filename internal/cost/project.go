package cost

import (
	"github.com/alexiusacademia/gobridge/internal/abutment"
)

// AbutmentOption is the priced design of one abutment type
type AbutmentOption struct {
	Kind     abutment.Kind `json:"kind"`
	Passed   bool          `json:"passed"`
	Estimate Estimate      `json:"estimate"`
}

// Project is the whole-bridge cost
type Project struct {
	Deck      Estimate         `json:"deck"`
	Pier      Estimate         `json:"pier"` // one pier with its footing
	Piers     int              `json:"piers"`
	Abutments []AbutmentOption `json:"abutments"`

	Recommended abutment.Kind `json:"recommended_abutment"`
	Total       float64       `json:"total"`
}

// Recommend returns the index of the cheapest option. Options that pass
// every check are preferred over ones that do not; ties keep the earlier one.
// It returns -1 for no options.
func Recommend(options []AbutmentOption) int {
	best := -1
	for i, o := range options {
		if best < 0 {
			best = i
			continue
		}
		b := options[best]
		if o.Passed != b.Passed {
			if o.Passed {
				best = i
			}
			continue
		}
		if o.Estimate.Total < b.Estimate.Total {
			best = i
		}
	}
	return best
}

// Summarize prices the abutment options and totals the project: the deck,
// every pier and two abutments of the recommended type
func Summarize(deck, pier Estimate, piers int, abutments []abutment.Result, r Rates) Project {
	p := Project{Deck: deck, Pier: pier, Piers: piers}
	for _, a := range abutments {
		p.Abutments = append(p.Abutments, AbutmentOption{
			Kind:     a.Kind,
			Passed:   a.Passed(),
			Estimate: AbutmentQuantities(a).Price("Abutment "+a.Label, r),
		})
	}

	p.Total = deck.Total + float64(piers)*pier.Total
	if i := Recommend(p.Abutments); i >= 0 {
		p.Recommended = p.Abutments[i].Kind
		p.Total += 2 * p.Abutments[i].Estimate.Total
	}
	return p
}

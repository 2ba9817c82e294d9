// Package design runs the bridge design pipeline: hydraulics, scour, pier
// loads, footing search, pier stability, both abutment types and cost, in
// that order, from one input bundle to one result record.
package design

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/cost"
	"github.com/alexiusacademia/gobridge/internal/earth"
	"github.com/alexiusacademia/gobridge/internal/foundation"
	"github.com/alexiusacademia/gobridge/internal/hydraulics"
	"github.com/alexiusacademia/gobridge/internal/irc"
	"github.com/alexiusacademia/gobridge/internal/pier"
	"github.com/alexiusacademia/gobridge/internal/survey"
)

// Levels closer than this are the same level (m)
const levelTolerance = 1e-6

// Survey holds the surveyed profiles as they appear in the bundle
type Survey struct {
	CrossSection []survey.Station `json:"cross_section,omitempty"`
	Longitudinal []survey.Station `json:"longitudinal,omitempty"`
}

// Scour overrides the scour defaults. A zero multiplier keeps the default;
// an absent embedment keeps the default and an explicit zero is honoured.
type Scour struct {
	Multiplier float64  `json:"multiplier,omitempty"`
	Embedment  *float64 `json:"embedment_m,omitempty"`
}

// Abutment seeds the abutment design
type Abutment struct {
	FoundationLevel float64 `json:"foundation_level_m"`
	SurchargeHeight float64 `json:"surcharge_height_m,omitempty"` // equivalent fill for live load
}

// Bundle is the complete input of one design run
type Bundle struct {
	Name string `json:"name,omitempty"`

	Hydraulics hydraulics.Parameters `json:"hydraulics"`
	Waterway   hydraulics.Waterway   `json:"waterway"`

	// Take A and P from the cross-section below HFL
	SectionFromSurvey bool   `json:"section_from_survey,omitempty"`
	Survey            Survey `json:"survey"`

	Soil      earth.Soil    `json:"soil"`
	Materials irc.Materials `json:"materials"`

	Pier     pier.Geometry `json:"pier"`
	Levels   pier.Levels   `json:"levels"`
	LoadCase pier.LoadCase `json:"load_case"`
	Abutment Abutment      `json:"abutment"`

	Scour   Scour               `json:"scour"`
	Footing *foundation.Options `json:"footing,omitempty"` // nil uses the defaults
	Rates   cost.Rates          `json:"rates"`             // zero fields use the grade table; negative is rejected
}

// FootingOptions returns the footing search bounds of the run
func (b Bundle) FootingOptions() foundation.Options {
	if b.Footing == nil {
		return foundation.DefaultOptions()
	}
	return *b.Footing
}

// CostRates returns the rate table of the run
func (b Bundle) CostRates() cost.Rates {
	return cost.DefaultRates(b.Materials).Merge(b.Rates)
}

// SiteSurvey builds the immutable survey from the bundle profiles
func (b Bundle) SiteSurvey() (survey.SiteSurvey, error) {
	return survey.New(b.Survey.CrossSection, b.Survey.Longitudinal)
}

// HydraulicParameters returns the flood parameters of the run, with the
// section taken from the survey when the bundle asks for it
func (b Bundle) HydraulicParameters() (hydraulics.Parameters, error) {
	if !b.SectionFromSurvey {
		return b.Hydraulics, nil
	}
	s, err := b.SiteSurvey()
	if err != nil {
		return b.Hydraulics, err
	}
	return hydraulics.FromSurvey(b.Hydraulics, s)
}

// Validate checks the whole bundle before anything is computed
func (b Bundle) Validate() error {
	if _, err := b.SiteSurvey(); err != nil {
		return err
	}
	params, err := b.HydraulicParameters()
	if err != nil {
		return err
	}

	if err := calcerr.First(
		params.Validate(),
		b.Waterway.Validate(),
		b.Soil.Validate(),
		b.Materials.Validate(),
		b.Pier.Validate(),
		b.LoadCase.Validate(),
		b.FootingOptions().Validate(),
		b.Rates.ValidateOverrides(),
		b.CostRates().Validate(),
		calcerr.NonNegative("multiplier", b.Scour.Multiplier),
		calcerr.NonNegative("surcharge_height_m", b.Abutment.SurchargeHeight),
	); err != nil {
		return err
	}
	if e := b.Scour.Embedment; e != nil {
		if err := calcerr.NonNegative("embedment_m", *e); err != nil {
			return err
		}
	}

	lv := b.Levels
	switch {
	case math.Abs(lv.HFL-b.Hydraulics.HFL) > levelTolerance:
		return &calcerr.InputValidationError{
			Field:  "levels.hfl_m",
			Value:  lv.HFL,
			Reason: fmt.Sprintf("differs from the flood HFL %.3f m", b.Hydraulics.HFL),
		}
	case lv.Foundation >= lv.Bed:
		return &calcerr.InputValidationError{Field: "foundation_level_m", Value: lv.Foundation, Reason: "pier must be founded below the bed"}
	case lv.Bed >= lv.Deck:
		return &calcerr.InputValidationError{Field: "bed_level_m", Value: lv.Bed, Reason: "bed is above the deck"}
	case b.Abutment.FoundationLevel >= lv.Deck:
		return &calcerr.InputValidationError{Field: "abutment.foundation_level_m", Value: b.Abutment.FoundationLevel, Reason: "abutment is founded above the deck"}
	}
	return nil
}

// ReadBundle parses a design bundle from a JSON file without validating it
func ReadBundle(filepath string) (*Bundle, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath, err)
	}
	return &b, nil
}

// LoadFromFile loads a design bundle from a JSON file
func LoadFromFile(filepath string) (*Bundle, error) {
	b, err := ReadBundle(filepath)
	if err != nil {
		return nil, err
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// SaveToFile writes the bundle as indented JSON
func (b Bundle) SaveToFile(filepath string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, append(data, '\n'), 0o644)
}

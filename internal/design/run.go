package design

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexiusacademia/gobridge/internal/abutment"
	"github.com/alexiusacademia/gobridge/internal/cost"
	"github.com/alexiusacademia/gobridge/internal/foundation"
	"github.com/alexiusacademia/gobridge/internal/hydraulics"
	"github.com/alexiusacademia/gobridge/internal/pier"
	"github.com/alexiusacademia/gobridge/internal/scour"
	"github.com/alexiusacademia/gobridge/internal/survey"
)

// Pipeline stages, in run order
const (
	StageHydraulics = "hydraulics"
	StageScour      = "scour"
	StageLoads      = "pier loads"
	StageFoundation = "foundation"
	StageStability  = "pier stability"
	StageAbutment   = "abutment"
	StageCost       = "cost"
)

// Stages lists the stages in the order Run executes them
var Stages = []string{StageHydraulics, StageScour, StageLoads, StageFoundation, StageStability, StageAbutment, StageCost}

// Run IDs are name-based UUIDs in this namespace
var runNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/alexiusacademia/gobridge"))

// Failure records a stage that could not produce its result
type Failure struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Footing is the outcome of the pier footing search
type Footing struct {
	Trial     foundation.Trial   `json:"trial"`
	Converged bool               `json:"converged"`
	Tried     int                `json:"tried"`
	Options   foundation.Options `json:"options"`
}

// Founding compares the pier founding level with the level scour requires
type Founding struct {
	Provided float64 `json:"provided_level_m"`
	Required float64 `json:"required_level_m"`
	Adequate bool    `json:"adequate"`
}

// Result is the record of one design run. Stages that were skipped leave
// their field nil.
type Result struct {
	RunID string `json:"run_id"`
	Input Bundle `json:"input"`

	Hydraulics hydraulics.Result `json:"hydraulics"`
	Scour      *scour.Result     `json:"scour,omitempty"`
	Founding   *Founding         `json:"founding,omitempty"`
	Loads      *pier.Loads       `json:"pier_loads,omitempty"`
	Footing    *Footing          `json:"pier_footing,omitempty"`
	Stability  *pier.Stability   `json:"pier_stability,omitempty"`
	Abutments  []abutment.Result `json:"abutments,omitempty"`
	Cost       *cost.Project     `json:"cost,omitempty"`

	Failures []Failure `json:"failures,omitempty"`
}

// Passed reports whether every stage ran and every verdict passed
func (r *Result) Passed() bool {
	if len(r.Failures) > 0 || !r.Hydraulics.IsAdequate {
		return false
	}
	if r.Founding == nil || !r.Founding.Adequate || r.Stability == nil || !r.Stability.Passed() {
		return false
	}
	if r.Cost == nil {
		return false
	}
	for _, a := range r.Abutments {
		if a.Kind == r.Cost.Recommended && !a.Passed() {
			return false
		}
	}
	return true
}

// Failed reports whether a stage recorded a failure
func (r *Result) Failed(stage string) bool {
	for _, f := range r.Failures {
		if f.Stage == stage {
			return true
		}
	}
	return false
}

func (r *Result) fail(stage string, err error) {
	r.Failures = append(r.Failures, Failure{Stage: stage, Message: err.Error()})
}

// RunID returns the deterministic identifier of a bundle
func RunID(b Bundle) (string, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return "", err
	}
	return uuid.NewSHA1(runNamespace, data).String(), nil
}

// Run executes the pipeline. Invalid input aborts the run with an error.
// Formula domain errors and a footing search that accepts nothing are
// recorded in Failures; stages that need the missing result are skipped.
func Run(b Bundle) (*Result, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b = b.clone()

	id, err := RunID(b)
	if err != nil {
		return nil, err
	}
	r := &Result{RunID: id, Input: b}

	// Hydraulics
	params, err := b.HydraulicParameters()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageHydraulics, err)
	}
	if r.Hydraulics, err = hydraulics.Analyze(params, b.Waterway); err != nil {
		return nil, fmt.Errorf("%s: %w", StageHydraulics, err)
	}
	velocity := r.Hydraulics.DesignVelocity

	// Scour
	sc, err := scour.Analyze(scour.Parameters{
		Discharge:      params.Discharge,
		EffectiveWidth: r.Hydraulics.EffectiveWaterway,
		SiltFactor:     b.Soil.SiltFactor,
		Velocity:       velocity,
		PierWidth:      b.Pier.StemWidth,
		BedLevel:       b.Levels.Bed,
		Multiplier:     b.Scour.Multiplier,
		Embedment:      b.Scour.Embedment,
	})
	if err != nil {
		r.fail(StageScour, err)
	} else {
		r.Scour = &sc
		r.Founding = &Founding{
			Provided: b.Levels.Foundation,
			Required: sc.FoundationLevel,
			Adequate: b.Levels.Foundation <= sc.FoundationLevel,
		}
	}

	// Pier loads and footing
	loads, err := pier.Analyze(b.Pier, b.Levels, b.LoadCase, b.Materials, velocity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageLoads, err)
	}
	r.Loads = &loads

	opt := b.FootingOptions()
	footing := &Footing{Options: opt}
	res, err := foundation.Size(foundation.Request{
		Load:       loads.Resultant(),
		BaseLength: b.Pier.StemLength,
		BaseWidth:  b.Pier.StemWidth,
		SBC:        b.Soil.SBC,
	}, opt)
	var cf *foundation.ConvergenceFailure
	switch {
	case err == nil:
		footing.Trial, footing.Converged, footing.Tried = res.Trial, true, res.Tried
	case errors.As(err, &cf):
		footing.Trial, footing.Tried = cf.Best, cf.Tried
		r.fail(StageFoundation, err)
	default:
		return nil, fmt.Errorf("%s: %w", StageFoundation, err)
	}
	r.Footing = footing

	// Pier stability needs the scour line for passive resistance
	if r.Scour != nil {
		st, err := loads.Check(footing.Trial, b.Soil, b.Levels, r.Scour.ScourLevel, b.Materials)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", StageStability, err)
		}
		r.Stability = &st
	}

	// Abutments carry half a span of superstructure
	r.Abutments, err = abutment.DesignAll(abutment.Input{
		DeckLevel:       b.Levels.Deck,
		FoundationLevel: b.Abutment.FoundationLevel,
		DeckWidth:       b.LoadCase.DeckWidth,
		DeadReaction:    loads.Superstructure() / 2,
		LiveReaction:    loads.LiveLoad,
		SurchargeHeight: b.Abutment.SurchargeHeight,
		Soil:            b.Soil,
		Materials:       b.Materials,
		Footing:         opt,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageAbutment, err)
	}
	for _, a := range r.Abutments {
		if !a.Converged {
			r.fail(StageAbutment, fmt.Errorf("%s: no footing accepted after %d trials", a.Label, a.Tried))
		}
	}

	// Cost
	if r.Stability == nil {
		r.fail(StageCost, errors.New("skipped: pier stability was not evaluated"))
		return r, nil
	}
	rates := b.CostRates()
	deck := cost.DeckQuantities(b.LoadCase, b.Waterway.Spans, b.Materials).Price(rates)
	pierCost := cost.PierQuantities(loads, *r.Stability).Price("Pier", rates)
	project := cost.Summarize(deck, pierCost, r.Hydraulics.Piers, r.Abutments, rates)
	r.Cost = &project

	return r, nil
}

// clone copies the slices and pointers of the bundle so the recorded input
// cannot change under the caller
func (b Bundle) clone() Bundle {
	b.Survey.CrossSection = append([]survey.Station(nil), b.Survey.CrossSection...)
	b.Survey.Longitudinal = append([]survey.Station(nil), b.Survey.Longitudinal...)
	if b.Footing != nil {
		opt := *b.Footing
		b.Footing = &opt
	}
	if b.Scour.Embedment != nil {
		e := *b.Scour.Embedment
		b.Scour.Embedment = &e
	}
	return b
}

package abutment

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/earth"
	"github.com/alexiusacademia/gobridge/internal/foundation"
	"github.com/alexiusacademia/gobridge/internal/irc"
)

// ULS factor applied to earth-pressure moments for member design
const earthLoadFactor = 1.5

// Input holds what both abutment types are designed from
type Input struct {
	DeckLevel       float64 `json:"deck_level_m"`
	FoundationLevel float64 `json:"foundation_level_m"`
	DeckWidth       float64 `json:"deck_width_m"`

	// Superstructure reactions over the whole wall (kN)
	DeadReaction float64 `json:"dead_reaction_kn"`
	LiveReaction float64 `json:"live_reaction_kn"`

	// Equivalent fill height of the live-load surcharge (m)
	SurchargeHeight float64 `json:"surcharge_height_m,omitempty"`

	Soil      earth.Soil         `json:"soil"`
	Materials irc.Materials      `json:"materials"`
	Footing   foundation.Options `json:"footing"`
}

// Validate checks the input
func (in Input) Validate() error {
	if err := calcerr.First(
		calcerr.Positive("deck_width_m", in.DeckWidth),
		calcerr.NonNegative("dead_reaction_kn", in.DeadReaction),
		calcerr.NonNegative("live_reaction_kn", in.LiveReaction),
		calcerr.NonNegative("surcharge_height_m", in.SurchargeHeight),
		in.Soil.Validate(),
		in.Materials.Validate(),
		in.Footing.Validate(),
	); err != nil {
		return err
	}
	if h := in.DeckLevel - in.FoundationLevel; h <= 2 {
		return &calcerr.InputValidationError{
			Field:  "foundation_level_m",
			Value:  in.FoundationLevel,
			Reason: fmt.Sprintf("abutment height %.2f m leaves no stem above the base", h),
		}
	}
	return nil
}

// Result is one designed abutment
type Result struct {
	Kind     Kind     `json:"kind"`
	Label    string   `json:"label"`
	Geometry Geometry `json:"geometry"`

	Weights      []Weight           `json:"weights"`
	Coefficients earth.Coefficients `json:"coefficients"`
	Thrust       earth.Thrust       `json:"thrust"` // per metre run

	VerticalLoad      float64 `json:"vertical_load_kn"`    // whole wall incl. live load
	ResistingWeight   float64 `json:"resisting_weight_kn"` // whole wall, dead only
	RestoringMoment   float64 `json:"restoring_moment_knm"`
	OverturningMoment float64 `json:"overturning_moment_knm"`
	NetMoment         float64 `json:"net_moment_knm"` // about the base centroid

	Overturning irc.Check `json:"overturning"`
	Sliding     irc.Check `json:"sliding"`
	Bearing     irc.Check `json:"bearing"`

	Footing   foundation.Trial `json:"footing"`
	Converged bool             `json:"converged"`
	Tried     int              `json:"tried"`

	Members []irc.Member `json:"members"`
}

// Passed reports whether every check passed and a footing was accepted
func (r Result) Passed() bool {
	return r.Converged && irc.AllPassed(r.Overturning, r.Sliding, r.Bearing)
}

// Design proportions and checks one abutment type. A footing search that
// finds nothing is not an error: the best trial is kept and Bearing fails.
func Design(kind Kind, in Input) (Result, error) {
	if kind != Type1 && kind != Type2 {
		return Result{}, fmt.Errorf("unknown abutment kind %q", kind)
	}
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	coef, err := in.Soil.Coefficients()
	if err != nil {
		return Result{}, err
	}

	height := in.DeckLevel - in.FoundationLevel
	g := NewGeometry(kind, height, in.DeckWidth)
	gamma := in.Soil.Gamma

	r := Result{Kind: kind, Label: kind.Label(), Geometry: g, Coefficients: coef}
	r.Thrust = coef.Wall(gamma, height, g.BaseThickness, in.SurchargeHeight)

	// Per-metre weights, then the superstructure on the bearing line
	r.Weights = g.weights(in.Materials.UnitWeight(), gamma)
	x := g.StemCentreline()
	r.Weights = append(r.Weights,
		Weight{Source: "Deck dead load", Force: in.DeadReaction / g.Length, Lever: x},
		Weight{Source: "Deck live load", Force: in.LiveReaction / g.Length, Lever: x, Live: true},
	)

	var vertical, resisting, restoring, aboutCentre float64
	for _, w := range r.Weights {
		vertical += w.Force
		aboutCentre += w.Force * (w.Lever - g.BaseWidth/2)
		if w.Live {
			continue
		}
		resisting += w.Force
		restoring += w.Moment()
	}

	length := g.Length
	r.VerticalLoad = vertical * length
	r.ResistingWeight = resisting * length
	r.RestoringMoment = restoring * length
	r.OverturningMoment = r.Thrust.Moment * length
	r.NetMoment = (r.Thrust.Moment - aboutCentre) * length

	r.Overturning = irc.NewCheck("Overturning", irc.OverturningFoSMin).
		Evaluate(r.RestoringMoment, r.OverturningMoment)
	r.Sliding = irc.NewCheck("Sliding", irc.SlidingFoSMin).
		Evaluate(in.Soil.Friction*r.ResistingWeight+r.Thrust.Passive*length, r.Thrust.Driving()*length)

	// Footing under the base: L along the wall, B across it
	res, err := foundation.Size(foundation.Request{
		Load:       foundation.Load{P: r.VerticalLoad, MTrans: math.Abs(r.NetMoment)},
		BaseLength: g.Length,
		BaseWidth:  g.BaseWidth,
		SBC:        in.Soil.SBC,
	}, in.Footing)

	var cf *foundation.ConvergenceFailure
	switch {
	case err == nil:
		r.Footing, r.Converged, r.Tried = res.Trial, true, res.Tried
	case errors.As(err, &cf):
		r.Footing, r.Tried = cf.Best, cf.Tried
	default:
		return Result{}, fmt.Errorf("%s footing: %w", kind, err)
	}

	// Bearing passes on SBC/σmax ≥ 1 with the whole base in contact
	capacity := in.Soil.SBC
	if !r.Footing.NoTension() {
		capacity = 0
	}
	r.Bearing = irc.NewCheck("Bearing", 1.0).Evaluate(capacity, r.Footing.SigmaMax)

	r.Members = members(g, coef, in, r.Footing)
	return r, nil
}

// members designs the main steel. The cantilever stem, heel and toe carry
// bending; the gravity stem only needs the minimum steel on its faces.
func members(g Geometry, coef earth.Coefficients, in Input, footing foundation.Trial) []irc.Member {
	fy := in.Materials.Fy()
	gamma := in.Soil.Gamma
	hs := g.StemHeight
	length := g.Length

	// Earth and surcharge moment at the stem base, per metre
	stem := coef.ActiveForce(gamma, hs)*hs/3 + coef.SurchargeForce(gamma, in.SurchargeHeight, hs)*hs/2
	stemM := earthLoadFactor * stem * length

	if g.Kind == Type1 {
		return []irc.Member{
			irc.DesignMember("Abutment stem faces", 0, length, g.TopWidth, hs, 2, fy),
			irc.DesignMember("Abutment base", earthLoadFactor*coef.ActiveForce(gamma, g.Height)*g.Height/3*length,
				length, g.BaseThickness, footing.Width, 1, fy),
		}
	}

	heelLoad := gamma*hs + in.Materials.UnitWeight()*g.BaseThickness
	heelM := earthLoadFactor * heelLoad * g.Heel * g.Heel / 2 * length
	toeM := footing.SigmaMax * g.Toe * g.Toe / 2 * length

	return []irc.Member{
		irc.DesignMember("Abutment stem", stemM, length, g.TopWidth, hs+g.BaseThickness, 1, fy),
		irc.DesignMember("Abutment heel", heelM, length, g.BaseThickness, footing.Width, 1, fy),
		irc.DesignMember("Abutment toe", toeM, length, g.BaseThickness, footing.Width, 1, fy),
	}
}

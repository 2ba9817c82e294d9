package pier

import (
	"math"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/earth"
	"github.com/alexiusacademia/gobridge/internal/foundation"
	"github.com/alexiusacademia/gobridge/internal/irc"
)

// Stability holds the pier checks on a sized footing
type Stability struct {
	FootingLength   float64 `json:"footing_length_m"`
	FootingWidth    float64 `json:"footing_width_m"`
	FootingWeight   float64 `json:"footing_weight_kn"`
	ResistingWeight float64 `json:"resisting_weight_kn"` // dead load only

	OverturningLong  float64   `json:"overturning_fos_long"`
	OverturningTrans float64   `json:"overturning_fos_trans"`
	Overturning      irc.Check `json:"overturning"`

	Embedment    float64   `json:"passive_embedment_m"`
	PassiveLong  float64   `json:"passive_long_kn"`
	PassiveTrans float64   `json:"passive_trans_kn"`
	SlidingLong  float64   `json:"sliding_fos_long"`
	SlidingTrans float64   `json:"sliding_fos_trans"`
	Sliding      irc.Check `json:"sliding"`

	Members []irc.Member `json:"members"`
}

// Passed reports whether both stability checks passed
func (s Stability) Passed() bool {
	return irc.AllPassed(s.Overturning, s.Sliding)
}

// Check evaluates overturning and sliding about the edges of the footing and
// designs the stem, cap and footing steel. Passive resistance acts over the
// depth from the scour line (or the bed, if higher) down to the founding level.
func (l Loads) Check(footing foundation.Trial, soil earth.Soil, lv Levels, scourLevel float64, m irc.Materials) (Stability, error) {
	if err := calcerr.First(
		calcerr.Positive("footing_length_m", footing.Length),
		calcerr.Positive("footing_width_m", footing.Width),
		soil.Validate(),
	); err != nil {
		return Stability{}, err
	}
	coef, err := soil.Coefficients()
	if err != nil {
		return Stability{}, err
	}

	g := l.geometry
	s := Stability{FootingLength: footing.Length, FootingWidth: footing.Width}
	s.FootingWeight = footing.Length * footing.Width * g.FootingThickness * m.UnitWeight()
	s.ResistingWeight = l.DeadLoad + s.FootingWeight

	// Overturning about the footing edges
	resistLong := s.ResistingWeight * footing.Length / 2
	resistTrans := s.ResistingWeight * footing.Width / 2
	s.OverturningLong = irc.FactorOfSafety(resistLong, l.MLong)
	s.OverturningTrans = irc.FactorOfSafety(resistTrans, l.MTrans)
	s.Overturning = irc.NewCheck("Overturning", irc.OverturningFoSMin)
	if s.OverturningLong <= s.OverturningTrans {
		s.Overturning = s.Overturning.Evaluate(resistLong, l.MLong)
	} else {
		s.Overturning = s.Overturning.Evaluate(resistTrans, l.MTrans)
	}

	// Sliding with passive resistance on the footing faces
	s.Embedment = math.Max(0, math.Min(lv.Bed, scourLevel)-lv.Foundation)
	pp := coef.PassiveForce(soil.Gamma, s.Embedment)
	s.PassiveLong = pp * footing.Width
	s.PassiveTrans = pp * footing.Length
	friction := soil.Friction * s.ResistingWeight
	s.SlidingLong = irc.FactorOfSafety(friction+s.PassiveLong, l.HorizontalLong())
	s.SlidingTrans = irc.FactorOfSafety(friction+s.PassiveTrans, l.HorizontalTrans())
	s.Sliding = irc.NewCheck("Sliding", irc.SlidingFoSMin)
	if s.SlidingLong <= s.SlidingTrans {
		s.Sliding = s.Sliding.Evaluate(friction+s.PassiveLong, l.HorizontalLong())
	} else {
		s.Sliding = s.Sliding.Evaluate(friction+s.PassiveTrans, l.HorizontalTrans())
	}

	s.Members = l.members(footing, m.Fy())
	return s, nil
}

func (l Loads) members(footing foundation.Trial, fy float64) []irc.Member {
	g := l.geometry

	stemWidth, stemDepth := g.StemWidth, g.StemLength
	if l.StemAxis == "trans" {
		stemWidth, stemDepth = g.StemLength, g.StemWidth
	}
	stemBars := l.StemHeight + g.FootingThickness

	// Footing cantilevers beyond the stem faces under the peak pressure
	projLong := math.Max(footing.Length-g.StemLength, 0) / 2
	projTrans := math.Max(footing.Width-g.StemWidth, 0) / 2
	mLong := footing.SigmaMax * footing.Width * projLong * projLong / 2
	mTrans := footing.SigmaMax * footing.Length * projTrans * projTrans / 2

	return []irc.Member{
		irc.DesignMember("Pier stem", l.StemMoment, stemWidth, stemDepth, stemBars, 2, fy),
		irc.DesignMember("Pier cap", 0, g.CapLength, g.CapThickness, g.CapWidth, 2, fy),
		irc.DesignMember("Pier footing (long)", mLong, footing.Width, g.FootingThickness, footing.Length, 1, fy),
		irc.DesignMember("Pier footing (trans)", mTrans, footing.Length, g.FootingThickness, footing.Width, 1, fy),
	}
}

// Geometry returns the pier geometry the loads were built on
func (l Loads) Geometry() Geometry {
	return l.geometry
}

// Package survey holds the site survey captured at the bridge location: a
// river cross-section at the crossing and a longitudinal bed profile. A
// SiteSurvey never changes once built; every accessor returns a copy.
package survey

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
)

// Station is one surveyed point
type Station struct {
	Chainage float64 `json:"chainage_m"` // distance along the survey line (m)
	Level    float64 `json:"level_m"`    // ground or bed level (m)
}

// SiteSurvey is the immutable survey record
type SiteSurvey struct {
	crossSection []Station
	longitudinal []Station
}

// New validates and copies the profiles into a SiteSurvey.
// Either profile may be empty; a non-empty profile needs at least two
// stations with strictly increasing chainage.
func New(crossSection, longitudinal []Station) (SiteSurvey, error) {
	if err := validateProfile("cross_section", crossSection); err != nil {
		return SiteSurvey{}, err
	}
	if err := validateProfile("longitudinal", longitudinal); err != nil {
		return SiteSurvey{}, err
	}
	return SiteSurvey{
		crossSection: append([]Station(nil), crossSection...),
		longitudinal: append([]Station(nil), longitudinal...),
	}, nil
}

// CrossSection returns a copy of the cross-section stations
func (s SiteSurvey) CrossSection() []Station {
	return append([]Station(nil), s.crossSection...)
}

// Longitudinal returns a copy of the longitudinal profile
func (s SiteSurvey) Longitudinal() []Station {
	return append([]Station(nil), s.longitudinal...)
}

// Empty reports whether no cross-section was captured
func (s SiteSurvey) Empty() bool {
	return len(s.crossSection) == 0
}

// Summary is a read-only digest of the survey for reports
type Summary struct {
	CrossSectionPoints int     `json:"cross_section_points"`
	LongitudinalPoints int     `json:"longitudinal_points"`
	LowestBedLevel     float64 `json:"lowest_bed_level_m"`
	ProfileFall        float64 `json:"profile_fall"` // average fall along the longitudinal profile (m/m)
}

// Summarize returns the survey digest
func (s SiteSurvey) Summarize() Summary {
	return Summary{
		CrossSectionPoints: len(s.crossSection),
		LongitudinalPoints: len(s.longitudinal),
		LowestBedLevel:     s.BedLevel(),
		ProfileFall:        s.ProfileFall(),
	}
}

func validateProfile(name string, stations []Station) error {
	if len(stations) == 0 {
		return nil
	}
	if len(stations) < 2 {
		return &calcerr.InputValidationError{
			Field:  name,
			Value:  float64(len(stations)),
			Reason: "a profile needs at least 2 stations",
		}
	}
	for i := 1; i < len(stations); i++ {
		if stations[i].Chainage <= stations[i-1].Chainage {
			return &calcerr.InputValidationError{
				Field:  name,
				Value:  stations[i].Chainage,
				Reason: fmt.Sprintf("chainage of station %d must exceed %.2f m", i+1, stations[i-1].Chainage),
			}
		}
	}
	return nil
}

// ValidationError represents a malformed survey workbook
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

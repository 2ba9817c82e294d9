package survey

import "math"

// WettedSection holds the flow section below a water level
type WettedSection struct {
	WaterLevel      float64 // m
	Area            float64 // m²
	WettedPerimeter float64 // m
	TopWidth        float64 // m
	MaxDepth        float64 // m
}

// Wetted computes the flow area, wetted perimeter and top width of the
// cross-section below the given water level. Each segment between adjacent
// stations is clipped at the water surface and integrated as a trapezoid.
func (s SiteSurvey) Wetted(waterLevel float64) WettedSection {
	ws := WettedSection{WaterLevel: waterLevel}
	pts := s.crossSection
	if len(pts) < 2 {
		return ws
	}

	for i := 0; i < len(pts)-1; i++ {
		p1, p2 := pts[i], pts[i+1]
		width := p2.Chainage - p1.Chainage
		d1 := waterLevel - p1.Level
		d2 := waterLevel - p2.Level

		ws.MaxDepth = math.Max(ws.MaxDepth, math.Max(d1, d2))

		switch {
		case d1 <= 0 && d2 <= 0:
			// Segment entirely above water
			continue

		case d1 >= 0 && d2 >= 0:
			ws.Area += 0.5 * (d1 + d2) * width
			ws.WettedPerimeter += math.Hypot(width, p2.Level-p1.Level)
			ws.TopWidth += width

		default:
			// Segment crosses the water surface; keep the submerged part
			wet := d1
			if d2 > 0 {
				wet = d2
			}
			t := wet / math.Abs(d1-d2)
			wetWidth := width * t
			ws.Area += 0.5 * wet * wetWidth
			ws.WettedPerimeter += math.Hypot(wetWidth, wet)
			ws.TopWidth += wetWidth
		}
	}

	return ws
}

// BedLevel returns the lowest level on the cross-section,
// or the lowest longitudinal level when no cross-section was captured
func (s SiteSurvey) BedLevel() float64 {
	pts := s.crossSection
	if len(pts) == 0 {
		pts = s.longitudinal
	}
	if len(pts) == 0 {
		return 0
	}
	lowest := pts[0].Level
	for _, p := range pts[1:] {
		lowest = math.Min(lowest, p.Level)
	}
	return lowest
}

// ProfileFall returns the average fall of the longitudinal profile (m/m),
// positive when the bed drops with increasing chainage
func (s SiteSurvey) ProfileFall() float64 {
	n := len(s.longitudinal)
	if n < 2 {
		return 0
	}
	first, last := s.longitudinal[0], s.longitudinal[n-1]
	return (first.Level - last.Level) / (last.Chainage - first.Chainage)
}

// LevelAt interpolates the cross-section level at a chainage.
// Chainages outside the surveyed range take the nearest end level.
func (s SiteSurvey) LevelAt(chainage float64) float64 {
	pts := s.crossSection
	if len(pts) == 0 {
		return 0
	}
	if chainage <= pts[0].Chainage {
		return pts[0].Level
	}
	for i := 0; i < len(pts)-1; i++ {
		p1, p2 := pts[i], pts[i+1]
		if chainage <= p2.Chainage {
			t := (chainage - p1.Chainage) / (p2.Chainage - p1.Chainage)
			return p1.Level + t*(p2.Level-p1.Level)
		}
	}
	return pts[len(pts)-1].Level
}

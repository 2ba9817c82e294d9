package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobridge/internal/foundation"
	"github.com/alexiusacademia/gobridge/internal/survey"
)

// SectionLevels are the horizontal lines drawn over the river cross-section
type SectionLevels struct {
	HFL        float64
	ScourLevel float64 // zero skips the line
	Foundation float64 // zero skips the line
}

// ExportSectionChart exports the surveyed cross-section with the flood
// below HFL, the scour line and the founding level
func ExportSectionChart(s survey.SiteSurvey, lv SectionLevels, filename string) error {
	stations := s.CrossSection()
	if len(stations) < 2 {
		return errors.New("survey has no cross-section to plot")
	}

	p := plot.New()
	p.Title.Text = "River Cross-Section at the Bridge"
	p.X.Label.Text = "Chainage (m)"
	p.Y.Label.Text = "Level (m)"

	minX, maxX := stations[0].Chainage, stations[len(stations)-1].Chainage

	// Water below HFL
	if water := clipBelowLevel(stations, lv.HFL); len(water) >= 3 {
		poly, err := plotter.NewPolygon(water)
		if err != nil {
			return err
		}
		poly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
		poly.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(poly)
	}

	bed := make(plotter.XYs, len(stations))
	for i, st := range stations {
		bed[i] = plotter.XY{X: st.Chainage, Y: st.Level}
	}
	bedLine, err := plotter.NewLine(bed)
	if err != nil {
		return err
	}
	bedLine.LineStyle.Width = vg.Points(2)
	bedLine.LineStyle.Color = color.Black
	p.Add(bedLine)

	bedPts, err := plotter.NewScatter(bed)
	if err != nil {
		return err
	}
	bedPts.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	bedPts.GlyphStyle.Radius = vg.Points(3)
	bedPts.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(bedPts)

	levels := []struct {
		y     float64
		text  string
		color color.Color
	}{
		{lv.HFL, fmt.Sprintf("HFL %.2f", lv.HFL), color.RGBA{R: 0, G: 0, B: 255, A: 255}},
		{lv.ScourLevel, fmt.Sprintf("Scour %.2f", lv.ScourLevel), color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{lv.Foundation, fmt.Sprintf("Founding %.2f", lv.Foundation), color.RGBA{R: 0, G: 100, B: 0, A: 255}},
	}
	for _, l := range levels {
		if l.y == 0 {
			continue
		}
		if err := addLevel(p, minX, maxX, l.y, l.text, l.color); err != nil {
			return err
		}
	}

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportPressureChart exports the base pressure across the footing width
// on both long edges, with the SBC as a limit line
func ExportPressureChart(t foundation.Trial, sbc float64, filename string) error {
	if t.Length <= 0 || t.Width <= 0 {
		return errors.New("footing has no plan area")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Base Pressure, Footing %.2f m × %.2f m", t.Length, t.Width)
	p.X.Label.Text = "Position across the width (m)"
	p.Y.Label.Text = "Pressure (kN/m²)"

	const samples = 21
	edges := []struct {
		x     float64
		name  string
		color color.Color
	}{
		{t.Length / 2, "Downstream edge", color.RGBA{R: 0, G: 100, B: 0, A: 255}},
		{-t.Length / 2, "Upstream edge", color.RGBA{R: 255, G: 165, B: 0, A: 255}},
	}
	for _, e := range edges {
		pts := make(plotter.XYs, samples)
		for i := range pts {
			y := -t.Width/2 + t.Width*float64(i)/(samples-1)
			pts[i] = plotter.XY{X: y, Y: PressureAt(t, e.x, y)}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = e.color
		p.Add(line)
		p.Legend.Add(e.name, line)
	}

	if err := addLevel(p, -t.Width/2, t.Width/2, sbc, fmt.Sprintf("SBC %.0f", sbc), color.RGBA{R: 255, G: 0, B: 0, A: 255}); err != nil {
		return err
	}
	if err := addLevel(p, -t.Width/2, t.Width/2, 0, "", color.Gray{Y: 128}); err != nil {
		return err
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// addLevel draws a dashed horizontal line from x0 to x1 with a label at its end
func addLevel(p *plot.Plot, x0, x1, y float64, text string, c color.Color) error {
	line, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y}, {X: x1, Y: y}})
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = c
	line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(line)

	if text == "" {
		return nil
	}
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x1, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

// clipBelowLevel returns the polygon enclosed by the bed profile and a level,
// walking the profile and cutting each segment where it crosses the level
func clipBelowLevel(stations []survey.Station, level float64) plotter.XYs {
	var bottom plotter.XYs
	var first, last float64
	wet := false

	for i := 0; i < len(stations)-1; i++ {
		curr, next := stations[i], stations[i+1]
		currBelow := curr.Level < level
		nextBelow := next.Level < level

		if currBelow {
			if !wet {
				first, wet = curr.Chainage, true
			}
			bottom = append(bottom, plotter.XY{X: curr.Chainage, Y: curr.Level})
			last = curr.Chainage
		}

		if currBelow != nextBelow {
			t := (level - curr.Level) / (next.Level - curr.Level)
			x := curr.Chainage + t*(next.Chainage-curr.Chainage)
			if !wet {
				first, wet = x, true
			}
			bottom = append(bottom, plotter.XY{X: x, Y: level})
			last = x
		}
	}
	if end := stations[len(stations)-1]; end.Level < level {
		bottom = append(bottom, plotter.XY{X: end.Chainage, Y: end.Level})
		last = end.Chainage
	}
	if !wet {
		return nil
	}

	// Close along the water surface
	return append(bottom, plotter.XY{X: last, Y: level}, plotter.XY{X: first, Y: level})
}

// save writes the plot, picking the format from the extension
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

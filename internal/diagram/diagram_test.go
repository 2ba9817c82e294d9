package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gobridge/internal/foundation"
	"github.com/alexiusacademia/gobridge/internal/survey"
)

func trapezoid(t *testing.T) survey.SiteSurvey {
	t.Helper()
	s, err := survey.New([]survey.Station{
		{Chainage: 0, Level: 100},
		{Chainage: 10, Level: 90},
		{Chainage: 30, Level: 90},
		{Chainage: 40, Level: 100},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPressureAtCorners(t *testing.T) {
	tr := foundation.Evaluate(foundation.Load{P: 8000, MLong: 900, MTrans: 600}, 12, 4, 450, 0)

	if got := PressureAt(tr, tr.Length/2, tr.Width/2); math.Abs(got-tr.SigmaMax) > 1e-9 {
		t.Errorf("corner = %.4f, want σmax %.4f", got, tr.SigmaMax)
	}
	if got := PressureAt(tr, -tr.Length/2, -tr.Width/2); math.Abs(got-tr.SigmaMin) > 1e-9 {
		t.Errorf("opposite corner = %.4f, want σmin %.4f", got, tr.SigmaMin)
	}
	if got := PressureAt(tr, 0, 0); math.Abs(got-8000.0/48) > 1e-9 {
		t.Errorf("centroid = %.4f, want P/A", got)
	}
	if PressureAt(foundation.Trial{}, 0, 0) != 0 {
		t.Error("an empty trial has no pressure")
	}
}

func TestDrawFootingPlan(t *testing.T) {
	tr := foundation.Evaluate(foundation.Load{P: 8000, MLong: 900, MTrans: 600}, 12, 4, 450, 0)
	out := DrawFootingPlan(tr)
	for _, want := range []string{"FOOTING PLAN", "●", "┊", "P = 8000 kN"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan is missing %q:\n%s", want, out)
		}
	}

	// A resultant far outside the kern is drawn on the edge
	far := foundation.Evaluate(foundation.Load{P: 100, MLong: 5000}, 12, 4, 450, 0)
	if !strings.Contains(DrawFootingPlan(far), "●") {
		t.Error("resultant outside the footing should be clamped to the edge")
	}
}

func TestDrawPressureProfile(t *testing.T) {
	ok := foundation.Evaluate(foundation.Load{P: 8000, MTrans: 600}, 12, 4, 450, 0)
	out := DrawPressureProfile(ok, 450)
	if strings.Contains(out, "(tension)") {
		t.Errorf("no tension expected:\n%s", out)
	}
	if !strings.Contains(out, "SBC 450.0") {
		t.Errorf("SBC not marked:\n%s", out)
	}

	uplift := foundation.Evaluate(foundation.Load{P: 1000, MTrans: 1500}, 12, 4, 450, 0)
	out = DrawPressureProfile(uplift, 450)
	if !strings.Contains(out, "(tension)") || !strings.Contains(out, "Tension area") {
		t.Errorf("tension not reported:\n%s", out)
	}
}

func TestDrawSummaryBoxAligned(t *testing.T) {
	out := DrawSummaryBox("FOOTING", []string{"σmax = 436.4 kN/m²", "11.00 m × 2.20 m"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	width := len([]rune(lines[0]))
	for _, l := range lines {
		if n := len([]rune(l)); n != width {
			t.Errorf("line %q is %d runes, want %d", l, n, width)
		}
	}
}

func TestClipBelowLevel(t *testing.T) {
	s := trapezoid(t)
	poly := clipBelowLevel(s.CrossSection(), 95)

	// Shoelace area of the water polygon
	var area float64
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	area = math.Abs(area) / 2

	if want := s.Wetted(95).Area; math.Abs(area-want) > 1e-9 {
		t.Fatalf("water polygon area = %.4f, want %.4f", area, want)
	}
	if clipBelowLevel(s.CrossSection(), 80) != nil {
		t.Fatal("a level below the bed has no water")
	}
}

func TestExportSectionChart(t *testing.T) {
	dir := t.TempDir()
	s := trapezoid(t)

	for _, name := range []string{"section.png", "section.svg"} {
		path := filepath.Join(dir, "charts", name)
		if err := ExportSectionChart(s, SectionLevels{HFL: 97, ScourLevel: 86, Foundation: 84.5}, path); err != nil {
			t.Fatalf("ExportSectionChart(%s): %v", name, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Fatalf("%s not written: %v", name, err)
		}
	}

	empty, _ := survey.New(nil, nil)
	if err := ExportSectionChart(empty, SectionLevels{HFL: 97}, filepath.Join(dir, "x.png")); err == nil {
		t.Fatal("expected an error without a cross-section")
	}
}

func TestExportPressureChart(t *testing.T) {
	tr := foundation.Evaluate(foundation.Load{P: 8000, MLong: 900, MTrans: 600}, 12, 4, 450, 0)
	path := filepath.Join(t.TempDir(), "pressure")
	if err := ExportPressureChart(tr, 450, path); err != nil {
		t.Fatalf("ExportPressureChart: %v", err)
	}
	if _, err := os.Stat(path + ".png"); err != nil {
		t.Fatalf("a name without an extension should be saved as PNG: %v", err)
	}
	if err := ExportPressureChart(foundation.Trial{}, 450, path); err == nil {
		t.Fatal("expected an error for an empty footing")
	}
}

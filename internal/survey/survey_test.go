package survey

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
)

// trapezoid channel: bed 10 m wide at level 90, 1:1 side slopes up to level 100
func trapezoid(t *testing.T) SiteSurvey {
	t.Helper()
	s, err := New([]Station{
		{0, 100},
		{10, 90},
		{20, 90},
		{30, 100},
	}, []Station{
		{0, 91},
		{100, 90},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsBadProfiles(t *testing.T) {
	tests := []struct {
		name  string
		cross []Station
	}{
		{"single station", []Station{{0, 10}}},
		{"repeated chainage", []Station{{0, 10}, {5, 9}, {5, 8}}},
		{"decreasing chainage", []Station{{10, 10}, {0, 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cross, nil)
			var ive *calcerr.InputValidationError
			if !errors.As(err, &ive) || ive.Field != "cross_section" {
				t.Fatalf("err = %v, want cross_section validation error", err)
			}
			if _, err := New(nil, tt.cross); !errors.As(err, &ive) || ive.Field != "longitudinal" {
				t.Fatalf("err = %v, want longitudinal validation error", err)
			}
		})
	}
}

func TestSurveyIsImmutable(t *testing.T) {
	cross := []Station{{0, 10}, {5, 8}, {10, 10}}
	s, err := New(cross, nil)
	if err != nil {
		t.Fatal(err)
	}
	cross[1].Level = 0
	got := s.CrossSection()
	if got[1].Level != 8 {
		t.Fatalf("survey aliased caller slice: level = %.2f", got[1].Level)
	}
	got[1].Level = -1
	if s.CrossSection()[1].Level != 8 {
		t.Fatalf("accessor exposed internal slice")
	}
}

func TestWettedFullDepth(t *testing.T) {
	s := trapezoid(t)
	ws := s.Wetted(95)
	// depth 5: area = (10 + 20)/2 * 5 = 75, perimeter = 10 + 2*5√2, top = 20
	if math.Abs(ws.Area-75) > 1e-9 {
		t.Errorf("area = %.4f, want 75", ws.Area)
	}
	wantP := 10 + 2*5*math.Sqrt2
	if math.Abs(ws.WettedPerimeter-wantP) > 1e-9 {
		t.Errorf("perimeter = %.4f, want %.4f", ws.WettedPerimeter, wantP)
	}
	if math.Abs(ws.TopWidth-20) > 1e-9 {
		t.Errorf("top width = %.4f, want 20", ws.TopWidth)
	}
	if math.Abs(ws.MaxDepth-5) > 1e-9 {
		t.Errorf("max depth = %.4f, want 5", ws.MaxDepth)
	}
}

func TestWettedAboveBanksAndDry(t *testing.T) {
	s := trapezoid(t)
	if ws := s.Wetted(85); ws.Area != 0 || ws.TopWidth != 0 {
		t.Fatalf("water below bed should be dry, got %+v", ws)
	}
	// Water exactly at bank level fills the whole section
	ws := s.Wetted(100)
	if math.Abs(ws.Area-200) > 1e-9 {
		t.Fatalf("area at bank level = %.4f, want 200", ws.Area)
	}
}

func TestWettedIncreasesWithLevel(t *testing.T) {
	s := trapezoid(t)
	prev := s.Wetted(90)
	for level := 90.5; level <= 100; level += 0.5 {
		ws := s.Wetted(level)
		if ws.Area <= prev.Area || ws.WettedPerimeter <= prev.WettedPerimeter {
			t.Fatalf("section did not grow from %.1f to %.1f", prev.WaterLevel, level)
		}
		prev = ws
	}
}

func TestLevelsAndFall(t *testing.T) {
	s := trapezoid(t)
	if got := s.BedLevel(); got != 90 {
		t.Errorf("BedLevel = %.2f, want 90", got)
	}
	if got := s.LevelAt(5); math.Abs(got-95) > 1e-9 {
		t.Errorf("LevelAt(5) = %.2f, want 95", got)
	}
	if got := s.LevelAt(-10); got != 100 {
		t.Errorf("LevelAt before start = %.2f, want 100", got)
	}
	if got := s.ProfileFall(); math.Abs(got-0.01) > 1e-12 {
		t.Errorf("ProfileFall = %.4f, want 0.01", got)
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	s := trapezoid(t)
	path := filepath.Join(t.TempDir(), "survey.xlsx")

	if err := WriteWorkbook(s, path); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}
	got, err := LoadWorkbook(path)
	if err != nil {
		t.Fatalf("LoadWorkbook: %v", err)
	}

	want := s.CrossSection()
	cross := got.CrossSection()
	if len(cross) != len(want) {
		t.Fatalf("cross-section has %d stations, want %d", len(cross), len(want))
	}
	for i := range want {
		if cross[i] != want[i] {
			t.Errorf("station %d = %+v, want %+v", i, cross[i], want[i])
		}
	}
	if len(got.Longitudinal()) != 2 {
		t.Errorf("longitudinal has %d stations, want 2", len(got.Longitudinal()))
	}
}

func TestLoadWorkbookMissingFile(t *testing.T) {
	if _, err := LoadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}

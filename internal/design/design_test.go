package design

import (
	"errors"
	"math"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/earth"
	"github.com/alexiusacademia/gobridge/internal/hydraulics"
	"github.com/alexiusacademia/gobridge/internal/irc"
	"github.com/alexiusacademia/gobridge/internal/pier"
	"github.com/alexiusacademia/gobridge/internal/survey"
)

func sampleBundle() Bundle {
	return Bundle{
		Name: "Six-span slab bridge",
		Hydraulics: hydraulics.Parameters{
			Discharge:       1265.76,
			Area:            436.65,
			WettedPerimeter: 175.43,
			ManningN:        0.033,
			BedSlope:        1.0 / 106,
			HFL:             101.2,
			DesignVelocity:  3.5,
		},
		Waterway:  hydraulics.Waterway{Spans: 6, SpanWidth: 30, PierWidth: 1.2},
		Soil:      earth.Soil{SBC: 450, Phi: 30, Gamma: 18, SiltFactor: 6, Friction: 0.5},
		Materials: irc.Materials{Concrete: irc.M25, Steel: irc.Fe415},
		Pier: pier.Geometry{
			CapLength:        12,
			CapWidth:         2,
			CapThickness:     1,
			StemLength:       10,
			StemWidth:        1.2,
			FootingThickness: 1.5,
		},
		Levels: pier.Levels{Deck: 105, Bed: 95, HFL: 101.2, Foundation: 86},
		LoadCase: pier.LoadCase{
			EffectiveSpan:     9.6,
			DeckWidth:         12,
			SlabThickness:     0.6,
			CarriagewayWidth:  7.5,
			WearingCoat:       0.065,
			FootpathWidth:     3,
			FootpathThickness: 0.3,
			LiveLoad:          1000,
			LiveEccTrans:      0.5,
		},
		Abutment: Abutment{FoundationLevel: 98.6},
	}
}

func TestRunPasses(t *testing.T) {
	r, err := Run(sampleBundle())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(r.Failures) != 0 {
		t.Fatalf("unexpected failures: %+v", r.Failures)
	}
	if !r.Passed() {
		t.Fatalf("expected a passing design: founding %+v stability %+v", r.Founding, r.Stability)
	}

	if r.Hydraulics.Adequacy != hydraulics.Adequate || r.Hydraulics.DesignVelocity != 3.5 {
		t.Errorf("hydraulics = %+v", r.Hydraulics)
	}
	// Scour line from Lacey with f = 6 plus local scour at the 1.2 m pier
	if math.Abs(r.Scour.ScourLevel-88.138) > 0.01 {
		t.Errorf("scour level = %.3f, want 88.138", r.Scour.ScourLevel)
	}
	if math.Abs(r.Stability.Embedment-(r.Scour.ScourLevel-86)) > 1e-9 {
		t.Errorf("passive embedment = %.3f", r.Stability.Embedment)
	}
	if !r.Footing.Converged || r.Footing.Trial.Length != 11 || math.Abs(r.Footing.Trial.Width-2.2) > 1e-9 {
		t.Errorf("footing = %+v, want the first 11 × 2.2 m candidate", r.Footing.Trial)
	}
	if len(r.Abutments) != 2 {
		t.Fatalf("got %d abutment designs", len(r.Abutments))
	}
	if r.Cost == nil || r.Cost.Piers != 5 || r.Cost.Total <= 0 {
		t.Fatalf("cost = %+v", r.Cost)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	first, err := Run(sampleBundle())
	if err != nil {
		t.Fatal(err)
	}
	again, err := Run(first.Input)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, again) {
		t.Fatal("re-running the recorded input changed the result")
	}
}

func TestRunID(t *testing.T) {
	b := sampleBundle()
	a, err := RunID(b)
	if err != nil {
		t.Fatal(err)
	}
	same, _ := RunID(sampleBundle())
	if a != same {
		t.Fatalf("run ID is not deterministic: %s vs %s", a, same)
	}

	b.Soil.SBC = 400
	other, _ := RunID(b)
	if other == a {
		t.Fatal("different input produced the same run ID")
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Bundle)
		field string
	}{
		{"zero SBC", func(b *Bundle) { b.Soil.SBC = 0 }, "sbc_kn_m2"},
		{"friction angle", func(b *Bundle) { b.Soil.Phi = 90 }, "phi_deg"},
		{"no wetted perimeter", func(b *Bundle) { b.Hydraulics.WettedPerimeter = 0 }, "wetted_perimeter_m"},
		{"founded above bed", func(b *Bundle) { b.Levels.Foundation = 96 }, "foundation_level_m"},
		{"negative surcharge", func(b *Bundle) { b.Abutment.SurchargeHeight = -1 }, "surcharge_height_m"},
		{"negative concrete rate", func(b *Bundle) { b.Rates.Concrete = -100 }, "concrete_per_m3"},
		{"negative steel rate", func(b *Bundle) { b.Rates.Steel = -1 }, "steel_per_tonne"},
		{"two flood levels", func(b *Bundle) { b.Levels.HFL = 95.5 }, "levels.hfl_m"},
		{"negative embedment", func(b *Bundle) { e := -0.5; b.Scour.Embedment = &e }, "embedment_m"},
		{"concrete grade", func(b *Bundle) { b.Materials.Concrete = 5 }, "concrete_grade"},
		{"one-station survey", func(b *Bundle) { b.Survey.CrossSection = []survey.Station{{Chainage: 0, Level: 100}} }, "cross_section"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBundle()
			tt.edit(&b)
			r, err := Run(b)
			var ive *calcerr.InputValidationError
			if !errors.As(err, &ive) || ive.Field != tt.field {
				t.Fatalf("err = %v, want %s validation error", err, tt.field)
			}
			if r != nil {
				t.Fatal("no result should be produced for invalid input")
			}
		})
	}
}

func TestRunRecordsScourDomainError(t *testing.T) {
	b := sampleBundle()
	b.Soil.SiltFactor = 0
	r, err := Run(b)
	if err != nil {
		t.Fatalf("a domain error is recorded, not returned: %v", err)
	}
	if !r.Failed(StageScour) || !r.Failed(StageCost) {
		t.Fatalf("failures = %+v", r.Failures)
	}
	if r.Scour != nil || r.Stability != nil || r.Cost != nil {
		t.Fatal("stages after scour that need it should be skipped")
	}
	if r.Loads == nil || len(r.Abutments) != 2 {
		t.Fatal("stages independent of scour should still run")
	}
	if r.Passed() {
		t.Fatal("a run with failures cannot pass")
	}
}

func TestRunRecordsFootingFailure(t *testing.T) {
	b := sampleBundle()
	b.Soil.SBC = 20
	r, err := Run(b)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Failed(StageFoundation) || r.Footing.Converged {
		t.Fatalf("expected a recorded search failure: %+v", r.Failures)
	}
	if r.Footing.Tried != 441 {
		t.Errorf("tried = %d, want the whole 441-candidate grid", r.Footing.Tried)
	}
	if r.Stability == nil {
		t.Fatal("stability should still be reported on the best trial")
	}
	if r.Passed() {
		t.Fatal("expected the run to fail")
	}
}

func TestRunSectionFromSurvey(t *testing.T) {
	b := sampleBundle()
	b.SectionFromSurvey = true
	b.Hydraulics.Area = 0
	b.Hydraulics.WettedPerimeter = 0
	b.Survey.CrossSection = []survey.Station{
		{Chainage: 0, Level: 103},
		{Chainage: 10, Level: 95},
		{Chainage: 190, Level: 95},
		{Chainage: 200, Level: 103},
	}

	r, err := Run(b)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	s, _ := survey.New(b.Survey.CrossSection, nil)
	ws := s.Wetted(101.2)
	if math.Abs(r.Hydraulics.HydraulicRadius-ws.Area/ws.WettedPerimeter) > 1e-9 {
		t.Fatalf("R = %.4f, want %.4f from the survey", r.Hydraulics.HydraulicRadius, ws.Area/ws.WettedPerimeter)
	}

	b.Survey.CrossSection = nil
	if _, err := Run(b); err == nil {
		t.Fatal("expected an error without a cross-section")
	}
}

func TestBundleFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	b := sampleBundle()
	if err := b.SaveToFile(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	want, _ := RunID(b)
	got, _ := RunID(*loaded)
	if got != want {
		t.Fatal("loaded bundle differs from the saved one")
	}

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestRunHonoursZeroEmbedment(t *testing.T) {
	b := sampleBundle()
	zero := 0.0
	b.Scour.Embedment = &zero
	r, err := Run(b)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Scour.Embedment != 0 || r.Scour.FoundationLevel != r.Scour.ScourLevel {
		t.Fatalf("embedment %.2f, founding %.3f, scour line %.3f",
			r.Scour.Embedment, r.Scour.FoundationLevel, r.Scour.ScourLevel)
	}

	zero = 1
	if *r.Input.Scour.Embedment != 0 {
		t.Fatal("recorded input changed with the caller's value")
	}
}

func TestRunUsesBundleRates(t *testing.T) {
	b := sampleBundle()
	b.Rates.Concrete = 12000
	r, err := Run(b)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	found := false
	for _, it := range r.Cost.Pier.Items {
		if it.Description == "RCC" {
			found = true
			if it.Rate != 12000 {
				t.Fatalf("pier concrete priced at %.0f, want 12000", it.Rate)
			}
		}
	}
	if !found {
		t.Fatal("pier estimate has no RCC item")
	}
}

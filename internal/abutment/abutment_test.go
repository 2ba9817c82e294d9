package abutment

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/earth"
	"github.com/alexiusacademia/gobridge/internal/foundation"
	"github.com/alexiusacademia/gobridge/internal/irc"
)

func sampleInput() Input {
	return Input{
		DeckLevel:       102.4,
		FoundationLevel: 96.0,
		DeckWidth:       12.5,
		DeadReaction:    2500,
		LiveReaction:    800,
		Soil:            earth.Soil{SBC: 450, Phi: 30, Gamma: 18, SiltFactor: 1, Friction: 0.6},
		Materials:       irc.Materials{Concrete: irc.M25, Steel: irc.Fe415},
		Footing:         foundation.DefaultOptions(),
	}
}

func near(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.4f, want %.4f", name, got, want)
	}
}

func TestGeometryType1(t *testing.T) {
	g := NewGeometry(Type1, 6.4, 12.5)
	near(t, "length", g.Length, 14.5, 1e-12)
	near(t, "stem height", g.StemHeight, 4.9, 1e-12)
	near(t, "bottom width", g.BottomWidth, 0.8+2*0.1*4.9, 1e-12)
	near(t, "base width", g.BaseWidth, 0.8+2*0.1*4.9+1.0, 1e-12)
	near(t, "base thickness", g.BaseThickness, 1.5, 0)
}

func TestGeometryType2(t *testing.T) {
	g := NewGeometry(Type2, 6.4, 12.5)
	near(t, "stem", g.TopWidth, 6.4/12, 1e-12)
	near(t, "heel", g.Heel, 0.6*6.4, 1e-12)
	near(t, "toe", g.Toe, 0.3*6.4, 1e-12)
	near(t, "base thickness", g.BaseThickness, 0.64, 1e-12)
	near(t, "base width", g.BaseWidth, 6.4/12+0.9*6.4, 1e-12)

	// Short walls fall back to the minimum stem and base
	small := NewGeometry(Type2, 3, 10)
	if small.TopWidth != 0.3 || small.BaseThickness != 0.6 {
		t.Errorf("minimums not applied: stem %.3f base %.3f", small.TopWidth, small.BaseThickness)
	}
}

func TestDesignBothTypesPass(t *testing.T) {
	in := sampleInput()
	results, err := DesignAll(in)
	if err != nil {
		t.Fatalf("DesignAll: %v", err)
	}
	if len(results) != 2 || results[0].Kind != Type1 || results[1].Kind != Type2 {
		t.Fatalf("unexpected results order: %v", results)
	}

	for _, r := range results {
		t.Run(string(r.Kind), func(t *testing.T) {
			if !r.Passed() {
				t.Fatalf("expected pass: overturning %+v sliding %+v bearing %+v", r.Overturning, r.Sliding, r.Bearing)
			}
			near(t, "Ka", r.Coefficients.Ka, 1.0/3, 1e-9)
			// Pa = 0.5 · (1/3) · 18 · 6.4²
			near(t, "Pa", r.Thrust.Active, 122.88, 1e-9)
			near(t, "overturning FoS", r.Overturning.Factor, r.RestoringMoment/r.OverturningMoment, 1e-9)
			if r.Footing.TensionArea != 0 || r.Footing.SigmaMax > in.Soil.SBC {
				t.Fatalf("footing violates acceptance: %+v", r.Footing)
			}
			if r.VerticalLoad <= r.ResistingWeight {
				t.Fatalf("vertical load should include the live reaction")
			}
			if irc.TotalSteel(r.Members...) <= 0 {
				t.Fatalf("no steel designed")
			}
		})
	}
}

func TestDesignType2Restoring(t *testing.T) {
	r, err := Design(Type2, sampleInput())
	if err != nil {
		t.Fatal(err)
	}
	g := r.Geometry
	x := g.Toe + g.TopWidth/2
	perMetre := g.BaseArea*24*g.BaseWidth/2 +
		g.StemArea*24*x +
		g.Heel*g.StemHeight*18*(g.BaseWidth-g.Heel/2) +
		2500/g.Length*x
	near(t, "restoring moment", r.RestoringMoment, perMetre*g.Length, 1e-6)
	if len(r.Members) != 3 {
		t.Fatalf("cantilever should design stem, heel and toe, got %d members", len(r.Members))
	}
}

func TestDesignReportsFailedFooting(t *testing.T) {
	in := sampleInput()
	in.Soil.SBC = 10
	r, err := Design(Type1, in)
	if err != nil {
		t.Fatalf("a failed search is a verdict, not an error: %v", err)
	}
	if r.Converged || r.Bearing.Verdict != irc.Fail || r.Passed() {
		t.Fatalf("expected unconverged footing with failed bearing: %+v", r.Bearing)
	}
	if r.Tried == 0 || r.Footing.Area == 0 {
		t.Fatalf("best trial should be reported")
	}
}

func TestDesignRejectsInput(t *testing.T) {
	in := sampleInput()
	in.Soil.Phi = 95
	_, err := Design(Type1, in)
	var ive *calcerr.InputValidationError
	if !errors.As(err, &ive) || ive.Field != "phi_deg" {
		t.Fatalf("err = %v, want phi_deg validation error", err)
	}

	if _, err := Design(Kind("TYPE-9"), sampleInput()); err == nil {
		t.Fatal("expected error for an unknown kind")
	}
	if _, err := DesignAll(in); err == nil {
		t.Fatal("DesignAll should surface the input error")
	}
}

func TestDesignAllMatchesSequential(t *testing.T) {
	in := sampleInput()
	all, err := DesignAll(in)
	if err != nil {
		t.Fatal(err)
	}
	for i, kind := range Kinds {
		r, err := Design(kind, in)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(r, all[i]) {
			t.Fatalf("%s differs between concurrent and sequential runs", kind)
		}
	}
}

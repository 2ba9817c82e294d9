package cost

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gobridge/internal/abutment"
	"github.com/alexiusacademia/gobridge/internal/calcerr"
	"github.com/alexiusacademia/gobridge/internal/earth"
	"github.com/alexiusacademia/gobridge/internal/foundation"
	"github.com/alexiusacademia/gobridge/internal/irc"
	"github.com/alexiusacademia/gobridge/internal/pier"
)

var materials = irc.Materials{Concrete: irc.M25, Steel: irc.Fe415}

var soil = earth.Soil{SBC: 450, Phi: 30, Gamma: 18, SiltFactor: 1, Friction: 0.5}

func loadCase() pier.LoadCase {
	return pier.LoadCase{
		EffectiveSpan:     9.6,
		DeckWidth:         12,
		SlabThickness:     0.6,
		CarriagewayWidth:  7.5,
		WearingCoat:       0.065,
		FootpathWidth:     3,
		FootpathThickness: 0.3,
		LiveLoad:          1000,
		LiveEccTrans:      0.5,
	}
}

func samplePier(t *testing.T) (pier.Loads, pier.Stability) {
	t.Helper()
	g := pier.Geometry{CapLength: 12, CapWidth: 2, CapThickness: 1, StemLength: 10, StemWidth: 1.2, FootingThickness: 1.5}
	lv := pier.Levels{Deck: 105, Bed: 95, HFL: 101.2, Foundation: 91}
	l, err := pier.Analyze(g, lv, loadCase(), materials, 3.5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	s, err := l.Check(foundation.Evaluate(l.Resultant(), 12, 4, soil.SBC, 0), soil, lv, 93, materials)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	return l, s
}

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.4f, want %.4f", name, got, want)
	}
}

func TestDefaultRates(t *testing.T) {
	tests := []struct {
		name     string
		m        irc.Materials
		concrete float64
		steel    float64
	}{
		{"M25 Fe415", irc.Materials{Concrete: irc.M25, Steel: irc.Fe415}, 8500, 75000},
		{"M35 Fe500", irc.Materials{Concrete: irc.M35, Steel: irc.Fe500}, 9800, 78000},
		{"between grades", irc.Materials{Concrete: 32, Steel: 520}, 9200, 78000},
		{"below table", irc.Materials{Concrete: 20, Steel: 250}, 8500, 75000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRates(tt.m)
			if r.Concrete != tt.concrete || r.Steel != tt.steel {
				t.Fatalf("rates = %+v, want concrete %.0f steel %.0f", r, tt.concrete, tt.steel)
			}
			if err := r.Validate(); err != nil {
				t.Fatalf("default rates invalid: %v", err)
			}
		})
	}
}

func TestMergeKeepsUnsetRates(t *testing.T) {
	r := DefaultRates(materials).Merge(Rates{Steel: 90000})
	if r.Steel != 90000 || r.Concrete != 8500 || r.Formwork != DefaultFormworkRate {
		t.Fatalf("merged = %+v", r)
	}
	if err := (Rates{Concrete: 1}).Validate(); err == nil {
		t.Fatal("missing rates should not validate")
	}
}

func TestValidateOverrides(t *testing.T) {
	if err := (Rates{}).ValidateOverrides(); err != nil {
		t.Fatalf("unset rates rejected: %v", err)
	}
	if err := (Rates{Concrete: 9000}).ValidateOverrides(); err != nil {
		t.Fatalf("positive rate rejected: %v", err)
	}
	err := (Rates{Formwork: -450}).ValidateOverrides()
	var ive *calcerr.InputValidationError
	if !errors.As(err, &ive) || ive.Field != "formwork_per_m2" {
		t.Fatalf("err = %v, want formwork_per_m2 validation error", err)
	}
}

func TestNewEstimateAllowances(t *testing.T) {
	e := NewEstimate("x", item("a", 2, "m³", 300), item("b", 4, "m²", 100))
	approx(t, "direct", e.Direct, 1000, 1e-9)
	approx(t, "misc", e.Misc, 100, 1e-9)
	approx(t, "profit", e.Profit, 120, 1e-9)
	approx(t, "total", e.Total, 1220, 1e-9)
}

func TestPierQuantities(t *testing.T) {
	l, s := samplePier(t)
	q := PierQuantities(l, s)

	approx(t, "concrete", q.Concrete, 12*2*1+10*1.2*10.835+12*4*1.5, 1e-9)
	approx(t, "excavation", q.Excavation, 13*5*2, 1e-9)
	approx(t, "steel", q.Steel(), irc.TotalSteel(s.Members...)/1000, 1e-12)

	e := q.Price("Pier", DefaultRates(materials))
	if len(e.Items) != 4 || e.Total <= e.Direct {
		t.Fatalf("estimate = %+v", e)
	}
	approx(t, "concrete amount", e.Items[0].Amount, q.Concrete*8500, 1e-6)
}

func TestDeckQuantities(t *testing.T) {
	d := DeckQuantities(loadCase(), 3, materials)
	approx(t, "length", d.Length, 28.8, 1e-9)
	approx(t, "slab", d.Slab, 28.8*12*0.6, 1e-9)
	approx(t, "wearing", d.Wearing, 28.8*7.5*0.065, 1e-9)

	// 1.5 · (183.525·9.6²/8) + 1.5 · (1250·9.6/4)
	approx(t, "moment", d.Member.Moment, 1.5*183.525*9.6*9.6/8+1.5*3000, 1e-6)
	if d.Governing != "1" {
		t.Errorf("governing = %s, want 1", d.Governing)
	}
	if d.Member.AstProvided < d.Member.AstMin {
		t.Errorf("provided steel below the minimum")
	}
	if e := d.Price(DefaultRates(materials)); e.Total <= 0 {
		t.Fatalf("deck estimate = %+v", e)
	}
}

func TestRecommend(t *testing.T) {
	opt := func(kind abutment.Kind, passed bool, total float64) AbutmentOption {
		return AbutmentOption{Kind: kind, Passed: passed, Estimate: Estimate{Total: total}}
	}
	tests := []struct {
		name    string
		options []AbutmentOption
		want    int
	}{
		{"none", nil, -1},
		{"cheaper second", []AbutmentOption{opt(abutment.Type1, true, 200), opt(abutment.Type2, true, 150)}, 1},
		{"tie keeps first", []AbutmentOption{opt(abutment.Type1, true, 150), opt(abutment.Type2, true, 150)}, 0},
		{"passing over cheaper failing", []AbutmentOption{opt(abutment.Type1, false, 100), opt(abutment.Type2, true, 150)}, 1},
		{"both failing", []AbutmentOption{opt(abutment.Type1, false, 300), opt(abutment.Type2, false, 150)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recommend(tt.options); got != tt.want {
				t.Fatalf("Recommend = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	in := abutment.Input{
		DeckLevel:       102.4,
		FoundationLevel: 96,
		DeckWidth:       12.5,
		DeadReaction:    2500,
		LiveReaction:    800,
		Soil:            earth.Soil{SBC: 450, Phi: 30, Gamma: 18, SiltFactor: 1, Friction: 0.6},
		Materials:       materials,
		Footing:         foundation.DefaultOptions(),
	}
	abutments, err := abutment.DesignAll(in)
	if err != nil {
		t.Fatal(err)
	}

	r := DefaultRates(materials)
	l, s := samplePier(t)
	deck := DeckQuantities(loadCase(), 3, materials).Price(r)
	pierEst := PierQuantities(l, s).Price("Pier", r)

	p := Summarize(deck, pierEst, 2, abutments, r)
	if len(p.Abutments) != 2 {
		t.Fatalf("got %d abutment options", len(p.Abutments))
	}
	i := Recommend(p.Abutments)
	if p.Recommended != p.Abutments[i].Kind {
		t.Fatalf("recommended %s, want %s", p.Recommended, p.Abutments[i].Kind)
	}
	for _, o := range p.Abutments {
		if o.Estimate.Total < p.Abutments[i].Estimate.Total {
			t.Fatalf("%s is cheaper than the recommendation", o.Kind)
		}
	}
	approx(t, "total", p.Total, deck.Total+2*pierEst.Total+2*p.Abutments[i].Estimate.Total, 1e-6)
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobridge/internal/design"
	"github.com/alexiusacademia/gobridge/internal/irc"
)

const rule = "───────────────────────────────────────────────────────────────"

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func verdict(ok bool) string {
	if ok {
		return "✓ OK"
	}
	return "✗ NOT OK"
}

func printCheck(w *tabwriter.Writer, c irc.Check) {
	fmt.Fprintf(w, "  %s FoS:\t%.2f\t(min %.2f)\t%s\n", c.Name, c.Factor, c.Required, c.Verdict)
}

func printDesignReport(r *design.Result) {
	b := r.Input

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BRIDGE DESIGN - IRC / IS 456")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if b.Name != "" {
		fmt.Printf("  Project: %s\n", b.Name)
	}
	fmt.Printf("  Run ID:  %s\n", r.RunID)
	fmt.Println()

	// Hydraulics
	h := r.Hydraulics
	fmt.Println("HYDRAULICS:")
	fmt.Println(rule)
	w := newTable()
	fmt.Fprintf(w, "  Discharge (Q):\t%.2f m³/s\n", b.Hydraulics.Discharge)
	fmt.Fprintf(w, "  Hydraulic Radius (R):\t%.3f m\n", h.HydraulicRadius)
	fmt.Fprintf(w, "  Manning Velocity:\t%.3f m/s\n", h.ManningVelocity)
	fmt.Fprintf(w, "  Continuity Velocity (Q/A):\t%.3f m/s\n", h.ContinuityVelocity)
	fmt.Fprintf(w, "  Design Velocity:\t%.3f m/s\n", h.DesignVelocity)
	if b.Waterway.Skew > 0 {
		fmt.Fprintf(w, "  Velocity Normal to Opening:\t%.3f m/s\n", h.ObstructedVelocity)
	}
	fmt.Fprintf(w, "  Regime Width (4.8√Q):\t%.2f m\n", h.RegimeWidth)
	fmt.Fprintf(w, "  Provided Waterway:\t%.2f m\n", h.ProvidedWaterway)
	fmt.Fprintf(w, "  Effective Waterway:\t%.2f m (%d piers)\n", h.EffectiveWaterway, h.Piers)
	fmt.Fprintf(w, "  Waterway Ratio:\t%.3f\t%s\n", h.WaterwayRatio, h.Adequacy)
	fmt.Fprintf(w, "  Afflux:\t%.3f m\n", h.Afflux)
	w.Flush()
	fmt.Printf("  %s\n\n", h.Message)

	// Scour
	fmt.Println("SCOUR:")
	fmt.Println(rule)
	if s := r.Scour; s != nil {
		w = newTable()
		fmt.Fprintf(w, "  Unit Discharge (q):\t%.3f m²/s\n", s.UnitDischarge)
		fmt.Fprintf(w, "  Normal Scour (Lacey):\t%.3f m\n", s.NormalScour)
		fmt.Fprintf(w, "  Design Scour (×%.2f):\t%.3f m\n", s.Multiplier, s.DesignScour)
		fmt.Fprintf(w, "  Local Pier Scour:\t%.3f m\n", s.LocalScour)
		fmt.Fprintf(w, "  Scour Level:\t%.3f m\n", s.ScourLevel)
		fmt.Fprintf(w, "  Required Founding Level:\t%.3f m\n", s.FoundationLevel)
		fmt.Fprintf(w, "  Protection Stone d50:\t%.0f mm\n", s.StoneSize*1000)
		if f := r.Founding; f != nil {
			fmt.Fprintf(w, "  Pier Founding Level:\t%.3f m\t%s\n", f.Provided, verdict(f.Adequate))
		}
		w.Flush()
	} else {
		fmt.Println("  Not evaluated")
	}
	fmt.Println()

	// Pier loads
	if l := r.Loads; l != nil {
		fmt.Println("PIER LOADS:")
		fmt.Println(rule)
		w = newTable()
		fmt.Fprintf(w, "  Item\tVolume (m³)\tWeight (kN)\n")
		fmt.Fprintf(w, "  ────\t───────────\t───────────\n")
		for _, d := range l.DeadLoads {
			fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", d.Source, d.Volume, d.Weight)
		}
		w.Flush()
		fmt.Println()
		w = newTable()
		fmt.Fprintf(w, "  Dead Load:\t%.2f kN\n", l.DeadLoad)
		fmt.Fprintf(w, "  Live Load (×%.2f impact):\t%.2f kN\n", l.ImpactFactor, l.LiveLoad)
		fmt.Fprintf(w, "  P at Footing:\t%.2f kN\n", l.P)
		fmt.Fprintf(w, "  Water Current:\t%.2f kN\n", l.CurrentForce)
		if l.WindForce > 0 {
			fmt.Fprintf(w, "  Wind:\t%.2f kN\n", l.WindForce)
		}
		if l.SeismicForce > 0 {
			fmt.Fprintf(w, "  Seismic:\t%.2f kN\n", l.SeismicForce)
		}
		fmt.Fprintf(w, "  M (long):\t%.2f kN-m\n", l.MLong)
		fmt.Fprintf(w, "  M (trans):\t%.2f kN-m\n", l.MTrans)
		fmt.Fprintf(w, "  Stem Mu:\t%.2f kN-m\t(combination %s, %s)\n", l.StemMoment, l.StemCombination, l.StemAxis)
		w.Flush()
		fmt.Println()
	}

	// Pier footing
	if f := r.Footing; f != nil {
		t := f.Trial
		fmt.Println("PIER FOOTING:")
		fmt.Println(rule)
		w = newTable()
		fmt.Fprintf(w, "  Size (L × B):\t%.2f × %.2f m\n", t.Length, t.Width)
		fmt.Fprintf(w, "  Area:\t%.2f m²\n", t.Area)
		fmt.Fprintf(w, "  e_L / e_B:\t%.3f / %.3f m\n", t.ELong, t.ETrans)
		fmt.Fprintf(w, "  σmax / σmin:\t%.2f / %.2f kN/m²\n", t.SigmaMax, t.SigmaMin)
		fmt.Fprintf(w, "  Tension Area:\t%.2f m²\n", t.TensionArea)
		fmt.Fprintf(w, "  Trials:\t%d\t%s\n", f.Tried, verdict(f.Converged))
		w.Flush()
		fmt.Println()
	}

	// Pier stability
	if s := r.Stability; s != nil {
		fmt.Println("PIER STABILITY:")
		fmt.Println(rule)
		w = newTable()
		fmt.Fprintf(w, "  Overturning (long / trans):\t%.2f / %.2f\n", s.OverturningLong, s.OverturningTrans)
		fmt.Fprintf(w, "  Sliding (long / trans):\t%.2f / %.2f\n", s.SlidingLong, s.SlidingTrans)
		fmt.Fprintf(w, "  Passive Embedment:\t%.2f m\n", s.Embedment)
		printCheck(w, s.Overturning)
		printCheck(w, s.Sliding)
		w.Flush()
		fmt.Println()
		printMembers(s.Members)
	}

	// Abutments
	for _, a := range r.Abutments {
		g := a.Geometry
		fmt.Printf("ABUTMENT %s:\n", a.Label)
		fmt.Println(rule)
		w = newTable()
		fmt.Fprintf(w, "  Height / Stem Height:\t%.2f / %.2f m\n", g.Height, g.StemHeight)
		fmt.Fprintf(w, "  Stem Top / Bottom:\t%.3f / %.3f m\n", g.TopWidth, g.BottomWidth)
		fmt.Fprintf(w, "  Toe / Heel / Base:\t%.3f / %.3f / %.3f m\n", g.Toe, g.Heel, g.BaseWidth)
		fmt.Fprintf(w, "  Base Thickness:\t%.3f m\n", g.BaseThickness)
		fmt.Fprintf(w, "  Ka / Kp:\t%.4f / %.4f\n", a.Coefficients.Ka, a.Coefficients.Kp)
		fmt.Fprintf(w, "  Active Thrust:\t%.2f kN/m\n", a.Thrust.Active)
		printCheck(w, a.Overturning)
		printCheck(w, a.Sliding)
		fmt.Fprintf(w, "  Footing (L × B):\t%.2f × %.2f m\tσmax %.2f kN/m²\n", a.Footing.Length, a.Footing.Width, a.Footing.SigmaMax)
		printCheck(w, a.Bearing)
		w.Flush()
		fmt.Println()
	}

	// Cost
	if c := r.Cost; c != nil {
		fmt.Println("COST ESTIMATE:")
		fmt.Println(rule)
		w = newTable()
		fmt.Fprintf(w, "  Component\tDirect\tTotal\n")
		fmt.Fprintf(w, "  ─────────\t──────\t─────\n")
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\n", c.Deck.Name, c.Deck.Direct, c.Deck.Total)
		fmt.Fprintf(w, "  %s (×%d)\t%.0f\t%.0f\n", c.Pier.Name, c.Piers, c.Pier.Direct, c.Pier.Total)
		for _, o := range c.Abutments {
			marker := ""
			if o.Kind == c.Recommended {
				marker = " ← RECOMMENDED"
			}
			fmt.Fprintf(w, "  %s\t%.0f\t%.0f%s\n", o.Estimate.Name, o.Estimate.Direct, o.Estimate.Total, marker)
		}
		w.Flush()
		fmt.Println()
		fmt.Printf("  Project Total (deck + %d piers + 2 abutments): %.0f\n", c.Piers, c.Total)
		fmt.Println()
	}

	if len(r.Failures) > 0 {
		fmt.Println("FAILURES:")
		fmt.Println(rule)
		for _, f := range r.Failures {
			fmt.Printf("  [%s] %s\n", f.Stage, f.Message)
		}
		fmt.Println()
	}

	fmt.Println("  ╔═══════════════════════════════════╗")
	if r.Passed() {
		fmt.Println("  ║  DESIGN IS ADEQUATE               ║")
	} else {
		fmt.Println("  ║  DESIGN IS NOT ADEQUATE           ║")
	}
	fmt.Println("  ╚═══════════════════════════════════╝")
	fmt.Println()
}

func printMembers(members []irc.Member) {
	if len(members) == 0 {
		return
	}
	w := newTable()
	fmt.Fprintf(w, "  Member\tMu (kN-m)\tAst (mm²)\tAst,min (mm²)\tSteel (kg)\n")
	fmt.Fprintf(w, "  ──────\t─────────\t─────────\t─────────────\t──────────\n")
	for _, m := range members {
		fmt.Fprintf(w, "  %s\t%.2f\t%.0f\t%.0f\t%.0f\n", m.Name, m.Moment, m.Ast, m.AstMin, m.SteelMass)
	}
	w.Flush()
	fmt.Println()
}

package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/hydraulics"
	"github.com/alexiusacademia/gobridge/internal/survey"
	"github.com/spf13/cobra"
)

var (
	hydDischarge float64
	hydArea      float64
	hydPerimeter float64
	hydManningN  float64
	hydSlope     float64
	hydHFL       float64
	hydVelocity  float64

	hydSpans     int
	hydSpanWidth float64
	hydPierWidth float64
	hydSkew      float64

	hydSurveyXLSX string
)

var hydraulicsCmd = &cobra.Command{
	Use:   "hydraulics",
	Short: "Check waterway adequacy for a design flood",
	Long: `Check the bridge opening against Lacey's regime width 4.8√Q and report
the Manning velocity, effective waterway and afflux.

The flow area and wetted perimeter can be given directly or taken from a
surveyed cross-section below HFL.

Examples:
  gobridge hydraulics -Q 1265.76 -A 436.65 -P 175.43 -n 0.033 -S 0.0094 --spans 6 --span 30 --pier 1.2
  gobridge hydraulics -Q 1265.76 -n 0.033 -S 0.0094 --hfl 101.2 --survey-xlsx site.xlsx --spans 6 --span 30`,
	Run: runHydraulics,
}

func init() {
	rootCmd.AddCommand(hydraulicsCmd)

	// Flood
	hydraulicsCmd.Flags().Float64VarP(&hydDischarge, "discharge", "Q", 0, "Design discharge Q (m³/s) [required]")
	hydraulicsCmd.Flags().Float64VarP(&hydArea, "area", "A", 0, "Flow area below HFL (m²)")
	hydraulicsCmd.Flags().Float64VarP(&hydPerimeter, "perimeter", "P", 0, "Wetted perimeter (m)")
	hydraulicsCmd.Flags().Float64VarP(&hydManningN, "manning", "n", 0.033, "Manning's roughness n")
	hydraulicsCmd.Flags().Float64VarP(&hydSlope, "slope", "S", 0, "Bed slope (m/m) [required]")
	hydraulicsCmd.Flags().Float64Var(&hydHFL, "hfl", 0, "High flood level (m)")
	hydraulicsCmd.Flags().Float64VarP(&hydVelocity, "velocity", "v", 0, "Adopted design velocity (m/s); 0 uses Manning")
	hydraulicsCmd.MarkFlagRequired("discharge")
	hydraulicsCmd.MarkFlagRequired("slope")

	// Opening
	hydraulicsCmd.Flags().IntVar(&hydSpans, "spans", 1, "Number of spans")
	hydraulicsCmd.Flags().Float64Var(&hydSpanWidth, "span", 0, "Clear span (m) [required]")
	hydraulicsCmd.Flags().Float64Var(&hydPierWidth, "pier", 0, "Pier width (m)")
	hydraulicsCmd.Flags().Float64Var(&hydSkew, "skew", 0, "Skew of the flow to the bridge normal (deg)")
	hydraulicsCmd.MarkFlagRequired("span")

	hydraulicsCmd.Flags().StringVar(&hydSurveyXLSX, "survey-xlsx", "", "Take A and P from the cross-section in an .xlsx survey")
}

func runHydraulics(cmd *cobra.Command, args []string) {
	p := hydraulics.Parameters{
		Discharge:       hydDischarge,
		Area:            hydArea,
		WettedPerimeter: hydPerimeter,
		ManningN:        hydManningN,
		BedSlope:        hydSlope,
		HFL:             hydHFL,
		DesignVelocity:  hydVelocity,
	}
	ww := hydraulics.Waterway{Spans: hydSpans, SpanWidth: hydSpanWidth, PierWidth: hydPierWidth, Skew: hydSkew}

	if hydSurveyXLSX != "" {
		s, err := survey.LoadWorkbook(hydSurveyXLSX)
		if err != nil {
			fmt.Printf("Error loading survey: %v\n", err)
			return
		}
		if p, err = hydraulics.FromSurvey(p, s); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	r, err := hydraulics.Analyze(p, ww)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          WATERWAY ADEQUACY - MANNING / LACEY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println(rule)
	w := newTable()
	fmt.Fprintf(w, "  Discharge (Q):\t%.2f m³/s\n", p.Discharge)
	fmt.Fprintf(w, "  Area (A):\t%.2f m²\n", p.Area)
	fmt.Fprintf(w, "  Wetted Perimeter (P):\t%.2f m\n", p.WettedPerimeter)
	fmt.Fprintf(w, "  Manning n:\t%.3f\n", p.ManningN)
	fmt.Fprintf(w, "  Bed Slope (S):\t%.5f\n", p.BedSlope)
	fmt.Fprintf(w, "  Opening:\t%d × %.2f m, piers %.2f m\n", ww.Spans, ww.SpanWidth, ww.PierWidth)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println(rule)
	w = newTable()
	fmt.Fprintf(w, "  Hydraulic Radius (R):\t%.3f m\n", r.HydraulicRadius)
	fmt.Fprintf(w, "  Manning Velocity:\t%.3f m/s\n", r.ManningVelocity)
	fmt.Fprintf(w, "  Continuity Velocity (Q/A):\t%.3f m/s\n", r.ContinuityVelocity)
	fmt.Fprintf(w, "  Design Velocity:\t%.3f m/s\n", r.DesignVelocity)
	if ww.Skew > 0 {
		fmt.Fprintf(w, "  Velocity Normal to Opening:\t%.3f m/s\n", r.ObstructedVelocity)
	}
	fmt.Fprintf(w, "  Regime Width:\t%.2f m\n", r.RegimeWidth)
	fmt.Fprintf(w, "  Effective Waterway:\t%.2f m\n", r.EffectiveWaterway)
	fmt.Fprintf(w, "  Waterway Ratio:\t%.3f\n", r.WaterwayRatio)
	fmt.Fprintf(w, "  Afflux:\t%.3f m\n", r.Afflux)
	w.Flush()
	fmt.Println()

	fmt.Printf("  %s\n\n", r.Message)
	fmt.Println("  ╔═══════════════════════════════════╗")
	fmt.Printf("  ║  WATERWAY %-24s║\n", r.Adequacy)
	fmt.Println("  ╚═══════════════════════════════════╝")
	fmt.Println()
}

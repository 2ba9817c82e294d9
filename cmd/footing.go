package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/diagram"
	"github.com/alexiusacademia/gobridge/internal/foundation"
	"github.com/spf13/cobra"
)

var (
	footingP          float64
	footingMLong      float64
	footingMTrans     float64
	footingBaseLength float64
	footingBaseWidth  float64
	footingSBC        float64
	footingStep       float64
	footingMargin     float64
	footingMaxExt     float64
	footingOverburden float64

	footingShowDiagram bool
	footingExportFile  string
)

var footingCmd = &cobra.Command{
	Use:   "footing",
	Short: "Size an isolated footing by grid search",
	Long: `Find the smallest footing that keeps the base in full contact and the
peak pressure within the safe bearing capacity.

Candidates grow from the base plan plus a margin in equal steps on each
side and are tried smallest area first. When none is accepted the trial
with the lowest peak pressure is shown.

The step defaults to GOBRIDGE_FOOTING_STEP when set.

Examples:
  gobridge footing -P 5200 --m-long 3100 --m-trans 1400 -L 10 -B 1.2 --sbc 300
  gobridge footing -P 5200 --m-long 3100 -L 10 -B 1.2 --sbc 300 --diagram -o pressure.png`,
	Run: runFooting,
}

func init() {
	rootCmd.AddCommand(footingCmd)

	footingCmd.Flags().Float64VarP(&footingP, "load", "P", 0, "Vertical load at the footing centroid (kN) [required]")
	footingCmd.Flags().Float64Var(&footingMLong, "m-long", 0, "Moment along the footing length (kN-m)")
	footingCmd.Flags().Float64Var(&footingMTrans, "m-trans", 0, "Moment across the footing width (kN-m)")
	footingCmd.Flags().Float64VarP(&footingBaseLength, "base-length", "L", 0, "Base plan length (m) [required]")
	footingCmd.Flags().Float64VarP(&footingBaseWidth, "base-width", "B", 0, "Base plan width (m) [required]")
	footingCmd.Flags().Float64Var(&footingSBC, "sbc", 0, "Safe bearing capacity (kN/m²) [required]")
	footingCmd.MarkFlagRequired("load")
	footingCmd.MarkFlagRequired("base-length")
	footingCmd.MarkFlagRequired("base-width")
	footingCmd.MarkFlagRequired("sbc")

	// Search grid
	footingCmd.Flags().Float64Var(&footingStep, "step", foundation.DefaultStep, "Extension step per side (m)")
	footingCmd.Flags().Float64Var(&footingMargin, "margin", foundation.DefaultMargin, "Projection beyond the base (m)")
	footingCmd.Flags().Float64Var(&footingMaxExt, "max-extension", foundation.DefaultMaxExtension, "Largest extension per side (m)")
	footingCmd.Flags().Float64Var(&footingOverburden, "overburden", 0, "Footing and fill weight per plan area (kN/m²)")

	// Diagram options
	footingCmd.Flags().BoolVar(&footingShowDiagram, "diagram", false, "Show ASCII footing plan and base pressure")
	footingCmd.Flags().StringVarP(&footingExportFile, "output", "o", "", "Export the pressure chart to file (png, svg, pdf)")
}

func runFooting(cmd *cobra.Command, args []string) {
	opt := foundation.Options{
		Margin:       footingMargin,
		MaxExtension: footingMaxExt,
		Step:         footingStep,
		Overburden:   footingOverburden,
	}
	if !cmd.Flags().Changed("step") {
		env, ok, err := envFootingOptions()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if ok {
			opt.Step = env.Step
		}
	}

	req := foundation.Request{
		Load:       foundation.Load{P: footingP, MLong: footingMLong, MTrans: footingMTrans},
		BaseLength: footingBaseLength,
		BaseWidth:  footingBaseWidth,
		SBC:        footingSBC,
	}

	res, err := foundation.Size(req, opt)
	var cf *foundation.ConvergenceFailure
	converged := true
	switch {
	case errors.As(err, &cf):
		converged = false
		res = foundation.Result{Trial: cf.Best, Tried: cf.Tried, Options: opt}
	case err != nil:
		fmt.Printf("Error: %v\n", err)
		return
	}
	t := res.Trial

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          FOOTING SIZE - NO TENSION / SBC")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SEARCH:")
	fmt.Println(rule)
	w := newTable()
	fmt.Fprintf(w, "  Base Plan:\t%.2f × %.2f m\n", req.BaseLength, req.BaseWidth)
	fmt.Fprintf(w, "  Margin / Step / Max:\t%.2f / %.2f / %.2f m\n", opt.Margin, opt.Step, opt.MaxExtension)
	fmt.Fprintf(w, "  Trials:\t%d\n", res.Tried)
	w.Flush()
	fmt.Println()

	fmt.Println("FOOTING:")
	fmt.Println(rule)
	w = newTable()
	fmt.Fprintf(w, "  Size (L × B):\t%.2f × %.2f m\n", t.Length, t.Width)
	fmt.Fprintf(w, "  Area:\t%.2f m²\n", t.Area)
	fmt.Fprintf(w, "  e_L / e_B:\t%.3f / %.3f m\t(kern %.3f / %.3f m)\n", t.ELong, t.ETrans, t.Length/6, t.Width/6)
	fmt.Fprintf(w, "  σmax / σmin:\t%.2f / %.2f kN/m²\n", t.SigmaMax, t.SigmaMin)
	fmt.Fprintf(w, "  Utilization:\t%.1f%%\n", t.Utilization*100)
	if !t.NoTension() {
		fmt.Fprintf(w, "  Tension Area:\t%.2f m²\n", t.TensionArea)
	}
	w.Flush()
	fmt.Println()

	if converged {
		fmt.Println(diagram.DrawSummaryBox("FOOTING ACCEPTED", []string{
			fmt.Sprintf("L × B = %.2f × %.2f m", t.Length, t.Width),
			fmt.Sprintf("σmax = %.2f ≤ %.2f kN/m²", t.SigmaMax, req.SBC),
		}))
	} else {
		fmt.Println(diagram.DrawSummaryBox("NO FOOTING ACCEPTED", []string{
			err.Error(),
			"Best trial shown above",
		}))
	}

	if footingShowDiagram {
		fmt.Println(diagram.DrawFootingPlan(t))
		fmt.Println(diagram.DrawPressureProfile(t, req.SBC))
	}

	if footingExportFile != "" {
		if err := diagram.ExportPressureChart(t, req.SBC, footingExportFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("  Pressure chart exported to: %s\n", footingExportFile)
		}
		fmt.Println()
	}
}

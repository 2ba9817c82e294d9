package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/irc"
	"github.com/spf13/cobra"
)

var (
	// Unfactored effects (kN-m or kN)
	loadsDead    float64
	loadsLive    float64
	loadsWind    float64
	loadsSeismic float64
	loadsCurrent float64

	// Options
	loadsShowAll bool
	loadsService bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate the governing factored effect using IRC:6 load combinations",
	Long: `Calculate the governing factored effect (moment or force) for a
substructure member from the IRC:6 load combinations.

Provide unfactored effects from each load type and this command will
compute the factored effect for every combination.

Load Types:
  DL - Dead load, superstructure included
  LL - Vehicular live load with impact
  W  - Wind load
  Eq - Seismic load
  WC - Water current force

Examples:
  # Dead and live load only
  gobridge loads --dead 850 --live 420

  # Pier stem with current and wind
  gobridge loads --dead 850 --live 420 --current 35 --wind 60 --all

  # Unfactored service combinations used for stability
  gobridge loads --dead 850 --live 420 --current 35 --service`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64VarP(&loadsDead, "dead", "d", 0, "Effect of dead load")
	loadsCmd.Flags().Float64VarP(&loadsLive, "live", "l", 0, "Effect of live load with impact")
	loadsCmd.Flags().Float64VarP(&loadsWind, "wind", "w", 0, "Effect of wind load")
	loadsCmd.Flags().Float64VarP(&loadsSeismic, "seismic", "e", 0, "Effect of seismic load")
	loadsCmd.Flags().Float64VarP(&loadsCurrent, "current", "c", 0, "Effect of water current")

	// Options
	loadsCmd.Flags().BoolVarP(&loadsShowAll, "all", "a", false, "Show all load combination results")
	loadsCmd.Flags().BoolVarP(&loadsService, "service", "s", false, "Use the unfactored service combinations")
}

func runLoads(cmd *cobra.Command, args []string) {
	effects := irc.LoadEffects{
		Dead:    loadsDead,
		Live:    loadsLive,
		Wind:    loadsWind,
		Seismic: loadsSeismic,
		Current: loadsCurrent,
	}

	if effects == (irc.LoadEffects{}) {
		fmt.Println("Error: Please provide at least one unfactored effect.")
		fmt.Println("Use 'gobridge loads --help' for usage information.")
		return
	}

	combinations := irc.LoadCombinations
	title := "IRC:6 ULTIMATE LIMIT STATE COMBINATIONS"
	if loadsService {
		combinations = irc.ServiceCombinations
		title = "IRC:6 SERVICE COMBINATIONS"
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("          %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED EFFECTS:")
	fmt.Println(rule)
	w := newTable()
	for _, e := range []struct {
		label string
		value float64
	}{
		{"Dead Load (DL)", effects.Dead},
		{"Live Load (LL)", effects.Live},
		{"Wind (W)", effects.Wind},
		{"Seismic (Eq)", effects.Seismic},
		{"Water Current (WC)", effects.Current},
	} {
		if e.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", e.label, e.value)
		}
	}
	w.Flush()
	fmt.Println()

	governing, combo := irc.Governing(effects, combinations)

	if loadsShowAll {
		fmt.Println("LOAD COMBINATIONS:")
		fmt.Println(rule)
		w = newTable()
		fmt.Fprintf(w, "  #\tCombination\tFactored\n")
		fmt.Fprintf(w, "  ─\t───────────\t────────\n")
		for _, c := range combinations {
			marker := ""
			if c.ID == combo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", c.ID, c.Description, c.Factored(effects), marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println(rule)
	if combo.ID == "" {
		fmt.Println("  No combination produces a positive effect.")
		fmt.Println()
		return
	}
	fmt.Printf("  Governing Combination: %s (%s)\n", combo.ID, combo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  GOVERNING EFFECT = %.2f\n", governing)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}

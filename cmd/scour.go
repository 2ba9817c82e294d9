package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/scour"
	"github.com/spf13/cobra"
)

var (
	scourDischarge  float64
	scourWidth      float64
	scourSilt       float64
	scourVelocity   float64
	scourPierWidth  float64
	scourBedLevel   float64
	scourMultiplier float64
	scourEmbedment  float64
	scourFounding   float64
)

var scourCmd = &cobra.Command{
	Use:   "scour",
	Short: "Calculate scour depth and the required founding level",
	Long: `Calculate Lacey's normal scour 1.34(q²/f)^(1/3) over the effective
waterway, local scour at a pier and the founding level below the scour line.

Examples:
  gobridge scour -Q 1265.76 -W 174 -f 6 --velocity 3.5 --pier 1.2 --bed 95
  gobridge scour -Q 1265.76 -W 174 -f 6 --bed 95 --founding 86`,
	Run: runScour,
}

func init() {
	rootCmd.AddCommand(scourCmd)

	scourCmd.Flags().Float64VarP(&scourDischarge, "discharge", "Q", 0, "Design discharge Q (m³/s) [required]")
	scourCmd.Flags().Float64VarP(&scourWidth, "waterway", "W", 0, "Effective waterway (m) [required]")
	scourCmd.Flags().Float64VarP(&scourSilt, "silt", "f", 1.0, "Lacey silt factor")
	scourCmd.Flags().Float64Var(&scourVelocity, "velocity", 0, "Design velocity (m/s)")
	scourCmd.Flags().Float64Var(&scourPierWidth, "pier", 0, "Pier width for local scour (m)")
	scourCmd.Flags().Float64Var(&scourBedLevel, "bed", 0, "Bed level at the pier (m)")
	scourCmd.Flags().Float64Var(&scourMultiplier, "multiplier", scour.DefaultMultiplier, "Design scour multiplier")
	scourCmd.Flags().Float64Var(&scourEmbedment, "embedment", scour.DefaultEmbedment, "Embedment below the scour line (m)")
	scourCmd.Flags().Float64Var(&scourFounding, "founding", 0, "Proposed founding level to check (m)")
	scourCmd.MarkFlagRequired("discharge")
	scourCmd.MarkFlagRequired("waterway")
}

func runScour(cmd *cobra.Command, args []string) {
	r, err := scour.Analyze(scour.Parameters{
		Discharge:      scourDischarge,
		EffectiveWidth: scourWidth,
		SiltFactor:     scourSilt,
		Velocity:       scourVelocity,
		PierWidth:      scourPierWidth,
		BedLevel:       scourBedLevel,
		Multiplier:     scourMultiplier,
		Embedment:      &scourEmbedment,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SCOUR DEPTH - LACEY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println(rule)
	w := newTable()
	fmt.Fprintf(w, "  Unit Discharge (q):\t%.3f m²/s\n", r.UnitDischarge)
	fmt.Fprintf(w, "  Normal Scour (ds):\t%.3f m\n", r.NormalScour)
	fmt.Fprintf(w, "  Design Scour (×%.2f):\t%.3f m\n", r.Multiplier, r.DesignScour)
	if r.LocalScour > 0 {
		fmt.Fprintf(w, "  Froude Number:\t%.3f\n", r.FroudeNumber)
		fmt.Fprintf(w, "  Local Pier Scour:\t%.3f m\n", r.LocalScour)
	}
	fmt.Fprintf(w, "  Total Scour:\t%.3f m\n", r.TotalScour)
	fmt.Fprintf(w, "  Scour Level:\t%.3f m\n", r.ScourLevel)
	fmt.Fprintf(w, "  Embedment:\t%.2f m\n", r.Embedment)
	if r.StoneSize > 0 {
		fmt.Fprintf(w, "  Protection Stone d50:\t%.0f mm\n", r.StoneSize*1000)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("  ╔═══════════════════════════════════╗")
	fmt.Printf("  ║  FOUNDING LEVEL ≤ %-16.3f║\n", r.FoundationLevel)
	fmt.Println("  ╚═══════════════════════════════════╝")
	if cmd.Flags().Changed("founding") {
		fmt.Printf("  Proposed %.3f m: %s\n", scourFounding, verdict(scourFounding <= r.FoundationLevel))
	}
	fmt.Println()
}

package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/earth"
	"github.com/spf13/cobra"
)

var (
	earthPhi       float64
	earthGamma     float64
	earthHeight    float64
	earthEmbedment float64
	earthSurcharge float64
)

var earthCmd = &cobra.Command{
	Use:   "earth",
	Short: "Calculate Rankine earth pressure on a retaining face",
	Long: `Calculate the Rankine coefficients Ka and Kp for a friction angle and
the active, surcharge and passive thrust per metre run on a wall.

Examples:
  gobridge earth --phi 30
  gobridge earth --phi 30 --gamma 18 --height 6.4 --embedment 1.5 --surcharge 1.2`,
	Run: runEarth,
}

func init() {
	rootCmd.AddCommand(earthCmd)

	earthCmd.Flags().Float64Var(&earthPhi, "phi", 0, "Friction angle φ (deg) [required]")
	earthCmd.Flags().Float64Var(&earthGamma, "gamma", 18, "Unit weight of the backfill (kN/m³)")
	earthCmd.Flags().Float64VarP(&earthHeight, "height", "H", 0, "Retained height (m)")
	earthCmd.Flags().Float64VarP(&earthEmbedment, "embedment", "D", 0, "Embedment in front of the wall (m)")
	earthCmd.Flags().Float64Var(&earthSurcharge, "surcharge", 0, "Equivalent surcharge fill height (m)")
	earthCmd.MarkFlagRequired("phi")
}

func runEarth(cmd *cobra.Command, args []string) {
	c, err := earth.Rankine(earthPhi)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          RANKINE EARTH PRESSURE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("COEFFICIENTS:")
	fmt.Println(rule)
	w := newTable()
	fmt.Fprintf(w, "  φ:\t%.1f°\n", c.Phi)
	fmt.Fprintf(w, "  Ka = tan²(45° − φ/2):\t%.4f\n", c.Ka)
	fmt.Fprintf(w, "  Kp = tan²(45° + φ/2):\t%.4f\n", c.Kp)
	w.Flush()
	fmt.Println()

	if earthHeight <= 0 {
		return
	}

	t := c.Wall(earthGamma, earthHeight, earthEmbedment, earthSurcharge)
	fmt.Println("THRUST PER METRE RUN:")
	fmt.Println(rule)
	w = newTable()
	fmt.Fprintf(w, "  Active (½KaγH²):\t%.2f kN\tat H/3\n", t.Active)
	if t.Surcharge > 0 {
		fmt.Fprintf(w, "  Surcharge (Kaγhs·H):\t%.2f kN\tat H/2\n", t.Surcharge)
	}
	if t.Passive > 0 {
		fmt.Fprintf(w, "  Passive (½KpγD²):\t%.2f kN\n", t.Passive)
	}
	fmt.Fprintf(w, "  Total Driving:\t%.2f kN\n", t.Driving())
	fmt.Fprintf(w, "  Overturning Moment:\t%.2f kN-m\n", t.Moment)
	w.Flush()
	fmt.Println()
}

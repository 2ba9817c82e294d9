package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobridge/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobridge",
	Short: "Hydraulic and Structural Bridge Design Tool",
	Long: `gobridge - Go Bridge Designer

A CLI tool for the hydraulic and structural design of small
river bridges based on the IRC codes and IS 456.

This tool helps bridge engineers perform:
  - Waterway adequacy (Manning's equation, Lacey's regime width)
  - Scour depth and founding level
  - Pier load analysis and stability checks
  - Footing sizing by bounded search
  - Type-1 (gravity) and Type-2 (cantilever) abutment design
  - Quantity and cost comparison

The full pipeline runs from one JSON input bundle (see 'gobridge design').`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobridge v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Bridge Designer                                      ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the hydraulic and structural design of")
		fmt.Println("  small river bridges based on the IRC codes and IS 456.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Waterway adequacy and afflux")
		fmt.Println("    • Lacey scour, local pier scour and founding level")
		fmt.Println("    • Pier loads with current, wind and seismic forces")
		fmt.Println("    • Footing search with no-tension and SBC acceptance")
		fmt.Println("    • Gravity and cantilever abutments, compared by cost")
		fmt.Println()
		fmt.Println("  Use 'gobridge --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadEnv)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

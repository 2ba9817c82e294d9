package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobridge",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobridge v%s\n", version.Version)
		fmt.Println("Hydraulic and Structural Bridge Design Tool")
		fmt.Println("Based on IRC:5, IRC:6, IRC:78 and IS 456")
		if version.GitCommit != "unknown" {
			fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

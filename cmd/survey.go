package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/diagram"
	"github.com/alexiusacademia/gobridge/internal/survey"
	"github.com/spf13/cobra"
)

var (
	surveyFile       string
	surveyHFL        float64
	surveyTemplate   string
	surveyExportFile string
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Summarize a site survey workbook",
	Long: `Read a site survey from an .xlsx workbook and summarize it.

The workbook holds a CrossSection sheet and an optional Longitudinal sheet,
each with a header row followed by chainage (column A) and level (column B).

Examples:
  gobridge survey -f site.xlsx --hfl 101.2
  gobridge survey -f site.xlsx --hfl 101.2 -o section.png
  gobridge survey --template blank.xlsx`,
	Run: runSurvey,
}

func init() {
	rootCmd.AddCommand(surveyCmd)

	surveyCmd.Flags().StringVarP(&surveyFile, "file", "f", "", "Path to the survey workbook")
	surveyCmd.Flags().Float64Var(&surveyHFL, "hfl", 0, "High flood level for the wetted section (m)")
	surveyCmd.Flags().StringVar(&surveyTemplate, "template", "", "Write an example workbook to this path")
	surveyCmd.Flags().StringVarP(&surveyExportFile, "output", "o", "", "Export the section chart to file (png, svg, pdf)")
}

// templateSurvey is a small trapezoidal channel written by --template
func templateSurvey() (survey.SiteSurvey, error) {
	return survey.New(
		[]survey.Station{{Chainage: 0, Level: 100}, {Chainage: 10, Level: 95}, {Chainage: 30, Level: 95}, {Chainage: 40, Level: 100}},
		[]survey.Station{{Chainage: 0, Level: 95.5}, {Chainage: 100, Level: 95}},
	)
}

func runSurvey(cmd *cobra.Command, args []string) {
	if surveyTemplate != "" {
		s, err := templateSurvey()
		if err == nil {
			err = survey.WriteWorkbook(s, surveyTemplate)
		}
		if err != nil {
			fmt.Printf("Error writing template: %v\n", err)
			return
		}
		fmt.Printf("Template written to %s\n", surveyTemplate)
		return
	}

	if surveyFile == "" {
		fmt.Println("Error: Please provide a survey workbook with --file.")
		fmt.Println("Use 'gobridge survey --help' for usage information.")
		return
	}

	s, err := survey.LoadWorkbook(surveyFile)
	if err != nil {
		fmt.Printf("Error loading survey: %v\n", err)
		return
	}
	sum := s.Summarize()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SITE SURVEY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("PROFILES:")
	fmt.Println(rule)
	w := newTable()
	fmt.Fprintf(w, "  Cross-Section Stations:\t%d\n", sum.CrossSectionPoints)
	fmt.Fprintf(w, "  Longitudinal Stations:\t%d\n", sum.LongitudinalPoints)
	fmt.Fprintf(w, "  Lowest Bed Level:\t%.3f m\n", sum.LowestBedLevel)
	if sum.LongitudinalPoints > 1 {
		fmt.Fprintf(w, "  Profile Fall:\t%.5f (1 in %.0f)\n", sum.ProfileFall, 1/sum.ProfileFall)
	}
	w.Flush()
	fmt.Println()

	if cmd.Flags().Changed("hfl") {
		ws := s.Wetted(surveyHFL)
		fmt.Printf("WETTED SECTION AT HFL %.3f m:\n", surveyHFL)
		fmt.Println(rule)
		w = newTable()
		fmt.Fprintf(w, "  Area:\t%.3f m²\n", ws.Area)
		fmt.Fprintf(w, "  Wetted Perimeter:\t%.3f m\n", ws.WettedPerimeter)
		fmt.Fprintf(w, "  Top Width:\t%.3f m\n", ws.TopWidth)
		w.Flush()
		fmt.Println()
	}

	if surveyExportFile != "" {
		lv := diagram.SectionLevels{HFL: surveyHFL}
		if err := diagram.ExportSectionChart(s, lv, surveyExportFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
			return
		}
		fmt.Printf("  Section chart exported to: %s\n\n", surveyExportFile)
	}
}

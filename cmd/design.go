package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gobridge/internal/design"
	"github.com/alexiusacademia/gobridge/internal/diagram"
	"github.com/alexiusacademia/gobridge/internal/survey"
	"github.com/spf13/cobra"
)

var (
	designFile        string
	designJSON        bool
	designShowDiagram bool
	designExportFile  string
	designSurveyXLSX  string
	designSaveBundle  string
	designVerbose     bool
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Run the complete bridge design from an input bundle",
	Long: `Run the full design pipeline on a JSON input bundle:

  hydraulics → scour → pier loads → footing search → pier stability
  → abutments (Type-1 and Type-2) → cost

Invalid input stops the run. A scour formula error or a footing search
that accepts nothing is reported with the results of every stage that
could still run.

Rates not given in the bundle come from the grade table, or from
GOBRIDGE_RATE_CONCRETE, GOBRIDGE_RATE_STEEL, GOBRIDGE_RATE_FORMWORK and
GOBRIDGE_RATE_EXCAVATION. GOBRIDGE_FOOTING_STEP sets the search step when
the bundle has no "footing" block. Both may be placed in a .env file.

Examples:
  gobridge design -f bridge.json
  gobridge design -f bridge.json --diagram -o charts/pier.png
  gobridge design -f bridge.json --survey-xlsx site.xlsx --save recorded.json
  gobridge design -f bridge.json --json > result.json`,
	RunE:         runDesign,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().StringVarP(&designFile, "file", "f", "", "Path to the input bundle JSON file [required]")
	designCmd.MarkFlagRequired("file")

	designCmd.Flags().StringVar(&designSurveyXLSX, "survey-xlsx", "", "Take the survey from an .xlsx workbook (CrossSection and Longitudinal sheets)")
	designCmd.Flags().StringVar(&designSaveBundle, "save", "", "Write the input bundle as run, survey and overrides included")

	// Output options
	designCmd.Flags().BoolVar(&designJSON, "json", false, "Print the result record as JSON")
	designCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII footing plan and base pressure")
	designCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export the pressure chart to file (png, svg, pdf); a section chart is written alongside")
	designCmd.Flags().BoolVarP(&designVerbose, "verbose", "v", false, "Log each stage to stderr")
}

func runDesign(cmd *cobra.Command, args []string) error {
	logger := log.New(io.Discard, "", 0)
	if designVerbose {
		logger = log.New(os.Stderr, "gobridge: ", log.Ltime)
	}

	b, err := design.ReadBundle(designFile)
	if err != nil {
		return fmt.Errorf("loading bundle: %w", err)
	}
	logger.Printf("loaded %s", designFile)

	if designSurveyXLSX != "" {
		s, err := survey.LoadWorkbook(designSurveyXLSX)
		if err != nil {
			return fmt.Errorf("loading survey: %w", err)
		}
		b.Survey = design.Survey{CrossSection: s.CrossSection(), Longitudinal: s.Longitudinal()}
		sum := s.Summarize()
		logger.Printf("survey %s: %d cross-section and %d longitudinal stations",
			designSurveyXLSX, sum.CrossSectionPoints, sum.LongitudinalPoints)
	}

	// Environment overrides apply only where the bundle is silent
	rates, err := envRates()
	if err != nil {
		return err
	}
	b.Rates = rates.Merge(b.Rates)
	if b.Footing == nil {
		opt, ok, err := envFootingOptions()
		if err != nil {
			return err
		}
		if ok {
			b.Footing = &opt
			logger.Printf("footing step %.2f m from %s", opt.Step, envFootingStep)
		}
	}

	if designSaveBundle != "" {
		if err := b.SaveToFile(designSaveBundle); err != nil {
			return fmt.Errorf("saving bundle: %w", err)
		}
		logger.Printf("bundle written to %s", designSaveBundle)
	}

	r, err := design.Run(*b)
	if err != nil {
		return err
	}
	logger.Printf("run %s", r.RunID)
	for _, stage := range design.Stages {
		status := "ok"
		if r.Failed(stage) {
			status = "FAILED"
		}
		logger.Printf("  %-15s %s", stage, status)
	}

	if designJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	printDesignReport(r)

	if designShowDiagram && r.Footing != nil {
		fmt.Println(diagram.DrawFootingPlan(r.Footing.Trial))
		fmt.Println(diagram.DrawPressureProfile(r.Footing.Trial, b.Soil.SBC))
	}

	if designExportFile != "" && r.Footing != nil {
		if err := diagram.ExportPressureChart(r.Footing.Trial, b.Soil.SBC, designExportFile); err != nil {
			return fmt.Errorf("exporting pressure chart: %w", err)
		}
		fmt.Printf("  Pressure chart exported to: %s\n", designExportFile)

		s, err := b.SiteSurvey()
		if err == nil && !s.Empty() {
			levels := diagram.SectionLevels{HFL: b.Hydraulics.HFL, Foundation: b.Levels.Foundation}
			if r.Scour != nil {
				levels.ScourLevel = r.Scour.ScourLevel
			}
			name := sectionChartName(designExportFile)
			if err := diagram.ExportSectionChart(s, levels, name); err != nil {
				return fmt.Errorf("exporting section chart: %w", err)
			}
			fmt.Printf("  Section chart exported to: %s\n", name)
		}
		fmt.Println()
	}

	return nil
}

// sectionChartName derives the section chart file from the pressure chart file
func sectionChartName(filename string) string {
	ext := filepath.Ext(filename)
	switch ext {
	case ".png", ".svg", ".pdf":
	default:
		return filename + "-section.png"
	}
	return strings.TrimSuffix(filename, ext) + "-section" + ext
}

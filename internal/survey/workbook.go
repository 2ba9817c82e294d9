package survey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names read by LoadWorkbook
const (
	CrossSectionSheet = "CrossSection"
	LongitudinalSheet = "Longitudinal"
)

// LoadWorkbook reads a survey from an .xlsx workbook.
// Each sheet holds a header row followed by chainage (column A) and level
// (column B) rows. The Longitudinal sheet is optional; blank rows are skipped.
func LoadWorkbook(filename string) (SiteSurvey, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return SiteSurvey{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	cross, err := readStations(f, CrossSectionSheet)
	if err != nil {
		return SiteSurvey{}, err
	}
	if len(cross) == 0 {
		return SiteSurvey{}, &ValidationError{fmt.Sprintf("sheet %q has no stations", CrossSectionSheet)}
	}

	var long []Station
	if idx, _ := f.GetSheetIndex(LongitudinalSheet); idx >= 0 {
		long, err = readStations(f, LongitudinalSheet)
		if err != nil {
			return SiteSurvey{}, err
		}
	}

	return New(cross, long)
}

// WriteWorkbook saves a survey in the layout LoadWorkbook reads
func WriteWorkbook(s SiteSurvey, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CrossSectionSheet); err != nil {
		return err
	}
	if err := writeStations(f, CrossSectionSheet, s.crossSection); err != nil {
		return err
	}
	if len(s.longitudinal) > 0 {
		if _, err := f.NewSheet(LongitudinalSheet); err != nil {
			return err
		}
		if err := writeStations(f, LongitudinalSheet, s.longitudinal); err != nil {
			return err
		}
	}

	return f.SaveAs(filename)
}

func readStations(f *excelize.File, sheet string) ([]Station, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	var stations []Station
	for i, row := range rows {
		if i == 0 || len(row) == 0 || strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		if len(row) < 2 {
			return nil, &ValidationError{fmt.Sprintf("sheet %q row %d: expected chainage and level", sheet, i+1)}
		}
		chainage, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, &ValidationError{fmt.Sprintf("sheet %q row %d: bad chainage %q", sheet, i+1, row[0])}
		}
		level, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, &ValidationError{fmt.Sprintf("sheet %q row %d: bad level %q", sheet, i+1, row[1])}
		}
		stations = append(stations, Station{Chainage: chainage, Level: level})
	}
	return stations, nil
}

func writeStations(f *excelize.File, sheet string, stations []Station) error {
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Chainage (m)", "Level (m)"}); err != nil {
		return err
	}
	for i, st := range stations {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{st.Chainage, st.Level}); err != nil {
			return err
		}
	}
	return nil
}

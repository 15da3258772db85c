// Package dataset loads and normalizes the VAR team statistics table from
// CSV or XLSX sources.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/varscope/internal/model"
)

// Load reads the team table from path, choosing the parser by extension
// (.xlsx → Excel, anything else → CSV). The returned records are normalized:
// every numeric column is a finite float64, with unparseable cells zero-filled.
func Load(path string) ([]model.TeamRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	records, err := LoadCSV(f)
	if err != nil {
		return nil, err
	}

	zap.L().Info("dataset: loaded team table",
		zap.String("path", path),
		zap.Int("teams", len(records)),
	)
	return records, nil
}

// LoadCSV parses comma-separated team statistics from r.
// The first row is the header and must contain every required column.
func LoadCSV(r io.Reader) ([]model.TeamRecord, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // allow short rows; missing cells zero-fill

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read CSV header")
	}

	colIdx := mapColumns(header)
	if err := checkSchema(colIdx, model.RequiredColumns()); err != nil {
		return nil, err
	}

	var records []model.TeamRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "dataset: read CSV row")
		}
		records = append(records, buildRecord(record, colIdx))
	}

	return records, nil
}

// LoadXLSX parses team statistics from the first sheet of an Excel workbook.
// Row 0 is the header; remaining rows map to records the same way CSV rows do.
func LoadXLSX(path string) ([]model.TeamRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("dataset: %s has no sheets", path)
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("dataset: %s first sheet is empty", path)
	}

	headerRow := sheet.Rows[0]
	header := make([]string, len(headerRow.Cells))
	for i, cell := range headerRow.Cells {
		header[i] = strings.TrimSpace(cell.String())
	}

	colIdx := mapColumns(header)
	if err := checkSchema(colIdx, model.RequiredColumns()); err != nil {
		return nil, err
	}

	var records []model.TeamRecord
	for rowIdx := 1; rowIdx < len(sheet.Rows); rowIdx++ {
		row := sheet.Rows[rowIdx]
		record := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			record[i] = strings.TrimSpace(cell.String())
		}
		records = append(records, buildRecord(record, colIdx))
	}

	zap.L().Info("dataset: loaded team table",
		zap.String("path", path),
		zap.Int("teams", len(records)),
	)
	return records, nil
}

// buildRecord converts one raw row into a normalized TeamRecord.
// Numeric cells that fail conversion become 0; this is deliberate data
// cleaning, not swallowed error handling.
func buildRecord(record []string, colIdx map[string]int) model.TeamRecord {
	num := func(col string) float64 {
		return parseFloat64Or(trimQuotes(getCol(record, colIdx, col)), 0)
	}
	return model.TeamRecord{
		Team:                       trimQuotes(getCol(record, colIdx, model.ColTeam)),
		Overturns:                  num(model.ColOverturns),
		LeadingToGoalsFor:          num(model.ColLeadingToGoalsFor),
		DisallowedGoalsFor:         num(model.ColDisallowedGoalsFor),
		LeadingToGoalsAgainst:      num(model.ColLeadingToGoalsAgainst),
		DisallowedGoalsAgainst:     num(model.ColDisallowedGoalsAgainst),
		NetGoalScore:               num(model.ColNetGoalScore),
		SubjectiveDecisionsFor:     num(model.ColSubjectiveDecisionsFor),
		SubjectiveDecisionsAgainst: num(model.ColSubjectiveDecisionsAgainst),
		NetSubjectiveScore:         num(model.ColNetSubjectiveScore),
	}
}

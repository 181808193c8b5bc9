package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"scheduleSheet/internal/logger"
	"scheduleSheet/internal/schedule"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// headerScanDepth is how many leading rows are considered for the header row
const headerScanDepth = 5

// dateLayouts are tried in order on the date part of formatted date cells.
// Single-digit month and day layouts also accept two digits.
var dateLayouts = []string{"2006-1-2", "2006/1/2", "1/2/2006", "1-2-2006"}

// ReadResult is a schedule sheet read back from a workbook
type ReadResult struct {
	File      string
	Sheet     string
	HeaderRow int
	Headers   []string
	Matched   map[string]int
	Unmatched []string
	Records   []schedule.Record
	Skipped   int
}

// ReadSchedule reads the first sheet of filePath as a schedule table.
// overrides maps header text to a field key and takes precedence over
// keyword matching.
func ReadSchedule(filePath string, fields []schedule.Field, overrides map[string]string) (*ReadResult, error) {
	editor, err := OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer editor.Close()

	sheet := editor.FirstSheet()
	rows, err := editor.GetAllRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %s: %v", sheet, err)
	}
	rawRows, err := editor.GetAllRawRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw rows of %s: %v", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s of %s is empty", sheet, filepath.Base(filePath))
	}

	headerRow := findHeaderRow(rows)
	headers := trimAll(rows[headerRow])

	matched := schedule.MatchHeaders(headers, fields)
	applyOverrides(matched, headers, fields, overrides)

	result := &ReadResult{
		File:      filePath,
		Sheet:     sheet,
		HeaderRow: headerRow + 1,
		Headers:   headers,
		Matched:   matched,
		Unmatched: schedule.UnmatchedHeaders(headers, matched),
	}

	logger.Debug("Resolved schedule headers",
		"file", filepath.Base(filePath),
		"header_row", result.HeaderRow,
		"matched", len(matched),
		"unmatched", len(result.Unmatched))

	for i := headerRow + 1; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}

		var raw []string
		if i < len(rawRows) {
			raw = rawRows[i]
		}

		record := make(schedule.Record, len(matched))
		for _, field := range fields {
			col, ok := matched[field.Key]
			if !ok {
				continue
			}
			formatted := cellAt(rows[i], col)
			numeric := field.Kind == schedule.KindDate && editor.isNumericCell(sheet, cellName(col+1, i+1))
			record[field.Key] = cellToValue(field, formatted, cellAt(raw, col), numeric)
		}

		completed, ok := schedule.Complete(record)
		if !ok {
			result.Skipped++
			logger.Debug("Skipping row without environment or task", "row", i+1)
			continue
		}
		result.Records = append(result.Records, completed)
	}

	if len(result.Records) == 0 {
		return result, fmt.Errorf("no schedule records found in %s", filepath.Base(filePath))
	}

	logger.Info("Read schedule workbook",
		"file", filePath,
		"records", len(result.Records),
		"skipped", result.Skipped)
	return result, nil
}

// ReadSchedulesInDirectory reads every .xlsx file under dir, skipping files
// that fail with a warning
func ReadSchedulesInDirectory(dir string, fields []schedule.Field, overrides map[string]string) ([]*ReadResult, error) {
	xlsxFiles, err := getXlsxFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get xlsx files: %v", err)
	}

	var results []*ReadResult
	for _, filePath := range xlsxFiles {
		result, err := ReadSchedule(filePath, fields, overrides)
		if err != nil {
			logger.Warn("Failed to read schedule", "file", filePath, "error", err)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// getXlsxFiles returns all .xlsx files in the specified directory
func getXlsxFiles(dir string) ([]string, error) {
	var xlsxFiles []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip Excel lock files
		if strings.HasPrefix(info.Name(), "~$") {
			return nil
		}

		if !info.IsDir() && strings.ToLower(filepath.Ext(path)) == ".xlsx" {
			xlsxFiles = append(xlsxFiles, path)
		}

		return nil
	})

	return xlsxFiles, err
}

// findHeaderRow picks the leading row with the most non-empty cells
func findHeaderRow(rows [][]string) int {
	best, bestCount := 0, 0
	for i := 0; i < len(rows) && i < headerScanDepth; i++ {
		count := 0
		for _, cell := range rows[i] {
			if strings.TrimSpace(cell) != "" {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = i, count
		}
	}
	return best
}

func applyOverrides(matched map[string]int, headers []string, fields []schedule.Field, overrides map[string]string) {
	for index, header := range headers {
		key, ok := overrides[header]
		if !ok {
			continue
		}
		if _, known := schedule.FieldByKey(fields, key); !known {
			continue
		}
		// Release whatever the column or the field was bound to
		for k, i := range matched {
			if i == index {
				delete(matched, k)
			}
		}
		matched[key] = index
	}
}

// isNumericCell reports whether a cell holds a number rather than text,
// which is when an Excel date serial may be read from it
func (e *Editor) isNumericCell(sheet, cell string) bool {
	cellType, err := e.GetCellDataType(sheet, cell)
	if err != nil {
		return false
	}
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeBool, excelize.CellTypeError:
		return false
	}
	return true
}

func cellToValue(field schedule.Field, formatted, raw string, numeric bool) schedule.Value {
	formatted = strings.TrimSpace(formatted)
	if field.Kind != schedule.KindDate || formatted == "" {
		return schedule.Text(formatted)
	}
	if t, ok := parseDate(formatted, strings.TrimSpace(raw), numeric); ok {
		return schedule.DateOf(t)
	}
	logger.Warn("Unparseable date cell kept as text", "field", field.Key, "value", formatted)
	return schedule.Text(formatted)
}

// parseDate reads the leading date of formatted, ignoring any time of day.
// Serial numbers are only accepted from numeric cells.
func parseDate(formatted, raw string, numeric bool) (time.Time, bool) {
	datePart := formatted
	if i := strings.IndexAny(datePart, " T"); i > 0 {
		datePart = datePart[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, datePart); err == nil {
			return t, true
		}
	}
	if !numeric {
		return time.Time{}, false
	}
	for _, s := range []string{raw, formatted} {
		serial, err := strconv.ParseFloat(s, 64)
		if err != nil || serial <= 0 {
			continue
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func trimAll(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

package excel

import (
	"fmt"
	"scheduleSheet/internal/logger"
	"scheduleSheet/internal/schedule"
)

// WriteTable lays a schedule table onto the editor's first sheet.
// Row 1 carries the styled headers and each record follows in field order;
// date values become date cells with the style's date format.
func (e *Editor) WriteTable(table schedule.Table, style Style) error {
	lastCol := len(table.Fields)
	if lastCol == 0 {
		return fmt.Errorf("table has no fields")
	}

	sheet := e.FirstSheet()
	if table.Title != "" {
		if err := e.RenameSheet(sheet, table.Title); err != nil {
			return err
		}
		sheet = table.Title
	}

	ids, err := e.registerStyles(style)
	if err != nil {
		return err
	}

	for col, header := range table.Headers() {
		if err := e.SetCellValue(sheet, cellName(col+1, 1), header); err != nil {
			return fmt.Errorf("failed to write header %s: %v", header, err)
		}
	}
	if err := e.SetCellStyle(sheet, cellName(1, 1), cellName(lastCol, 1), ids.header); err != nil {
		return fmt.Errorf("failed to style header row: %v", err)
	}
	if err := e.SetRowHeight(sheet, 1, style.HeaderRowHeight); err != nil {
		return fmt.Errorf("failed to set header row height: %v", err)
	}

	for i, record := range table.Records {
		row := i + 2
		for col, value := range table.Row(record) {
			cell := cellName(col+1, row)
			if err := e.SetCellValue(sheet, cell, value.CellValue()); err != nil {
				return fmt.Errorf("failed to write cell %s: %v", cell, err)
			}

			styleID := ids.text
			if value.IsDate() {
				styleID = ids.date
			}
			if err := e.SetCellStyle(sheet, cell, cell, styleID); err != nil {
				return fmt.Errorf("failed to style cell %s: %v", cell, err)
			}
		}

		if err := e.SetRowHeight(sheet, row, style.DataRowHeight); err != nil {
			return fmt.Errorf("failed to set height of row %d: %v", row, err)
		}
	}

	for col, field := range table.Fields {
		if field.Width <= 0 {
			continue
		}
		if err := e.SetColumnWidth(sheet, columnName(col+1), field.Width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %v", field.Header, err)
		}
	}

	logger.Debug("Wrote schedule table",
		"sheet", sheet,
		"columns", lastCol,
		"records", len(table.Records))
	return nil
}

// GenerateFile writes table into a new workbook saved at outputPath
func GenerateFile(outputPath string, table schedule.Table, style Style) error {
	editor := CreateNewFile()
	defer editor.Close()

	if err := editor.WriteTable(table, style); err != nil {
		return err
	}

	if err := editor.SaveAs(outputPath); err != nil {
		logger.Error("Failed to save workbook", "path", outputPath, "error", err)
		return fmt.Errorf("failed to save %s: %v", outputPath, err)
	}

	logger.Info("Generated schedule workbook",
		"path", outputPath,
		"sheet", table.Title,
		"records", len(table.Records))
	return nil
}

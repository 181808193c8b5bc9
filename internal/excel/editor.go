package excel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

type Editor struct {
	file     *excelize.File
	filepath string
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// CreateNewFile creates a new Excel file in memory with a single default sheet
func CreateNewFile() *Editor {
	file := excelize.NewFile()
	return &Editor{
		file:     file,
		filepath: "",
	}
}

// FirstSheet returns the name of the first sheet in the workbook
func (e *Editor) FirstSheet() string {
	sheets := e.file.GetSheetList()
	if len(sheets) == 0 {
		return ""
	}
	return sheets[0]
}

// RenameSheet changes a sheet's title
func (e *Editor) RenameSheet(from, to string) error {
	if from == to {
		return nil
	}
	if err := e.file.SetSheetName(from, to); err != nil {
		return fmt.Errorf("failed to rename sheet %s to %s: %v", from, to, err)
	}
	return nil
}

// SetCellValue sets a value in a specific cell
func (e *Editor) SetCellValue(sheet, cell string, value interface{}) error {
	return e.file.SetCellValue(sheet, cell, value)
}

// SetCellStyle applies a style to every cell in the given range
func (e *Editor) SetCellStyle(sheet, topLeft, bottomRight string, styleID int) error {
	return e.file.SetCellStyle(sheet, topLeft, bottomRight, styleID)
}

// NewStyle registers a style with the workbook and returns its ID
func (e *Editor) NewStyle(style *excelize.Style) (int, error) {
	return e.file.NewStyle(style)
}

// SetColumnWidth sets the width of a single column
func (e *Editor) SetColumnWidth(sheet, column string, width float64) error {
	return e.file.SetColWidth(sheet, column, column, width)
}

// SetRowHeight sets the height of a row (1-based)
func (e *Editor) SetRowHeight(sheet string, row int, height float64) error {
	return e.file.SetRowHeight(sheet, row, height)
}

// GetCellValue returns the formatted value in a specific cell
func (e *Editor) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell)
}

// GetCellDataType returns the stored data type of a cell
func (e *Editor) GetCellDataType(sheet, cell string) (excelize.CellType, error) {
	return e.file.GetCellType(sheet, cell)
}

// GetAllRows returns all rows from a sheet with number formats applied
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

// GetAllRawRows returns all rows from a sheet as stored, e.g. dates as serial numbers
func (e *Editor) GetAllRawRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet, excelize.Options{RawCellValue: true})
}

// SaveAs saves the Excel file with a new name, creating its directory if needed
func (e *Editor) SaveAs(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %v", err)
		}
	}
	e.filepath = path
	return e.file.SaveAs(path)
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}

// cellName converts 1-based column and row numbers to an A1 reference
func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		panic(err)
	}
	return name
}

// columnName converts a 1-based column number to its letter
func columnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		panic(err)
	}
	return name
}

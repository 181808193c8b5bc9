package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Style holds the cosmetic settings of a generated schedule sheet
type Style struct {
	HeaderFill      string
	HeaderFontColor string
	HeaderFontSize  float64
	HeaderRowHeight float64
	DataRowHeight   float64
	DateFormat      string
}

// DefaultStyle is a blue header band over left-aligned wrapped data rows
func DefaultStyle() Style {
	return Style{
		HeaderFill:      "4472C4",
		HeaderFontColor: "FFFFFF",
		HeaderFontSize:  12,
		HeaderRowHeight: 25,
		DataRowHeight:   20,
		DateFormat:      "yyyy-mm-dd",
	}
}

// styleIDs are the workbook-registered styles used by the table writer
type styleIDs struct {
	header int
	text   int
	date   int
}

func (e *Editor) registerStyles(s Style) (styleIDs, error) {
	var ids styleIDs
	var err error

	ids.header, err = e.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  s.HeaderFontSize,
			Color: s.HeaderFontColor,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{s.HeaderFill},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return ids, fmt.Errorf("failed to create header style: %v", err)
	}

	dataAlignment := &excelize.Alignment{
		Horizontal: "left",
		Vertical:   "center",
		WrapText:   true,
	}

	ids.text, err = e.NewStyle(&excelize.Style{
		Alignment: dataAlignment,
	})
	if err != nil {
		return ids, fmt.Errorf("failed to create text style: %v", err)
	}

	dateFormat := s.DateFormat
	ids.date, err = e.NewStyle(&excelize.Style{
		Alignment:    dataAlignment,
		CustomNumFmt: &dateFormat,
	})
	if err != nil {
		return ids, fmt.Errorf("failed to create date style: %v", err)
	}

	return ids, nil
}

package export

import (
	"bytes"
	"fmt"
	"strings"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"flywaydeck/deck"
)

// ExcelService writes the comparison table to a workbook using GoExcel
type ExcelService struct{}

// NewExcelService creates a new Excel service
func NewExcelService() *ExcelService {
	return &ExcelService{}
}

// ExportComparison exports the deck's comparison table to XLSX.
func (s *ExcelService) ExportComparison(d *deck.Deck) ([]byte, error) {
	src, _ := d.TableSlide()
	if src == nil || src.Table == nil || src.Table.Cols() == 0 {
		return nil, fmt.Errorf("no table data to export")
	}
	tbl := src.Table

	wb := gospreadsheet.New()
	ws := wb.GetActiveSheet()
	ws.SetTitle("Comparison")

	// GoExcel colours are RGB without alpha
	headerFill := strings.TrimPrefix(tbl.HeaderFill, "FF")
	keyFill := strings.TrimPrefix(tbl.KeyColumnFill, "FF")

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: headerFill,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
		})

	cellBorders := &gospreadsheet.Borders{
		Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
	}

	keyStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{Bold: true, Size: 10}).
		SetFill(&gospreadsheet.Fill{Type: "solid", Color: keyFill}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(cellBorders)

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{Size: 10}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(cellBorders)

	for r := 0; r < tbl.Rows(); r++ {
		for c := 0; c < tbl.Cols(); c++ {
			cellName, _ := gospreadsheet.CellName(r, c)
			ws.SetCellValue(cellName, tbl.Cell(r, c))
			switch {
			case r == 0:
				ws.SetCellStyle(cellName, headerStyle)
			case c == 0:
				ws.SetCellStyle(cellName, keyStyle)
			default:
				ws.SetCellStyle(cellName, dataStyle)
			}
		}
		if r == 0 {
			ws.SetRowHeight(r, 25)
		} else {
			ws.SetRowHeight(r, 20)
		}
	}

	for c := 0; c < tbl.Cols(); c++ {
		width := 12.0
		for r := 0; r < tbl.Rows(); r++ {
			if w := float64(len([]rune(tbl.Cell(r, c)))) * 1.4; w > width {
				width = w
			}
		}
		ws.SetColumnWidth(c, width)
	}

	ws.FreezePane("A2")

	wb.Properties.Title = src.Title
	wb.Properties.Creator = d.Creator
	wb.Properties.Subject = d.Title

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

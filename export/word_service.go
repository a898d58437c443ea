package export

import (
	"fmt"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"flywaydeck/deck"
)

// WordService renders a speaker handout using GoWord
type WordService struct{}

// NewWordService creates a new Word service
func NewWordService() *WordService {
	return &WordService{}
}

// ExportHandout writes every slide as a heading followed by its body or table.
func (s *WordService) ExportHandout(d *deck.Deck) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	doc := goword.New()
	doc.Properties.Title = d.Title
	doc.Properties.Creator = d.Creator
	doc.Properties.Description = "Speaker handout"

	sec := doc.AddSection()
	sec.AddTitle(d.Title, 1)

	for i := range d.Slides {
		sl := &d.Slides[i]
		sec.AddText(fmt.Sprintf("Slide %d: %s", i+1, sl.Title),
			&style.FontStyle{Bold: true, Size: 14, Color: "1E40AF"},
			&style.ParagraphStyle{SpaceAfter: 120})

		if tbl := sl.Table; tbl != nil {
			colWidthTotal := 9000
			colWidth := colWidthTotal / tbl.Cols()

			ts := &style.TableStyle{Width: colWidthTotal, Alignment: "center"}
			ts.SetAllBorders("single", 4, "D9D9D9")
			t := sec.AddTable(ts)
			t.Grid = make([]int, tbl.Cols())
			for i := range t.Grid {
				t.Grid[i] = colWidth
			}

			headerFill := strings.TrimPrefix(tbl.HeaderFill, "FF")
			keyFill := strings.TrimPrefix(tbl.KeyColumnFill, "FF")

			headerRow := t.AddRow(0, &style.RowStyle{IsHeader: true})
			for c := 0; c < tbl.Cols(); c++ {
				headerRow.AddCell(colWidth, &style.CellStyle{
					Shading: &style.Shading{Fill: headerFill},
				}).AddText(tbl.Cell(0, c), &style.FontStyle{Bold: true, Size: 10, Color: "FFFFFF"}, nil)
			}
			for r := 1; r < tbl.Rows(); r++ {
				row := t.AddRow(0, nil)
				row.AddCell(colWidth, &style.CellStyle{
					Shading: &style.Shading{Fill: keyFill},
				}).AddText(tbl.Cell(r, 0), &style.FontStyle{Bold: true, Size: 10}, nil)
				for c := 1; c < tbl.Cols(); c++ {
					row.AddCell(colWidth, nil).AddText(tbl.Cell(r, c), &style.FontStyle{Size: 10}, nil)
				}
			}
			sec.AddTextBreak(1)
		}

		for _, line := range sl.Lines() {
			if strings.TrimSpace(line) == "" {
				sec.AddTextBreak(1)
				continue
			}
			sec.AddText(line, &style.FontStyle{Size: 11, Color: "334155"}, nil)
		}
		sec.AddTextBreak(1)
	}

	out, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}
	return out, nil
}

package export

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// TableSummary is a table shape read back from a slide.
type TableSummary struct {
	Rows  int
	Cols  int
	Cells [][]string
	// Fills holds each cell's solid fill as RGB hex, "" when unfilled.
	Fills [][]string
}

// SlideSummary is the text found on one slide. Title is the first non-empty
// paragraph; Texts holds the rest in shape order. Table text is kept apart
// in Tables.
type SlideSummary struct {
	Title  string
	Texts  []string
	Fonts  []string // font name per entry in Texts
	Tables []TableSummary
}

// Summary describes a PPTX file read back from disk.
type Summary struct {
	Slides []SlideSummary
}

// Titles lists slide titles in order.
func (s *Summary) Titles() []string {
	titles := make([]string, len(s.Slides))
	for i, sl := range s.Slides {
		titles[i] = sl.Title
	}
	return titles
}

// InspectPPTX reads a PPTX file and extracts per-slide text and tables
func InspectPPTX(path string) (*Summary, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT file: %w", err)
	}

	summary := &Summary{}
	for _, slide := range pres.GetAllSlides() {
		var ss SlideSummary
		for _, shape := range slide.GetShapes() {
			switch sh := shape.(type) {
			case *ppt.RichTextShape:
				for _, para := range sh.GetParagraphs() {
					text, font := paragraphText(para)
					if text == "" {
						continue
					}
					if ss.Title == "" {
						ss.Title = text
					} else {
						ss.Texts = append(ss.Texts, text)
						ss.Fonts = append(ss.Fonts, font)
					}
				}
			case *ppt.TableShape:
				ss.Tables = append(ss.Tables, tableSummary(sh))
			}
		}
		summary.Slides = append(summary.Slides, ss)
	}
	return summary, nil
}

// paragraphText joins the runs of a paragraph and returns the first run's font.
func paragraphText(para *ppt.Paragraph) (string, string) {
	var text, font string
	for _, elem := range para.GetElements() {
		run, ok := elem.(*ppt.TextRun)
		if !ok {
			continue
		}
		if font == "" && run.GetFont() != nil {
			font = run.GetFont().Name
		}
		text += run.GetText()
	}
	return strings.TrimSpace(text), font
}

func tableSummary(t *ppt.TableShape) TableSummary {
	ts := TableSummary{Rows: t.GetNumRows(), Cols: t.GetNumCols()}
	for r := 0; r < ts.Rows; r++ {
		cells := make([]string, ts.Cols)
		fills := make([]string, ts.Cols)
		for c := 0; c < ts.Cols; c++ {
			cell := t.GetCell(r, c)
			if cell == nil {
				continue
			}
			var parts []string
			for _, para := range cell.GetParagraphs() {
				if text, _ := paragraphText(para); text != "" {
					parts = append(parts, text)
				}
			}
			cells[c] = strings.Join(parts, "\n")
			if f := cell.GetFill(); f != nil && f.Type == ppt.FillSolid {
				fills[c] = fmt.Sprintf("%02X%02X%02X",
					f.Color.GetRed(), f.Color.GetGreen(), f.Color.GetBlue())
			}
		}
		ts.Cells = append(ts.Cells, cells)
		ts.Fills = append(ts.Fills, fills)
	}
	return ts
}

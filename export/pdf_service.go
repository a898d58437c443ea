package export

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"flywaydeck/deck"
)

// PDFService renders a printable handout using maroto
type PDFService struct{}

// NewPDFService creates a new PDF service
func NewPDFService() *PDFService {
	return &PDFService{}
}

// The core Arial font only covers Latin-1, so status marks and arrows are
// spelled out and anything else outside that range is dropped.
var pdfReplacer = strings.NewReplacer(
	"✅", "[yes]",
	"❌", "[no]",
	"⚠️", "[!]",
	"⚠", "[!]",
	"→", "->",
	"↓", "v",
	"•", "-",
	" ⚡", "",
	"⚡", "",
	"🚀 ", "",
	"📦 ", "",
	"🔄 ", "",
	"🚀", "",
	"📦", "",
	"🔄", "",
)

// PDFText normalises s to what the handout font can draw.
func PDFText(s string) string {
	s = pdfReplacer.Replace(s)
	t := transform.Chain(
		norm.NFC,
		runes.Remove(runes.Predicate(func(r rune) bool {
			return r > unicode.MaxLatin1
		})),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return strings.TrimRight(out, " \t")
}

// ExportHandout writes one section per slide.
func (s *PDFService) ExportHandout(d *deck.Deck) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(20,
		col.New(12).Add(
			text.New(PDFText(d.Title), props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  &props.Color{Red: 30, Green: 64, Blue: 175},
			}),
		),
	)

	for i := range d.Slides {
		sl := &d.Slides[i]
		m.AddRow(10,
			col.New(12).Add(
				text.New(fmt.Sprintf("%d. %s", i+1, PDFText(sl.Title)), props.Text{
					Family: fontfamily.Arial,
					Size:   12,
					Style:  fontstyle.Bold,
					Color:  &props.Color{Red: 59, Green: 130, Blue: 246},
				}),
			),
		)

		if sl.Table != nil {
			s.addTable(m, sl.Table)
		}

		for _, line := range sl.Lines() {
			line = PDFText(line)
			if line == "" {
				m.AddRow(3)
				continue
			}
			m.AddRow(6,
				col.New(12).Add(
					text.New(line, props.Text{
						Family: fontfamily.Arial,
						Size:   9,
					}),
				),
			)
		}
		m.AddRow(5)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return document.GetBytes(), nil
}

func (s *PDFService) addTable(m core.Maroto, tbl *deck.Table) {
	colWidth := 12 / tbl.Cols()
	header := &props.Cell{BackgroundColor: pdfColor(tbl.HeaderFill)}
	key := &props.Cell{BackgroundColor: pdfColor(tbl.KeyColumnFill)}
	for r := 0; r < tbl.Rows(); r++ {
		cols := make([]core.Col, 0, tbl.Cols())
		for c := 0; c < tbl.Cols(); c++ {
			p := props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Align:  align.Center,
			}
			if r == 0 || c == 0 {
				p.Style = fontstyle.Bold
			}
			if c == 0 {
				p.Align = align.Left
			}
			if r == 0 {
				p.Color = &props.Color{Red: 255, Green: 255, Blue: 255}
			}
			cell := col.New(colWidth).Add(text.New(PDFText(tbl.Cell(r, c)), p))
			switch {
			case r == 0:
				cell.WithStyle(header)
			case c == 0:
				cell.WithStyle(key)
			}
			cols = append(cols, cell)
		}
		m.AddRow(7, cols...)
	}
	m.AddRow(4)
}

// pdfColor converts an ARGB hex fill such as "FF4472C4" to a maroto color.
// Alpha is ignored.
func pdfColor(argb string) *props.Color {
	v, err := strconv.ParseUint(argb, 16, 32)
	if err != nil {
		return nil
	}
	return &props.Color{
		Red:   int(v>>16&0xFF),
		Green: int(v>>8&0xFF),
		Blue:  int(v & 0xFF),
	}
}

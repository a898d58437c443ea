package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"flywaydeck/deck"
)

// ErrBackendUnavailable means the PowerPoint writer could not be created.
var ErrBackendUnavailable = errors.New("presentation backend unavailable")

// BackendModule is the module users install when the backend is missing.
const BackendModule = "github.com/VantageDataChat/GoPPT"

// WriterFactory builds the PPTX writer for a presentation.
type WriterFactory func(p *ppt.Presentation) (*ppt.PPTXWriter, error)

// PPTService renders a deck to PowerPoint using GoPPT
type PPTService struct {
	newWriter WriterFactory
}

// NewPPTService creates a new PPT service
func NewPPTService() *PPTService {
	return &PPTService{newWriter: defaultWriter}
}

// WithWriterFactory replaces how the PPTX writer is built.
func (s *PPTService) WithWriterFactory(f WriterFactory) *PPTService {
	s.newWriter = f
	return s
}

func defaultWriter(p *ppt.Presentation) (*ppt.PPTXWriter, error) {
	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, err
	}
	pw, ok := w.(*ppt.PPTXWriter)
	if !ok {
		return nil, fmt.Errorf("unexpected writer type %T", w)
	}
	return pw, nil
}

// 16:9 layout
const (
	emuPerInch = 914400

	gopptMarginLeft = int64(0.4 * emuPerInch)

	gopptContentWidth = int64(9.2 * emuPerInch)
	gopptSlideWidth   = int64(10.0 * emuPerInch)

	// font sizes (pt)
	gopptFontTitle     = 36
	gopptFontSubtitle  = 20
	gopptFontHeading   = 28
	gopptFontBody      = 14
	gopptFontDense     = 12
	gopptFontTableHead = 12
	gopptFontTableCell = 11
	gopptFontSpacer    = 6

	// bodies longer than this drop to the dense font size
	gopptDenseLines = 12

	monospaceFont = "Courier New"
)

// comparison table grid (inches)
const (
	tableLeft   = 0.5
	tableTop    = 1.5
	tableWidth  = 9.0
	tableHeight = 3.5
)

const (
	colorAccent  = "FF3B82F6"
	colorHeading = "FF1E40AF"
	colorBody    = "FF334155"
	colorMuted   = "FF475569"
)

func inches(v float64) int64 {
	return int64(v * emuPerInch)
}

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// Render validates the deck and returns the PPTX bytes.
func (s *PPTService) Render(d *deck.Deck) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = d.Title
	p.GetDocumentProperties().Creator = d.Creator

	for i := range d.Slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		src := &d.Slides[i]
		switch src.Kind {
		case deck.KindTitle:
			s.addTitleSlide(slide, src)
		case deck.KindTable:
			s.addTableSlide(slide, src)
		default:
			s.addBulletSlide(slide, src)
		}
	}

	w, err := s.newWriter(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	var buf bytes.Buffer
	if err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

// Save renders the deck and writes it to dir/name, returning the path.
func (s *PPTService) Save(d *deck.Deck, dir, name string) (string, error) {
	data, err := s.Render(d)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func (s *PPTService) addAccentBar(slide *ppt.Slide, y, height float64) {
	bar := slide.CreateRichTextShape()
	bar.SetOffsetX(0).SetOffsetY(inches(y))
	bar.SetWidth(gopptSlideWidth).SetHeight(inches(height))
	bar.SetFill(solidFill(colorAccent))
}

// addTitleSlide lays out the opening slide: centred title, subtitle lines.
func (s *PPTService) addTitleSlide(slide *ppt.Slide, src *deck.Slide) {
	s.addAccentBar(slide, 0, 0.15)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(1.4))
	titleShape.SetWidth(gopptContentWidth).SetHeight(inches(1.0))
	tr := titleShape.CreateTextRun(src.Title)
	tr.GetFont().SetSize(gopptFontTitle).SetBold(true).SetColor(ppt.NewColor(colorHeading))
	alignCenter(titleShape.GetActiveParagraph())

	if lines := src.Lines(); len(lines) > 0 {
		subShape := slide.CreateRichTextShape()
		subShape.SetOffsetX(inches(1.0)).SetOffsetY(inches(2.6))
		subShape.SetWidth(inches(8.0)).SetHeight(inches(1.6))
		for i, line := range lines {
			if i > 0 {
				subShape.CreateParagraph()
			}
			if strings.TrimSpace(line) == "" {
				subShape.CreateTextRun(" ").GetFont().SetSize(gopptFontSpacer)
				continue
			}
			run := subShape.CreateTextRun(line)
			run.GetFont().SetSize(gopptFontSubtitle).SetColor(ppt.NewColor(colorMuted))
			alignCenter(subShape.GetActiveParagraph())
		}
	}

	s.addAccentBar(slide, 5.5, 0.125)
}

// addSlideHeader adds a consistent header to content slides
func (s *PPTService) addSlideHeader(slide *ppt.Slide, title string) {
	s.addAccentBar(slide, 0, 0.08)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(0.3))
	titleShape.SetWidth(gopptContentWidth).SetHeight(inches(0.6))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(gopptFontHeading).SetBold(true).SetColor(ppt.NewColor(colorHeading))
}

// addBulletSlide writes the body one paragraph per line.
func (s *PPTService) addBulletSlide(slide *ppt.Slide, src *deck.Slide) {
	s.addSlideHeader(slide, src.Title)

	lines := src.Lines()
	dense := len(lines) > gopptDenseLines

	body := slide.CreateRichTextShape()
	body.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(1.0))
	body.SetWidth(gopptContentWidth).SetHeight(inches(4.4))

	for i, line := range lines {
		if i > 0 {
			body.CreateParagraph()
		}
		if strings.TrimSpace(line) == "" {
			body.CreateTextRun(" ").GetFont().SetSize(gopptFontSpacer)
			continue
		}
		run := body.CreateTextRun(line)
		if dense {
			run.GetFont().SetSize(gopptFontDense)
		} else {
			run.GetFont().SetSize(gopptFontBody)
		}
		run.GetFont().SetColor(ppt.NewColor(colorBody))
		if src.IsMonospace(line) {
			run.GetFont().Name = monospaceFont
		}
	}
}

// addTableSlide places the comparison table as a native table shape.
func (s *PPTService) addTableSlide(slide *ppt.Slide, src *deck.Slide) {
	s.addSlideHeader(slide, src.Title)

	tbl := src.Table
	shape := slide.CreateTableShape(tbl.Rows(), tbl.Cols())
	shape.SetOffsetX(inches(tableLeft)).SetOffsetY(inches(tableTop))
	shape.SetWidth(inches(tableWidth)).SetHeight(inches(tableHeight))

	for r := 0; r < tbl.Rows(); r++ {
		for c := 0; c < tbl.Cols(); c++ {
			cell := shape.GetCell(r, c)
			cell.SetText(tbl.Cell(r, c))
			switch {
			case r == 0:
				cell.SetFill(solidFill(tbl.HeaderFill))
			case c == 0:
				cell.SetFill(solidFill(tbl.KeyColumnFill))
			}

			for _, para := range cell.GetParagraphs() {
				if r == 0 || c > 0 {
					alignCenter(para)
				}
				for _, elem := range para.GetElements() {
					run, ok := elem.(*ppt.TextRun)
					if !ok {
						continue
					}
					switch {
					case r == 0:
						run.GetFont().SetSize(gopptFontTableHead).SetBold(true).SetColor(ppt.ColorWhite)
					case c == 0:
						run.GetFont().SetSize(gopptFontTableCell).SetBold(true).SetColor(ppt.NewColor(colorBody))
					default:
						run.GetFont().SetSize(gopptFontTableCell).SetColor(ppt.NewColor(colorBody))
					}
				}
			}
		}
	}
}

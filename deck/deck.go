package deck

import (
	"errors"
	"fmt"
	"strings"
)

// SlideCount is the number of slides every generated deck carries.
const SlideCount = 10

// Kind selects how a slide is laid out.
type Kind int

const (
	KindTitle Kind = iota
	KindBullets
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindBullets:
		return "bullets"
	case KindTable:
		return "table"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Table is a header row plus data rows of literal strings.
type Table struct {
	Headers []string
	Data    [][]string

	// ARGB fills, e.g. "FF4472C4"
	HeaderFill    string
	KeyColumnFill string
}

// Rows counts the header row as a row.
func (t *Table) Rows() int {
	return len(t.Data) + 1
}

func (t *Table) Cols() int {
	return len(t.Headers)
}

// Cell returns the text at row/col where row 0 is the header row.
func (t *Table) Cell(row, col int) string {
	if col < 0 || col >= t.Cols() || row < 0 || row >= t.Rows() {
		return ""
	}
	if row == 0 {
		return t.Headers[col]
	}
	r := t.Data[row-1]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// Slide is one page: a title plus either body text or a table.
type Slide struct {
	Kind  Kind
	Title string
	Body  string
	Table *Table

	// Body lines containing any of these substrings are set in a monospace font.
	MonospaceMarkers []string
}

// Lines splits the body into display lines.
func (s *Slide) Lines() []string {
	if s.Body == "" {
		return nil
	}
	return strings.Split(s.Body, "\n")
}

// IsMonospace reports whether a body line should use the monospace font.
func (s *Slide) IsMonospace(line string) bool {
	for _, m := range s.MonospaceMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// Deck is the whole presentation.
type Deck struct {
	Title   string
	Creator string
	Slides  []Slide
}

// TableSlide returns the first slide that carries a table and its index.
func (d *Deck) TableSlide() (*Slide, int) {
	for i := range d.Slides {
		if d.Slides[i].Kind == KindTable {
			return &d.Slides[i], i
		}
	}
	return nil, -1
}

// Titles lists slide titles in order.
func (d *Deck) Titles() []string {
	titles := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		titles[i] = s.Title
	}
	return titles
}

var (
	ErrSlideCount   = errors.New("unexpected slide count")
	ErrEmptyTitle   = errors.New("slide has no title")
	ErrTableShape   = errors.New("table row does not match header width")
	ErrTableMissing = errors.New("deck has no table slide")
)

// Validate checks the fixed-deck invariants: slide count, non-empty titles,
// exactly one table slide and rectangular tables.
func (d *Deck) Validate() error {
	if len(d.Slides) != SlideCount {
		return fmt.Errorf("%w: got %d, want %d", ErrSlideCount, len(d.Slides), SlideCount)
	}
	tables := 0
	for i, s := range d.Slides {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("%w: slide %d", ErrEmptyTitle, i+1)
		}
		if s.Kind != KindTable {
			continue
		}
		tables++
		if s.Table == nil || s.Table.Cols() == 0 {
			return fmt.Errorf("%w: slide %d", ErrTableMissing, i+1)
		}
		for r, row := range s.Table.Data {
			if len(row) != s.Table.Cols() {
				return fmt.Errorf("%w: slide %d row %d has %d cells, want %d",
					ErrTableShape, i+1, r+1, len(row), s.Table.Cols())
			}
		}
	}
	if tables != 1 {
		return fmt.Errorf("%w: found %d table slides", ErrTableMissing, tables)
	}
	return nil
}

// ABOUTME: Printer renders a Table with lipgloss/table using a selectable frame style
// ABOUTME: Controls cell padding and whether the first row is separated as a header

package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Frame selects the glyphs drawn around and between cells.
type Frame int

const (
	FrameLine Frame = iota
	FrameBasic
	FrameRounded
	FrameThick
	FrameDouble
	FrameMinimal
)

var frameNames = map[string]Frame{
	"line":    FrameLine,
	"basic":   FrameBasic,
	"rounded": FrameRounded,
	"thick":   FrameThick,
	"double":  FrameDouble,
	"minimal": FrameMinimal,
}

// ParseFrame returns the Frame named s.
func ParseFrame(s string) (Frame, error) {
	f, ok := frameNames[strings.ToLower(s)]
	if !ok {
		return FrameLine, fmt.Errorf("pretty: unknown frame %q", s)
	}
	return f, nil
}

func (f Frame) border() lipgloss.Border {
	switch f {
	case FrameBasic:
		return lipgloss.ASCIIBorder()
	case FrameRounded:
		return lipgloss.RoundedBorder()
	case FrameThick:
		return lipgloss.ThickBorder()
	case FrameDouble:
		return lipgloss.DoubleBorder()
	case FrameMinimal:
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// Printer holds presentation settings. Use NewPrinter for the defaults.
type Printer struct {
	Frame           Frame
	Padding         int
	HeaderSeparator bool
}

// NewPrinter returns a Printer with line frames, one column of padding and
// a header separator.
func NewPrinter() Printer {
	return Printer{Frame: FrameLine, Padding: 1, HeaderSeparator: true}
}

// Render returns t as a multi-line string. The title, if any, is indented
// on its own line above the frame. An empty table renders as its title.
func (p Printer) Render(t *Table) string {
	var b strings.Builder
	if t.title != "" {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(t.title))
		b.WriteByte('\n')
	}
	if len(t.rows) == 0 {
		return b.String()
	}

	cell := lipgloss.NewStyle().Padding(0, max(p.Padding, 0))
	header := cell.Bold(true)

	tbl := table.New().
		Border(p.Frame.border()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	if p.HeaderSeparator {
		tbl = tbl.Headers(t.rows[0]...).Rows(t.rows[1:]...)
	} else {
		tbl = tbl.BorderHeader(false).Rows(t.rows...)
	}

	b.WriteString(tbl.String())
	b.WriteByte('\n')
	return b.String()
}

package glyph

import (
	"errors"
	"fmt"
	"strings"

	figure "github.com/common-nighthawk/go-figure"
	"github.com/mattn/go-runewidth"
)

// ErrRender is returned when text cannot be rendered in the requested font.
var ErrRender = errors.New("render error")

// Art is a block-letter rendering. All lines share the same display width.
type Art struct {
	lines []string
	width int
}

// Render draws text in the named figlet font.
func Render(text, font string) (Art, error) {
	if font == "" {
		return Art{}, fmt.Errorf("%w: font name is empty", ErrRender)
	}
	for _, r := range text {
		// go-figure exits the process on unsupported input in strict mode and
		// silently substitutes '?' otherwise.
		if r < ' ' || r > '~' {
			return Art{}, fmt.Errorf("%w: unsupported character %q in %q", ErrRender, r, text)
		}
	}

	rows, err := slicify(text, font)
	if err != nil {
		return Art{}, err
	}
	return newArt(rows)
}

func slicify(text, font string) (rows []string, err error) {
	// Unknown fonts panic inside go-figure.
	defer func() {
		if r := recover(); r != nil {
			rows = nil
			err = fmt.Errorf("%w: font %q: %v", ErrRender, font, r)
		}
	}()
	// Slicify omits all-blank rows below the baseline, so art ends on its
	// last inked row rather than at the font's full height.
	return figure.NewFigure(text, font, false).Slicify(), nil
}

func newArt(rows []string) (Art, error) {
	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row); w > width {
			width = w
		}
	}
	if width == 0 {
		return Art{}, fmt.Errorf("%w: empty output", ErrRender)
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row + strings.Repeat(" ", width-runewidth.StringWidth(row))
	}
	return Art{lines: lines, width: width}, nil
}

// Lines returns a copy of the rendered lines.
func (a Art) Lines() []string {
	out := make([]string, len(a.lines))
	copy(out, a.lines)
	return out
}

// Len returns the number of lines.
func (a Art) Len() int { return len(a.lines) }

// Width returns the display width shared by every line.
func (a Art) Width() int { return a.width }

// String joins the lines with newlines.
func (a Art) String() string { return strings.Join(a.lines, "\n") }

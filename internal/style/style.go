package style

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// reset matches what truecolor terminal writers emit after each styled run.
const reset = "\x1b[0m"

// Segment is a run of text drawn in a single foreground color.
type Segment struct {
	Text  string
	Color string
}

// Serializer turns segments into truecolor ANSI markup at a fixed column width.
type Serializer struct {
	width int
	seqs  map[string]string
}

// NewSerializer returns a serializer that wraps text at width columns.
// Colors are always written as 24-bit sequences so output does not depend on
// the terminal the process happens to run in.
func NewSerializer(width int) *Serializer {
	return &Serializer{width: width, seqs: make(map[string]string)}
}

// Width returns the column width rows are wrapped at.
func (s *Serializer) Width() int { return s.width }

// Serialize writes every segment as one or more styled rows, each terminated
// by a newline. Segments with an empty color are written unstyled.
func (s *Serializer) Serialize(w io.Writer, segs []Segment) error {
	var b strings.Builder
	for _, seg := range segs {
		seq, err := s.sequence(seg.Color)
		if err != nil {
			return err
		}
		for _, row := range s.rows(seg.Text) {
			if seq != "" {
				b.WriteString(seq)
				b.WriteString(row)
				b.WriteString(reset)
			} else {
				b.WriteString(row)
			}
			b.WriteByte('\n')
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing styled text: %w", err)
	}
	return nil
}

func (s *Serializer) sequence(hex string) (string, error) {
	if hex == "" {
		return "", nil
	}
	if seq, ok := s.seqs[hex]; ok {
		return seq, nil
	}

	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	seq := ansi.Style{}.ForegroundColor(c).String()
	s.seqs[hex] = seq
	return seq, nil
}

// ParseHex converts "#RRGGBB" or "#RGB" into an exact 24-bit color.
func ParseHex(hex string) (ansi.TrueColor, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return ansi.TrueColor(v), nil
}

func (s *Serializer) rows(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if s.width > 0 {
		text = ansi.Hardwrap(text, s.width, true)
	}
	return strings.Split(text, "\n")
}

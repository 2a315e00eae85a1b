package rotation

import "fmt"

// index returns the palette slot for a line in a frame: (line + frame) mod n.
// n must be positive. The result is never negative.
func index(line, frame, n int) int {
	idx := (line + frame) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// Pick returns the color assigned to a line in a frame.
func Pick(palette []string, line, frame int) (string, error) {
	if len(palette) == 0 {
		return "", fmt.Errorf("no colors available")
	}
	return palette[index(line, frame, len(palette))], nil
}

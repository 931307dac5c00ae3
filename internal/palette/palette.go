// Package palette assigns display colors to processes.
package palette

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Size is the number of distinct process colors before the palette cycles.
const Size = 8

var (
	entries = build()
	idle    = colorful.Color{R: 0.82, G: 0.82, B: 0.82}.Hex()
)

// hues are spread evenly around the wheel so neighbouring processes in the
// input list stay distinguishable on a Gantt chart.
func build() [Size]string {
	var out [Size]string
	for i := range out {
		out[i] = colorful.Hsv(float64(i)*360/Size, 0.55, 0.85).Hex()
	}
	return out
}

// ProcessColor returns the palette entry for the process at position index
// of the caller's list.
func ProcessColor(index int) string {
	if index < 0 {
		index = -index
	}
	return entries[index%Size]
}

// Idle is the color of idle timeline blocks.
func Idle() string {
	return idle
}

// Normalize parses a user supplied hex color ("#rgb" or "#rrggbb") and
// returns it in canonical lower-case "#rrggbb" form.
func Normalize(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c.Hex(), nil
}

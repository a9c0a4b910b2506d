// Package palette parses the colours used when drawing a frame: the clear
// colour behind the image, which also fills the letterbox/pillarbox bars.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultBackground is plain black.
const DefaultBackground = "#000000"

// ParseBackground parses a hex colour ("#rrggbb", "#rgb", with or without the
// leading '#') into an opaque RGBA colour.
func ParseBackground(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultBackground
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid background colour %q: %w", s, err)
	}
	c = c.Clamped()
	red, green, blue := c.RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 255}, nil
}

// Normalized returns the colour as [0,1] floats, as expected by glClearColor.
func Normalized(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, float32(c.A) / 255.0
}

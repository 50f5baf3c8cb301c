package labeling

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB colour
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// ParseColor parses "#rrggbb" or "#rgb" (the leading # is optional).
// Anything unparseable yields white.
func ParseColor(hex string) Color {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return White
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return White
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}

// Hex formats the colour as "#rrggbb"
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Package colorconv parses and converts colors between hex, RGB and HSL
// representations and renders swatch images.
package colorconv

import (
	"fmt"
	"math"
	"strings"
)

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// HSL is the hue/saturation/lightness form: H in degrees [0, 360), S and
// L in [0, 1].
type HSL struct {
	H, S, L float64
}

// Parse accepts "#rgb", "#rrggbb", "rgb(r, g, b)" or "hsl(h, s%, l%)".
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return ParseHex(s)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		var r, g, b int
		if _, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			if _, err := fmt.Sscanf(s, "rgb(%d, %d, %d)", &r, &g, &b); err != nil {
				return Color{}, fmt.Errorf("malformed rgb() color %q", s)
			}
		}
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			return Color{}, fmt.Errorf("rgb component out of range in %q", s)
		}
		return Color{uint8(r), uint8(g), uint8(b)}, nil
	case strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")"):
		var h, sat, l float64
		if _, err := fmt.Sscanf(s, "hsl(%g,%g%%,%g%%)", &h, &sat, &l); err != nil {
			if _, err := fmt.Sscanf(s, "hsl(%g, %g%%, %g%%)", &h, &sat, &l); err != nil {
				return Color{}, fmt.Errorf("malformed hsl() color %q", s)
			}
		}
		if sat < 0 || sat > 100 || l < 0 || l > 100 {
			return Color{}, fmt.Errorf("hsl component out of range in %q", s)
		}
		return FromHSL(HSL{H: math.Mod(math.Mod(h, 360)+360, 360), S: sat / 100, L: l / 100}), nil
	}
	return Color{}, fmt.Errorf("unrecognized color %q", s)
}

// ParseHex parses "#rgb" or "#rrggbb".
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("hex color must have 3 or 6 digits: %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{r, g, b}, nil
}

// Hex returns the "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the "rgb(r, g, b)" form.
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL converts to hue/saturation/lightness.
func (c Color) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l}
	}
	d := max - min
	s := d / (1 - math.Abs(2*l-1))

	var h float64
	switch max {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: s, L: l}
}

// FromHSL converts hue/saturation/lightness back to RGB.
func FromHSL(h HSL) Color {
	c := (1 - math.Abs(2*h.L-1)) * h.S
	x := c * (1 - math.Abs(math.Mod(h.H/60, 2)-1))
	m := h.L - c/2

	var r, g, b float64
	switch {
	case h.H < 60:
		r, g, b = c, x, 0
	case h.H < 120:
		r, g, b = x, c, 0
	case h.H < 180:
		r, g, b = 0, c, x
	case h.H < 240:
		r, g, b = 0, x, c
	case h.H < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	round := func(v float64) uint8 {
		return uint8(math.Round((v + m) * 255))
	}
	return Color{round(r), round(g), round(b)}
}

// String renders the "hsl(h, s%, l%)" form with rounded components.
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
		int(math.Round(h.H)), int(math.Round(h.S*100)), int(math.Round(h.L*100)))
}

package ggfu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// RGB is an opaque 8-bit color triple, the form GIMP color parameters take.
// Components are passed through uninterpreted.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
	Red   = RGB{255, 0, 0}

	// ShadowTone is the near-black used for drop shadows and the dark end
	// of the sphere gradient.
	ShadowTone = RGB{20, 20, 20}
)

// RGBA converts the color to a gg color with full opacity.
func (c RGB) RGBA() gg.RGBA {
	return gg.RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// String returns the color as #rrggbb.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseRGB.
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseRGB parses a color given as "#rgb", "#rrggbb", an "r,g,b" triple
// of 0-255 integers, or an SVG color name such as "steelblue".
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return RGB{}, fmt.Errorf("%w: empty color", ErrInvalidArgument)
	case strings.HasPrefix(s, "#"):
		return parseHexRGB(s[1:])
	case strings.Contains(s, ","):
		return parseTriple(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB{c.R, c.G, c.B}, nil
	}
	return RGB{}, fmt.Errorf("%w: unknown color %q", ErrInvalidArgument, s)
}

func parseHexRGB(hex string) (RGB, error) {
	if len(hex) != 3 && len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidArgument, "#"+hex)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return RGB{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidArgument, "#"+hex)
	}
	c := gg.Hex(hex)
	return RGB{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
	}, nil
}

func parseTriple(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: color triple %q needs 3 components", ErrInvalidArgument, s)
	}
	var v [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: color component %q: %v", ErrInvalidArgument, p, err)
		}
		v[i] = uint8(n)
	}
	return RGB{v[0], v[1], v[2]}, nil
}

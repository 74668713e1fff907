package sphere

import (
	"fmt"
	"math"

	"github.com/gogpu/ggfu"
)

// Spec is the input of one sphere render.
type Spec struct {
	// Radius of the sphere in pixels. Must be positive.
	Radius float64
	// LightAngle is the direction of the light in degrees, 0 pointing right
	// and increasing counter-clockwise. Any value is accepted and taken
	// modulo 360.
	LightAngle float64
	// Shadow enables the drop shadow.
	Shadow bool
	// Background fills the canvas.
	Background ggfu.RGB
	// Color is the sphere color at the highlight.
	Color ggfu.RGB
}

// DefaultSpec returns the script's registered defaults: radius 100, light
// at 45 degrees, shadow on, red sphere on white.
func DefaultSpec() Spec {
	return Spec{
		Radius:     100,
		LightAngle: 45,
		Shadow:     true,
		Background: ggfu.White,
		Color:      ggfu.Red,
	}
}

// Validate reports ggfu.ErrInvalidArgument for a radius that is not a
// positive finite number or whose canvas would overflow.
func (s Spec) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 1) {
		return fmt.Errorf("%w: sphere radius %g must be positive", ggfu.ErrInvalidArgument, s.Radius)
	}
	if math.IsInf(s.Radius*canvasWidth, 0) {
		return fmt.Errorf("%w: sphere radius %g overflows the canvas", ggfu.ErrInvalidArgument, s.Radius)
	}
	if math.IsNaN(s.LightAngle) || math.IsInf(s.LightAngle, 0) {
		return fmt.Errorf("%w: light angle %g", ggfu.ErrInvalidArgument, s.LightAngle)
	}
	return nil
}

// NormalizeAngle maps degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

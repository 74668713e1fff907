package sphere

import (
	"math"

	"github.com/gogpu/ggfu"
)

// Proportions in multiples of the radius.
const (
	canvasWidth   = 3.75
	canvasHeight  = 2.5
	lightDistance = 0.6
	gradientInset = 0.1
	shadowWidth   = 2.5
	shadowHeight  = 0.5
	shadowDrop    = 0.65
)

// ShadowFeather is the feather radius of the shadow selection in pixels.
const ShadowFeather = 7.5

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Ellipse is the bounding box of a selection ellipse.
type Ellipse struct {
	X, Y, W, H float64
}

// Layout is the geometry derived from a Spec.
type Layout struct {
	Radius        float64
	Width, Height float64
	Center        Point
	// Light is the highlight centre, 0.6 r from the centre towards the light.
	Light Point
	// LightEnd is the point on the sphere rim opposite the light; the
	// gradient reaches its dark end there.
	LightEnd Point
	// Offset is the inner solid band of the gradient, 0.1 r.
	Offset float64
	// Shadow is nil when no shadow is cast.
	Shadow *Ellipse
}

// SphereBox returns the bounding square of the sphere.
func (l Layout) SphereBox() Ellipse {
	r := l.Radius
	return Ellipse{X: l.Center.X - r, Y: l.Center.Y - r, W: 2 * r, H: 2 * r}
}

// ComputeLayout derives the canvas, light and shadow geometry for s.
func ComputeLayout(s Spec) (Layout, error) {
	if err := s.Validate(); err != nil {
		return Layout{}, err
	}
	r := s.Radius
	deg := NormalizeAngle(s.LightAngle)
	rad := deg * math.Pi / 180

	l := Layout{
		Radius: r,
		Width:  r * canvasWidth,
		Height: r * canvasHeight,
		Offset: r * gradientInset,
	}
	l.Center = Point{X: l.Width / 2, Y: l.Height / 2}
	// Screen Y grows downward, so the sine term is negated.
	l.Light = Point{
		X: l.Center.X + r*lightDistance*math.Cos(rad),
		Y: l.Center.Y - r*lightDistance*math.Sin(rad),
	}
	l.LightEnd = Point{
		X: l.Center.X + r*math.Cos(math.Pi+rad),
		Y: l.Center.Y - r*math.Sin(math.Pi+rad),
	}

	if s.Shadow && ShadowCast(deg) {
		l.Shadow = shadowEllipse(l.Center, r, rad)
	}

	ggfu.LoggerFor("sphere").Debug("layout",
		"radius", r, "angle", deg,
		"width", l.Width, "height", l.Height,
		"shadow", l.Shadow != nil)
	return l, nil
}

// ShadowCast reports whether light from deg degrees casts a ground shadow:
// only angles in [45, 75] or [105, 135] do. deg is normalized first.
func ShadowCast(deg float64) bool {
	a := NormalizeAngle(deg)
	return (a >= 45 && a <= 75) || (a >= 105 && a <= 135)
}

// shadowEllipse places the shadow below the sphere on the side away from
// the light. A negative width is folded back so the box stays anchored
// at the centre.
func shadowEllipse(c Point, r, rad float64) *Ellipse {
	e := &Ellipse{
		X: c.X,
		Y: c.Y + r*shadowDrop,
		W: r * shadowWidth * math.Cos(math.Pi+rad),
		H: r * shadowHeight,
	}
	if e.W < 0 {
		e.X = c.X + e.W
		e.W = -e.W
	}
	return e
}

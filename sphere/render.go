package sphere

import (
	"github.com/gogpu/ggfu"
	"github.com/gogpu/ggfu/host"
)

// Render computes the layout for s and returns the ordered host commands
// that draw it. An invalid Spec yields ggfu.ErrInvalidArgument and no
// commands.
func Render(s Spec) ([]host.Command, error) {
	rec := host.NewRecorder()
	if _, err := Draw(rec, s); err != nil {
		return nil, err
	}
	return rec.FinishRecording().Commands(), nil
}

// Draw issues the sphere commands to h and returns the presented surface.
// The order is: background fill, sphere base fill, optional multiplied
// shadow, gradient-lit sphere, clear selection, present. Nothing is issued
// when s is invalid.
func Draw(h host.Host, s Spec) (host.Surface, error) {
	l, err := ComputeLayout(s)
	if err != nil {
		return nil, err
	}

	surf, err := h.CreateCanvas(l.Width, l.Height)
	if err != nil {
		return nil, err
	}

	surf.FillRegion(s.Background, host.BlendNormal)

	box := l.SphereBox()
	circle := host.SelectOptions{Antialias: true}
	surf.SelectCircle(box.X, box.Y, box.W, circle)
	surf.FillRegion(s.Color, host.BlendNormal)
	surf.ClearSelection()

	if sh := l.Shadow; sh != nil {
		surf.SelectEllipse(sh.X, sh.Y, sh.W, sh.H, host.SelectOptions{Antialias: true, Feather: ShadowFeather})
		surf.FillRegion(ggfu.ShadowTone, host.BlendMultiply)
	}

	surf.SelectCircle(box.X, box.Y, box.W, circle)
	surf.RadialGradient(host.Gradient{
		Start:  s.Color,
		End:    ggfu.ShadowTone,
		X0:     l.Light.X,
		Y0:     l.Light.Y,
		X1:     l.LightEnd.X,
		Y1:     l.LightEnd.Y,
		Offset: l.Offset,
	})
	surf.ClearSelection()

	if err := surf.Present(); err != nil {
		return nil, err
	}
	ggfu.LoggerFor("sphere").Info("rendered", "radius", s.Radius, "shadow", l.Shadow != nil)
	return surf, nil
}

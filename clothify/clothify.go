// Package clothify makes a layer look as if it were printed on cloth, after
// the "python_fu_clothify" script.
//
// The texture is built entirely from host filters: two noise layers, one
// blurred horizontally and one vertically, are multiplied together into a
// weave pattern, stretched, roughened and bump-mapped onto the target.
// Plan lists those host calls; Apply runs them through a pdb.Runner.
package clothify

import (
	"context"
	"fmt"

	"github.com/gogpu/ggfu"
	"github.com/gogpu/ggfu/pdb"
)

// Params are the user-facing knobs of the effect.
type Params struct {
	XBlur     int // horizontal blur of the weft noise, pixels
	YBlur     int // vertical blur of the warp noise, pixels
	Azimuth   int // bump-map light azimuth, degrees
	Elevation int // bump-map light elevation, degrees
	Depth     int // bump-map depth

	// Background seeds the noise layer before it is noisified.
	Background ggfu.RGB
}

// DefaultParams returns the registered defaults.
func DefaultParams() Params {
	return Params{XBlur: 9, YBlur: 9, Azimuth: 135, Elevation: 45, Depth: 3, Background: ggfu.White}
}

// Legacy returns the hard-coded values older releases of the script ran
// with regardless of their arguments. They equal the defaults; only
// Background is carried over.
func (p Params) Legacy() Params {
	d := DefaultParams()
	d.Background = p.Background
	return d
}

// Validate checks the ranges the host filters accept.
func (p Params) Validate() error {
	switch {
	case p.XBlur < 1 || p.YBlur < 1:
		return fmt.Errorf("%w: blur %dx%d must be at least 1", ggfu.ErrInvalidArgument, p.XBlur, p.YBlur)
	case p.Azimuth < 0 || p.Azimuth > 360:
		return fmt.Errorf("%w: azimuth %d outside [0, 360]", ggfu.ErrInvalidArgument, p.Azimuth)
	case p.Elevation < 0 || p.Elevation > 90:
		return fmt.Errorf("%w: elevation %d outside [0, 90]", ggfu.ErrInvalidArgument, p.Elevation)
	case p.Depth < 1 || p.Depth > 65:
		return fmt.Errorf("%w: depth %d outside [1, 65]", ggfu.ErrInvalidArgument, p.Depth)
	}
	return nil
}

// Target is the drawable the texture is applied to.
type Target struct {
	Image    pdb.Ref
	Drawable pdb.Ref
	Width    int
	Height   int
}

// Refs used for the scratch image inside a plan.
const (
	RefScratch pdb.Ref = "scratch"
	RefXDots   pdb.Ref = "x_dots"
	RefYDots   pdb.Ref = "y_dots"
	RefBump    pdb.Ref = "bump"
)

// Plan returns the host calls that clothify t with p.
func Plan(t Target, p Params) ([]pdb.Call, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if t.Width <= 0 || t.Height <= 0 {
		return nil, fmt.Errorf("%w: target size %dx%d", ggfu.ErrInvalidArgument, t.Width, t.Height)
	}

	return []pdb.Call{
		{Name: "gimp_image_new", Args: []any{t.Width, t.Height, "RGB"}, Out: RefScratch},
		{Name: "gimp_layer_new", Args: []any{RefScratch, t.Width, t.Height, "RGB_IMAGE", "X Dots", 100, "NORMAL_MODE"}, Out: RefXDots},
		{Name: "gimp_image_undo_disable", Args: []any{RefScratch}},
		{Name: "gimp_edit_fill", Args: []any{RefXDots, "BG_IMAGE_FILL"}},
		{Name: "gimp_image_add_layer", Args: []any{RefScratch, RefXDots, 0}},
		{Name: "plug_in_noisify", Args: []any{RefScratch, RefXDots, false, 0.7, 0.7, 0.7, 0.7}},
		{Name: "gimp_layer_copy", Args: []any{RefXDots, false}, Out: RefYDots},
		{Name: "gimp_layer_set_mode", Args: []any{RefYDots, "MULTIPLY_MODE"}},
		{Name: "gimp_drawable_set_name", Args: []any{RefYDots, "Y Dots"}},
		{Name: "gimp_image_add_layer", Args: []any{RefScratch, RefYDots, 0}},
		{Name: "plug_in_gauss_rle", Args: []any{RefScratch, RefXDots, p.XBlur, true, false}},
		{Name: "plug_in_gauss_rle", Args: []any{RefScratch, RefYDots, p.YBlur, false, true}},
		{Name: "gimp_image_flatten", Args: []any{RefScratch}, Out: RefBump},
		{Name: "plug_in_c_astretch", Args: []any{RefScratch, RefBump}},
		{Name: "plug_in_noisify", Args: []any{RefScratch, RefBump, false, 0.2, 0.2, 0.2, 0.2}},
		{Name: "plug_in_bump_map", Args: []any{
			t.Image, t.Drawable, RefBump,
			p.Azimuth, p.Elevation, p.Depth,
			0, 0, 0, 0, true, false, "LINEAR",
		}},
		{Name: "gimp_image_delete", Args: []any{RefScratch}},
	}, nil
}

// Apply runs the clothify plan on r. If r also implements pdb.Palette the
// background color is set for the duration of the plan and restored
// afterwards, whether or not the plan succeeds.
func Apply(ctx context.Context, r pdb.Runner, t Target, p Params) error {
	calls, err := Plan(t, p)
	if err != nil {
		return err
	}
	log := ggfu.LoggerFor("clothify")
	log.Debug("plan", "steps", len(calls), "target", t.Drawable)

	run := func() error { return pdb.RunAll(ctx, r, calls) }
	if pal, ok := r.(pdb.Palette); ok {
		err = pdb.WithPalette(pal, pal.Foreground(), p.Background, run)
	} else {
		err = run()
	}
	if err != nil {
		return fmt.Errorf("clothify: %w", err)
	}
	log.Info("applied", "drawable", t.Drawable)
	return nil
}

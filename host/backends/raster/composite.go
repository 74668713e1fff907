package raster

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/gogpu/gg"
	"github.com/gogpu/ggfu/host"
)

// composite blends src into every selected pixel. Pixels are sampled at
// their centres; each result is weighted by selection coverage.
func (b *Backend) composite(src func(x, y float64) gg.RGBA, mode host.BlendMode) {
	if b.pm == nil {
		return
	}
	w, h := b.pm.Width(), b.pm.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cov := uint8(255)
			if b.selection != nil {
				cov = b.selection.At(x, y)
			}
			if cov == 0 {
				continue
			}

			dst := b.pm.GetPixel(x, y)
			s := src(float64(x)+0.5, float64(y)+0.5)
			if mode == host.BlendMultiply {
				s = gg.RGB(dst.R*s.R, dst.G*s.G, dst.B*s.B)
			}
			out := s
			if cov < 255 {
				t := float64(cov) / 255
				out = gg.RGB(
					dst.R+(s.R-dst.R)*t,
					dst.G+(s.G-dst.G)*t,
					dst.B+(s.B-dst.B)*t,
				)
			}
			out.A = 1
			b.pm.SetPixel(x, y, out)
		}
	}
}

// ellipseMask rasterizes an ellipse centred on (cx, cy) into a coverage
// mask the size of the canvas.
func (b *Backend) ellipseMask(cx, cy, rx, ry float64, opts host.SelectOptions) *gg.Mask {
	w, h := b.pm.Width(), b.pm.Height()
	if rx <= 0 || ry <= 0 {
		return gg.NewMask(w, h)
	}

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	dc.DrawEllipse(cx, cy, rx, ry)
	mask := dc.AsMask()

	if !opts.Antialias {
		b.hardEdge(mask)
	}
	if opts.Feather > 0 {
		mask = feather(mask, opts.Feather)
	}
	return mask
}

func (b *Backend) hardEdge(m *gg.Mask) {
	data := m.Data()
	for i, v := range data {
		if v >= b.threshold {
			data[i] = 255
		} else {
			data[i] = 0
		}
	}
}

// feather softens a mask edge with a Gaussian blur of the given radius.
func feather(m *gg.Mask, radius float64) *gg.Mask {
	alpha := image.NewAlpha(m.Bounds())
	copy(alpha.Pix, m.Data())
	return gg.NewMaskFromAlpha(blur.Gaussian(alpha, radius))
}

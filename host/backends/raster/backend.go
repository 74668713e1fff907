// Package raster provides a pixel backend for host recordings.
// It renders recordings to a gg.Pixmap using gg's gradients and masks.
//
// # Supported Features
//
//   - Solid fills in normal and multiply blend modes
//   - Elliptical and circular selections, antialiased or hard-edged
//   - Feathered selections (Gaussian-blurred coverage)
//   - Radial gradients with an inner solid offset
//   - PNG output
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/ggfu/host/backends/raster"
//
//	b, _ := host.NewBackend("raster")
//	_ = rec.Playback(b)
//	b.(host.FileBackend).SaveToFile("output.png")
package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggfu"
	"github.com/gogpu/ggfu/host"
)

// ErrNotPresented is returned by output methods before Present was called.
var ErrNotPresented = errors.New("raster: surface not presented")

func init() {
	host.Register("raster", func() host.Backend {
		return NewBackend()
	})
}

// Backend renders host commands to pixels. It implements host.Backend,
// host.Surface, host.WriterBackend, host.FileBackend and
// host.PixmapBackend.
type Backend struct {
	pm        *gg.Pixmap
	selection *gg.Mask // nil selects the whole canvas
	presented bool

	initial   gg.RGBA
	threshold uint8
	maxSide   int
}

// Ensure Backend implements all required interfaces.
var (
	_ host.Backend       = (*Backend)(nil)
	_ host.Surface       = (*Backend)(nil)
	_ host.WriterBackend = (*Backend)(nil)
	_ host.FileBackend   = (*Backend)(nil)
	_ host.PixmapBackend = (*Backend)(nil)
)

// NewBackend creates a raster backend. It allocates nothing until
// CreateCanvas is called.
func NewBackend(opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{
		initial:   o.initial,
		threshold: o.threshold,
		maxSide:   o.maxSide,
	}
}

// CreateCanvas allocates a pixmap of ceil(width) x ceil(height) pixels,
// cleared to the initial color, and drops any previous surface.
func (b *Backend) CreateCanvas(width, height float64) (host.Surface, error) {
	if err := host.ValidateSize(width, height); err != nil {
		return nil, err
	}
	w, h := b.pixels(width), b.pixels(height)

	b.pm = gg.NewPixmap(w, h)
	b.pm.Clear(b.initial)
	b.selection = nil
	b.presented = false

	ggfu.LoggerFor("raster").Debug("canvas", "width", w, "height", h)
	return b, nil
}

func (b *Backend) pixels(v float64) int {
	n := int(math.Ceil(v))
	if b.maxSide > 0 && n > b.maxSide {
		ggfu.LoggerFor("raster").Warn("clamping canvas side", "requested", n, "max", b.maxSide)
		n = b.maxSide
	}
	return n
}

// FillRegion fills the selection with c.
func (b *Backend) FillRegion(c ggfu.RGB, mode host.BlendMode) {
	src := c.RGBA()
	b.composite(func(_, _ float64) gg.RGBA { return src }, mode)
}

// SelectEllipse replaces the selection with the ellipse inscribed in
// (x, y, w, h). A negative w or h selects nothing.
func (b *Backend) SelectEllipse(x, y, w, h float64, opts host.SelectOptions) {
	if b.pm == nil {
		return
	}
	b.selection = b.ellipseMask(x+w/2, y+h/2, w/2, h/2, opts)
}

// SelectCircle replaces the selection with the circle inscribed in the
// square of side diameter at (x, y).
func (b *Backend) SelectCircle(x, y, diameter float64, opts host.SelectOptions) {
	b.SelectEllipse(x, y, diameter, diameter, opts)
}

// RadialGradient blends g into the selection. The first Offset percent of
// the radius is solid Start; beyond the radius the End color is padded.
func (b *Backend) RadialGradient(g host.Gradient) {
	brush := newRadialBrush(g)
	b.composite(func(x, y float64) gg.RGBA { return brush.ColorAt(x, y) }, host.BlendNormal)
}

func newRadialBrush(g host.Gradient) *gg.RadialGradientBrush {
	radius := math.Hypot(g.X1-g.X0, g.Y1-g.Y0)
	offset := math.Min(math.Max(g.Offset/100, 0), 1)
	return gg.NewRadialGradientBrush(g.X0, g.Y0, 0, radius).
		AddColorStop(offset, g.Start.RGBA()).
		AddColorStop(1, g.End.RGBA()).
		SetExtend(gg.ExtendPad)
}

// ClearSelection drops the selection.
func (b *Backend) ClearSelection() {
	b.selection = nil
}

// Present finalizes the surface. Output methods are available afterwards.
func (b *Backend) Present() error {
	if b.pm == nil {
		return host.ErrNoCanvas
	}
	b.presented = true
	return nil
}

// Presented reports whether Present has been called on the current canvas.
func (b *Backend) Presented() bool {
	return b.presented
}

// Selection returns the current selection mask, or nil when the whole
// canvas is selected.
func (b *Backend) Selection() *gg.Mask {
	return b.selection
}

// Pixmap returns the pixel buffer, or nil before CreateCanvas.
func (b *Backend) Pixmap() *gg.Pixmap {
	return b.pm
}

// Image returns the rendered pixels as an image, or nil before CreateCanvas.
func (b *Backend) Image() image.Image {
	if b.pm == nil {
		return nil
	}
	return b.pm.ToImage()
}

// WriteTo encodes the presented image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.presented {
		return 0, ErrNotPresented
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.pm.ToImage()); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// SaveToFile saves the presented image as a PNG file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SavePNG is an alias for SaveToFile.
func (b *Backend) SavePNG(path string) error {
	return b.SaveToFile(path)
}

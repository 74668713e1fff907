package host

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggfu"
)

// Host creates drawing surfaces. It is the entry point of the abstract
// raster-editing host a script draws against.
type Host interface {
	// CreateCanvas creates a surface of the given size in pixels.
	// Returns an error if the size is not positive and finite.
	CreateCanvas(width, height float64) (Surface, error)
}

// Surface is a drawable canvas with a single replaceable selection.
type Surface interface {
	// FillRegion fills the selection (or the whole canvas) with c.
	FillRegion(c ggfu.RGB, mode BlendMode)

	// SelectEllipse replaces the selection with the ellipse inscribed in
	// the box whose top-left corner is (x, y).
	SelectEllipse(x, y, w, h float64, opts SelectOptions)

	// SelectCircle replaces the selection with the circle inscribed in the
	// square whose top-left corner is (x, y).
	SelectCircle(x, y, diameter float64, opts SelectOptions)

	// RadialGradient blends g into the selection.
	RadialGradient(g Gradient)

	// ClearSelection drops the selection.
	ClearSelection()

	// Present displays or finalizes the surface. The surface should not be
	// drawn to afterwards.
	Present() error
}

// Backend is a Host bound to a concrete output. Backends are created via
// the registry using NewBackend(name) and registered in their init()
// functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using host.Register()
//  2. Return a Surface from CreateCanvas that honours the selection rules
//     described in the package documentation
//  3. Treat a second CreateCanvas as replacing the previous surface
type Backend interface {
	Host
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the presented content to w.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the presented content to path.
	SaveToFile(path string) error
}

// PixmapBackend extends Backend with access to a rasterized pixmap.
type PixmapBackend interface {
	Backend

	// Pixmap returns the rendered pixmap, or nil before CreateCanvas.
	Pixmap() *gg.Pixmap

	// Image returns the rendered pixels as an image.
	Image() image.Image
}

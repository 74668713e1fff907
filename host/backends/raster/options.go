package raster

import "github.com/gogpu/gg"

// Option configures a Backend.
type Option func(*options)

type options struct {
	initial   gg.RGBA
	threshold uint8
	maxSide   int
}

func defaultOptions() options {
	return options{
		initial:   gg.White,
		threshold: 128,
		maxSide:   16384,
	}
}

// WithInitialColor sets the color a new canvas is cleared to.
// Default: opaque white.
func WithInitialColor(c gg.RGBA) Option {
	return func(o *options) {
		o.initial = c
	}
}

// WithAntialiasThreshold sets the coverage (0-255) at or above which a pixel
// belongs to a non-antialiased selection. Default: 128.
func WithAntialiasThreshold(v uint8) Option {
	return func(o *options) {
		o.threshold = v
	}
}

// WithMaxSide caps canvas width and height in pixels. Zero disables the
// cap. Default: 16384.
func WithMaxSide(n int) Option {
	return func(o *options) {
		o.maxSide = n
	}
}

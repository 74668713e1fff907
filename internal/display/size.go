// Package display shows a rendered image in a desktop window.
//
// The window is built on ebiten and only compiled with the display build
// tag:
//
//	go build -tags display ./cmd/ggfu
//
// Without the tag Show reports ErrUnavailable, so headless builds need no
// windowing libraries.
package display

import "errors"

// ErrUnavailable is returned by Show in builds without the display tag.
var ErrUnavailable = errors.New("display: not built in (rebuild with -tags display)")

var errNilImage = errors.New("display: nil image")

// maxWindow bounds the initial window size; larger images are scaled down.
const maxWindow = 1280

// fit returns the scale that fits a w x h image inside bw x bh.
func fit(w, h, bw, bh int) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	sx := float64(bw) / float64(w)
	sy := float64(bh) / float64(h)
	if sy < sx {
		return sy
	}
	return sx
}

// windowSize returns the initial window size for a w x h image. Images
// are never scaled up.
func windowSize(w, h int) (int, int) {
	s := fit(w, h, maxWindow, maxWindow)
	if s > 1 {
		s = 1
	}
	return int(float64(w) * s), int(float64(h) * s)
}

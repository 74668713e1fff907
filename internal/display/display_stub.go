//go:build !display

package display

import "image"

// Show reports ErrUnavailable; this build has no window support.
func Show(img image.Image, title string) error {
	if img == nil {
		return errNilImage
	}
	return ErrUnavailable
}

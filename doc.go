// Package ggfu reproduces the classic Gimp-Python "python-fu" scripts on top
// of the gg 2D graphics library.
//
// # Overview
//
// A script never touches pixels itself. It computes a layout and emits an
// ordered program of abstract host operations (create canvas, fill, select,
// gradient, present). The program is plain data: it can be inspected in
// tests, printed, or played back to a backend that binds it to a concrete
// raster.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggfu"
//	    "github.com/gogpu/ggfu/host"
//	    "github.com/gogpu/ggfu/host/backends/raster"
//	    "github.com/gogpu/ggfu/sphere"
//	)
//
//	rec := host.NewRecorder()
//	if _, err := sphere.Draw(rec, sphere.DefaultSpec()); err != nil {
//	    return err
//	}
//	b := raster.NewBackend()
//	if err := rec.FinishRecording().Playback(b); err != nil {
//	    return err
//	}
//	b.SavePNG("sphere.png")
//
// # Packages
//
//   - host: command types, Recorder, Recording, Backend registry
//   - host/backends/raster: gg-based pixel backend
//   - pdb: procedure registration metadata and host procedure calls
//   - sphere: shaded sphere with an optional drop shadow
//   - clothify: cloth texture plan built from host filters
//
// # Coordinate System
//
// Origin at top-left, X increases right, Y increases down. Light angles are
// in degrees, 0 pointing right and increasing counter-clockwise on screen.
package ggfu

// Version is the current version of the library.
const Version = "0.3.0"

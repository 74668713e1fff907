// Package host defines the abstract raster-editing host that ggfu scripts
// draw against, and a command recording of everything a script asks it to do.
//
// # Architecture
//
// The package follows a Command Pattern with three parts:
//
//   - Recorder: implements Host and Surface, capturing calls as commands
//   - Recording: an immutable, ordered list of commands
//   - Backend: a Host bound to a concrete output (pixels, a real host)
//
// A script issues calls in the order it wants them performed. Recording
// that order is the whole point: the command list is the testable artifact
// of a script, and the same list can later be played back to any backend.
//
// # Basic Usage
//
//	rec := host.NewRecorder()
//	s, _ := rec.CreateCanvas(375, 250)
//	s.FillRegion(ggfu.White, host.BlendNormal)
//	s.SelectCircle(87.5, 25, 200, host.SelectOptions{Antialias: true})
//	s.FillRegion(ggfu.Red, host.BlendNormal)
//	s.ClearSelection()
//	s.Present()
//
//	r := rec.FinishRecording()
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd)
//	}
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern:
//
//	import _ "github.com/gogpu/ggfu/host/backends/raster" // Registers "raster"
//
//	b, err := host.NewBackend("raster")
//	err = r.Playback(b)
//
// # Selections
//
// A Surface carries at most one selection. Selecting replaces the previous
// selection; fills and gradients only touch the selected area (weighted by
// its coverage when antialiased or feathered). With no selection the whole
// canvas is affected.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recordings are immutable after
// FinishRecording and can be played back from multiple goroutines.
package host

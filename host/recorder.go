package host

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/ggfu"
)

// ErrNoCanvas is returned by Playback when a recording draws before
// creating a canvas.
var ErrNoCanvas = errors.New("host: drawing command before CreateCanvas")

// ErrInvalidSize is returned by CreateCanvas for a non-positive or
// non-finite size.
var ErrInvalidSize = errors.New("host: invalid canvas size")

// Recorder captures host calls as commands. It implements both Host and
// Surface; CreateCanvas returns the Recorder itself. Use FinishRecording to
// obtain an immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
}

// Compile-time interface checks.
var (
	_ Host    = (*Recorder)(nil)
	_ Surface = (*Recorder)(nil)
)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 16)}
}

// CreateCanvas records a CreateCanvasCommand and returns the Recorder as
// the surface.
func (r *Recorder) CreateCanvas(width, height float64) (Surface, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}
	r.commands = append(r.commands, CreateCanvasCommand{Width: width, Height: height})
	return r, nil
}

// FillRegion records a FillRegionCommand.
func (r *Recorder) FillRegion(c ggfu.RGB, mode BlendMode) {
	r.commands = append(r.commands, FillRegionCommand{Color: c, Mode: mode})
}

// SelectEllipse records a SelectEllipseCommand.
func (r *Recorder) SelectEllipse(x, y, w, h float64, opts SelectOptions) {
	r.commands = append(r.commands, SelectEllipseCommand{X: x, Y: y, W: w, H: h, Options: opts})
}

// SelectCircle records a SelectCircleCommand.
func (r *Recorder) SelectCircle(x, y, diameter float64, opts SelectOptions) {
	r.commands = append(r.commands, SelectCircleCommand{X: x, Y: y, Diameter: diameter, Options: opts})
}

// RadialGradient records a RadialGradientCommand.
func (r *Recorder) RadialGradient(g Gradient) {
	r.commands = append(r.commands, RadialGradientCommand{Gradient: g})
}

// ClearSelection records a ClearSelectionCommand.
func (r *Recorder) ClearSelection() {
	r.commands = append(r.commands, ClearSelectionCommand{})
}

// Present records a PresentCommand.
func (r *Recorder) Present() error {
	r.commands = append(r.commands, PresentCommand{})
	return nil
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FinishRecording returns an immutable Recording of all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{commands: cmds}
}

// ValidateSize reports whether width and height describe a usable canvas.
func ValidateSize(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
	}
	return nil
}

// Recording is an immutable container for recorded host commands.
type Recording struct {
	commands []Command
}

// NewRecording wraps an existing command list. The slice is copied.
func NewRecording(cmds []Command) *Recording {
	c := make([]Command, len(cmds))
	copy(c, cmds)
	return &Recording{commands: c}
}

// Commands returns a copy of the recorded commands.
func (r *Recording) Commands() []Command {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return cmds
}

// Len returns the number of commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Width returns the width of the first canvas, or 0 if none was created.
func (r *Recording) Width() float64 {
	if c, ok := r.canvas(); ok {
		return c.Width
	}
	return 0
}

// Height returns the height of the first canvas, or 0 if none was created.
func (r *Recording) Height() float64 {
	if c, ok := r.canvas(); ok {
		return c.Height
	}
	return 0
}

func (r *Recording) canvas() (CreateCanvasCommand, bool) {
	for _, cmd := range r.commands {
		if c, ok := cmd.(CreateCanvasCommand); ok {
			return c, true
		}
	}
	return CreateCanvasCommand{}, false
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// String lists the commands one per line, numbered from 1.
func (r *Recording) String() string {
	var sb strings.Builder
	for i, cmd := range r.commands {
		fmt.Fprintf(&sb, "%2d  %v\n", i+1, cmd)
	}
	return sb.String()
}

// Playback replays the recording against h. Commands before the first
// CreateCanvas fail with ErrNoCanvas. Playback stops at the first error.
func (r *Recording) Playback(h Host) error {
	log := ggfu.LoggerFor("host")
	log.Debug("playback", "commands", len(r.commands))

	var s Surface
	for i, cmd := range r.commands {
		if c, ok := cmd.(CreateCanvasCommand); ok {
			var err error
			if s, err = h.CreateCanvas(c.Width, c.Height); err != nil {
				return fmt.Errorf("host: command %d: %w", i+1, err)
			}
			continue
		}
		if s == nil {
			return fmt.Errorf("%w (command %d: %v)", ErrNoCanvas, i+1, cmd.Type())
		}

		switch c := cmd.(type) {
		case FillRegionCommand:
			s.FillRegion(c.Color, c.Mode)
		case SelectEllipseCommand:
			s.SelectEllipse(c.X, c.Y, c.W, c.H, c.Options)
		case SelectCircleCommand:
			s.SelectCircle(c.X, c.Y, c.Diameter, c.Options)
		case RadialGradientCommand:
			s.RadialGradient(c.Gradient)
		case ClearSelectionCommand:
			s.ClearSelection()
		case PresentCommand:
			if err := s.Present(); err != nil {
				return fmt.Errorf("host: command %d: %w", i+1, err)
			}
		default:
			log.Warn("skipping unknown command", "index", i+1, "type", cmd.Type())
		}
	}
	return nil
}

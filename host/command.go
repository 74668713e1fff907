package host

import (
	"fmt"

	"github.com/gogpu/ggfu"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdCreateCanvas   CommandType = iota // Create the drawing surface
	CmdFillRegion                        // Fill the selection with a color
	CmdSelectEllipse                     // Replace the selection with an ellipse
	CmdSelectCircle                      // Replace the selection with a circle
	CmdRadialGradient                    // Blend a radial gradient into the selection
	CmdClearSelection                    // Drop the selection
	CmdPresent                           // Display or finalize the surface
)

var commandTypeNames = [...]string{
	CmdCreateCanvas:   "CreateCanvas",
	CmdFillRegion:     "FillRegion",
	CmdSelectEllipse:  "SelectEllipse",
	CmdSelectCircle:   "SelectCircle",
	CmdRadialGradient: "RadialGradient",
	CmdClearSelection: "ClearSelection",
	CmdPresent:        "Present",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SelectOptions controls how a selection edge is rasterized.
type SelectOptions struct {
	// Antialias smooths the selection edge.
	Antialias bool
	// Feather is the feather radius in pixels; 0 disables feathering.
	Feather float64
}

// Gradient describes a radial blend. The gradient is centred on (X0, Y0)
// and reaches End at the distance of (X1, Y1). Offset is the percentage
// (0-100) of that distance painted solid Start before blending begins.
type Gradient struct {
	Start, End ggfu.RGB
	X0, Y0     float64
	X1, Y1     float64
	Offset     float64
}

// CreateCanvasCommand creates a new surface of the given size.
type CreateCanvasCommand struct {
	Width, Height float64
}

// Type implements Command.
func (CreateCanvasCommand) Type() CommandType { return CmdCreateCanvas }

func (c CreateCanvasCommand) String() string {
	return fmt.Sprintf("CreateCanvas(%g, %g)", c.Width, c.Height)
}

// FillRegionCommand fills the current selection with a solid color.
type FillRegionCommand struct {
	Color ggfu.RGB
	Mode  BlendMode
}

// Type implements Command.
func (FillRegionCommand) Type() CommandType { return CmdFillRegion }

func (c FillRegionCommand) String() string {
	return fmt.Sprintf("FillRegion(%s, %s)", c.Color, c.Mode)
}

// SelectEllipseCommand replaces the selection with the ellipse inscribed
// in the box (X, Y, W, H).
type SelectEllipseCommand struct {
	X, Y, W, H float64
	Options    SelectOptions
}

// Type implements Command.
func (SelectEllipseCommand) Type() CommandType { return CmdSelectEllipse }

func (c SelectEllipseCommand) String() string {
	return fmt.Sprintf("SelectEllipse(%g, %g, %g, %g, antialias=%t, feather=%g)",
		c.X, c.Y, c.W, c.H, c.Options.Antialias, c.Options.Feather)
}

// SelectCircleCommand replaces the selection with the circle inscribed in
// the square whose top-left corner is (X, Y).
type SelectCircleCommand struct {
	X, Y     float64
	Diameter float64
	Options  SelectOptions
}

// Type implements Command.
func (SelectCircleCommand) Type() CommandType { return CmdSelectCircle }

func (c SelectCircleCommand) String() string {
	return fmt.Sprintf("SelectCircle(%g, %g, %g, antialias=%t, feather=%g)",
		c.X, c.Y, c.Diameter, c.Options.Antialias, c.Options.Feather)
}

// RadialGradientCommand blends a radial gradient into the selection.
type RadialGradientCommand struct {
	Gradient Gradient
}

// Type implements Command.
func (RadialGradientCommand) Type() CommandType { return CmdRadialGradient }

func (c RadialGradientCommand) String() string {
	g := c.Gradient
	return fmt.Sprintf("RadialGradient(%s -> %s, (%g, %g) -> (%g, %g), offset=%g)",
		g.Start, g.End, g.X0, g.Y0, g.X1, g.Y1, g.Offset)
}

// ClearSelectionCommand drops the current selection.
type ClearSelectionCommand struct{}

// Type implements Command.
func (ClearSelectionCommand) Type() CommandType { return CmdClearSelection }

func (ClearSelectionCommand) String() string { return "ClearSelection()" }

// PresentCommand hands the finished surface to the host for display.
type PresentCommand struct{}

// Type implements Command.
func (PresentCommand) Type() CommandType { return CmdPresent }

func (PresentCommand) String() string { return "Present()" }

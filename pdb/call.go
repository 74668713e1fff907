package pdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogpu/ggfu"
)

// Ref names a host object (image, layer, drawable) symbolically inside a
// plan. The runner maps refs to its own handles.
type Ref string

// Call is one invocation of a host procedure. When Out is set the runner
// binds the procedure's result to that ref.
type Call struct {
	Name string
	Args []any
	Out  Ref
}

func (c Call) String() string {
	var sb strings.Builder
	if c.Out != "" {
		sb.WriteString(string(c.Out))
		sb.WriteString(" = ")
	}
	sb.WriteString(c.Name)
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch v := a.(type) {
		case string:
			fmt.Fprintf(&sb, "%q", v)
		default:
			fmt.Fprint(&sb, v)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// Runner executes host procedure calls.
type Runner interface {
	Run(ctx context.Context, c Call) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, c Call) error

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, c Call) error { return f(ctx, c) }

// RunAll executes calls in order and stops at the first failure or when
// ctx is done. The returned error names the failing step.
func RunAll(ctx context.Context, r Runner, calls []Call) error {
	log := ggfu.LoggerFor("pdb")
	for i, c := range calls {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pdb: step %d %s: %w", i+1, c.Name, err)
		}
		log.Debug("run", "step", i+1, "call", c.Name)
		if err := r.Run(ctx, c); err != nil {
			return fmt.Errorf("pdb: step %d %s: %w", i+1, c.Name, err)
		}
	}
	return nil
}

// Palette is the host's process-wide foreground/background color pair.
type Palette interface {
	Foreground() ggfu.RGB
	Background() ggfu.RGB
	SetForeground(c ggfu.RGB)
	SetBackground(c ggfu.RGB)
}

// WithPalette sets the palette to fg/bg for the duration of fn and restores
// the previous colors on every exit path, including panics.
func WithPalette(p Palette, fg, bg ggfu.RGB, fn func() error) error {
	oldFg, oldBg := p.Foreground(), p.Background()
	defer func() {
		p.SetBackground(oldBg)
		p.SetForeground(oldFg)
	}()
	p.SetForeground(fg)
	p.SetBackground(bg)
	return fn()
}

// CallLog is a Runner that records calls instead of executing them. It also
// keeps a Palette so plans that change colors can be inspected.
type CallLog struct {
	Calls []Call

	// Fail, if set, is consulted before recording each call.
	Fail func(c Call) error

	fg, bg ggfu.RGB
}

// NewCallLog returns a CallLog with the host's default black on white palette.
func NewCallLog() *CallLog {
	return &CallLog{fg: ggfu.Black, bg: ggfu.White}
}

// Run implements Runner.
func (l *CallLog) Run(_ context.Context, c Call) error {
	if l.Fail != nil {
		if err := l.Fail(c); err != nil {
			return err
		}
	}
	l.Calls = append(l.Calls, c)
	return nil
}

func (l *CallLog) Foreground() ggfu.RGB     { return l.fg }
func (l *CallLog) Background() ggfu.RGB     { return l.bg }
func (l *CallLog) SetForeground(c ggfu.RGB) { l.fg = c }
func (l *CallLog) SetBackground(c ggfu.RGB) { l.bg = c }

// String lists the recorded calls one per line.
func (l *CallLog) String() string {
	var sb strings.Builder
	for i, c := range l.Calls {
		fmt.Fprintf(&sb, "%2d  %s\n", i+1, c)
	}
	return sb.String()
}

package host

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/ggfu"
)

func recordSample(t *testing.T) *Recording {
	t.Helper()
	rec := NewRecorder()
	s, err := rec.CreateCanvas(375, 250)
	if err != nil {
		t.Fatalf("CreateCanvas: %v", err)
	}
	s.FillRegion(ggfu.White, BlendNormal)
	s.SelectEllipse(10, 20, 30, 40, SelectOptions{Antialias: true, Feather: 7.5})
	s.FillRegion(ggfu.ShadowTone, BlendMultiply)
	s.SelectCircle(87.5, 25, 200, SelectOptions{Antialias: true})
	s.RadialGradient(Gradient{Start: ggfu.Red, End: ggfu.ShadowTone, Offset: 10})
	s.ClearSelection()
	if err := s.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	return rec.FinishRecording()
}

func TestRecorderOrder(t *testing.T) {
	r := recordSample(t)

	want := []CommandType{
		CmdCreateCanvas, CmdFillRegion, CmdSelectEllipse, CmdFillRegion,
		CmdSelectCircle, CmdRadialGradient, CmdClearSelection, CmdPresent,
	}
	cmds := r.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("len(Commands()) = %d, want %d", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if cmd.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmd.Type(), want[i])
		}
	}
	if r.Width() != 375 || r.Height() != 250 {
		t.Errorf("size = %gx%g, want 375x250", r.Width(), r.Height())
	}
	if r.Count(CmdFillRegion) != 2 {
		t.Errorf("Count(FillRegion) = %d, want 2", r.Count(CmdFillRegion))
	}
}

func TestRecordingImmutable(t *testing.T) {
	rec := NewRecorder()
	_, _ = rec.CreateCanvas(10, 10)
	r := rec.FinishRecording()

	rec.ClearSelection()
	if r.Len() != 1 {
		t.Errorf("recording changed after FinishRecording: Len() = %d", r.Len())
	}

	cmds := r.Commands()
	cmds[0] = PresentCommand{}
	if r.Commands()[0].Type() != CmdCreateCanvas {
		t.Error("Commands() must return a copy")
	}
}

func TestRecorderInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 10},
		{"negative height", 10, -1},
		{"NaN", math.NaN(), 10},
		{"Inf", 10, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder()
			s, err := rec.CreateCanvas(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("err = %v, want ErrInvalidSize", err)
			}
			if s != nil {
				t.Error("surface should be nil on error")
			}
			if rec.Len() != 0 {
				t.Error("no command should be recorded on error")
			}
		})
	}
}

func TestRecordingWidthWithoutCanvas(t *testing.T) {
	r := NewRecording([]Command{PresentCommand{}})
	if r.Width() != 0 || r.Height() != 0 {
		t.Error("size should be zero without a canvas")
	}
}

func TestRecordingString(t *testing.T) {
	s := recordSample(t).String()
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != 8 {
		t.Fatalf("String() has %d lines, want 8:\n%s", len(lines), s)
	}
	if !strings.Contains(lines[0], "CreateCanvas(375, 250)") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[7], "Present()") {
		t.Errorf("last line = %q", lines[7])
	}
}

func TestPlayback(t *testing.T) {
	b := newMockBackend("mock")
	if err := recordSample(t).Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	want := []string{
		"canvas 375x250",
		"fill #ffffff Normal",
		"ellipse 10 20 30 40",
		"fill #141414 Multiply",
		"circle 87.5 25 200",
		"gradient 10",
		"clear",
		"present",
	}
	if !reflect.DeepEqual(b.calls, want) {
		t.Errorf("calls = %v, want %v", b.calls, want)
	}
}

func TestPlaybackNoCanvas(t *testing.T) {
	r := NewRecording([]Command{FillRegionCommand{Color: ggfu.Red}})
	err := r.Playback(newMockBackend("mock"))
	if !errors.Is(err, ErrNoCanvas) {
		t.Errorf("err = %v, want ErrNoCanvas", err)
	}
}

func TestPlaybackErrors(t *testing.T) {
	t.Run("canvas", func(t *testing.T) {
		b := newMockBackend("mock")
		b.canvasErr = errMock
		if err := recordSample(t).Playback(b); !errors.Is(err, errMock) {
			t.Errorf("err = %v, want errMock", err)
		}
	})
	t.Run("present", func(t *testing.T) {
		b := newMockBackend("mock")
		b.presentErr = errMock
		if err := recordSample(t).Playback(b); !errors.Is(err, errMock) {
			t.Errorf("err = %v, want errMock", err)
		}
	})
}

func TestPlaybackTwice(t *testing.T) {
	r := recordSample(t)
	a, b := newMockBackend("a"), newMockBackend("b")
	if err := r.Playback(a); err != nil {
		t.Fatal(err)
	}
	if err := r.Playback(b); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.calls, b.calls) {
		t.Error("playback is not repeatable")
	}
}

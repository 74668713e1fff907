package pdb

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/ggfu"
)

var testProc = Procedure{
	Name:     "python_fu_test",
	Blurb:    "Test procedure",
	MenuPath: "<Toolbox>/Xtns/Test",
	Params: []Param{
		{Kind: ParamInt, Name: "radius", Description: "Radius", Default: 100},
		{Kind: ParamSlider, Name: "light", Description: "Light angle", Default: 45, Range: &Range{0, 360, 1}},
		{Kind: ParamToggle, Name: "shadow", Description: "Shadow?", Default: 1},
		{Kind: ParamColor, Name: "colour", Description: "Color", Default: ggfu.Red},
		{Kind: ParamFloat, Name: "scale", Description: "Scale", Default: 1.5},
		{Kind: ParamString, Name: "label", Description: "Label", Default: "hi"},
	},
}

func TestBindDefaults(t *testing.T) {
	a := testProc.Defaults()
	if a.Procedure() != "python_fu_test" {
		t.Errorf("Procedure() = %q", a.Procedure())
	}
	if a.Int("radius") != 100 {
		t.Errorf("radius = %d", a.Int("radius"))
	}
	if a.Float("light") != 45 {
		t.Errorf("light = %v", a.Float("light"))
	}
	if !a.Bool("shadow") {
		t.Error("shadow should default to true")
	}
	if a.Color("colour") != ggfu.Red {
		t.Errorf("colour = %v", a.Color("colour"))
	}
	if a.Float("scale") != 1.5 || a.Text("label") != "hi" {
		t.Error("float/string defaults not bound")
	}
	if a.Int("missing") != 0 {
		t.Error("undeclared names should read as zero")
	}
}

func TestBindConvertsStrings(t *testing.T) {
	a, err := testProc.Bind(map[string]any{
		"radius": "50",
		"light":  "120.5",
		"shadow": "false",
		"colour": "#00ff00",
	})
	if err != nil {
		t.Fatal(err)
	}
	if a.Int("radius") != 50 || a.Float("light") != 120.5 || a.Bool("shadow") {
		t.Errorf("unexpected values: %d %v %t", a.Int("radius"), a.Float("light"), a.Bool("shadow"))
	}
	if a.Color("colour") != (ggfu.RGB{G: 255}) {
		t.Errorf("colour = %v", a.Color("colour"))
	}
	if v, ok := a.Value("radius"); !ok || v != 50 {
		t.Errorf("Value(radius) = %v, %t", v, ok)
	}
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
		want   string
	}{
		{"unknown", map[string]any{"nope": 1}, "no parameter"},
		{"range", map[string]any{"light": 400}, "outside"},
		{"fraction", map[string]any{"radius": 2.5}, "whole number"},
		{"type", map[string]any{"shadow": 2.5}, "toggle"},
		{"color", map[string]any{"colour": "blurple"}, "colour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testProc.Bind(tt.values)
			if !errors.Is(err, ggfu.ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := testProc.Validate(); err != nil {
		t.Fatalf("valid procedure rejected: %v", err)
	}

	bad := []Procedure{
		{},
		{Name: "x", Params: []Param{{Kind: ParamInt}}},
		{Name: "x", Params: []Param{{Kind: ParamInt, Name: "a", Default: 1}, {Kind: ParamInt, Name: "a", Default: 1}}},
		{Name: "x", Params: []Param{{Kind: ParamSlider, Name: "s", Default: 1}}},
		{Name: "x", Params: []Param{{Kind: ParamColor, Name: "c", Default: 3}}},
	}
	for i, p := range bad {
		if err := p.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestRegistry(t *testing.T) {
	Register(testProc)
	defer Unregister(testProc.Name)

	p, ok := Lookup(testProc.Name)
	if !ok || p.Blurb != testProc.Blurb {
		t.Fatalf("Lookup = %+v, %t", p, ok)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("duplicate Register should panic")
			}
		}()
		Register(testProc)
	}()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("invalid Register should panic")
			}
		}()
		Register(Procedure{})
	}()

	other := Procedure{Name: "a_first"}
	Register(other)
	defer Unregister(other.Name)

	procs := Procedures()
	for i := 1; i < len(procs); i++ {
		if procs[i-1].Name > procs[i].Name {
			t.Fatalf("Procedures() not sorted: %q before %q", procs[i-1].Name, procs[i].Name)
		}
	}
}

func TestParamKindString(t *testing.T) {
	if ParamSlider.String() != "slider" || ParamKind(99).String() != "unknown" {
		t.Error("unexpected kind names")
	}
}

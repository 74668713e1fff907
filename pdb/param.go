package pdb

import (
	"fmt"
	"strconv"

	"github.com/gogpu/ggfu"
)

// ParamKind is the declared type of a procedure parameter.
type ParamKind uint8

const (
	ParamInt    ParamKind = iota // whole number
	ParamFloat                   // real number
	ParamSlider                  // real number within a Range
	ParamToggle                  // boolean
	ParamColor                   // ggfu.RGB
	ParamString                  // free text
)

var paramKindNames = [...]string{
	ParamInt:    "int",
	ParamFloat:  "float",
	ParamSlider: "slider",
	ParamToggle: "toggle",
	ParamColor:  "color",
	ParamString: "string",
}

func (k ParamKind) String() string {
	if int(k) < len(paramKindNames) {
		return paramKindNames[k]
	}
	return "unknown"
}

// Range bounds a slider parameter.
type Range struct {
	Min, Max, Step float64
}

// Param declares one procedure parameter.
type Param struct {
	Kind        ParamKind
	Name        string
	Description string
	Default     any
	Range       *Range
}

// normalize converts v to the canonical Go type for the parameter kind:
// int, float64, bool, ggfu.RGB or string. Strings are parsed.
func (p Param) normalize(v any) (any, error) {
	switch p.Kind {
	case ParamInt:
		return toInt(v)
	case ParamFloat, ParamSlider:
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		if p.Range != nil && (f < p.Range.Min || f > p.Range.Max) {
			return nil, fmt.Errorf("%g outside [%g, %g]", f, p.Range.Min, p.Range.Max)
		}
		return f, nil
	case ParamToggle:
		return toBool(v)
	case ParamColor:
		return toColor(v)
	case ParamString:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return fmt.Sprint(v), nil
	}
	return nil, fmt.Errorf("unknown parameter kind %d", p.Kind)
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%g is not a whole number", n)
		}
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	}
	return 0, fmt.Errorf("cannot use %T as int", v)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(n, 64)
	}
	return 0, fmt.Errorf("cannot use %T as float", v)
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case int:
		return b != 0, nil
	case string:
		return strconv.ParseBool(b)
	}
	return false, fmt.Errorf("cannot use %T as toggle", v)
}

func toColor(v any) (ggfu.RGB, error) {
	switch c := v.(type) {
	case ggfu.RGB:
		return c, nil
	case [3]uint8:
		return ggfu.RGB{R: c[0], G: c[1], B: c[2]}, nil
	case string:
		return ggfu.ParseRGB(c)
	}
	return ggfu.RGB{}, fmt.Errorf("cannot use %T as color", v)
}

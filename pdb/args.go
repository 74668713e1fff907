package pdb

import "github.com/gogpu/ggfu"

// Args holds the bound arguments of one procedure invocation. Values have
// already been converted to their canonical types by Procedure.Bind;
// accessors return the zero value for names the procedure does not declare.
type Args struct {
	proc   string
	values map[string]any
}

// Procedure returns the name of the procedure the arguments were bound to.
func (a Args) Procedure() string { return a.proc }

// Int returns an int parameter.
func (a Args) Int(name string) int {
	v, _ := a.values[name].(int)
	return v
}

// Float returns a float or slider parameter.
func (a Args) Float(name string) float64 {
	v, _ := a.values[name].(float64)
	return v
}

// Bool returns a toggle parameter.
func (a Args) Bool(name string) bool {
	v, _ := a.values[name].(bool)
	return v
}

// Color returns a color parameter.
func (a Args) Color(name string) ggfu.RGB {
	v, _ := a.values[name].(ggfu.RGB)
	return v
}

// Text returns a string parameter.
func (a Args) Text(name string) string {
	v, _ := a.values[name].(string)
	return v
}

// Value returns the raw bound value.
func (a Args) Value(name string) (any, bool) {
	v, ok := a.values[name]
	return v, ok
}

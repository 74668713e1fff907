package pdb

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/ggfu"
)

// Procedure is the registration record of a script.
type Procedure struct {
	Name       string
	Blurb      string
	Help       string
	Author     string
	Copyright  string
	Date       string
	MenuPath   string
	ImageTypes string
	Params     []Param
	Results    []Param
}

// Validate checks that the procedure is named, parameter names are unique
// and every default is acceptable for its parameter.
func (p Procedure) Validate() error {
	if p.Name == "" {
		return errors.New("pdb: procedure has no name")
	}
	seen := make(map[string]bool, len(p.Params))
	for _, prm := range p.Params {
		if prm.Name == "" {
			return fmt.Errorf("pdb: %s: parameter has no name", p.Name)
		}
		if seen[prm.Name] {
			return fmt.Errorf("pdb: %s: duplicate parameter %q", p.Name, prm.Name)
		}
		seen[prm.Name] = true
		if prm.Kind == ParamSlider && prm.Range == nil {
			return fmt.Errorf("pdb: %s: slider %q has no range", p.Name, prm.Name)
		}
		if _, err := prm.normalize(prm.Default); err != nil {
			return fmt.Errorf("pdb: %s: default for %q: %w", p.Name, prm.Name, err)
		}
	}
	return nil
}

// Param returns the parameter called name.
func (p Procedure) Param(name string) (Param, bool) {
	for _, prm := range p.Params {
		if prm.Name == name {
			return prm, true
		}
	}
	return Param{}, false
}

// Defaults binds every parameter to its default value.
func (p Procedure) Defaults() Args {
	a, err := p.Bind(nil)
	if err != nil {
		// Register validates defaults, so only unregistered procedures get here.
		panic(err)
	}
	return a
}

// Bind converts values into typed Args. Missing parameters take their
// defaults; unknown names and ill-typed or out-of-range values are
// reported as ggfu.ErrInvalidArgument.
func (p Procedure) Bind(values map[string]any) (Args, error) {
	out := make(map[string]any, len(p.Params))
	for name := range values {
		if _, ok := p.Param(name); !ok {
			return Args{}, fmt.Errorf("%w: %s has no parameter %q", ggfu.ErrInvalidArgument, p.Name, name)
		}
	}
	for _, prm := range p.Params {
		v, ok := values[prm.Name]
		if !ok {
			v = prm.Default
		}
		nv, err := prm.normalize(v)
		if err != nil {
			return Args{}, fmt.Errorf("%w: %s.%s: %v", ggfu.ErrInvalidArgument, p.Name, prm.Name, err)
		}
		out[prm.Name] = nv
	}
	return Args{proc: p.Name, values: out}, nil
}

var (
	registryMu sync.RWMutex
	procedures = make(map[string]Procedure)
)

// Register adds p to the procedure database. It panics if p is invalid or
// its name is already registered.
func Register(p Procedure) {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := procedures[p.Name]; dup {
		panic("pdb: Register called twice for " + p.Name)
	}
	procedures[p.Name] = p
}

// Unregister removes a procedure. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(procedures, name)
}

// Lookup returns the registered procedure called name.
func Lookup(name string) (Procedure, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := procedures[name]
	return p, ok
}

// Procedures returns all registered procedures sorted by name.
func Procedures() []Procedure {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Procedure, 0, len(procedures))
	for _, p := range procedures {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

package scenario

import "fmt"

// Selector identifies the active scenario.
type Selector string

const (
	Rabi        Selector = "rabi"
	Decoherence Selector = "decoherence"
	Cavity      Selector = "cavity"
)

// ParamSpec declares one bounded parameter. Step is how far interactive
// nudges move the value.
type ParamSpec struct {
	Name    string
	Label   string
	Min     float64
	Max     float64
	Default float64
	Step    float64
}

// Spec is a scenario's full parameter declaration.
type Spec struct {
	Selector Selector
	Title    string
	About    string
	Params   []ParamSpec
}

// Param looks up a declared parameter by name.
func (s Spec) Param(name string) (ParamSpec, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// Clamp pins v into the declared [Min, Max] range of the named parameter.
// Unknown names fail with ErrUnknownParameter.
func (s Spec) Clamp(name string, v float64) (float64, error) {
	p, ok := s.Param(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q (scenario %s)", ErrUnknownParameter, name, s.Selector)
	}
	if v < p.Min {
		return p.Min, nil
	}
	if v > p.Max {
		return p.Max, nil
	}
	return v, nil
}

// Defaults returns a fresh ParameterSet holding every declared default.
func (s Spec) Defaults() ParameterSet {
	ps := make(ParameterSet, len(s.Params))
	for _, p := range s.Params {
		ps[p.Name] = p.Default
	}
	return ps
}

// ParameterSet maps parameter names to values. Only the sweep controller
// mutates one; everything downstream receives clones.
type ParameterSet map[string]float64

func (p ParameterSet) Clone() ParameterSet {
	c := make(ParameterSet, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

package scenario

import (
	"context"
	"fmt"

	"github.com/qusimlab/qusim/internal/solver"
)

// Scenario couples a parameter declaration to a problem builder.
type Scenario interface {
	Spec() Spec
	Build(p ParameterSet) (*solver.Problem, error)
}

// Registry maps selectors to scenarios.
type Registry struct {
	scenarios map[Selector]Scenario
	order     []Selector
}

func NewRegistry() *Registry {
	r := &Registry{scenarios: make(map[Selector]Scenario)}
	r.register(NewRabi())
	r.register(NewDecoherence())
	r.register(NewCavity())
	return r
}

func (r *Registry) register(s Scenario) {
	sel := s.Spec().Selector
	r.scenarios[sel] = s
	r.order = append(r.order, sel)
}

// Get returns the scenario for sel, or ErrUnknownModel.
func (r *Registry) Get(sel Selector) (Scenario, error) {
	s, ok := r.scenarios[sel]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, sel)
	}
	return s, nil
}

// Selectors lists registered scenarios in registration order.
func (r *Registry) Selectors() []Selector {
	return append([]Selector(nil), r.order...)
}

// Simulator resolves a selector, builds the problem from a parameter
// snapshot, and hands it to the solver. It is the engine the sweep
// controller drives.
type Simulator struct {
	reg *Registry
	eng *solver.Engine
}

func NewSimulator(reg *Registry, eng *solver.Engine) *Simulator {
	return &Simulator{reg: reg, eng: eng}
}

func (s *Simulator) Simulate(ctx context.Context, sel Selector, params ParameterSet) (*solver.Result, error) {
	sc, err := s.reg.Get(sel)
	if err != nil {
		return nil, err
	}
	problem, err := sc.Build(params)
	if err != nil {
		return nil, err
	}
	return s.eng.Evolve(ctx, problem)
}

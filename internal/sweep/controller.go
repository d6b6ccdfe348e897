package sweep

import (
	"context"
	"fmt"

	"github.com/qusimlab/qusim/internal/scenario"
	"github.com/qusimlab/qusim/internal/solver"
)

// State names the controller's computation phase.
type State int

const (
	Idle State = iota
	Computing
)

func (s State) String() string {
	if s == Computing {
		return "computing"
	}
	return "idle"
}

// Engine runs one simulation for a scenario and parameter snapshot.
// scenario.Simulator satisfies it.
type Engine interface {
	Simulate(ctx context.Context, sel scenario.Selector, params scenario.ParameterSet) (*solver.Result, error)
}

// Surface receives finished results. RenderError reports a failed
// computation; implementations keep showing the previous plot.
type Surface interface {
	Render(res *solver.Result)
	RenderError(msg string)
}

// Job is one scheduled computation. Params is a private snapshot taken
// when the job started, so later edits cannot reach it.
type Job struct {
	Model  scenario.Selector
	Params scenario.ParameterSet
}

// Runner executes a Job and eventually calls Controller.Resolve with
// the outcome. The default runner is synchronous; the TUI installs one
// that runs the job on a worker and resolves from the update loop.
type Runner func(Job)

// Option configures a Controller.
type Option func(*Controller)

// WithRunner replaces the synchronous default runner.
func WithRunner(r Runner) Option {
	return func(c *Controller) { c.run = r }
}

// Controller is the interactive sweep state machine.
type Controller struct {
	reg  *scenario.Registry
	eng  Engine
	surf Surface
	run  Runner

	model  scenario.Selector
	spec   scenario.Spec
	params scenario.ParameterSet

	state State
	dirty bool
}

// New builds a controller positioned on the given scenario with its
// default parameters. No computation starts until the first edit or an
// explicit Recompute.
func New(reg *scenario.Registry, eng Engine, surf Surface, model scenario.Selector, opts ...Option) (*Controller, error) {
	sc, err := reg.Get(model)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		reg:    reg,
		eng:    eng,
		surf:   surf,
		model:  model,
		spec:   sc.Spec(),
		params: sc.Spec().Defaults(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.run == nil {
		c.run = func(job Job) {
			res, jerr := c.eng.Simulate(context.Background(), job.Model, job.Params)
			c.Resolve(res, jerr)
		}
	}
	return c, nil
}

// State reports whether a computation is in flight.
func (c *Controller) State() State { return c.state }

// Model returns the active scenario selector.
func (c *Controller) Model() scenario.Selector { return c.model }

// Spec returns the active scenario's parameter declaration.
func (c *Controller) Spec() scenario.Spec { return c.spec }

// Value returns the current value of a parameter.
func (c *Controller) Value(name string) (float64, bool) {
	v, ok := c.params[name]
	return v, ok
}

// Params returns a copy of the current parameter set.
func (c *Controller) Params() scenario.ParameterSet { return c.params.Clone() }

// SetParameter stores a new value for name, clamped to its declared
// bounds, and schedules a recompute. Unknown names fail without
// touching any state.
func (c *Controller) SetParameter(name string, value float64) error {
	v, err := c.spec.Clamp(name, value)
	if err != nil {
		return err
	}
	c.params[name] = v
	c.schedule()
	return nil
}

// Adjust moves a parameter by whole steps of its declared increment.
func (c *Controller) Adjust(name string, steps int) error {
	p, ok := c.spec.Param(name)
	if !ok {
		return fmt.Errorf("%w: %q (scenario %s)", scenario.ErrUnknownParameter, name, c.model)
	}
	return c.SetParameter(name, c.params[name]+float64(steps)*p.Step)
}

// SetModel switches to another scenario and resets its parameters to
// their defaults. A computation already in flight is discarded and a
// fresh one scheduled for the new scenario. Unknown selectors fail
// without touching any state.
func (c *Controller) SetModel(model scenario.Selector) error {
	sc, err := c.reg.Get(model)
	if err != nil {
		return err
	}
	c.model = model
	c.spec = sc.Spec()
	c.params = c.spec.Defaults()
	c.schedule()
	return nil
}

// Recompute schedules a run with the current parameters.
func (c *Controller) Recompute() { c.schedule() }

// Resolve delivers the outcome of the in-flight job. If edits arrived
// while it ran, the outcome is discarded, success or failure alike, and
// a recompute starts from the latest values. Otherwise the result or
// the error reaches the surface.
func (c *Controller) Resolve(res *solver.Result, err error) {
	if c.state != Computing {
		return
	}
	c.state = Idle
	if c.dirty {
		c.dirty = false
		c.start()
		return
	}
	if err != nil {
		c.surf.RenderError(err.Error())
		return
	}
	c.surf.Render(res)
}

func (c *Controller) schedule() {
	if c.state == Computing {
		c.dirty = true
		return
	}
	c.start()
}

func (c *Controller) start() {
	c.state = Computing
	c.run(Job{Model: c.model, Params: c.params.Clone()})
}

package solver

import (
	"context"
	"fmt"
	"math"

	"github.com/qusimlab/qusim/internal/quantum"
)

// Trace drift beyond this aborts the run as unstable.
const traceTolerance = 0.05

// Density-matrix entries are bounded by 1 in exact arithmetic; anything past
// this is a diverging integration.
const entryBound = 1e3

// Engine integrates Problems with a fixed stepper and substep count.
type Engine struct {
	stepper  Stepper
	substeps int
}

// NewEngine returns an engine stepping substeps times between consecutive
// sample points. substeps < 1 is treated as 1.
func NewEngine(stepper Stepper, substeps int) *Engine {
	if substeps < 1 {
		substeps = 1
	}
	return &Engine{stepper: stepper, substeps: substeps}
}

// StepperName reports the active stepper.
func (e *Engine) StepperName() string { return e.stepper.Name() }

// Evolve integrates the problem over its sample times. The returned Result
// is complete on success; on failure the partial result is discarded and a
// *SimulationError (or validation error) is returned instead.
func (e *Engine) Evolve(ctx context.Context, p *Problem) (*Result, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	res := &Result{
		Times:  append([]float64(nil), p.Times...),
		Series: make([]Series, len(p.Observables)),
	}
	for i, obs := range p.Observables {
		res.Series[i] = Series{Name: obs.Name, Values: make([]float64, 0, len(p.Times))}
	}
	if p.TrackBloch && p.Initial.N == 2 {
		res.Bloch = make([][3]float64, 0, len(p.Times))
	}

	rhs := NewLiouvillian(p.Hamiltonian, p.Collapse)
	rho := p.Initial.Clone()
	record := func(r *quantum.Operator) {
		for i, obs := range p.Observables {
			v := 0.0
			if obs.Func != nil {
				v = obs.Func(r)
			} else {
				v = quantum.Expect(obs.Op, r)
			}
			res.Series[i].Values = append(res.Series[i].Values, v)
		}
		if res.Bloch != nil {
			res.Bloch = append(res.Bloch, quantum.BlochVector(r))
		}
	}
	record(rho)

	for i := 1; i < len(p.Times); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		dt := (p.Times[i] - p.Times[i-1]) / float64(e.substeps)
		for s := 0; s < e.substeps; s++ {
			rho = e.stepper.Step(rhs, rho, dt)
			res.Steps++
		}

		if !rho.IsValid() || maxAbs(rho) > entryBound {
			return nil, &SimulationError{Step: res.Steps, Time: p.Times[i], Wrapped: ErrUnstable}
		}
		if tr := real(rho.Trace()); math.Abs(tr-1) > traceTolerance {
			return nil, &SimulationError{
				Step:    res.Steps,
				Time:    p.Times[i],
				Wrapped: fmt.Errorf("%w: trace drifted to %.4f", ErrUnstable, tr),
			}
		}
		record(rho)
	}

	return res, nil
}

func validate(p *Problem) error {
	if p.Hamiltonian == nil || p.Initial == nil {
		return fmt.Errorf("%w: missing hamiltonian or initial state", ErrDimensionMismatch)
	}
	n := p.Hamiltonian.N
	if p.Initial.N != n {
		return fmt.Errorf("%w: hamiltonian dim %d, state dim %d", ErrDimensionMismatch, n, p.Initial.N)
	}
	for _, c := range p.Collapse {
		if c.N != n {
			return fmt.Errorf("%w: collapse operator dim %d, expected %d", ErrDimensionMismatch, c.N, n)
		}
	}
	for _, o := range p.Observables {
		if o.Func == nil && o.Op.N != n {
			return fmt.Errorf("%w: observable %q dim %d, expected %d", ErrDimensionMismatch, o.Name, o.Op.N, n)
		}
	}
	if len(p.Times) < 2 {
		return fmt.Errorf("%w: need at least two sample times", ErrBadTimes)
	}
	for i := 1; i < len(p.Times); i++ {
		if p.Times[i] <= p.Times[i-1] {
			return fmt.Errorf("%w: times must be strictly increasing", ErrBadTimes)
		}
	}
	return nil
}

func maxAbs(o *quantum.Operator) float64 {
	worst := 0.0
	for _, v := range o.Data {
		if a := math.Abs(real(v)) + math.Abs(imag(v)); a > worst {
			worst = a
		}
	}
	return worst
}

// Linspace returns count evenly spaced samples over [0, max].
func Linspace(max float64, count int) []float64 {
	ts := make([]float64, count)
	for i := range ts {
		ts[i] = max * float64(i) / float64(count-1)
	}
	return ts
}

package solver

import "github.com/qusimlab/qusim/internal/quantum"

// Stepper advances a density matrix by one timestep. Implementations keep
// scratch buffers sized to the problem and are not safe for concurrent use.
type Stepper interface {
	Name() string
	Step(d Derivative, rho *quantum.Operator, dt float64) *quantum.Operator
}

// Euler is the first-order explicit method. Kept for comparison runs; RK4 is
// the default everywhere else.
type Euler struct {
	k *quantum.Operator
}

func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(d Derivative, rho *quantum.Operator, dt float64) *quantum.Operator {
	if e.k == nil || e.k.N != rho.N {
		e.k = quantum.NewOperator(rho.N)
	}
	d.Derivative(rho, e.k)
	out := rho.Clone()
	out.AddScaled(complex(dt, 0), e.k)
	return out
}

// RK4 is the classical fourth-order Runge-Kutta method.
type RK4 struct {
	k1, k2, k3, k4 *quantum.Operator
	scratch        *quantum.Operator
}

func NewRK4() *RK4 { return &RK4{} }

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) ensureScratch(n int) {
	if r.k1 != nil && r.k1.N == n {
		return
	}
	r.k1 = quantum.NewOperator(n)
	r.k2 = quantum.NewOperator(n)
	r.k3 = quantum.NewOperator(n)
	r.k4 = quantum.NewOperator(n)
	r.scratch = quantum.NewOperator(n)
}

func (r *RK4) Step(d Derivative, rho *quantum.Operator, dt float64) *quantum.Operator {
	r.ensureScratch(rho.N)
	h := complex(dt, 0)

	d.Derivative(rho, r.k1)

	copy(r.scratch.Data, rho.Data)
	r.scratch.AddScaled(h/2, r.k1)
	d.Derivative(r.scratch, r.k2)

	copy(r.scratch.Data, rho.Data)
	r.scratch.AddScaled(h/2, r.k2)
	d.Derivative(r.scratch, r.k3)

	copy(r.scratch.Data, rho.Data)
	r.scratch.AddScaled(h, r.k3)
	d.Derivative(r.scratch, r.k4)

	out := rho.Clone()
	h6 := h / 6
	for i := range out.Data {
		out.Data[i] += h6 * (r.k1.Data[i] + 2*r.k2.Data[i] + 2*r.k3.Data[i] + r.k4.Data[i])
	}
	return out
}

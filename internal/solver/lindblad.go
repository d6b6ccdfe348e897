package solver

import "github.com/qusimlab/qusim/internal/quantum"

// Derivative computes dρ/dt into a caller-provided operator.
type Derivative interface {
	Derivative(rho, into *quantum.Operator)
}

// Liouvillian is the Lindblad right-hand side for a fixed Hamiltonian and
// collapse-operator set. Daggers and L†L products are precomputed once.
type Liouvillian struct {
	h        *quantum.Operator
	collapse []*quantum.Operator
	dags     []*quantum.Operator
	ldl      []*quantum.Operator

	t1, t2 *quantum.Operator
}

// NewLiouvillian builds the right-hand side for H and collapse operators.
func NewLiouvillian(h *quantum.Operator, collapse []*quantum.Operator) *Liouvillian {
	l := &Liouvillian{
		h:        h,
		collapse: collapse,
		dags:     make([]*quantum.Operator, len(collapse)),
		ldl:      make([]*quantum.Operator, len(collapse)),
		t1:       quantum.NewOperator(h.N),
		t2:       quantum.NewOperator(h.N),
	}
	for i, c := range collapse {
		l.dags[i] = c.Dag()
		l.ldl[i] = quantum.Mul(l.dags[i], c)
	}
	return l
}

// Derivative evaluates -i[H,ρ] + Σ (LρL† - ½{L†L, ρ}) into the given buffer.
func (l *Liouvillian) Derivative(rho, into *quantum.Operator) {
	quantum.MulInto(l.t1, l.h, rho)
	quantum.MulInto(l.t2, rho, l.h)
	for i := range into.Data {
		into.Data[i] = -1i * (l.t1.Data[i] - l.t2.Data[i])
	}

	for k, c := range l.collapse {
		quantum.MulInto(l.t1, c, rho)
		quantum.MulInto(l.t2, l.t1, l.dags[k])
		into.AddScaled(1, l.t2)

		quantum.MulInto(l.t1, l.ldl[k], rho)
		into.AddScaled(-0.5, l.t1)
		quantum.MulInto(l.t1, rho, l.ldl[k])
		into.AddScaled(-0.5, l.t1)
	}
}

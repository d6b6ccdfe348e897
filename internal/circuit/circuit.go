// Package circuit is a small statevector simulator for gate-model
// demos. Qubit 0 is the most significant bit of the basis index.
package circuit

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

var ErrQubitRange = errors.New("circuit: qubit index out of range")

// Register holds the full statevector of n qubits.
type Register struct {
	n    int
	amps []complex128
}

// NewRegister prepares |0...0> on n qubits.
func NewRegister(n int) *Register {
	r := &Register{n: n, amps: make([]complex128, 1<<n)}
	r.amps[0] = 1
	return r
}

func (r *Register) Qubits() int { return r.n }

// Amplitudes returns the raw statevector.
func (r *Register) Amplitudes() []complex128 { return r.amps }

// Probability of measuring basis state idx.
func (r *Register) Probability(idx int) float64 {
	a := r.amps[idx]
	return real(a)*real(a) + imag(a)*imag(a)
}

func (r *Register) check(q int) error {
	if q < 0 || q >= r.n {
		return fmt.Errorf("%w: %d (register has %d)", ErrQubitRange, q, r.n)
	}
	return nil
}

// bit reports whether qubit q is set in basis index idx.
func (r *Register) bit(idx, q int) bool {
	return idx&(1<<(r.n-1-q)) != 0
}

// H applies a Hadamard to qubit q.
func (r *Register) H(q int) error {
	if err := r.check(q); err != nil {
		return err
	}
	mask := 1 << (r.n - 1 - q)
	inv := complex(1/math.Sqrt2, 0)
	for i := range r.amps {
		if i&mask == 0 {
			a, b := r.amps[i], r.amps[i|mask]
			r.amps[i] = inv * (a + b)
			r.amps[i|mask] = inv * (a - b)
		}
	}
	return nil
}

// X applies a bit flip to qubit q.
func (r *Register) X(q int) error {
	if err := r.check(q); err != nil {
		return err
	}
	mask := 1 << (r.n - 1 - q)
	for i := range r.amps {
		if i&mask == 0 {
			r.amps[i], r.amps[i|mask] = r.amps[i|mask], r.amps[i]
		}
	}
	return nil
}

// Z applies a phase flip to qubit q.
func (r *Register) Z(q int) error {
	if err := r.check(q); err != nil {
		return err
	}
	for i := range r.amps {
		if r.bit(i, q) {
			r.amps[i] = -r.amps[i]
		}
	}
	return nil
}

// CZ applies a controlled phase flip between two qubits.
func (r *Register) CZ(a, b int) error {
	if err := r.check(a); err != nil {
		return err
	}
	if err := r.check(b); err != nil {
		return err
	}
	for i := range r.amps {
		if r.bit(i, a) && r.bit(i, b) {
			r.amps[i] = -r.amps[i]
		}
	}
	return nil
}

// CNOT applies a controlled bit flip: control ctl, target tgt.
func (r *Register) CNOT(ctl, tgt int) error {
	if err := r.check(ctl); err != nil {
		return err
	}
	if err := r.check(tgt); err != nil {
		return err
	}
	tmask := 1 << (r.n - 1 - tgt)
	for i := range r.amps {
		if r.bit(i, ctl) && i&tmask == 0 {
			r.amps[i], r.amps[i|tmask] = r.amps[i|tmask], r.amps[i]
		}
	}
	return nil
}

// Norm returns the statevector norm, 1 for any valid state.
func (r *Register) Norm() float64 {
	sum := 0.0
	for _, a := range r.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

// Measure returns the most probable basis index without collapsing.
func (r *Register) Measure() int {
	best, bestP := 0, 0.0
	for i := range r.amps {
		if p := r.Probability(i); p > bestP {
			best, bestP = i, p
		}
	}
	return best
}

// Phase returns the phase angle of amplitude idx.
func (r *Register) Phase(idx int) float64 {
	return cmplx.Phase(r.amps[idx])
}

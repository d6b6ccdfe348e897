package quantum

import (
	"math"
	"math/cmplx"
)

// DensityMatrix returns |k><k| for a (not necessarily normalized) ket.
func DensityMatrix(k Ket) *Operator {
	u := k.Unit()
	n := len(u)
	rho := NewOperator(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rho.Set(i, j, u[i]*cmplx.Conj(u[j]))
		}
	}
	return rho
}

// Projector returns |k><k| without normalizing k.
func Projector(k Ket) *Operator {
	n := len(k)
	p := NewOperator(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p.Set(i, j, k[i]*cmplx.Conj(k[j]))
		}
	}
	return p
}

// Coherent returns the coherent state |alpha> truncated to n Fock levels.
func Coherent(n int, alpha complex128) Ket {
	k := make(Ket, n)
	// c_m = e^{-|alpha|^2/2} alpha^m / sqrt(m!)
	pref := cmplx.Exp(complex(-cmplx.Abs(alpha)*cmplx.Abs(alpha)/2, 0))
	term := pref
	k[0] = term
	for m := 1; m < n; m++ {
		term *= alpha / complex(math.Sqrt(float64(m)), 0)
		k[m] = term
	}
	return k.Unit() // renormalize truncation loss
}

// ThermalDM returns the thermal density matrix with mean occupation nbar,
// truncated to n Fock levels and renormalized.
func ThermalDM(n int, nbar float64) *Operator {
	rho := NewOperator(n)
	if nbar <= 0 {
		rho.Set(0, 0, 1)
		return rho
	}
	var norm float64
	r := nbar / (1 + nbar)
	p := 1 / (1 + nbar)
	for m := 0; m < n; m++ {
		rho.Set(m, m, complex(p, 0))
		norm += p
		p *= r
	}
	for m := 0; m < n; m++ {
		rho.Set(m, m, rho.At(m, m)/complex(norm, 0))
	}
	return rho
}

// Expect returns the real part of tr(op * rho), the expectation value of a
// Hermitian observable in the state rho.
func Expect(op, rho *Operator) float64 {
	return real(ExpectC(op, rho))
}

// ExpectC returns tr(op * rho) without discarding the imaginary part.
func ExpectC(op, rho *Operator) complex128 {
	n := op.N
	var t complex128
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t += op.Data[i*n+j] * rho.Data[j*n+i]
		}
	}
	return t
}

// Purity returns tr(rho^2): 1 for pure states, 1/N for the maximally mixed.
func Purity(rho *Operator) float64 {
	return real(ExpectC(rho, rho))
}

// Coherence returns |rho_01|, the off-diagonal magnitude of a qubit state.
func Coherence(rho *Operator) float64 {
	return cmplx.Abs(rho.At(0, 1))
}

// BlochVector returns (<sx>, <sy>, <sz>) for a qubit density matrix.
func BlochVector(rho *Operator) [3]float64 {
	return [3]float64{
		Expect(SigmaX(), rho),
		Expect(SigmaY(), rho),
		Expect(SigmaZ(), rho),
	}
}

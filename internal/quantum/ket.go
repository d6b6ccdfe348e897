package quantum

import (
	"math"
	"math/cmplx"
)

// Ket is a pure state vector in an n-dimensional Hilbert space.
type Ket []complex128

// Basis returns the computational basis state |i> in dimension n.
func Basis(n, i int) Ket {
	k := make(Ket, n)
	if i >= 0 && i < n {
		k[i] = 1
	}
	return k
}

func (k Ket) Clone() Ket {
	c := make(Ket, len(k))
	copy(c, k)
	return c
}

// Norm returns the 2-norm of the vector.
func (k Ket) Norm() float64 {
	sum := 0.0
	for _, a := range k {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

// Unit returns the normalized copy of k. A zero vector is returned unchanged.
func (k Ket) Unit() Ket {
	n := k.Norm()
	c := k.Clone()
	if n == 0 {
		return c
	}
	for i := range c {
		c[i] /= complex(n, 0)
	}
	return c
}

// Add returns k + other, padding the shorter vector with zeros.
func (k Ket) Add(other Ket) Ket {
	c := k.Clone()
	for i := range c {
		if i < len(other) {
			c[i] += other[i]
		}
	}
	return c
}

// Scale returns s*k.
func (k Ket) Scale(s complex128) Ket {
	c := make(Ket, len(k))
	for i := range k {
		c[i] = s * k[i]
	}
	return c
}

// IsValid reports whether every amplitude is finite.
func (k Ket) IsValid() bool {
	for _, a := range k {
		if cmplx.IsNaN(a) || cmplx.IsInf(a) {
			return false
		}
	}
	return true
}

// Named single-qubit states on the Bloch sphere.
func Ground() Ket  { return Basis(2, 0) }
func Excited() Ket { return Basis(2, 1) }
func Plus() Ket    { return Basis(2, 0).Add(Basis(2, 1)).Unit() }
func Minus() Ket   { return Basis(2, 0).Add(Basis(2, 1).Scale(-1)).Unit() }
func Right() Ket   { return Basis(2, 0).Add(Basis(2, 1).Scale(1i)).Unit() }
func Left() Ket    { return Basis(2, 0).Add(Basis(2, 1).Scale(-1i)).Unit() }

// BlochKet returns the qubit state at polar angle theta and azimuth phi:
// cos(theta/2)|0> + e^{i phi} sin(theta/2)|1>.
func BlochKet(theta, phi float64) Ket {
	return Ket{
		complex(math.Cos(theta/2), 0),
		cmplx.Exp(complex(0, phi)) * complex(math.Sin(theta/2), 0),
	}
}

// TensorKet returns the Kronecker product a (x) b.
func TensorKet(a, b Ket) Ket {
	out := make(Ket, len(a)*len(b))
	for i, ai := range a {
		for j, bj := range b {
			out[i*len(b)+j] = ai * bj
		}
	}
	return out
}

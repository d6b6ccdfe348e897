package quantum

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// Operator is a dense N x N complex matrix in row-major order. It represents
// Hamiltonians, collapse operators, observables, and density matrices alike.
type Operator struct {
	N    int
	Data []complex128
}

// NewOperator returns the zero operator of dimension n.
func NewOperator(n int) *Operator {
	return &Operator{N: n, Data: make([]complex128, n*n)}
}

// Identity returns the n-dimensional identity.
func Identity(n int) *Operator {
	op := NewOperator(n)
	for i := 0; i < n; i++ {
		op.Data[i*n+i] = 1
	}
	return op
}

func (o *Operator) general() cblas128.General {
	return cblas128.General{Rows: o.N, Cols: o.N, Stride: o.N, Data: o.Data}
}

// At returns element (i, j).
func (o *Operator) At(i, j int) complex128 { return o.Data[i*o.N+j] }

// Set assigns element (i, j).
func (o *Operator) Set(i, j int, v complex128) { o.Data[i*o.N+j] = v }

func (o *Operator) Clone() *Operator {
	c := NewOperator(o.N)
	copy(c.Data, o.Data)
	return c
}

// Mul returns a*b.
func Mul(a, b *Operator) *Operator {
	c := NewOperator(a.N)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.general(), b.general(), 0, c.general())
	return c
}

// MulInto computes dst = a*b without allocating. dst must not alias a or b.
func MulInto(dst, a, b *Operator) {
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.general(), b.general(), 0, dst.general())
}

// Add returns a + b.
func Add(a, b *Operator) *Operator {
	c := a.Clone()
	for i := range c.Data {
		c.Data[i] += b.Data[i]
	}
	return c
}

// Sub returns a - b.
func Sub(a, b *Operator) *Operator {
	c := a.Clone()
	for i := range c.Data {
		c.Data[i] -= b.Data[i]
	}
	return c
}

// Scale returns s*a.
func Scale(s complex128, a *Operator) *Operator {
	c := a.Clone()
	for i := range c.Data {
		c.Data[i] *= s
	}
	return c
}

// AddScaled accumulates dst += s*a in place.
func (o *Operator) AddScaled(s complex128, a *Operator) {
	for i := range o.Data {
		o.Data[i] += s * a.Data[i]
	}
}

// Dag returns the conjugate transpose.
func (o *Operator) Dag() *Operator {
	c := NewOperator(o.N)
	for i := 0; i < o.N; i++ {
		for j := 0; j < o.N; j++ {
			c.Data[j*o.N+i] = cmplx.Conj(o.Data[i*o.N+j])
		}
	}
	return c
}

// Trace returns tr(o).
func (o *Operator) Trace() complex128 {
	var t complex128
	for i := 0; i < o.N; i++ {
		t += o.Data[i*o.N+i]
	}
	return t
}

// IsValid reports whether every entry is finite.
func (o *Operator) IsValid() bool {
	for _, v := range o.Data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

// Commutator returns [a, b] = ab - ba.
func Commutator(a, b *Operator) *Operator {
	return Sub(Mul(a, b), Mul(b, a))
}

// Kron returns the tensor product a (x) b.
func Kron(a, b *Operator) *Operator {
	n := a.N * b.N
	c := NewOperator(n)
	for ia := 0; ia < a.N; ia++ {
		for ja := 0; ja < a.N; ja++ {
			av := a.At(ia, ja)
			if av == 0 {
				continue
			}
			for ib := 0; ib < b.N; ib++ {
				for jb := 0; jb < b.N; jb++ {
					c.Set(ia*b.N+ib, ja*b.N+jb, av*b.At(ib, jb))
				}
			}
		}
	}
	return c
}

// Apply returns o|k>.
func Apply(o *Operator, k Ket) Ket {
	out := make(Ket, o.N)
	for i := 0; i < o.N; i++ {
		var s complex128
		for j := 0; j < o.N; j++ {
			s += o.Data[i*o.N+j] * k[j]
		}
		out[i] = s
	}
	return out
}

// Pauli and ladder operators for a single qubit.

func SigmaX() *Operator {
	return &Operator{N: 2, Data: []complex128{0, 1, 1, 0}}
}

func SigmaY() *Operator {
	return &Operator{N: 2, Data: []complex128{0, -1i, 1i, 0}}
}

func SigmaZ() *Operator {
	return &Operator{N: 2, Data: []complex128{1, 0, 0, -1}}
}

// SigmaPlus is the raising operator |1><0| in the {|0>,|1>} convention where
// |1> is the excited state.
func SigmaPlus() *Operator {
	return &Operator{N: 2, Data: []complex128{0, 0, 1, 0}}
}

// SigmaMinus is the lowering operator |0><1|.
func SigmaMinus() *Operator {
	return &Operator{N: 2, Data: []complex128{0, 1, 0, 0}}
}

// Destroy returns the bosonic annihilation operator truncated to n levels.
func Destroy(n int) *Operator {
	op := NewOperator(n)
	for i := 1; i < n; i++ {
		op.Set(i-1, i, complex(math.Sqrt(float64(i)), 0))
	}
	return op
}

// Number returns the photon number operator a†a truncated to n levels.
func Number(n int) *Operator {
	op := NewOperator(n)
	for i := 0; i < n; i++ {
		op.Set(i, i, complex(float64(i), 0))
	}
	return op
}

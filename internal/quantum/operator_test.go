package quantum

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestPauliAlgebra(t *testing.T) {
	// [sx, sy] = 2i sz
	comm := Commutator(SigmaX(), SigmaY())
	want := Scale(2i, SigmaZ())
	for i := range comm.Data {
		if cmplx.Abs(comm.Data[i]-want.Data[i]) > 1e-12 {
			t.Fatalf("commutator element %d: got %v, want %v", i, comm.Data[i], want.Data[i])
		}
	}

	// sx^2 = I
	sq := Mul(SigmaX(), SigmaX())
	id := Identity(2)
	for i := range sq.Data {
		if cmplx.Abs(sq.Data[i]-id.Data[i]) > 1e-12 {
			t.Fatalf("sx^2 element %d: got %v", i, sq.Data[i])
		}
	}
}

func TestDestroyLadder(t *testing.T) {
	n := 5
	a := Destroy(n)
	num := Mul(a.Dag(), a)
	want := Number(n)
	for i := range num.Data {
		if cmplx.Abs(num.Data[i]-want.Data[i]) > 1e-12 {
			t.Fatalf("a†a element %d: got %v, want %v", i, num.Data[i], want.Data[i])
		}
	}

	// a|2> = sqrt(2)|1>
	out := Apply(a, Basis(n, 2))
	if cmplx.Abs(out[1]-complex(math.Sqrt2, 0)) > 1e-12 {
		t.Errorf("a|2> amplitude: got %v", out[1])
	}
}

func TestKronDims(t *testing.T) {
	a := Destroy(4)
	id := Identity(2)
	k := Kron(a, id)
	if k.N != 8 {
		t.Fatalf("expected dim 8, got %d", k.N)
	}
	// (a (x) I)|2,0> = sqrt(2)|1,0>
	out := Apply(k, TensorKet(Basis(4, 2), Basis(2, 0)))
	if cmplx.Abs(out[1*2+0]-complex(math.Sqrt2, 0)) > 1e-12 {
		t.Errorf("tensor action wrong: %v", out)
	}
}

func TestExpectation(t *testing.T) {
	// <+|sx|+> = 1
	rho := DensityMatrix(Plus())
	if got := Expect(SigmaX(), rho); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("<sx> for |+>: got %f, want 1", got)
	}
	if got := Expect(SigmaZ(), rho); math.Abs(got) > 1e-12 {
		t.Errorf("<sz> for |+>: got %f, want 0", got)
	}
}

func TestBlochVector(t *testing.T) {
	tests := []struct {
		name string
		k    Ket
		want [3]float64
	}{
		{"ground", Ground(), [3]float64{0, 0, 1}},
		{"excited", Excited(), [3]float64{0, 0, -1}},
		{"plus", Plus(), [3]float64{1, 0, 0}},
		{"right", Right(), [3]float64{0, 1, 0}},
	}
	for _, tt := range tests {
		v := BlochVector(DensityMatrix(tt.k))
		for i := 0; i < 3; i++ {
			if math.Abs(v[i]-tt.want[i]) > 1e-12 {
				t.Errorf("%s: component %d got %f, want %f", tt.name, i, v[i], tt.want[i])
			}
		}
	}
}

func TestDagHermitian(t *testing.T) {
	h := Add(SigmaZ(), Scale(0.3, SigmaX()))
	d := h.Dag()
	for i := range h.Data {
		if cmplx.Abs(h.Data[i]-d.Data[i]) > 1e-12 {
			t.Fatalf("hermitian operator changed under dagger at %d", i)
		}
	}
}

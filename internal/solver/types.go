package solver

import "github.com/qusimlab/qusim/internal/quantum"

// Observable names a quantity recorded at every sample time: either the
// expectation value of an operator, or an arbitrary function of the density
// matrix (for quantities like |rho01| that are not expectation values).
// Func takes precedence when both are set.
type Observable struct {
	Name string
	Op   *quantum.Operator
	Func func(rho *quantum.Operator) float64
}

// Problem is one fully assembled master-equation integration.
type Problem struct {
	Hamiltonian *quantum.Operator
	Collapse    []*quantum.Operator
	Initial     *quantum.Operator // density matrix at Times[0]
	Times       []float64
	Observables []Observable

	// TrackBloch records the Bloch vector at every sample; only meaningful
	// for two-dimensional problems.
	TrackBloch bool
}

// Series is one named observable trace over the sample times.
type Series struct {
	Name   string
	Values []float64
}

// Result is the outcome of one integration. It is immutable once returned:
// the solver keeps no reference, and render layers only read it.
type Result struct {
	Times  []float64
	Series []Series
	Bloch  [][3]float64
	Steps  int
}

// Get returns the series with the given name, or nil.
func (r *Result) Get(name string) []float64 {
	for i := range r.Series {
		if r.Series[i].Name == name {
			return r.Series[i].Values
		}
	}
	return nil
}

// Package quantum provides dense complex linear algebra for small Hilbert
// spaces: kets, operators, density matrices, and expectation values.
//
// The package defines the building blocks every scenario is assembled from:
//
//   - [Ket]: complex state vector
//   - [Operator]: dense square complex matrix (Hamiltonians, collapse
//     operators, observables, density matrices)
//   - [Expect], [BlochVector], [Purity]: observable read-out
//
// Matrix products go through gonum's cblas128 routines. Spaces here are
// tiny (a qubit is dimension 2, the cavity model dimension 16), so dense
// storage is always the right representation.
//
// Constructors return fresh storage; shared operators are never mutated.
package quantum

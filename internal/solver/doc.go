// Package solver integrates the Lindblad master equation
//
//	dρ/dt = -i[H, ρ] + Σ_k ( L_k ρ L_k† - ½{L_k†L_k, ρ} )
//
// for a time-independent Hamiltonian H and a set of collapse operators L_k.
// With no collapse operators the equation reduces to closed-system von
// Neumann evolution, so pure-state problems go through the same path.
//
// A [Problem] bundles the operators, the initial density matrix, the sample
// times, and the observables to record. [Engine.Evolve] integrates between
// consecutive sample times with a fixed number of internal substeps and
// returns a [Result] holding one value series per observable.
//
// Engine instances are not safe for concurrent use; steppers carry scratch
// buffers sized to the problem.
package solver

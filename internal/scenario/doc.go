// Package scenario declares the explorable physical models and their
// bounded parameter sets.
//
// A [Scenario] owns a parameter [Spec] (names, bounds, defaults) and knows
// how to assemble a solver.Problem from a [ParameterSet]. The [Registry]
// maps selectors to scenarios; [Simulator] ties a registry to a solver
// engine and is what interactive and one-shot callers invoke.
//
// Three scenarios are registered: a driven two-level system (Rabi
// oscillations in the rotating frame), open-system qubit decay (T1
// relaxation plus pure dephasing), and an atom coupled to a lossy cavity
// mode (Jaynes-Cummings).
package scenario

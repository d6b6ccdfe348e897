package scenario

import (
	"math"

	"github.com/qusimlab/qusim/internal/quantum"
	"github.com/qusimlab/qusim/internal/solver"
)

const (
	// Fock-space truncation of the cavity mode. A single excitation never
	// climbs the ladder, so eight levels is generous headroom.
	cavityLevels = 8

	cavityFrequency = 1.0
	atomFrequency   = 1.0
)

// CavityScenario is the Jaynes-Cummings model: a two-level atom exchanging
// a single excitation with one cavity mode,
//
//	H = omega_c a†a - omega_a/2 sigma_z + g (a† sigma_- + a sigma_+),
//
// with the minus sign placing the excited state |1> at +omega_a/2 under
// sigma_z = diag(1,-1), so |e,0> and |g,1> are degenerate on resonance,
//
// starting from an excited atom in a vacuum cavity. Photon loss at rate
// kappa damps the vacuum Rabi oscillation.
type CavityScenario struct{}

func NewCavity() *CavityScenario { return &CavityScenario{} }

func (*CavityScenario) Spec() Spec {
	return Spec{
		Selector: Cavity,
		Title:    "Cavity QED",
		About: "Atom-cavity coupling in the Jaynes-Cummings model. The " +
			"excitation swaps between atom and photon at the vacuum Rabi " +
			"frequency 2g; cavity decay drains it away.",
		Params: []ParamSpec{
			{Name: "coupling", Label: "Coupling (g)", Min: 0.02, Max: 0.3, Default: 0.1, Step: 0.01},
			{Name: "cavity_decay", Label: "Cavity decay (κ)", Min: 0, Max: 0.1, Default: 0, Step: 0.005},
			{Name: "time_max", Label: "Time max", Min: 5, Max: 50, Default: 20, Step: 1},
		},
	}
}

func (*CavityScenario) Build(p ParameterSet) (*solver.Problem, error) {
	g := p["coupling"]

	a := quantum.Kron(quantum.Destroy(cavityLevels), quantum.Identity(2))
	sm := quantum.Kron(quantum.Identity(cavityLevels), quantum.SigmaMinus())
	sp := quantum.Kron(quantum.Identity(cavityLevels), quantum.SigmaPlus())
	szf := quantum.Kron(quantum.Identity(cavityLevels), quantum.SigmaZ())
	num := quantum.Mul(a.Dag(), a)

	h := quantum.Add(
		quantum.Scale(complex(cavityFrequency, 0), num),
		quantum.Add(
			quantum.Scale(complex(-atomFrequency/2, 0), szf),
			quantum.Scale(complex(g, 0),
				quantum.Add(quantum.Mul(a.Dag(), sm), quantum.Mul(a, sp))),
		),
	)

	var collapse []*quantum.Operator
	if kappa := p["cavity_decay"]; kappa > 0 {
		collapse = append(collapse, quantum.Scale(complex(math.Sqrt(kappa), 0), a))
	}

	return &solver.Problem{
		Hamiltonian: h,
		Collapse:    collapse,
		Initial:     quantum.DensityMatrix(quantum.TensorKet(quantum.Basis(cavityLevels, 0), quantum.Excited())),
		Times:       solver.Linspace(p["time_max"], sampleCount),
		Observables: []solver.Observable{
			{Name: "atom", Op: quantum.Mul(sp, sm)},
			{Name: "photons", Op: num},
		},
	}, nil
}

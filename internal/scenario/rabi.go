package scenario

import (
	"github.com/qusimlab/qusim/internal/quantum"
	"github.com/qusimlab/qusim/internal/solver"
)

// Samples per result series, matching the resolution the plots are tuned to.
const sampleCount = 200

// RabiScenario is a two-level system driven at Rabi frequency omega_rabi
// with detuning delta, expressed in the rotating frame:
//
//	H = delta/2 sigma_z + omega_rabi/2 sigma_x
//
// Starting from the ground state, the excited population follows
// (omega^2 / (omega^2 + delta^2)) sin^2(sqrt(omega^2 + delta^2) t / 2).
type RabiScenario struct{}

func NewRabi() *RabiScenario { return &RabiScenario{} }

func (*RabiScenario) Spec() Spec {
	return Spec{
		Selector: Rabi,
		Title:    "Rabi Oscillations",
		About: "Two-level system under resonant or detuned driving. " +
			"On resonance the qubit cycles fully between ground and excited; " +
			"detuning reduces the oscillation amplitude and raises its frequency.",
		Params: []ParamSpec{
			{Name: "omega_rabi", Label: "Rabi freq (Ω)", Min: 0, Max: 1.0, Default: 0.2, Step: 0.02},
			{Name: "detuning", Label: "Detuning (Δ)", Min: -0.5, Max: 0.5, Default: 0, Step: 0.02},
			{Name: "time_max", Label: "Time max", Min: 5, Max: 50, Default: 20, Step: 1},
		},
	}
}

func (*RabiScenario) Build(p ParameterSet) (*solver.Problem, error) {
	omega := p["omega_rabi"]
	delta := p["detuning"]

	h := quantum.Add(
		quantum.Scale(complex(delta/2, 0), quantum.SigmaZ()),
		quantum.Scale(complex(omega/2, 0), quantum.SigmaX()),
	)

	excited := quantum.Projector(quantum.Excited())

	return &solver.Problem{
		Hamiltonian: h,
		Initial:     quantum.DensityMatrix(quantum.Ground()),
		Times:       solver.Linspace(p["time_max"], sampleCount),
		Observables: []solver.Observable{
			{Name: "excited", Op: excited},
			{Name: "ground", Op: quantum.Projector(quantum.Ground())},
		},
		TrackBloch: true,
	}, nil
}

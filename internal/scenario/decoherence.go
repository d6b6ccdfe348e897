package scenario

import (
	"math"

	"github.com/qusimlab/qusim/internal/quantum"
	"github.com/qusimlab/qusim/internal/solver"
)

// Qubit splitting in natural units; time axes are in 1/omega0.
const qubitFrequency = 1.0

// DecoherenceScenario is an undriven qubit prepared in |+> and coupled to
// its environment through energy relaxation (rate gamma, the 1/T1 process)
// and pure dephasing (rate gamma_phi). The off-diagonal element decays as
// exp(-(gamma/2 + 2 gamma_phi) t) while populations decay at gamma alone.
type DecoherenceScenario struct{}

func NewDecoherence() *DecoherenceScenario { return &DecoherenceScenario{} }

func (*DecoherenceScenario) Spec() Spec {
	return Spec{
		Selector: Decoherence,
		Title:    "Quantum Decoherence",
		About: "Superposition state losing phase coherence to its environment. " +
			"T1 relaxation empties the excited level; pure dephasing scrambles " +
			"the phase without moving population.",
		Params: []ParamSpec{
			{Name: "gamma", Label: "T1 rate (γ)", Min: 0, Max: 0.2, Default: 0.05, Step: 0.005},
			{Name: "gamma_phi", Label: "T2 rate (γφ)", Min: 0, Max: 0.3, Default: 0.1, Step: 0.005},
			{Name: "time_max", Label: "Time max", Min: 5, Max: 50, Default: 20, Step: 1},
		},
	}
}

func (*DecoherenceScenario) Build(p ParameterSet) (*solver.Problem, error) {
	var collapse []*quantum.Operator
	if g := p["gamma"]; g > 0 {
		collapse = append(collapse, quantum.Scale(complex(math.Sqrt(g), 0), quantum.SigmaMinus()))
	}
	if gp := p["gamma_phi"]; gp > 0 {
		collapse = append(collapse, quantum.Scale(complex(math.Sqrt(gp), 0), quantum.SigmaZ()))
	}

	return &solver.Problem{
		Hamiltonian: quantum.Scale(complex(qubitFrequency/2, 0), quantum.SigmaZ()),
		Collapse:    collapse,
		Initial:     quantum.DensityMatrix(quantum.Plus()),
		Times:       solver.Linspace(p["time_max"], sampleCount),
		Observables: []solver.Observable{
			{Name: "coherence", Func: quantum.Coherence},
			{Name: "excited", Op: quantum.Projector(quantum.Excited())},
		},
		TrackBloch: true,
	}, nil
}

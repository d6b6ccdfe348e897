package sweep_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/qusimlab/qusim/internal/scenario"
	"github.com/qusimlab/qusim/internal/solver"
	"github.com/qusimlab/qusim/internal/sweep"
)

// recordingSurface captures render calls so specs can assert how many
// results actually reached the display.
type recordingSurface struct {
	results []*solver.Result
	errs    []string
}

func (s *recordingSurface) Render(res *solver.Result) { s.results = append(s.results, res) }
func (s *recordingSurface) RenderError(msg string)    { s.errs = append(s.errs, msg) }

// manualRunner holds scheduled jobs without executing them, letting
// specs keep a computation "in flight" for as long as they need.
type manualRunner struct {
	jobs []sweep.Job
}

func (r *manualRunner) run(job sweep.Job) { r.jobs = append(r.jobs, job) }

func (r *manualRunner) last() sweep.Job { return r.jobs[len(r.jobs)-1] }

// stubEngine serves canned outcomes for the synchronous default runner.
type stubEngine struct {
	res   *solver.Result
	err   error
	calls []scenario.ParameterSet
}

func (e *stubEngine) Simulate(_ context.Context, _ scenario.Selector, params scenario.ParameterSet) (*solver.Result, error) {
	e.calls = append(e.calls, params.Clone())
	return e.res, e.err
}

var _ = Describe("Controller", func() {
	var (
		surf   *recordingSurface
		runner *manualRunner
		ctrl   *sweep.Controller
	)

	BeforeEach(func() {
		surf = &recordingSurface{}
		runner = &manualRunner{}
		var err error
		ctrl, err = sweep.New(scenario.NewRegistry(), nil, surf, scenario.Rabi,
			sweep.WithRunner(runner.run))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("parameter edits", func() {
		It("clamps values to their declared bounds", func() {
			Expect(ctrl.SetParameter("omega_rabi", 99)).To(Succeed())
			Expect(ctrl.Params()["omega_rabi"]).To(Equal(1.0))

			ctrl.Resolve(&solver.Result{}, nil)

			Expect(ctrl.SetParameter("detuning", -99)).To(Succeed())
			Expect(ctrl.Params()["detuning"]).To(Equal(-0.5))
		})

		It("rejects unknown names without side effects", func() {
			before := ctrl.Params()
			err := ctrl.SetParameter("frequency_of_nothing", 1)
			Expect(errors.Is(err, scenario.ErrUnknownParameter)).To(BeTrue())
			Expect(ctrl.Params()).To(Equal(before))
			Expect(runner.jobs).To(BeEmpty())
			Expect(ctrl.State()).To(Equal(sweep.Idle))
		})

		It("moves by whole steps via Adjust", func() {
			start := ctrl.Params()["omega_rabi"]
			step := ctrl.Spec().Params[0].Step
			Expect(ctrl.Adjust("omega_rabi", 2)).To(Succeed())
			Expect(ctrl.Params()["omega_rabi"]).To(BeNumerically("~", start+2*step, 1e-12))
		})
	})

	Describe("scheduling", func() {
		It("starts exactly one job from idle", func() {
			Expect(ctrl.SetParameter("omega_rabi", 0.4)).To(Succeed())
			Expect(runner.jobs).To(HaveLen(1))
			Expect(ctrl.State()).To(Equal(sweep.Computing))
		})

		It("snapshots parameters per job", func() {
			Expect(ctrl.SetParameter("omega_rabi", 0.4)).To(Succeed())
			snap := runner.last().Params
			Expect(ctrl.SetParameter("omega_rabi", 0.9)).To(Succeed())
			Expect(snap["omega_rabi"]).To(Equal(0.4))
		})

		It("renders the result of an uncontested run", func() {
			Expect(ctrl.SetParameter("omega_rabi", 0.4)).To(Succeed())
			res := &solver.Result{}
			ctrl.Resolve(res, nil)
			Expect(surf.results).To(ConsistOf(res))
			Expect(ctrl.State()).To(Equal(sweep.Idle))
		})
	})

	Describe("coalescing", func() {
		It("discards a stale result and recomputes with the latest values", func() {
			Expect(ctrl.SetParameter("omega_rabi", 0.2)).To(Succeed())
			Expect(ctrl.SetParameter("omega_rabi", 0.4)).To(Succeed())
			Expect(ctrl.SetParameter("omega_rabi", 0.6)).To(Succeed())
			Expect(runner.jobs).To(HaveLen(1))

			stale := &solver.Result{}
			ctrl.Resolve(stale, nil)

			Expect(surf.results).To(BeEmpty())
			Expect(runner.jobs).To(HaveLen(2))
			Expect(runner.last().Params["omega_rabi"]).To(Equal(0.6))

			fresh := &solver.Result{}
			ctrl.Resolve(fresh, nil)
			Expect(surf.results).To(ConsistOf(fresh))
		})

		It("discards stale failures the same way", func() {
			Expect(ctrl.SetParameter("omega_rabi", 0.2)).To(Succeed())
			Expect(ctrl.SetParameter("omega_rabi", 0.6)).To(Succeed())

			ctrl.Resolve(nil, errors.New("solver: step went unstable"))

			Expect(surf.errs).To(BeEmpty())
			Expect(runner.jobs).To(HaveLen(2))
		})

		It("coalesces edits across different parameters into one job", func() {
			Expect(ctrl.SetParameter("omega_rabi", 0.3)).To(Succeed())
			Expect(ctrl.SetParameter("detuning", 0.2)).To(Succeed())
			Expect(ctrl.SetParameter("time_max", 40)).To(Succeed())

			ctrl.Resolve(&solver.Result{}, nil)

			Expect(runner.jobs).To(HaveLen(2))
			job := runner.last()
			Expect(job.Params["omega_rabi"]).To(Equal(0.3))
			Expect(job.Params["detuning"]).To(Equal(0.2))
			Expect(job.Params["time_max"]).To(Equal(40.0))
		})
	})

	Describe("failures", func() {
		It("surfaces an uncontested failure without rendering", func() {
			Expect(ctrl.SetParameter("omega_rabi", 0.4)).To(Succeed())
			ctrl.Resolve(nil, errors.New("solver: step went unstable"))

			Expect(surf.results).To(BeEmpty())
			Expect(surf.errs).To(ConsistOf("solver: step went unstable"))
			Expect(ctrl.State()).To(Equal(sweep.Idle))
		})

		It("keeps accepting edits after a failure", func() {
			Expect(ctrl.SetParameter("omega_rabi", 0.4)).To(Succeed())
			ctrl.Resolve(nil, errors.New("boom"))

			Expect(ctrl.SetParameter("omega_rabi", 0.5)).To(Succeed())
			Expect(runner.jobs).To(HaveLen(2))
			res := &solver.Result{}
			ctrl.Resolve(res, nil)
			Expect(surf.results).To(ConsistOf(res))
		})
	})

	Describe("model switching", func() {
		It("rejects unknown selectors without side effects", func() {
			err := ctrl.SetModel("larmor")
			Expect(errors.Is(err, scenario.ErrUnknownModel)).To(BeTrue())
			Expect(ctrl.Model()).To(Equal(scenario.Rabi))
			Expect(runner.jobs).To(BeEmpty())
		})

		It("resets to the new scenario's defaults", func() {
			Expect(ctrl.SetModel(scenario.Cavity)).To(Succeed())
			Expect(ctrl.Model()).To(Equal(scenario.Cavity))
			Expect(ctrl.Params()).To(Equal(ctrl.Spec().Defaults()))
			Expect(runner.last().Model).To(Equal(scenario.Cavity))
		})

		It("discards an in-flight run when switched mid-computation", func() {
			Expect(ctrl.SetParameter("omega_rabi", 0.4)).To(Succeed())
			Expect(ctrl.SetModel(scenario.Decoherence)).To(Succeed())

			ctrl.Resolve(&solver.Result{}, nil)

			Expect(surf.results).To(BeEmpty())
			Expect(runner.jobs).To(HaveLen(2))
			Expect(runner.last().Model).To(Equal(scenario.Decoherence))
		})
	})

	Describe("default runner", func() {
		It("computes synchronously and renders in one call", func() {
			eng := &stubEngine{res: &solver.Result{}}
			ctrl, err := sweep.New(scenario.NewRegistry(), eng, surf, scenario.Rabi)
			Expect(err).NotTo(HaveOccurred())

			Expect(ctrl.SetParameter("omega_rabi", 0.4)).To(Succeed())

			Expect(eng.calls).To(HaveLen(1))
			Expect(eng.calls[0]["omega_rabi"]).To(Equal(0.4))
			Expect(surf.results).To(ConsistOf(eng.res))
			Expect(ctrl.State()).To(Equal(sweep.Idle))
		})
	})

	It("ignores Resolve while idle", func() {
		ctrl.Resolve(&solver.Result{}, nil)
		Expect(surf.results).To(BeEmpty())
	})
})

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/qusimlab/qusim/internal/analysis"
	"github.com/qusimlab/qusim/internal/circuit"
	"github.com/qusimlab/qusim/internal/config"
	"github.com/qusimlab/qusim/internal/metrics"
	"github.com/qusimlab/qusim/internal/quantum"
	"github.com/qusimlab/qusim/internal/render"
	"github.com/qusimlab/qusim/internal/scenario"
	"github.com/qusimlab/qusim/internal/solver"
	"github.com/qusimlab/qusim/internal/storage"
	"github.com/qusimlab/qusim/internal/tui"
)

var (
	dataDir     string
	stepperName string
	substeps    int
	setFlags    []string
	configFile  string
	preset      string
	seriesName  string
)

// main registers commands and flags; with no subcommand the
// interactive TUI starts.
func main() {
	rootCmd := &cobra.Command{
		Use:   "qusim",
		Short: "quantum dynamics simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qusim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario and store the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&stepperName, "stepper", "rk4", "time stepper (euler, rk4)")
	runCmd.Flags().IntVar(&substeps, "substeps", 10, "integration substeps per sample")
	runCmd.Flags().StringArrayVar(&setFlags, "param", nil, "parameter override name=value (repeatable)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&seriesName, "series", "", "plot a single series by name")

	blochCmd := &cobra.Command{
		Use:   "bloch [run_id]",
		Short: "draw the Bloch trajectory of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  blochRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&seriesName, "series", "", "series to analyze (default: first)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo [rabi|decoherence|cavity|gates|photons|all]",
		Short: "run a non-interactive demo",
		Args:  cobra.ExactArgs(1),
		RunE:  runDemo,
	}

	bvCmd := &cobra.Command{
		Use:   "bv [bits]",
		Short: "Bernstein-Vazirani: recover a hidden bit string in one query",
		Args:  cobra.ExactArgs(1),
		RunE:  runBV,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, blochCmd, analyzeCmd, exportCmd, exportCSVCmd, presetsCmd, demoCmd, bvCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func stepperByName(name string) (solver.Stepper, error) {
	switch name {
	case "euler":
		return solver.NewEuler(), nil
	case "rk4":
		return solver.NewRK4(), nil
	default:
		return nil, fmt.Errorf("unknown stepper: %s", name)
	}
}

func parseSets(flags []string) (map[string]float64, error) {
	out := make(map[string]float64, len(flags))
	for _, f := range flags {
		name, val, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("bad --param %q, want name=value", f)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("bad --param %q: %w", f, err)
		}
		out[name] = v
	}
	return out, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sel := scenario.Selector(args[0])

	reg := scenario.NewRegistry()
	sc, err := reg.Get(sel)
	if err != nil {
		return err
	}
	spec := sc.Spec()
	params := spec.Defaults()

	if preset != "" {
		cfg := config.GetPreset(string(sel), preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(string(sel)))
		}
		applyConfig(cmd, cfg, spec, params)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg, spec, params)
	}

	overrides, err := parseSets(setFlags)
	if err != nil {
		return err
	}
	for name, v := range overrides {
		clamped, err := spec.Clamp(name, v)
		if err != nil {
			return err
		}
		params[name] = clamped
	}

	stepper, err := stepperByName(stepperName)
	if err != nil {
		return err
	}
	sim := scenario.NewSimulator(reg, solver.NewEngine(stepper, substeps))

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s...\n", sel)
	start := time.Now()

	res, err := sim.Simulate(context.Background(), sel, params)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runMetrics := summarize(res)
	runID, err := st.Save(sel, stepperName, params, runMetrics, res)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d, solver steps: %d\n", len(res.Times), res.Steps)
	fmt.Println("\nmetrics:")
	for name, val := range runMetrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

// applyConfig copies preset or file values into params, with CLI flags
// keeping precedence for stepper settings.
func applyConfig(cmd *cobra.Command, cfg *config.Config, spec scenario.Spec, params scenario.ParameterSet) {
	for name, v := range cfg.Params {
		if clamped, err := spec.Clamp(name, v); err == nil {
			params[name] = clamped
		}
	}
	if cfg.Stepper != "" && !cmd.Flags().Changed("stepper") {
		stepperName = cfg.Stepper
	}
	if cfg.Substeps > 0 && !cmd.Flags().Changed("substeps") {
		substeps = cfg.Substeps
	}
}

// summarize computes the stored per-series metrics.
func summarize(res *solver.Result) map[string]float64 {
	out := make(map[string]float64)
	for _, s := range res.Series {
		out["amplitude_"+s.Name] = metrics.Amplitude(s.Values)
		out["mean_"+s.Name] = metrics.Mean(s.Values)
		if p := metrics.DominantPeriod(res.Times, s.Values); p > 0 {
			out["period_"+s.Name] = p
		}
		if r := metrics.DecayRate(res.Times, s.Values); r > 0 {
			out["decay_"+s.Name] = r
		}
	}
	return out
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSTEPPER\tPARAMS")
	for _, run := range runs {
		parts := make([]string, 0, len(run.Params))
		for name, v := range run.Params {
			parts = append(parts, fmt.Sprintf("%s=%.3g", name, v))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Stepper,
			strings.Join(parts, " "),
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	res, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(res.Times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\nscenario: %s\nsamples: %d\n\n", meta.ID, meta.Scenario, len(res.Times))

	if seriesName != "" {
		out, err := render.PlotSeries(res, seriesName, 80, 12)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	fmt.Println(render.Plot(res, 80, 14, meta.Scenario))
	return nil
}

func blochRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	res, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(res.Bloch) == 0 {
		return fmt.Errorf("run has no Bloch trajectory")
	}
	fmt.Println(render.Bloch(res.Bloch, 44, 22))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	res, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(res.Series) == 0 || len(res.Times) < 2 {
		return fmt.Errorf("no data")
	}

	name := seriesName
	if name == "" {
		name = res.Series[0].Name
	}
	values := res.Get(name)
	if values == nil {
		return fmt.Errorf("no series %q in run", name)
	}
	dt := res.Times[1] - res.Times[0]

	fmt.Printf("frequency analysis: %s\nscenario: %s, series: %s\n\n", meta.ID, meta.Scenario, name)

	spectrum, err := analysis.PowerSpectrum(values, dt)
	if err != nil {
		return err
	}
	graph := asciigraph.Plot(spectrum.Power[:len(spectrum.Power)/4],
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq, err := analysis.DominantFrequency(values, dt)
	if err != nil {
		return err
	}
	fmt.Printf("dominant frequency: %.4f cycles per unit time\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f\n", 1/freq)
	}

	if meta.Scenario == string(scenario.Rabi) {
		omega := meta.Params["omega_rabi"]
		delta := meta.Params["detuning"]
		theory := math.Sqrt(omega*omega+delta*delta) / (2 * math.Pi)
		fmt.Printf("\ngeneralized Rabi frequency sqrt(Ω²+Δ²)/2π: %.4f\n", theory)
		if theory > 0 {
			fmt.Printf("measured/theory: %.3f\n", freq/theory)
		}
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	res, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(res.Times) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.WriteCSV(os.Stdout, res)
}

func runDemo(cmd *cobra.Command, args []string) error {
	which := args[0]

	if which == "gates" || which == "all" {
		if err := gateDemo(); err != nil {
			return err
		}
		if which == "gates" {
			return nil
		}
	}
	if which == "photons" || which == "all" {
		photonDemo()
		if which == "photons" {
			return nil
		}
	}

	sels := []scenario.Selector{scenario.Rabi, scenario.Decoherence, scenario.Cavity}
	if which != "all" {
		sels = []scenario.Selector{scenario.Selector(which)}
	}

	reg := scenario.NewRegistry()
	sim := scenario.NewSimulator(reg, solver.NewEngine(solver.NewRK4(), 10))
	con := render.NewConsole(os.Stdout)

	for _, sel := range sels {
		sc, err := reg.Get(sel)
		if err != nil {
			return err
		}
		spec := sc.Spec()
		res, err := sim.Simulate(context.Background(), sel, spec.Defaults())
		if err != nil {
			return err
		}
		con.SetTitle(spec.Title)
		con.Render(res)
		if len(res.Bloch) > 0 {
			fmt.Println(render.Bloch(res.Bloch, 40, 20))
		}
		fmt.Println()
	}
	return nil
}

// photonDemo prints photon number statistics for common oscillator states
// truncated to photonLevels Fock states.
func photonDemo() {
	const photonLevels = 12

	states := []struct {
		name string
		rho  *quantum.Operator
	}{
		{"vacuum |0>", quantum.DensityMatrix(quantum.Basis(photonLevels, 0))},
		{"fock |2>", quantum.DensityMatrix(quantum.Basis(photonLevels, 2))},
		{"coherent a=1.5", quantum.DensityMatrix(quantum.Coherent(photonLevels, 1.5))},
		{"thermal n=1.0", quantum.ThermalDM(photonLevels, 1.0)},
	}
	num := quantum.Number(photonLevels)

	fmt.Println("photon statistics")
	for _, s := range states {
		fmt.Printf("\n%s  <n> = %.3f\n", s.name, quantum.Expect(num, s.rho))
		for k := 0; k < photonLevels; k++ {
			p := real(s.rho.At(k, k))
			if p < 0.005 {
				continue
			}
			fmt.Printf("  P(%2d) %5.3f %s\n", k, p, strings.Repeat("#", int(p*40+0.5)))
		}
	}
	fmt.Println()
}

func gateDemo() error {
	fmt.Println("bell state: H on qubit 0, CNOT 0->1")
	r := circuit.NewRegister(2)
	if err := r.H(0); err != nil {
		return err
	}
	if err := r.CNOT(0, 1); err != nil {
		return err
	}
	labels := []string{"|00>", "|01>", "|10>", "|11>"}
	for i, label := range labels {
		fmt.Printf("  P(%s) = %.3f\n", label, r.Probability(i))
	}
	fmt.Println()
	return nil
}

func runBV(cmd *cobra.Command, args []string) error {
	bits := args[0]
	secret := make([]bool, len(bits))
	for i, c := range bits {
		switch c {
		case '0':
		case '1':
			secret[i] = true
		default:
			return fmt.Errorf("secret must be binary, got %q", bits)
		}
	}

	got, err := circuit.RunBV(secret)
	if err != nil {
		return err
	}
	classical, queries := circuit.ClassicalRecover(secret)

	fmt.Printf("secret:    %s\n", bits)
	fmt.Printf("quantum:   %s  (1 oracle query)\n", bitString(got))
	fmt.Printf("classical: %s  (%d oracle queries)\n", bitString(classical), queries)
	return nil
}

func bitString(bits []bool) string {
	var b strings.Builder
	for _, on := range bits {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

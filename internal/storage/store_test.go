package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qusimlab/qusim/internal/scenario"
	"github.com/qusimlab/qusim/internal/solver"
)

func sampleResult() *solver.Result {
	return &solver.Result{
		Times: []float64{0, 0.5, 1.0},
		Series: []solver.Series{
			{Name: "excited", Values: []float64{0, 0.7, 1.0}},
			{Name: "ground", Values: []float64{1, 0.3, 0.0}},
		},
		Bloch: [][3]float64{{0, 0, 1}, {0.9, 0, 0.4}, {0, 0, -1}},
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Init())

	params := scenario.ParameterSet{"omega_rabi": 0.2, "detuning": 0.0}
	metrics := map[string]float64{"amplitude": 1.0}

	runID, err := store.Save(scenario.Rabi, "rk4", params, metrics, sampleResult())
	require.NoError(t, err)
	assert.Contains(t, runID, "rabi_")

	meta, err := store.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "rabi", meta.Scenario)
	assert.Equal(t, "rk4", meta.Stepper)
	assert.Equal(t, 0.2, meta.Params["omega_rabi"])
	assert.Equal(t, 1.0, meta.Metrics["amplitude"])

	res, err := store.LoadSeries(runID)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1.0}, res.Times)
	require.Len(t, res.Series, 2)
	assert.Equal(t, "excited", res.Series[0].Name)
	assert.InDelta(t, 0.7, res.Get("excited")[1], 1e-9)
	require.Len(t, res.Bloch, 3)
	assert.InDelta(t, 0.9, res.Bloch[1][0], 1e-9)
}

func TestListSkipsJunk(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Init())

	_, err := store.Save(scenario.Decoherence, "rk4", scenario.ParameterSet{"gamma": 0.05}, nil, sampleResult())
	require.NoError(t, err)

	runs, err := store.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "decoherence", runs[0].Scenario)
}

func TestListMissingBaseDir(t *testing.T) {
	store := New(t.TempDir() + "/nope")
	runs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoadSeriesWithoutBloch(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Init())

	res := sampleResult()
	res.Bloch = nil
	runID, err := store.Save(scenario.Cavity, "euler", scenario.ParameterSet{}, nil, res)
	require.NoError(t, err)

	loaded, err := store.LoadSeries(runID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Bloch)
	require.Len(t, loaded.Series, 2)
	assert.Len(t, loaded.Get("ground"), 3)
}

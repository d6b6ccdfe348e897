package main

import (
	"math"
	"testing"

	"github.com/qusimlab/qusim/internal/solver"
)

func TestSummarizeStoresDecayRate(t *testing.T) {
	gamma := 0.1
	times := solver.Linspace(30, 101)
	values := make([]float64, len(times))
	for i, tt := range times {
		values[i] = math.Exp(-gamma * tt)
	}
	res := &solver.Result{
		Times:  times,
		Series: []solver.Series{{Name: "excited", Values: values}},
	}

	m := summarize(res)
	got, ok := m["decay_excited"]
	if !ok {
		t.Fatal("summarize missing decay_excited")
	}
	if math.Abs(got-gamma) > 1e-6 {
		t.Errorf("decay_excited = %f, want %f", got, gamma)
	}
	if _, ok := m["amplitude_excited"]; !ok {
		t.Error("summarize missing amplitude_excited")
	}
}

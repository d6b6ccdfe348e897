package metrics

import (
	"math"
	"testing"
)

func linspace(max float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = max * float64(i) / float64(n-1)
	}
	return out
}

func TestAmplitude(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"constant", []float64{0.5, 0.5, 0.5}, 0},
		{"full swing", []float64{0, 1, 0, 1}, 1},
		{"negative", []float64{-0.3, 0.2}, 0.5},
	}
	for _, tt := range tests {
		if got := Amplitude(tt.values); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: got %f, want %f", tt.name, got, tt.want)
		}
	}
}

func TestDecayRateExponential(t *testing.T) {
	times := linspace(20, 200)
	values := make([]float64, len(times))
	for i, tm := range times {
		values[i] = 0.8 * math.Exp(-0.05*tm)
	}
	got := DecayRate(times, values)
	if math.Abs(got-0.05) > 1e-6 {
		t.Errorf("rate %f, want 0.05", got)
	}
}

func TestDecayRateDegenerate(t *testing.T) {
	if got := DecayRate([]float64{0, 1}, []float64{0, 0}); got != 0 {
		t.Errorf("all-zero series: got %f, want 0", got)
	}
}

func TestDominantPeriodSine(t *testing.T) {
	times := linspace(50, 1000)
	values := make([]float64, len(times))
	for i, tm := range times {
		values[i] = 0.5 + 0.5*math.Sin(2*math.Pi*tm/8.0)
	}
	got := DominantPeriod(times, values)
	if math.Abs(got-8.0) > 0.1 {
		t.Errorf("period %f, want 8", got)
	}
}

func TestDominantPeriodMonotone(t *testing.T) {
	times := linspace(10, 50)
	values := make([]float64, len(times))
	for i, tm := range times {
		values[i] = math.Exp(-tm)
	}
	if got := DominantPeriod(times, values); got != 0 {
		t.Errorf("monotone series: got %f, want 0", got)
	}
}

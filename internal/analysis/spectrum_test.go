package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(freq, dt float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}
	return out
}

func TestDominantFrequencyPureTone(t *testing.T) {
	dt := 0.01
	values := sine(2.5, dt, 1024)

	got, err := DominantFrequency(values, dt)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 0.15)
}

func TestDominantFrequencyIgnoresOffset(t *testing.T) {
	dt := 0.05
	values := sine(1.0, dt, 512)
	for i := range values {
		values[i] += 5.0
	}

	got, err := DominantFrequency(values, dt)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 0.1)
}

func TestDominantFrequencyPicksStrongerTone(t *testing.T) {
	dt := 0.01
	a := sine(1.0, dt, 1024)
	b := sine(4.0, dt, 1024)
	mixed := make([]float64, len(a))
	for i := range mixed {
		mixed[i] = 0.2*a[i] + 1.0*b[i]
	}

	got, err := DominantFrequency(mixed, dt)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 0.2)
}

func TestPowerSpectrumShape(t *testing.T) {
	s, err := PowerSpectrum(sine(1.0, 0.1, 100), 0.1)
	require.NoError(t, err)

	// padded to 128, one-sided half
	assert.Len(t, s.Freqs, 64)
	assert.Len(t, s.Power, 64)
	assert.Equal(t, 0.0, s.Freqs[0])
	assert.InDelta(t, 1.0/(128*0.1), s.Freqs[1], 1e-12)
}

func TestPowerSpectrumRejectsBadInput(t *testing.T) {
	_, err := PowerSpectrum([]float64{1, 2}, 0.1)
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = PowerSpectrum([]float64{1, 2, 3, 4}, 0)
	assert.Error(t, err)
}

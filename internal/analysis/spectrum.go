package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

var ErrTooShort = errors.New("analysis: need at least 4 samples")

// Spectrum is a one-sided power spectrum. Freqs are in cycles per unit
// time of the input spacing.
type Spectrum struct {
	Freqs []float64
	Power []float64
}

// PowerSpectrum computes the one-sided power spectrum of evenly spaced
// samples with spacing dt. The mean is removed and a Hann window
// applied before the transform, and the input is zero-padded to the
// next power of two.
func PowerSpectrum(values []float64, dt float64) (*Spectrum, error) {
	if len(values) < 4 {
		return nil, ErrTooShort
	}
	if dt <= 0 {
		return nil, errors.New("analysis: sample spacing must be positive")
	}

	n := len(values)
	padded := make([]float64, nextPow2(n))
	copy(padded, values)
	floats.AddConst(-floats.Sum(values)/float64(n), padded[:n])
	for i := 0; i < n; i++ {
		padded[i] *= 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	spectrum := fft.FFTReal(padded)
	half := len(padded) / 2
	s := &Spectrum{
		Freqs: make([]float64, half),
		Power: make([]float64, half),
	}
	df := 1.0 / (float64(len(padded)) * dt)
	for i := 0; i < half; i++ {
		s.Freqs[i] = float64(i) * df
		mag := cmplx.Abs(spectrum[i])
		s.Power[i] = mag * mag
	}
	return s, nil
}

// DominantFrequency returns the frequency of the strongest non-DC
// spectral peak, in cycles per unit time.
func DominantFrequency(values []float64, dt float64) (float64, error) {
	s, err := PowerSpectrum(values, dt)
	if err != nil {
		return 0, err
	}
	idx := floats.MaxIdx(s.Power[1:]) + 1
	return s.Freqs[idx], nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Package metrics summarizes expectation series into the scalar
// figures stored alongside a saved run.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Amplitude is the peak-to-peak range of a series.
func Amplitude(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return hi - lo
}

// Mean is the arithmetic mean of a series.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// DecayRate fits values to A*exp(-rate*t) by linear regression on the
// log and returns the rate. Samples at or below eps are skipped so a
// decayed tail of near-zeros cannot dominate the fit. Returns 0 when
// fewer than two usable samples remain.
func DecayRate(times, values []float64) float64 {
	const eps = 1e-9
	var ts, logs []float64
	for i, v := range values {
		if i < len(times) && v > eps {
			ts = append(ts, times[i])
			logs = append(logs, math.Log(v))
		}
	}
	if len(ts) < 2 {
		return 0
	}
	_, slope := stat.LinearRegression(ts, logs, nil, false)
	return -slope
}

// DominantPeriod estimates the oscillation period from mean-crossing
// intervals. Returns 0 when the series crosses its mean fewer than
// twice.
func DominantPeriod(times, values []float64) float64 {
	if len(values) < 3 || len(times) != len(values) {
		return 0
	}
	mean := Mean(values)
	var crossings []float64
	for i := 1; i < len(values); i++ {
		a, b := values[i-1]-mean, values[i]-mean
		if a < 0 && b >= 0 || a >= 0 && b < 0 {
			// linear interpolation of the crossing time
			frac := a / (a - b)
			crossings = append(crossings, times[i-1]+frac*(times[i]-times[i-1]))
		}
	}
	if len(crossings) < 2 {
		return 0
	}
	// adjacent crossings are half a period apart
	span := crossings[len(crossings)-1] - crossings[0]
	return 2 * span / float64(len(crossings)-1)
}

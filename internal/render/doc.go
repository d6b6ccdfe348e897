// Package render draws simulation results in the terminal. Expectation
// series go through asciigraph line charts; Bloch trajectories are
// projected onto a braille canvas.
package render

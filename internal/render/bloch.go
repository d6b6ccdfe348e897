package render

import (
	"math"
	"strings"
)

// Camera angles for the sphere projection. Yaw swings the view around
// the z axis, pitch tips it toward the pole so the equator reads as an
// ellipse instead of a flat line.
const (
	blochYaw   = 0.45
	blochPitch = 0.30
)

// Bloch draws a unit sphere with a state trajectory on a braille
// canvas of cols x rows characters. Points are (x, y, z) Bloch vectors;
// the last one gets a marker.
func Bloch(points [][3]float64, cols, rows int) string {
	c := NewCanvas(cols, rows)
	w, h := c.DotWidth(), c.DotHeight()
	cx, cy := w/2, h/2
	r := float64(minInt(w, h))/2 - 2

	toScreen := func(p [3]float64) (int, int) {
		sx, sy := project(p)
		return cx + int(sx*r), cy - int(sy*r)
	}

	// silhouette
	for i := 0; i < 240; i++ {
		a := float64(i) * 2 * math.Pi / 240
		c.Set(cx+int(r*math.Cos(a)), cy+int(r*math.Sin(a)))
	}
	// equator
	for i := 0; i < 160; i++ {
		a := float64(i) * 2 * math.Pi / 160
		x, y := toScreen([3]float64{math.Cos(a), math.Sin(a), 0})
		c.Set(x, y)
	}
	// z axis
	topX, topY := toScreen([3]float64{0, 0, 1})
	botX, botY := toScreen([3]float64{0, 0, -1})
	c.Line(topX, topY, botX, botY)

	var prevX, prevY int
	for i, p := range points {
		x, y := toScreen(p)
		if i > 0 {
			c.Line(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
	}
	if n := len(points); n > 0 {
		x, y := toScreen(points[n-1])
		c.Dot(x, y)
	}

	var b strings.Builder
	b.WriteString(c.String())
	b.WriteString("|0> top pole, |1> bottom, trajectory on the unit sphere\n")
	return b.String()
}

// project maps a Bloch vector to screen coordinates in [-1, 1].
func project(p [3]float64) (float64, float64) {
	cyaw, syaw := math.Cos(blochYaw), math.Sin(blochYaw)
	x := p[0]*cyaw + p[1]*syaw
	y := -p[0]*syaw + p[1]*cyaw
	cp, sp := math.Cos(blochPitch), math.Sin(blochPitch)
	return x, p[2]*cp - y*sp
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

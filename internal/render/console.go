package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/qusimlab/qusim/internal/solver"
)

const (
	defaultPlotWidth  = 72
	defaultPlotHeight = 16
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)

// Console writes finished plots to a stream. A failed computation
// prints the error and repeats the previous plot, so the screen never
// goes blank on a bad parameter region.
type Console struct {
	w      io.Writer
	width  int
	height int
	title  string
	last   string
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, width: defaultPlotWidth, height: defaultPlotHeight}
}

// SetTitle sets the caption for subsequent plots.
func (c *Console) SetTitle(title string) { c.title = title }

// Last returns the most recent successful frame.
func (c *Console) Last() string { return c.last }

func (c *Console) Render(res *solver.Result) {
	frame := Plot(res, c.width, c.height, c.title)
	c.last = frame
	fmt.Fprintln(c.w, frame)
}

func (c *Console) RenderError(msg string) {
	fmt.Fprintln(c.w, errorStyle.Render("simulation failed: "+msg))
	if c.last != "" {
		fmt.Fprintln(c.w, c.last)
	}
}

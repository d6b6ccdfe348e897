// Package tui is the interactive terminal frontend. It drives a
// sweep.Controller from the update loop and runs simulations as
// background commands, so keystrokes stay responsive while a
// computation is in flight.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qusimlab/qusim/internal/render"
	"github.com/qusimlab/qusim/internal/scenario"
	"github.com/qusimlab/qusim/internal/solver"
	"github.com/qusimlab/qusim/internal/sweep"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type state int

const (
	stateMenu state = iota
	stateExplore
)

// screen is the sweep surface. It keeps the last good result so a
// failed run leaves the previous plot on display.
type screen struct {
	res    *solver.Result
	errMsg string
}

func (s *screen) Render(res *solver.Result) {
	s.res = res
	s.errMsg = ""
}

func (s *screen) RenderError(msg string) { s.errMsg = msg }

// jobQueue collects jobs the controller schedules during one Update
// call; the model drains it into background commands.
type jobQueue struct {
	jobs []sweep.Job
}

func (q *jobQueue) push(job sweep.Job) { q.jobs = append(q.jobs, job) }

func (q *jobQueue) drain() []sweep.Job {
	jobs := q.jobs
	q.jobs = nil
	return jobs
}

type resultMsg struct {
	res *solver.Result
	err error
}

type model struct {
	state     state
	cursor    int
	scenarios []scenario.Selector

	ctrl   *sweep.Controller
	sim    *scenario.Simulator
	queue  *jobQueue
	screen *screen

	paramCursor int
	showInfo    bool
	showBloch   bool

	width  int
	height int
}

func NewApp() (*model, error) {
	reg := scenario.NewRegistry()
	sim := scenario.NewSimulator(reg, solver.NewEngine(solver.NewRK4(), 10))
	queue := &jobQueue{}
	scr := &screen{}

	ctrl, err := sweep.New(reg, sim, scr, scenario.Rabi, sweep.WithRunner(queue.push))
	if err != nil {
		return nil, err
	}

	return &model{
		state:     stateMenu,
		scenarios: []scenario.Selector{scenario.Rabi, scenario.Decoherence, scenario.Cavity},
		ctrl:      ctrl,
		sim:       sim,
		queue:     queue,
		screen:    scr,
		width:     100,
		height:    30,
	}, nil
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case resultMsg:
		m.ctrl.Resolve(msg.res, msg.err)
		return m, m.drainCmds()
	}
	return m, nil
}

// drainCmds converts queued jobs into background simulate commands.
func (m *model) drainCmds() tea.Cmd {
	jobs := m.queue.drain()
	if len(jobs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(jobs))
	for i, job := range jobs {
		job := job
		cmds[i] = func() tea.Msg {
			res, err := m.sim.Simulate(context.Background(), job.Model, job.Params)
			return resultMsg{res: res, err: err}
		}
	}
	return tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateMenu {
		return m.menuKey(msg)
	}
	return m.exploreKey(msg)
}

func (m *model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.scenarios)-1 {
			m.cursor++
		}
	case "enter", " ":
		if err := m.ctrl.SetModel(m.scenarios[m.cursor]); err != nil {
			return m, nil
		}
		m.state = stateExplore
		m.paramCursor = 0
		m.showBloch = false
		return m, tea.Batch(tea.ClearScreen, m.drainCmds())
	}
	return m, nil
}

func (m *model) exploreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
		return m, tea.ClearScreen
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.ctrl.Spec().Params)-1 {
			m.paramCursor++
		}
	case "left", "h":
		m.nudge(-1)
		return m, m.drainCmds()
	case "right", "l":
		m.nudge(1)
		return m, m.drainCmds()
	case "H", "shift+left":
		m.nudge(-10)
		return m, m.drainCmds()
	case "L", "shift+right":
		m.nudge(10)
		return m, m.drainCmds()
	case "r":
		m.ctrl.SetModel(m.ctrl.Model())
		return m, m.drainCmds()
	case "b":
		m.showBloch = !m.showBloch
	case "i":
		m.showInfo = !m.showInfo
	}
	return m, nil
}

func (m *model) nudge(steps int) {
	params := m.ctrl.Spec().Params
	if m.paramCursor >= len(params) {
		return
	}
	m.ctrl.Adjust(params[m.paramCursor].Name, steps)
}

func (m *model) View() string {
	if m.state == stateMenu {
		return m.viewMenu()
	}
	return m.viewExplore()
}

func (m *model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("q u s i m") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	reg := scenario.NewRegistry()
	for i, sel := range m.scenarios {
		sc, err := reg.Get(sel)
		if err != nil {
			continue
		}
		title := sc.Spec().Title
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", sel)) + dim.Render(title) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-14s", sel)) + dimmer.Render(title) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter explore   q quit") + "\n")

	return b.String()
}

func (m *model) viewExplore() string {
	var b strings.Builder
	spec := m.ctrl.Spec()

	status := green.Render("● ready")
	if m.ctrl.State() == sweep.Computing {
		status = yellow.Render("◌ computing")
	}
	b.WriteString(fmt.Sprintf("\n   %s  %s\n\n", cyan.Render(spec.Title), status))

	if m.screen.errMsg != "" {
		b.WriteString("   " + red.Render("simulation failed: "+m.screen.errMsg) + "\n")
	}

	plotW := m.width - 8
	if plotW < 40 {
		plotW = 40
	}
	if plotW > 110 {
		plotW = 110
	}
	plotH := m.height - len(spec.Params) - 10
	if plotH < 8 {
		plotH = 8
	}
	if plotH > 20 {
		plotH = 20
	}

	if m.screen.res != nil {
		if m.showBloch && len(m.screen.res.Bloch) > 0 {
			b.WriteString(render.Bloch(m.screen.res.Bloch, plotH*2, plotH))
		} else {
			b.WriteString(render.Plot(m.screen.res, plotW, plotH, spec.Title))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(dim.Render("\n   adjust a parameter to run the first simulation\n"))
	}

	b.WriteString("\n")
	for i, p := range spec.Params {
		val, _ := m.ctrl.Value(p.Name)
		bar := paramBar(val, p.Min, p.Max, 18)
		line := fmt.Sprintf("%-14s %s %8.3f", p.Label, bar, val)
		if i == m.paramCursor {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(line) + "\n")
		} else {
			b.WriteString("     " + dim.Render(line) + "\n")
		}
	}

	if m.showInfo {
		b.WriteString("\n" + dim.Render(wrap(spec.About, 76, "   ")) + "\n")
	}

	help := "   ↑↓ param  ←→ adjust  shift ×10  b bloch  i info  r reset  esc back"
	b.WriteString("\n" + dim.Render(help) + "\n")

	return b.String()
}

func paramBar(val, min, max float64, width int) string {
	ratio := 0.0
	if max > min {
		ratio = (val - min) / (max - min)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	return magenta.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", width-filled))
}

func wrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	var b strings.Builder
	line := indent
	for _, w := range words {
		if len(line)+len(w)+1 > width {
			b.WriteString(line + "\n")
			line = indent
		}
		if line != indent {
			line += " "
		}
		line += w
	}
	b.WriteString(line)
	return b.String()
}

func Run() error {
	app, err := NewApp()
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

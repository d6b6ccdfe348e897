package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/qusimlab/qusim/internal/scenario"
)

// pump executes commands depth-first and feeds every produced message
// back into Update until the model settles.
func pump(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = pump(t, m, c)
		}
		return m
	}
	next, nextCmd := m.Update(msg)
	return pump(t, next, nextCmd)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuListsScenarios(t *testing.T) {
	app, err := NewApp()
	if err != nil {
		t.Fatal(err)
	}
	view := app.View()
	for _, want := range []string{"rabi", "decoherence", "cavity"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu missing %q", want)
		}
	}
}

func TestEnterRunsFirstSimulation(t *testing.T) {
	app, err := NewApp()
	if err != nil {
		t.Fatal(err)
	}

	m, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pump(t, m, cmd)

	if app.screen.res == nil {
		t.Fatal("no result rendered after entering explore view")
	}
	if app.screen.res.Get("excited") == nil {
		t.Error("rabi result missing excited series")
	}
	if app.state != stateExplore {
		t.Error("not in explore state")
	}
}

func TestAdjustTriggersRecompute(t *testing.T) {
	app, err := NewApp()
	if err != nil {
		t.Fatal(err)
	}
	m, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pump(t, m, cmd)
	first := app.screen.res

	m, cmd = app.Update(key("l"))
	pump(t, m, cmd)

	if app.screen.res == first {
		t.Error("adjusting a parameter did not produce a new result")
	}
	want := scenario.NewRabi().Spec().Params[0]
	got, _ := app.ctrl.Value(want.Name)
	if got != want.Default+want.Step {
		t.Errorf("%s = %f, want %f", want.Name, got, want.Default+want.Step)
	}
}

func TestEscReturnsToMenu(t *testing.T) {
	app, err := NewApp()
	if err != nil {
		t.Fatal(err)
	}
	m, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pump(t, m, cmd)

	m, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEscape})
	pump(t, m, cmd)

	if app.state != stateMenu {
		t.Error("escape did not return to menu")
	}
}

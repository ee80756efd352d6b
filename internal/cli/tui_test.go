package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pickerNodes() []NodeChoice {
	return []NodeChoice{{ID: "A", Heuristic: 3}, {ID: "B", Heuristic: 2}, {ID: "F", Heuristic: 0}}
}

func press(m NodePickerModel, keys ...tea.KeyMsg) (NodePickerModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(NodePickerModel)
	}
	return m, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestNodePickerSelectsStartThenGoal(t *testing.T) {
	m, cmd := press(NewNodePickerModel(pickerNodes()), keyEnter)
	if m.Start != "A" || m.Goal != "" {
		t.Fatalf("after first enter Start=%q Goal=%q, want A and empty", m.Start, m.Goal)
	}
	if cmd != nil {
		t.Error("picker should not quit after choosing the start node")
	}

	m, cmd = press(m, keyDown, keyDown, keyDown, keyEnter)
	if m.Goal != "F" {
		t.Errorf("Goal = %q, want F", m.Goal)
	}
	if !m.Done() {
		t.Error("Done() should be true after both picks")
	}
	if cmd == nil {
		t.Error("picker should quit after choosing the goal node")
	}
}

func TestNodePickerCursorBounds(t *testing.T) {
	m, _ := press(NewNodePickerModel(pickerNodes()), keyUp)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	m, _ = press(m, keyDown, keyDown, keyDown, keyDown)
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}
}

func TestNodePickerQuit(t *testing.T) {
	m, cmd := press(NewNodePickerModel(pickerNodes()), keyEnter, keyQuit)
	if m.Done() || m.Start != "" {
		t.Error("quitting should clear the selection")
	}
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestNodePickerView(t *testing.T) {
	m := NewNodePickerModel(pickerNodes())
	if !strings.Contains(m.View(), "Select Start Node") {
		t.Error("View() should ask for the start node first")
	}
	m, _ = press(m, keyEnter)
	view := m.View()
	if !strings.Contains(view, "Select Goal Node") {
		t.Error("View() should ask for the goal node second")
	}
	if !strings.Contains(view, "start") {
		t.Error("View() should mark the chosen start node")
	}
}

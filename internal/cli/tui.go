package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/hillclimb/pkg/render/nodelink"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// NodePickerModel - Interactive start/goal selection
// =============================================================================

// NodeChoice is one row of the picker.
type NodeChoice struct {
	ID        string
	Heuristic float64
}

// NodePickerModel is the bubbletea model that picks the start node and then
// the goal node. Start and Goal stay empty when the user quits.
type NodePickerModel struct {
	Nodes  []NodeChoice
	Cursor int
	Start  string
	Goal   string
}

// NewNodePickerModel creates a picker over nodes in the given order.
func NewNodePickerModel(nodes []NodeChoice) NodePickerModel {
	return NodePickerModel{Nodes: nodes}
}

// Done reports whether both endpoints were chosen.
func (m NodePickerModel) Done() bool {
	return m.Start != "" && m.Goal != ""
}

func (m NodePickerModel) Init() tea.Cmd {
	return nil
}

func (m NodePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Nodes) == 0 {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Start, m.Goal = "", ""
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Nodes)-1 {
			m.Cursor++
		}
	case "enter":
		id := m.Nodes[m.Cursor].ID
		if m.Start == "" {
			m.Start = id
			return m, nil
		}
		m.Goal = id
		return m, tea.Quit
	}
	return m, nil
}

func (m NodePickerModel) View() string {
	var b strings.Builder

	title := "Select Start Node"
	if m.Start != "" {
		title = "Select Goal Node"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Nodes))
	for i, n := range m.Nodes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		role := ""
		if n.ID == m.Start {
			role = "start"
		}
		rows[i] = []string{cursor, n.ID, nodelink.FormatWeight(n.Heuristic), role}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "h", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Nodes))))

	return b.String()
}

// Package tui hosts a LabelComboBox in a terminal using Bubble Tea.
package tui

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit"
	"github.com/BrandonKowalski/labelkit/pkg/labelkit/constants"
	"github.com/BrandonKowalski/labelkit/pkg/labelkit/internal"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultHeight = 20

// Result is the combo box state after a confirmed selection.
type Result struct {
	Index int // logical index, -1 for the None row
	Color labelkit.Color
	Name  string
}

// Model is a Bubble Tea model over a LabelComboBox. Rows come from the
// box's list; confirming a row selects it in that list.
type Model struct {
	title string
	box   *labelkit.LabelComboBox
	keys  keyMap
	help  help.Model

	cursor int
	first  int
	height int
	width  int

	confirmed bool
	cancelled bool
}

// New creates a model positioned on the box's current row.
func New(title string, box *labelkit.LabelComboBox) Model {
	list := box.List()
	return Model{
		title:  title,
		box:    box,
		keys:   newKeyMap(),
		help:   help.New(),
		cursor: clamp(list.CurrentIndex(), list.Count()),
		height: defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		total := m.box.List().Count()
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.cursor = wrap(m.cursor-1, total)

		case key.Matches(msg, m.keys.Down):
			m.cursor = wrap(m.cursor+1, total)

		case key.Matches(msg, m.keys.PageUp):
			m.cursor = clamp(m.cursor-m.visibleRows(), total)

		case key.Matches(msg, m.keys.PageDown):
			m.cursor = clamp(m.cursor+m.visibleRows(), total)

		case key.Matches(msg, m.keys.Select):
			if total == 0 {
				return m, nil
			}
			m.box.List().SetCurrentIndex(m.cursor)
			m.confirmed = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleNone):
			wasEnabled := m.box.NoneEnabled()
			logical := labelkit.LogicalIndex(m.cursor, wasEnabled)
			m.box.SetNoneEnabled(!wasEnabled)
			m.cursor = clamp(labelkit.DisplayIndex(logical, !wasEnabled), m.box.List().Count())

		case key.Matches(msg, m.keys.ToggleNames):
			m.box.SetColorNameVisible(!m.box.ColorNameVisible())
			m.cursor = clamp(m.cursor, m.box.List().Count())
		}
	}

	m.first = scroll(m.cursor, m.first, m.visibleRows(), m.box.List().Count())
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n\n")
	}

	list := m.box.List()
	total := list.Count()
	if total == 0 {
		b.WriteString(hintStyle.Render(internal.Localize(internal.MsgPickerEmpty, "No colors available")))
		b.WriteString("\n")
	}

	visible := m.visibleRows()
	first := scroll(m.cursor, m.first, visible, total)
	last := min(first+visible, total)
	committed := list.CurrentIndex()

	for i := first; i < last; i++ {
		b.WriteString(m.renderRow(list, i, i == committed))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderRow(list labelkit.ItemList, i int, committed bool) string {
	marker := "  "
	if committed {
		marker = markerStyle.Render(constants.Selected) + " "
	}

	var sw string
	if logical := labelkit.LogicalIndex(i, m.box.NoneEnabled()); logical < 0 || list.ItemIcon(i) == nil {
		sw = noColorStyle.Render(" " + constants.NoColor + " ")
	} else {
		sw = swatch(m.box.ColorFromIndex(logical))
	}

	text := list.ItemText(i)
	if i == m.cursor {
		text = cursorStyle.Render(" " + text + " ")
	} else {
		text = rowStyle.Render(" " + text + " ")
	}

	return fmt.Sprintf("%s%s %s", marker, sw, text)
}

// visibleRows leaves room for the title and help lines.
func (m Model) visibleRows() int {
	return max(m.height-5, 1)
}

// Result returns the selection once a row was confirmed.
func (m Model) Result() (*Result, error) {
	if m.cancelled || !m.confirmed {
		return nil, labelkit.ErrCancelled
	}
	return &Result{
		Index: m.box.CurrentColor(),
		Color: m.box.CurrentColorValue(),
		Name:  m.box.CurrentColorName(),
	}, nil
}

// Run shows box until the user confirms or cancels. Returns ErrCancelled
// if the user backs out.
func Run(title string, box *labelkit.LabelComboBox, opts ...tea.ProgramOption) (*Result, error) {
	if box == nil || box.ColorSource() == nil {
		return nil, labelkit.ErrNoColorSource
	}

	final, err := tea.NewProgram(New(title, box), opts...).Run()
	if err != nil {
		return nil, labelkit.NewInfrastructureError("tui", err)
	}
	return final.(Model).Result()
}

func wrap(i, total int) int {
	if total <= 0 {
		return 0
	}
	return (i%total + total) % total
}

func clamp(i, total int) int {
	if total <= 0 || i < 0 {
		return 0
	}
	return min(i, total-1)
}

func scroll(cursor, first, visible, total int) int {
	if total <= visible {
		return 0
	}
	if cursor < first {
		first = cursor
	}
	if cursor >= first+visible {
		first = cursor - visible + 1
	}
	return max(min(first, total-visible), 0)
}

// Package picker is the builtin interactive chooser: a small Bubble Tea
// list with fuzzy filtering and an inline preview of the highlighted
// parcel. It covers the case where no external finder is installed and
// maps onto the same outcome taxonomy as the external chooser.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// maxVisible caps how many candidates render at once.
const maxVisible = 10

// previewWidth is the column budget for preview lines.
const previewWidth = 40

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	markedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	previewBorder = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1)
)

// PreviewFunc renders the entries of the highlighted candidate, one
// display line per entry.
type PreviewFunc func(name string) []string

// Model is the Bubble Tea model for the builtin chooser.
type Model struct {
	input      textinput.Model
	candidates []string
	filtered   []string
	cursor     int
	multi      bool
	marked     map[string]bool
	preview    PreviewFunc

	confirmed bool
	cancelled bool
}

// NewModel builds a chooser over the candidate names. preview may be
// nil to disable the preview pane.
func NewModel(candidates []string, preview PreviewFunc, multi bool) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "filter parcels"
	input.Focus()

	return Model{
		input:      input,
		candidates: candidates,
		filtered:   candidates,
		multi:      multi,
		marked:     make(map[string]bool),
		preview:    preview,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		m.confirmed = true
		return m, tea.Quit

	case tea.KeyDown:
		m.moveCursor(1)
		return m, nil

	case tea.KeyUp:
		m.moveCursor(-1)
		return m, nil

	case tea.KeyTab:
		// Tab mirrors the external finder: toggle-and-advance when
		// multi-selecting, plain advance otherwise.
		if m.multi {
			m.toggleCurrent()
		}
		m.moveCursor(1)
		return m, nil

	case tea.KeyShiftTab:
		m.moveCursor(-1)
		return m, nil

	case tea.KeyCtrlA:
		if m.multi {
			for _, name := range m.filtered {
				m.marked[name] = true
			}
		}
		return m, nil
	}

	// Everything else edits the filter query.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

// moveCursor advances with wraparound, matching the finder's --cycle.
func (m *Model) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + len(m.filtered)) % len(m.filtered)
}

func (m *Model) toggleCurrent() {
	if len(m.filtered) == 0 {
		return
	}
	name := m.filtered[m.cursor]
	if m.marked[name] {
		delete(m.marked, name)
	} else {
		m.marked[name] = true
	}
}

func (m *Model) refilter() {
	m.filtered = filter(m.candidates, m.input.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// Selection returns the chosen names: the marked set (in candidate
// order) when multi-selecting, otherwise the highlighted name. Nil when
// the session was cancelled or nothing matched.
func (m Model) Selection() []string {
	if m.cancelled || !m.confirmed {
		return nil
	}
	if m.multi && len(m.marked) > 0 {
		var names []string
		for _, name := range m.candidates {
			if m.marked[name] {
				names = append(names, name)
			}
		}
		return names
	}
	if len(m.filtered) == 0 {
		return nil
	}
	return []string{m.filtered[m.cursor]}
}

// Cancelled reports whether the user aborted.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// View implements tea.Model.
func (m Model) View() string {
	var list strings.Builder
	list.WriteString(m.input.View() + "\n")

	if len(m.filtered) == 0 {
		list.WriteString(dimStyle.Render("  no match") + "\n")
	}
	for i, name := range m.filtered {
		if i >= maxVisible {
			list.WriteString(dimStyle.Render("  ...") + "\n")
			break
		}
		line := "  "
		if i == m.cursor {
			line = cursorStyle.Render("> ")
		}
		if m.multi && m.marked[name] {
			line += markedStyle.Render("* " + name)
		} else {
			line += name
		}
		list.WriteString(line + "\n")
	}
	list.WriteString(dimStyle.Render(m.helpLine()))

	left := list.String()
	if m.preview == nil || len(m.filtered) == 0 {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.previewPane())
}

func (m Model) previewPane() string {
	var b strings.Builder
	for _, line := range m.preview(m.filtered[m.cursor]) {
		b.WriteString(runewidth.Truncate(line, previewWidth, "…") + "\n")
	}
	return previewBorder.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) helpLine() string {
	if m.multi {
		return "tab toggle · ctrl-a all · enter open · esc cancel"
	}
	return "enter open · esc cancel"
}

// filter keeps candidates whose names contain the query's characters in
// order, case-insensitively. An empty query keeps everything.
func filter(candidates []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return candidates
	}
	var out []string
	for _, name := range candidates {
		if subsequence(strings.ToLower(name), query) {
			out = append(out, name)
		}
	}
	return out
}

// subsequence reports whether every rune of q appears in s in order.
func subsequence(s, q string) bool {
	runes := []rune(q)
	i := 0
	for _, r := range s {
		if i < len(runes) && r == runes[i] {
			i++
		}
	}
	return i == len(runes)
}

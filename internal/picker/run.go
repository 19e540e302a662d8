package picker

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/runger/parcel/internal/chooser"
)

// Run drives the builtin chooser to completion and maps the session
// onto the shared chooser outcome taxonomy. An empty candidate set
// never starts the TUI.
func Run(candidates []string, preview PreviewFunc, multi bool) (chooser.Result, error) {
	if len(candidates) == 0 {
		return chooser.Result{Outcome: chooser.OutcomeNoCandidates}, nil
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	p := tea.NewProgram(NewModel(candidates, preview, multi), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return chooser.Result{}, fmt.Errorf("running builtin chooser: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return chooser.Result{}, fmt.Errorf("unexpected chooser model %T", final)
	}
	if m.Cancelled() {
		return chooser.Result{Outcome: chooser.OutcomeCancelled}, nil
	}
	names := m.Selection()
	if len(names) == 0 {
		return chooser.Result{Outcome: chooser.OutcomeNoMatch}, nil
	}
	return chooser.Result{Outcome: chooser.OutcomeSelected, Names: names}, nil
}

// Package chooser drives an external fuzzy finder to pick parcels
// interactively. The finder runs as a subprocess: candidates go in on
// stdin (one per line), the selection comes back on stdout, and the
// exit status says whether the user picked, cancelled, or hit an error.
package chooser

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Finder exit codes with load-bearing meaning. Anything else non-zero
// is an unclassified hard failure.
const (
	exitNoMatch   = 1   // no match / empty selection
	exitInterrupt = 130 // user aborted (Ctrl-C / Esc)
)

// Outcome classifies how a chooser session ended.
type Outcome int

const (
	// OutcomeSelected means at least one candidate was picked.
	OutcomeSelected Outcome = iota
	// OutcomeNoMatch means the finder ran but nothing was picked: no
	// match, or success with an empty selection.
	OutcomeNoMatch
	// OutcomeCancelled means the user aborted the finder.
	OutcomeCancelled
	// OutcomeNoCandidates means there was nothing to choose from and
	// the finder was never spawned.
	OutcomeNoCandidates
)

// Result is a finished chooser session. Names is non-empty exactly when
// Outcome is OutcomeSelected, ordered as the finder returned them.
type Result struct {
	Outcome Outcome
	Names   []string
}

// FinderError reports a finder exit status outside the recognized
// taxonomy. It is a hard error, not a "nothing selected" state.
type FinderError struct {
	Command string
	Status  int
}

func (e *FinderError) Error() string {
	return fmt.Sprintf("%s failed with exit status %d", e.Command, e.Status)
}

// Finder configures one external fuzzy-finder invocation.
type Finder struct {
	// Command is the finder binary, fzf by default.
	Command string

	// Args, when non-nil, fully replaces the default flag set
	// (including the preview). Used for alternative finders and tests.
	Args []string

	// Multi enables multi-selection binds and multi-line results.
	Multi bool

	// Exe is the path of the currently running executable, used to
	// build the self-invoking preview command.
	Exe string

	// ConfigPath is forwarded to the preview invocation so the child
	// lists from the same parcel file.
	ConfigPath string
}

// New builds a Finder for the given parcel file, resolving the current
// executable path for the preview command. The command defaults to fzf
// when cmd is empty.
func New(cmd string, args []string, configPath string, multi bool) (*Finder, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolving own executable for preview: %w", err)
	}
	if cmd == "" {
		cmd = "fzf"
	}
	return &Finder{
		Command:    cmd,
		Args:       args,
		Multi:      multi,
		Exe:        exe,
		ConfigPath: configPath,
	}, nil
}

// Choose runs the finder over the candidate names and classifies the
// result. An empty candidate set short-circuits without spawning
// anything. The finder's stderr is inherited so it can draw its UI.
func (f *Finder) Choose(candidates []string) (Result, error) {
	if len(candidates) == 0 {
		return Result{Outcome: OutcomeNoCandidates}, nil
	}

	args := f.Args
	if args == nil {
		args = f.defaultArgs()
	}
	log.Debug("spawning finder", "command", f.Command, "args", args)

	cmd := exec.Command(f.Command, args...)
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return Result{}, fmt.Errorf("opening finder stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return Result{}, fmt.Errorf("starting %s: %w", f.Command, err)
	}

	// Stream every candidate, then close stdin so the finder sees
	// end-of-input. The close must happen before Wait: holding the
	// write end open while blocking on exit is the classic pipe
	// deadlock.
	var writeErr error
	for _, name := range candidates {
		if _, err := fmt.Fprintln(stdin, name); err != nil {
			// The finder may exit before reading everything (e.g.
			// instant Ctrl-C); a broken pipe here is not fatal, the
			// exit status carries the real outcome.
			writeErr = err
			break
		}
	}
	if err := stdin.Close(); err != nil && writeErr == nil {
		writeErr = err
	}

	err = cmd.Wait()
	if err == nil {
		names := splitSelection(out.String())
		if len(names) == 0 {
			// Success status but nothing on stdout counts as no match,
			// not as a selection.
			return Result{Outcome: OutcomeNoMatch}, nil
		}
		return Result{Outcome: OutcomeSelected, Names: names}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		switch exitErr.ExitCode() {
		case exitInterrupt:
			return Result{Outcome: OutcomeCancelled}, nil
		case exitNoMatch:
			return Result{Outcome: OutcomeNoMatch}, nil
		default:
			return Result{}, &FinderError{Command: f.Command, Status: exitErr.ExitCode()}
		}
	}
	if writeErr != nil {
		return Result{}, fmt.Errorf("writing candidates to %s: %w", f.Command, writeErr)
	}
	return Result{}, fmt.Errorf("waiting for %s: %w", f.Command, err)
}

// defaultArgs is the fzf invocation: reverse layout, cycling, source
// order kept, tab to move, and a preview pane that re-invokes this very
// executable to list the highlighted parcel.
func (f *Finder) defaultArgs() []string {
	args := []string{
		"--preview-window=right:60%:wrap",
		"--layout=reverse",
		"--bind=tab:down,shift-tab:up",
		"--cycle",
		"--no-sort",
		"--ansi",
		"--tmux=center,70%,40%",
	}
	if f.Multi {
		args = append(args,
			"--multi",
			"--bind=ctrl-a:select-all",
			"--bind=space:toggle+down",
		)
	}
	return append(args, "--preview", f.previewCommand())
}

// previewCommand builds the self-invocation one-liner the finder runs
// for the highlighted candidate. The candidate is passed as a positional
// shell parameter rather than spliced into the string, so names with
// quotes survive. Output pipes through bat when available.
func (f *Finder) previewCommand() string {
	list := fmt.Sprintf("%s --config %s list \"$1\"", f.Exe, f.ConfigPath)
	if _, err := exec.LookPath("bat"); err == nil {
		list += " | bat --color=always -pp"
	}
	return fmt.Sprintf("sh -c '%s' sh {}", list)
}

// splitSelection parses finder stdout into selected names, one per
// line, dropping blank lines.
func splitSelection(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names
}

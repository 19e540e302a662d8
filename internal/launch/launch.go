// Package launch invokes the platform open primitive for classified
// entries. Launches are best effort: each entry is one independent
// attempt and a failure never stops the rest of a parcel.
package launch

import (
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/shlex"

	"github.com/runger/parcel/internal/entry"
)

// Launcher opens a single entry.
type Launcher interface {
	Launch(e entry.Entry) error
}

// Opener launches entries through the platform open command, or through
// a user-configured override.
type Opener struct {
	openArgv []string
	custom   bool
}

// NewOpener builds the platform launcher. A non-empty override is split
// shell-style into the command that receives each target as its final
// argument; empty selects the platform default (open on macOS, xdg-open
// elsewhere, cmd /c start on Windows).
func NewOpener(override string) (*Opener, error) {
	if override == "" {
		return &Opener{openArgv: platformOpenArgv()}, nil
	}
	argv, err := shlex.Split(override)
	if err != nil {
		return nil, fmt.Errorf("splitting opener command %q: %w", override, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("opener command %q produced empty argv", override)
	}
	return &Opener{openArgv: argv, custom: true}, nil
}

// Launch runs one open attempt for the entry and waits for it.
func (o *Opener) Launch(e entry.Entry) error {
	argv := o.argv(e)
	log.Debug("launching entry", "target", e.Value, "argv", argv)

	cmd := exec.Command(argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("open %s: %w: %s", e.Value, err, msg)
		}
		return fmt.Errorf("open %s: %w", e.Value, err)
	}
	return nil
}

func (o *Opener) argv(e entry.Entry) []string {
	if e.Kind == entry.KindShell {
		return shellArgv(e.Value)
	}
	if o.custom {
		return append(slices.Clone(o.openArgv), e.Value)
	}
	return defaultOpenArgv(e)
}

// Attempt records the outcome of one entry launch within a batch.
type Attempt struct {
	Entry entry.Entry
	Err   error
}

// Failed reports whether the attempt errored.
func (a Attempt) Failed() bool {
	return a.Err != nil
}

// OpenAll launches every entry in order, never aborting on failure.
// One attempt per entry is always made and recorded.
func OpenAll(l Launcher, entries []entry.Entry) []Attempt {
	attempts := make([]Attempt, 0, len(entries))
	for _, e := range entries {
		attempts = append(attempts, Attempt{Entry: e, Err: l.Launch(e)})
	}
	return attempts
}

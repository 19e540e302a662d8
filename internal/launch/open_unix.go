//go:build !windows && !darwin

package launch

import "github.com/runger/parcel/internal/entry"

// defaultOpenArgv maps an entry onto xdg-open. There is no portable
// "launch app by name" primitive outside macOS, so App entries execute
// the named command itself.
func defaultOpenArgv(e entry.Entry) []string {
	if e.Kind == entry.KindApp {
		return []string{e.Value}
	}
	return []string{"xdg-open", e.Value}
}

func platformOpenArgv() []string {
	return []string{"xdg-open"}
}

func shellArgv(command string) []string {
	return []string{"/bin/sh", "-c", command}
}

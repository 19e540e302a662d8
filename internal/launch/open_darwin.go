package launch

import "github.com/runger/parcel/internal/entry"

// defaultOpenArgv maps an entry onto the macOS open command. App names
// go through open -a so Launch Services resolves them; files and URLs
// are handed to open directly.
func defaultOpenArgv(e entry.Entry) []string {
	if e.Kind == entry.KindApp {
		return []string{"open", "-a", e.Value}
	}
	return []string{"open", e.Value}
}

func platformOpenArgv() []string {
	return []string{"open"}
}

func shellArgv(command string) []string {
	return []string{"/bin/sh", "-c", command}
}

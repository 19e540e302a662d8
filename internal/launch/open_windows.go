package launch

import "github.com/runger/parcel/internal/entry"

// defaultOpenArgv maps every entry onto cmd /c start, which resolves
// apps, paths, and URLs through the shell's association tables. The
// empty string after start is the window title slot.
func defaultOpenArgv(e entry.Entry) []string {
	return []string{"cmd", "/c", "start", "", e.Value}
}

func platformOpenArgv() []string {
	return []string{"cmd", "/c", "start", ""}
}

func shellArgv(command string) []string {
	return []string{"cmd", "/c", command}
}

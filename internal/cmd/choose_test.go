package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeChooseConfig writes a parcel file whose "finder" is a scripted
// shell command and whose opener is touch, so opened entries leave
// files behind as evidence.
func writeChooseConfig(t *testing.T, dir, finderScript string) string {
	t.Helper()
	content := fmt.Sprintf(`
parcels:
  work:
    - fs:%[1]s/opened-work
  home:
    - fs:%[1]s/opened-home
opener: touch
finder:
  command: sh
  args: ["-c", %q]
`, dir, finderScript)

	path := filepath.Join(dir, "parcels.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	defer func() {
		chooseMulti = false
		chooseBackend = "fzf"
	}()
	return rootCmd.Execute()
}

func TestChooseMultiSelectFanOut(t *testing.T) {
	dir := t.TempDir()
	cfg := writeChooseConfig(t, dir, `cat >/dev/null; printf 'work\nhome\n'`)

	err := runCLI(t, "--config", cfg, "choose", "--multi")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}

	// Both selected parcels must have been opened, in finder order.
	for _, f := range []string{"opened-work", "opened-home"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("parcel entry %s was not opened: %v", f, err)
		}
	}
}

func TestChooseCancelOpensNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := writeChooseConfig(t, dir, `cat >/dev/null; exit 130`)

	if err := runCLI(t, "--config", cfg, "choose"); err != nil {
		t.Fatalf("cancel should be a successful no-op, got: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "opened-work")); err == nil {
		t.Error("cancelled choose still opened a parcel")
	}
}

func TestChooseFinderHardFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := writeChooseConfig(t, dir, `cat >/dev/null; exit 2`)

	if err := runCLI(t, "--config", cfg, "choose"); err == nil {
		t.Fatal("an unclassified finder status must surface as an error")
	}
}

func TestChooseUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	cfg := writeChooseConfig(t, dir, `true`)

	if err := runCLI(t, "--config", cfg, "choose", "--chooser", "bogus"); err == nil {
		t.Fatal("expected an error for an unknown chooser backend")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runger/parcel/internal/entry"
)

func writeParcelFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parcels.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeParcelFile(t, `
parcels:
  work:
    - slack
    - https://mail.example.com
  home:
    - spotify
allow_shell: true
opener: my-open
finder:
  command: sk
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(cfg.Parcels) != 2 {
		t.Errorf("got %d parcels, want 2", len(cfg.Parcels))
	}
	if got := cfg.Parcels["work"]; len(got) != 2 || got[0] != "slack" {
		t.Errorf("work parcel = %v, want [slack https://mail.example.com]", got)
	}
	if !cfg.AllowShell {
		t.Error("allow_shell not honored")
	}
	if cfg.Opener != "my-open" {
		t.Errorf("opener = %q", cfg.Opener)
	}
	if cfg.Finder.Command != "sk" {
		t.Errorf("finder.command = %q", cfg.Finder.Command)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Fatal("expected an error for a missing parcel file")
	}
}

func TestLoadFromFileMalformed(t *testing.T) {
	path := writeParcelFile(t, "parcels: [this is: not valid\n")
	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestStoreClassifiesEntries(t *testing.T) {
	path := writeParcelFile(t, `
parcels:
  work:
    - sh:tmux attach
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Shell capability off: the sh: entry must not classify as Shell.
	entries, err := cfg.Store().Lookup("work")
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Kind == entry.KindShell {
		t.Error("shell entry produced without allow_shell")
	}

	cfg.AllowShell = true
	entries, err = cfg.Store().Lookup("work")
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Kind != entry.KindShell {
		t.Errorf("entry kind = %v, want KindShell with allow_shell on", entries[0].Kind)
	}
}

func TestDefaultPathPrefersYml(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	parcelDir := filepath.Join(dir, "parcel")
	if err := os.MkdirAll(parcelDir, 0755); err != nil {
		t.Fatal(err)
	}

	// No .yml present: the .yaml spelling is the default.
	if got, want := DefaultPath(), filepath.Join(parcelDir, "parcels.yaml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}

	if err := os.WriteFile(filepath.Join(parcelDir, "parcels.yml"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if got, want := DefaultPath(), filepath.Join(parcelDir, "parcels.yml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

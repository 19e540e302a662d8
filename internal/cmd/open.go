package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runger/parcel/internal/config"
	"github.com/runger/parcel/internal/launch"
	"github.com/runger/parcel/internal/store"
)

var openCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open every entry of a parcel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := loadStore()
		if err != nil {
			return err
		}
		return openParcel(cfg, st, args[0])
	},
}

// openParcel resolves the configured opener and launches the named
// parcel through it.
func openParcel(cfg *config.Config, st *store.Store, name string) error {
	opener, err := launch.NewOpener(cfg.Opener)
	if err != nil {
		return err
	}
	return openWith(opener, st, name)
}

// openWith launches every entry of the named parcel, best effort: a
// failing entry is reported and the batch continues. The call errors
// only on an unknown name or when every entry failed.
func openWith(l launch.Launcher, st *store.Store, name string) error {
	entries, err := st.Lookup(name)
	if err != nil {
		return err
	}

	attempts := launch.OpenAll(l, entries)
	failures := 0
	for _, a := range attempts {
		if a.Failed() {
			failures++
			fmt.Fprintf(os.Stderr, "warning: %v\n", a.Err)
		}
	}
	if len(attempts) > 0 && failures == len(attempts) {
		return fmt.Errorf("every entry of parcel %q failed to open", name)
	}
	return nil
}

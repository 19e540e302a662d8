package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runger/parcel/internal/chooser"
	"github.com/runger/parcel/internal/picker"
)

var (
	chooseBackend string
	chooseMulti   bool
)

var chooseCmd = &cobra.Command{
	Use:   "choose",
	Short: "Pick a parcel interactively and open it",
	Long: `Pick a parcel with a fuzzy chooser and open it.

The default backend shells out to fzf with a preview of each parcel's
entries; the builtin backend is a self-contained picker for systems
without fzf. With --multi, every selected parcel is opened in the
order the chooser returns.`,
	Args: cobra.NoArgs,
	RunE: runChoose,
}

func init() {
	chooseCmd.Flags().StringVar(&chooseBackend, "chooser", "fzf", "chooser backend: fzf or builtin")
	chooseCmd.Flags().BoolVar(&chooseMulti, "multi", false, "allow selecting multiple parcels")
}

func runChoose(cmd *cobra.Command, args []string) error {
	cfg, st, err := loadStore()
	if err != nil {
		return err
	}

	var res chooser.Result
	switch chooseBackend {
	case "fzf":
		finder, err := chooser.New(cfg.Finder.Command, cfg.Finder.Args, cfgPath, chooseMulti)
		if err != nil {
			return err
		}
		res, err = finder.Choose(st.Names())
		if err != nil {
			return err
		}
	case "builtin":
		res, err = picker.Run(st.Names(), previewFunc(st), chooseMulti)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown chooser backend %q (want fzf or builtin)", chooseBackend)
	}

	switch res.Outcome {
	case chooser.OutcomeNoCandidates:
		fmt.Fprintln(os.Stderr, "No parcels available. Please add parcels to the configuration file.")
		return nil
	case chooser.OutcomeCancelled, chooser.OutcomeNoMatch:
		// A successful no-op, not an error.
		fmt.Fprintln(os.Stderr, "No parcel selected.")
		return nil
	}

	// Fan out in the order the chooser returned.
	for _, name := range res.Names {
		if err := openParcel(cfg, st, name); err != nil {
			return err
		}
	}
	return nil
}

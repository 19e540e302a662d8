package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/runger/parcel/internal/picker"
	"github.com/runger/parcel/internal/store"
)

var listJSON bool

var nameStyle = lipgloss.NewStyle().Bold(true)

var listCmd = &cobra.Command{
	Use:   "list [name]",
	Short: "List parcels and their entries",
	Long: `List every parcel, or the entries of one parcel.

The single-parcel form prints one entry per line and doubles as the
preview command for the interactive chooser. --json emits the whole
mapping for scripting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := loadStore()
		if err != nil {
			return err
		}

		if listJSON {
			return printJSON(os.Stdout, st)
		}
		if len(args) == 1 {
			return printParcel(os.Stdout, st, args[0])
		}
		printAll(os.Stdout, st)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output the parcel mapping as JSON")
}

func printParcel(w io.Writer, st *store.Store, name string) error {
	entries, err := st.Lookup(name)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintln(w, "- "+e.String())
	}
	return nil
}

func printAll(w io.Writer, st *store.Store) {
	for _, name := range st.Names() {
		fmt.Fprintln(w, nameStyle.Render(name)+":")
		for _, line := range parcelLines(st, name) {
			fmt.Fprintln(w, line)
		}
	}
}

func printJSON(w io.Writer, st *store.Store) error {
	parcels := make(map[string][]string, st.Len())
	for _, name := range st.Names() {
		entries, err := st.Lookup(name)
		if err != nil {
			return err
		}
		display := make([]string, 0, len(entries))
		for _, e := range entries {
			display = append(display, e.String())
		}
		parcels[name] = display
	}
	return json.NewEncoder(w).Encode(map[string]any{"parcels": parcels})
}

// parcelLines renders a parcel's entries in display form, one "- entry"
// line each. Unknown names render nothing.
func parcelLines(st *store.Store, name string) []string {
	entries, err := st.Lookup(name)
	if err != nil {
		return nil
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, "- "+e.String())
	}
	return lines
}

// previewFunc adapts parcelLines for the builtin picker's preview pane.
func previewFunc(st *store.Store) picker.PreviewFunc {
	return func(name string) []string {
		return parcelLines(st, name)
	}
}

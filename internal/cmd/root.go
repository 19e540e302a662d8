// Package cmd contains the parcel CLI commands.
package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/runger/parcel/internal/config"
	"github.com/runger/parcel/internal/store"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "parcel",
	Short: "Open groups of applications, files, and URLs",
	Long: `parcel opens named groups ("parcels") of launch targets in one go.

Parcels are defined in a YAML file mapping names to entries:

  parcels:
    work:
      - slack
      - https://mail.example.com
      - ~/notes

Entries classify by shape: leading ~ or / (or an fs: marker) is a file
path, a scheme-qualified string is a URL, sh: runs a shell command when
allow_shell is set, and anything else is an application name.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "parcel file to load")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(chooseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadStore loads the parcel file behind --config and builds the store.
func loadStore() (*config.Config, *store.Store, error) {
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("loaded parcel file", "path", cfgPath, "parcels", len(cfg.Parcels))
	return cfg, cfg.Store(), nil
}

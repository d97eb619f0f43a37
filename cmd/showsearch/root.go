package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowSearch/internal/config"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "showsearch",
	Short: "Search TVmaze shows and browse their episodes",
	Long: `ShowSearch serves a small search widget over the TVmaze catalog:
search shows by name, then list the episodes of one of them.
The search and episodes commands query the catalog from the terminal.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile == "" {
			return nil
		}
		if err := config.Reload(cfgFile); err != nil {
			return fmt.Errorf("failed to load config %s: %w", cfgFile, err)
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ./config/config.yaml)")
}

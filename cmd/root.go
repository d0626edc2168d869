package cmd

import (
	"os"

	"github.com/inovacc/ghexplorer/internal/application"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Explore GitHub repositories and keep a personal list",
	Long: `ghexplorer looks up GitHub repositories by owner/name and keeps the ones
you add in a list stored on this machine.

Run without a subcommand to open the interactive dashboard.`,
	Annotations:  map[string]string{annotationTUI: "true"},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeApp()
	},
	RunE: runExplore,
}

func Execute() {
	err := rootCmd.Execute()

	closeApp()

	if err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default <data-dir>/config.yaml)")
	pf.String("data-dir", "", "directory for the repository list, config and logs")
	pf.String("storage", "", "storage backend: bolt or sqlite")
	pf.String("api-url", "", "GitHub REST API base URL")
	pf.String("duplicates", "", "re-adding a saved repository: reject, replace or allow")
	pf.String("persist-errors", "", "storage write failures: fail or log")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("log-format", "", "log format: text or json")
}

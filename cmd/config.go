package cmd

import (
	"github.com/inovacc/ghexplorer/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the settings in effect after applying defaults, the config file,
GHEXPLORER_* environment variables and flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := app.cfg.Settings()

		file := app.cfg.File()
		if file == "" {
			file = "(none)"
		}

		settings["config_file"] = file

		order := []string{
			"config_file",
			config.KeyDataDir,
			config.KeyStorage,
			config.KeyAPIURL,
			config.KeyToken,
			config.KeyDuplicates,
			config.KeyPersistErrors,
			config.KeyLogLevel,
			config.KeyLogFormat,
		}

		printInfoBox(cmd.OutOrStdout(), "ghexplorer configuration", settings, order)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

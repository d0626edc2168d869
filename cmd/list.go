package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the saved repositories",
	Long:  `Print the saved repositories in the order they were added.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		coll, _, err := app.openCollection()
		if err != nil {
			return err
		}

		projects := coll.Projects()

		if listJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if err := enc.Encode(projects); err != nil {
				return fmt.Errorf("failed to encode JSON: %w", err)
			}

			return nil
		}

		return printProjects(cmd.OutOrStdout(), projects)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print as JSON")
}

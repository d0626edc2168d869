package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/ghexplorer/internal/core"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [owner/name]",
	Short: "Look up a repository and add it to the list",
	Long: `Look up a GitHub repository by owner/name and append it to the saved list.
A GitHub URL is accepted as well. Without an argument the origin remote of the
repository in the current directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string

		if len(args) == 1 {
			query = args[0]
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			if query, err = core.DetectFullName(wd); err != nil {
				return err
			}
		}

		coll, _, err := app.openCollection()
		if err != nil {
			return err
		}

		before := coll.Projects()

		projects, err := coll.Add(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("%s: %w", core.UserMessage(err), err)
		}

		outcome := core.DescribeAdd(before, projects, query)
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d saved)\n", outcome, len(projects))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}

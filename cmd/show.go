package cmd

import (
	"fmt"

	"github.com/inovacc/ghexplorer/internal/cli"
	"github.com/inovacc/ghexplorer/internal/core"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <owner/name>",
	Short: "Show the detail view of a repository",
	Long: `Fetch and print a repository's description, owner, language, stars, forks and
open issues. The repository does not have to be in the saved list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := core.NormalizeQuery(args[0])
		if name == "" {
			return core.ErrEmptyQuery
		}

		_, client, err := app.openCollection()
		if err != nil {
			return err
		}

		detail, err := client.FetchDetail(cmd.Context(), name)
		if err != nil {
			lookupErr := &core.AddError{Kind: core.KindLookupFailed, Query: name, Err: err}

			return fmt.Errorf("%s: %w", lookupErr.Message(), lookupErr)
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), cli.RenderDetail(detail))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

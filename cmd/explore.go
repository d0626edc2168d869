package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/ghexplorer/internal/cli"
	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:         "explore",
	Short:       "Open the interactive dashboard",
	Long:        `Open the dashboard: type owner/name and press enter to add a repository, tab to move to the list and enter to open one. Without a terminal the saved list is printed instead.`,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	coll, client, err := app.openCollection()
	if err != nil {
		return err
	}

	if !isTerminal() {
		return printProjects(cmd.OutOrStdout(), coll.Projects())
	}

	m := cli.NewDashboard(cmd.Context(), coll.Projects(), coll, client)

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()

	return err
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

// Package cli provides the terminal user interface of ghexplorer.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - Dashboard: input with an add button, an error slot and the filterable
//     list of saved repositories
//   - Detail: one saved repository with its remote counters
//
// The dashboard runs one submission at a time. Each submission is tagged with
// a sequence number and results for any other number are dropped, so a
// cancelled or superseded lookup never changes what is shown.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli

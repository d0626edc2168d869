package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/ghexplorer/internal/core"
	"github.com/inovacc/ghexplorer/internal/model"
)

// DetailFetcher loads the detail view of one project.
type DetailFetcher interface {
	FetchDetail(ctx context.Context, fullName string) (model.ProjectDetail, error)
}

type detailLoadedMsg struct {
	fullName string
	detail   model.ProjectDetail
	err      error
}

// DetailModel shows one saved project. It is opened from the dashboard.
type DetailModel struct {
	spinner spinner.Model
	fetcher DetailFetcher
	project model.Project
	detail  model.ProjectDetail
	ctx     context.Context
	cancel  context.CancelFunc
	loading bool
	err     error
}

// NewDetailModel creates a detail view for p. The saved data is shown until
// the fetch completes.
func NewDetailModel(ctx context.Context, fetcher DetailFetcher, p model.Project) DetailModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ctx, cancel := context.WithCancel(ctx)

	return DetailModel{
		spinner: s,
		fetcher: fetcher,
		project: p,
		detail:  model.ProjectDetail{Project: p},
		ctx:     ctx,
		cancel:  cancel,
		loading: true,
	}
}

func (m DetailModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m DetailModel) fetch() tea.Msg {
	d, err := m.fetcher.FetchDetail(m.ctx, m.project.FullName)

	return detailLoadedMsg{fullName: m.project.FullName, detail: d, err: err}
}

// Close abandons an in-flight fetch.
func (m DetailModel) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if msg.fullName != m.project.FullName {
			return m, nil
		}

		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.detail = msg.detail
		}

		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m DetailModel) View() string {
	var b strings.Builder

	b.WriteString(RenderDetail(m.detail))

	switch {
	case m.loading:
		fmt.Fprintf(&b, "\n%s Loading details...\n", m.spinner.View())
	case m.err != nil:
		b.WriteString("\n" + errorStyle.Render("✗ "+core.UserMessage(&core.AddError{Kind: core.KindLookupFailed})) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("esc back • ctrl+c quit"))

	return docStyle.Render(b.String())
}

// RenderDetail formats a project for display. Counters are shown only once
// the remote detail is known.
func RenderDetail(d model.ProjectDetail) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.FullName) + "\n")

	desc := d.Description
	if desc == "" {
		desc = "No description"
	}

	b.WriteString(desc + "\n\n")
	fmt.Fprintf(&b, "Owner:     %s\n", urlStyle.Render(d.Owner.Login))

	if d.HTMLURL != "" {
		fmt.Fprintf(&b, "URL:       %s\n", pathStyle.Render(d.HTMLURL))
	}

	if d.Language != "" {
		fmt.Fprintf(&b, "Language:  %s\n", d.Language)
	}

	if d.HTMLURL != "" {
		fmt.Fprintf(&b, "Stars:     %d\n", d.StargazersCount)
		fmt.Fprintf(&b, "Forks:     %d\n", d.ForksCount)
		fmt.Fprintf(&b, "Issues:    %d\n", d.OpenIssuesCount)
	}

	return b.String()
}

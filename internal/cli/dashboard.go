package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/ghexplorer/internal/core"
	"github.com/inovacc/ghexplorer/internal/model"
)

// Adder runs one add submission and returns the resulting list.
type Adder interface {
	Add(ctx context.Context, query string) ([]model.Project, error)
}

// projectLister is implemented by adders that can report the saved list.
type projectLister interface {
	Projects() []model.Project
}

type projectItem struct {
	project model.Project
}

func (i projectItem) Title() string {
	return i.project.FullName
}

func (i projectItem) Description() string {
	desc := i.project.Description
	if desc == "" {
		desc = "No description"
	}

	return fmt.Sprintf("%s | %s", i.project.Owner.Login, desc)
}

func (i projectItem) FilterValue() string {
	return i.project.FullName
}

type addResultMsg struct {
	seq      int
	projects []model.Project
	err      error
}

// DashboardModel is the main screen: an input with an add button, an error
// slot and the saved list. Only one submission runs at a time.
type DashboardModel struct {
	input   textinput.Model
	list    list.Model
	spinner spinner.Model
	state   core.QueryState

	adder   Adder
	fetcher DetailFetcher
	ctx     context.Context

	listFocused bool
	pending     bool
	seq         int
	cancel      context.CancelFunc

	projects []model.Project
	notice   string
	detail   *DetailModel
	quitting bool
}

// NewDashboard creates the dashboard showing projects.
func NewDashboard(ctx context.Context, projects []model.Project, adder Adder, fetcher DetailFetcher) DashboardModel {
	t := textinput.New()
	t.Placeholder = "owner/name"
	t.Prompt = "> "
	t.CharLimit = 256
	t.Cursor.Style = focusedStyle
	t.PromptStyle = focusedStyle
	t.TextStyle = focusedStyle
	t.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	l := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	l.Title = "Saved repositories"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	m := DashboardModel{
		input:   t,
		list:    l,
		spinner: s,
		adder:   adder,
		fetcher: fetcher,
		ctx:     ctx,
	}
	m.setProjects(projects)

	return m
}

func (m *DashboardModel) setProjects(projects []model.Project) {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}

	m.projects = projects
	m.list.SetItems(items)
}

// refresh reloads the list after a submission that was abandoned but still
// saved, so the list matches what is stored.
func (m *DashboardModel) refresh(projects []model.Project) {
	if l, ok := m.adder.(projectLister); ok {
		projects = l.Projects()
	}

	m.setProjects(projects)
}

func (m DashboardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m DashboardModel) submit() (DashboardModel, tea.Cmd) {
	if m.pending {
		return m, nil
	}

	m.state.Query = m.input.Value()
	m.notice = ""

	if core.NormalizeQuery(m.state.Query) == "" {
		m.state.Apply(core.ErrEmptyQuery)

		return m, nil
	}

	ctx, cancel := context.WithCancel(m.ctx)

	m.seq++
	m.pending = true
	m.cancel = cancel

	seq, query, adder := m.seq, m.state.Query, m.adder
	add := func() tea.Msg {
		projects, err := adder.Add(ctx, query)

		return addResultMsg{seq: seq, projects: projects, err: err}
	}

	return m, tea.Batch(m.spinner.Tick, add)
}

// abandon drops the in-flight submission; its result will be ignored.
func (m *DashboardModel) abandon() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	m.seq++
	m.pending = false
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.detail != nil {
		return m.updateDetail(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-6)

		return m, nil

	case addResultMsg:
		if msg.seq != m.seq {
			if msg.err == nil {
				m.refresh(msg.projects)
			}

			return m, nil
		}

		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}

		m.pending = false
		m.state.Apply(msg.err)

		if msg.err == nil {
			m.notice = core.DescribeAdd(m.projects, msg.projects, m.state.Query).String()
			m.input.SetValue("")
			m.setProjects(msg.projects)
		}

		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.abandon()
			m.quitting = true

			return m, tea.Quit

		case "esc":
			if m.pending {
				m.abandon()

				return m, nil
			}

			if m.list.FilterState() != list.Filtering {
				m.quitting = true

				return m, tea.Quit
			}

		case "tab":
			m.listFocused = !m.listFocused
			if m.listFocused {
				m.input.Blur()

				return m, nil
			}

			return m, m.input.Focus()

		case "enter":
			if !m.listFocused {
				return m.submit()
			}

			if m.list.FilterState() == list.Filtering {
				break
			}

			if i, ok := m.list.SelectedItem().(projectItem); ok {
				return m.openDetail(i.project)
			}

			return m, nil
		}

		if !m.listFocused {
			var cmd tea.Cmd

			m.input, cmd = m.input.Update(msg)

			return m, cmd
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m DashboardModel) openDetail(p model.Project) (tea.Model, tea.Cmd) {
	if m.fetcher == nil {
		return m, nil
	}

	d := NewDetailModel(m.ctx, m.fetcher, p)
	m.detail = &d

	return m, d.Init()
}

func (m DashboardModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.detail.Close()
			m.abandon()
			m.quitting = true

			return m, tea.Quit
		case "esc", "q", "backspace":
			m.detail.Close()
			m.detail = nil

			return m, nil
		}

		return m, nil
	}

	// The dashboard spinner keeps ticking underneath the detail view.
	if tick, ok := msg.(spinner.TickMsg); ok && tick.ID == m.spinner.ID() {
		if !m.pending {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(tick)

		return m, cmd
	}

	// Submissions started before the detail view opened still complete.
	if res, ok := msg.(addResultMsg); ok {
		d := m.detail
		m.detail = nil
		next, _ := m.Update(res)
		dm := next.(DashboardModel)
		dm.detail = d

		return dm, nil
	}

	d, cmd := m.detail.Update(msg)
	m.detail = &d

	return m, cmd
}

func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	if m.detail != nil {
		return m.detail.View()
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("GitHub Explorer") + "\n\n")

	button := focusedButton
	if m.listFocused {
		button = blurredButton
	}

	b.WriteString(m.input.View() + "  ")

	if m.pending {
		fmt.Fprintf(&b, "%s Looking up %s", m.spinner.View(), urlStyle.Render(strings.TrimSpace(m.state.Query)))
	} else {
		b.WriteString(button)
	}

	b.WriteString("\n")

	switch {
	case m.state.HasError():
		b.WriteString(errorStyle.Render("✗ "+m.state.LastError) + "\n")
	case m.notice != "":
		b.WriteString(successStyle.Render("✓ "+m.notice) + "\n")
	default:
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.list.View() + "\n")
	b.WriteString(helpStyle.Render("enter add/open • tab switch focus • esc cancel/quit"))

	return docStyle.Render(b.String())
}

// Err returns the message currently shown in the error slot.
func (m DashboardModel) Err() string {
	return m.state.LastError
}

// Pending reports whether a submission is in flight.
func (m DashboardModel) Pending() bool {
	return m.pending
}

// Package ui implements terminal front end of the roast server.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	apihttp "github.com/m-zajac/ghroast/internal/api/http"
)

// State of the roast form.
type State int

// Form states. Success and Failed accept the next submission like Idle does.
const (
	Idle State = iota
	Submitting
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Submit button labels.
const (
	IdleLabel       = "Roast Me"
	SubmittingLabel = "Generating Roast..."
)

// EmptyInputAlert is shown when submitting without a username.
const EmptyInputAlert = "Please enter a GitHub username."

// Roaster talks to the roast server.
type Roaster interface {
	Roast(ctx context.Context, login string) (*apihttp.RoastResponse, error)
	Stats(ctx context.Context) (*apihttp.StatsResponse, error)
}

type roastDoneMsg struct {
	resp *apihttp.RoastResponse
	err  error
}

type statsMsg struct {
	total int64
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	buttonStyle = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("160")).Foreground(lipgloss.Color("230"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(72)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Model is bubbletea model of the roast form.
type Model struct {
	roaster Roaster
	timeout time.Duration

	input   textinput.Model
	spinner spinner.Model

	state       State
	label       string
	alert       string
	result      *apihttp.RoastResponse
	totalRoasts int64
}

// New creates form model. timeout bounds a single server call.
func New(roaster Roaster, timeout time.Duration) Model {
	input := textinput.New()
	input.Placeholder = "github username"
	input.CharLimit = 39
	input.Focus()

	return Model{
		roaster: roaster,
		timeout: timeout,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		state:   Idle,
		label:   IdleLabel,
	}
}

// State returns current form state.
func (m Model) State() State {
	return m.state
}

// Label returns current submit button label.
func (m Model) Label() string {
	return m.label
}

// Alert returns message shown to the user, empty if none.
func (m Model) Alert() string {
	return m.alert
}

// Result returns last successful roast, nil if none.
func (m Model) Result() *apihttp.RoastResponse {
	return m.result
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.statsCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	case roastDoneMsg:
		return m.finish(msg), nil
	case statsMsg:
		m.totalRoasts = msg.total
		return m, nil
	case spinner.TickMsg:
		if m.state != Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.state == Submitting {
		return m, nil
	}

	login := strings.TrimSpace(m.input.Value())
	if login == "" {
		m.alert = EmptyInputAlert
		return m, nil
	}

	m.state = Submitting
	m.label = SubmittingLabel
	m.alert = ""

	return m, tea.Batch(m.spinner.Tick, m.roastCmd(login))
}

func (m Model) finish(msg roastDoneMsg) Model {
	m.label = IdleLabel
	if msg.err != nil {
		m.state = Failed
		m.alert = "Error: " + msg.err.Error()
		return m
	}

	m.state = Success
	m.result = msg.resp
	m.totalRoasts = msg.resp.TotalRoasts
	m.input.Reset()

	return m
}

func (m Model) roastCmd(login string) tea.Cmd {
	roaster, timeout := m.roaster, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := roaster.Roast(ctx, login)
		return roastDoneMsg{resp: resp, err: err}
	}
}

func (m Model) statsCmd() tea.Cmd {
	roaster, timeout := m.roaster, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		stats, err := roaster.Stats(ctx)
		if err != nil {
			return nil
		}
		return statsMsg{total: stats.TotalRoasts}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("GitHub Roast"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	if m.state == Submitting {
		sb.WriteString(m.spinner.View() + " ")
	}
	sb.WriteString(buttonStyle.Render(m.label))
	sb.WriteString("\n")

	if m.alert != "" {
		sb.WriteString("\n" + alertStyle.Render(m.alert) + "\n")
	}

	if m.result != nil {
		sb.WriteString("\n")
		sb.WriteString(panelStyle.Render(RenderResult(m.result)))
		sb.WriteString("\n")
	}

	if m.totalRoasts > 0 {
		sb.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("%d roasts served so far", m.totalRoasts)) + "\n")
	}
	sb.WriteString(mutedStyle.Render("enter: roast • esc: quit") + "\n")

	return sb.String()
}

// RenderResult renders roast result as plain text.
func RenderResult(r *apihttp.RoastResponse) string {
	name := r.Name
	if name == "" {
		name = "N/A"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (@%s)\n", name, r.Login)
	fmt.Fprintf(&sb, "%s\n\n", r.AvatarURL)
	sb.WriteString(r.Roast)

	return sb.String()
}

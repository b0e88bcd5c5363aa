package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	caldto "taskflows/internal/modules/calendar/dto"
	goaldto "taskflows/internal/modules/goals/dto"
	notedto "taskflows/internal/modules/notes/dto"
	storedto "taskflows/internal/modules/store/dto"
	taskdto "taskflows/internal/modules/tasks/dto"
	"taskflows/internal/ui/components"
	"taskflows/internal/ui/theme"
	"taskflows/internal/ui/views/dashboard"
)

const (
	activityLimit = 8
	upcomingLimit = 5
)

// ─── ports ───────────────────────────────────────────────────────────────────

type storePort interface {
	Stats(ctx context.Context) storedto.StatsOutput
	RecentActivity(ctx context.Context, limit int) []storedto.ActivityOutput
}

type taskPort interface {
	Add(ctx context.Context, title, priority, category, dueDate string) (taskdto.TaskOutput, error)
}

type quickPort interface {
	AddQuick(ctx context.Context, content string) (notedto.QuickNoteOutput, error)
}

type goalPort interface {
	List(ctx context.Context) ([]goaldto.GoalOutput, error)
	Progress(ctx context.Context, id string, current int) (goaldto.GoalOutput, error)
}

type calendarPort interface {
	Upcoming(ctx context.Context, limit int) ([]caldto.EventOutput, error)
}

// Ports groups the handlers the dashboard reads from and writes to.
type Ports struct {
	Store    storePort
	Tasks    taskPort
	Quick    quickPort
	Goals    goalPort
	Calendar calendarPort
}

// ─── messages ────────────────────────────────────────────────────────────────

type snapshotLoadedMsg struct {
	snapshot dashboard.Snapshot
	err      error
}

type commandDoneMsg struct {
	status string
	err    error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Refresh key.Binding
	Capture key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Capture: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "capture")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Capture, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Capture}, {k.Help, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	ports    Ports
	snapshot dashboard.Snapshot
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	failed   bool
	width    int
	height   int
}

func NewModel(ports Ports) Model {
	return Model{
		ports:   ports,
		keys:    defaultKeys(),
		help:    help.New(),
		palette: components.NewPalette(),
		status:  "loading",
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width

	case snapshotLoadedMsg:
		if msg.err != nil {
			m.status, m.failed = "load failed: "+msg.err.Error(), true
			return m, nil
		}
		m.snapshot = msg.snapshot
		if m.status == "loading" {
			m.status = "ready"
		}

	case commandDoneMsg:
		if msg.err != nil {
			m.status, m.failed = msg.err.Error(), true
			return m, nil
		}
		m.status, m.failed = msg.status, false
		return m, m.loadCmd()

	case components.PaletteSubmitMsg:
		return m, m.runCommand(msg.Input)

	case components.PaletteCancelMsg:
		m.status, m.failed = "ready", false

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, m.keys.Refresh):
			m.status = "refreshed"
			return m, m.loadCmd()
		case key.Matches(msg, m.keys.Capture):
			return m, m.palette.Open()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	status := theme.Muted.Render(m.status)
	if m.failed {
		status = theme.Error.Render(m.status)
	}
	sb.WriteString(theme.Title.Render("TaskFlow") + "  " + status + "\n\n")
	sb.WriteString(dashboard.Render(m.snapshot, m.width))
	sb.WriteString("\n")
	if m.palette.Visible() {
		sb.WriteString(m.palette.View() + "\n")
	}
	if m.showHelp {
		sb.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sb.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return theme.App.Render(sb.String())
}

func (m Model) loadCmd() tea.Cmd {
	ports := m.ports
	return func() tea.Msg {
		ctx := context.Background()
		goals, err := ports.Goals.List(ctx)
		if err != nil {
			return snapshotLoadedMsg{err: err}
		}
		upcoming, err := ports.Calendar.Upcoming(ctx, upcomingLimit)
		if err != nil {
			return snapshotLoadedMsg{err: err}
		}
		return snapshotLoadedMsg{snapshot: dashboard.Snapshot{
			Stats:    ports.Store.Stats(ctx),
			Goals:    goals,
			Upcoming: upcoming,
			Activity: ports.Store.RecentActivity(ctx, activityLimit),
		}}
	}
}

// runCommand executes one palette line such as "task Buy milk".
func (m Model) runCommand(input string) tea.Cmd {
	verb, rest, _ := strings.Cut(strings.TrimSpace(input), " ")
	rest = strings.TrimSpace(rest)
	ports := m.ports
	return func() tea.Msg {
		ctx := context.Background()
		switch strings.ToLower(verb) {
		case "":
			return commandDoneMsg{status: "ready"}
		case "task":
			out, err := ports.Tasks.Add(ctx, rest, "", "", "")
			return commandDoneMsg{status: "added task " + out.Title, err: err}
		case "quick":
			_, err := ports.Quick.AddQuick(ctx, rest)
			return commandDoneMsg{status: "added quick note", err: err}
		case "progress":
			fields := strings.Fields(rest)
			if len(fields) != 2 {
				return commandDoneMsg{err: fmt.Errorf("usage: progress <goal-id> <current>")}
			}
			current, err := strconv.Atoi(fields[1])
			if err != nil {
				return commandDoneMsg{err: fmt.Errorf("current must be a number: %w", err)}
			}
			out, err := ports.Goals.Progress(ctx, fields[0], current)
			return commandDoneMsg{status: fmt.Sprintf("%s at %d%%", out.Title, out.Percent), err: err}
		case "refresh":
			return commandDoneMsg{status: "refreshed"}
		default:
			return commandDoneMsg{err: fmt.Errorf("unknown command %q", verb)}
		}
	}
}

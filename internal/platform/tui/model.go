package tui

import (
	"fmt"
	"iter"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/langton/internal/ant"
	"github.com/vovakirdan/langton/internal/core"
)

// FrameRenderer draws one snapshot. *render.Styled implements it.
type FrameRenderer interface {
	Render(sn ant.Snapshot) string
}

// statusLines is the height of everything below the frame: a blank line,
// status, progress bar and help.
const statusLines = 4

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// WatchModel is the Bubble Tea model that animates a run, one snapshot per tick.
type WatchModel struct {
	next     func() (ant.Snapshot, bool)
	stop     func()
	current  ant.Snapshot
	turns    int
	done     bool
	quitting bool

	renderer FrameRenderer
	config   core.RuntimeConfig
	keys     WatchKeyMap
	help     help.Model
	progress progress.Model
}

// NewWatchModel pulls the run for state and shows its first snapshot.
func NewWatchModel(state *ant.State, turns int, r FrameRenderer, cfg core.RuntimeConfig) WatchModel {
	next, stop := iter.Pull(state.Run(turns))
	first, _ := next()

	m := WatchModel{
		next:     next,
		stop:     stop,
		current:  first,
		turns:    max(turns, 0),
		renderer: r,
		config:   cfg,
		keys:     DefaultWatchKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.progress.Width = m.progressWidth()
	if m.turns == 0 {
		m.finish()
	}
	return m
}

// Init starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	if m.done {
		return nil
	}
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.stop()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.progress.Width = m.progressWidth()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick advances to the next snapshot, or stops ticking once the run is over.
func (m WatchModel) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	sn, ok := m.next()
	if !ok {
		m.finish()
		return m, nil
	}
	m.current = sn
	if sn.Tick >= m.turns {
		m.finish()
		return m, nil
	}
	return m, tickCmd(m.config.FPS)
}

// finish releases the pulled sequence. The final frame stays on screen.
func (m *WatchModel) finish() {
	m.done = true
	m.stop()
}

// Stop releases the pulled run. It is idempotent and must not be called
// while Update is running; hosts call it once the program has exited.
func (m WatchModel) Stop() {
	m.stop()
}

func (m WatchModel) progressWidth() int {
	return core.Clamp(m.current.Width+2, 10, max(m.config.ScreenW, 10))
}

func (m WatchModel) percent() float64 {
	if m.turns == 0 {
		return 1
	}
	return float64(m.current.Tick) / float64(m.turns)
}

// Current returns the snapshot on screen.
func (m WatchModel) Current() ant.Snapshot {
	return m.current
}

// Done returns true once every snapshot of the run has been shown.
func (m WatchModel) Done() bool {
	return m.done
}

// IsQuitting returns true if the user asked to quit.
func (m WatchModel) IsQuitting() bool {
	return m.quitting
}

// View renders the current frame with status, progress and help lines.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	frameW, frameH := m.current.Width+2, m.current.Height+2
	if !m.config.Fits(frameW, frameH+statusLines) {
		return m.tooSmallView(frameW, frameH+statusLines)
	}

	var sb strings.Builder
	sb.WriteString(m.renderer.Render(m.current))
	sb.WriteString("\n\n")

	status := fmt.Sprintf("turn %d/%d  seed %d  ant %v facing %v",
		m.current.Tick, m.turns, m.config.Seed, m.current.Ant.Pos, m.current.Ant.Facing)
	if m.done {
		status += "  (done)"
	}
	sb.WriteString(statusStyle.Render(status))
	sb.WriteString("\n")
	sb.WriteString(m.progress.ViewAs(m.percent()))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// tooSmallView explains the required size, clipped to the terminal width.
func (m WatchModel) tooSmallView(needW, needH int) string {
	screen := core.NewScreen(max(m.config.ScreenW, 1), 2)
	screen.DrawText(0, 0, "Terminal too small")
	screen.DrawText(0, 1, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, m.config.ScreenW, m.config.ScreenH))
	return strings.TrimRight(screen.Row(0), " ") + "\n" +
		strings.TrimRight(screen.Row(1), " ") + "\n\n" +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(state *ant.State, turns int, r FrameRenderer, cfg core.RuntimeConfig) error {
	model := NewWatchModel(state, turns, r, cfg)
	defer model.Stop()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

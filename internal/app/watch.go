package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/roelvangils/shokz-battery/internal/config"
	"github.com/roelvangils/shokz-battery/internal/render"
	"github.com/roelvangils/shokz-battery/internal/state"
	"github.com/roelvangils/shokz-battery/internal/telemetry"
)

// The UI redraws faster than the log tree is rescanned so the spinner stays
// live and a fresh scan shows up promptly.
const uiTick = time.Second

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// runWatch monitors continuously until ctx is cancelled or the user quits.
func runWatch(ctx context.Context, cfg config.Config, root string, verbose bool) error {
	store := &state.Store{}
	interval := time.Duration(cfg.WatchInterval) * time.Second

	StartPoller(ctx, store, root, interval)

	p := tea.NewProgram(
		newWatchModel(store, interval, verbose, cfg.TalkTimeHours),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		// Signal-driven shutdown between scans is a clean exit.
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return nil
		}
		return err
	}
	return nil
}

type watchModel struct {
	store         *state.Store
	interval      time.Duration
	verbose       bool
	talkTimeHours int

	spin   spinner.Model
	result state.Result
}

func newWatchModel(store *state.Store, interval time.Duration, verbose bool, talkTimeHours int) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = faintStyle
	return watchModel{
		store:         store,
		interval:      interval,
		verbose:       verbose,
		talkTimeHours: talkTimeHours,
		spin:          sp,
	}
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, tickCmd(uiTick))
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		m.result = m.store.Result()
		return m, tickCmd(uiTick)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Shokz Battery Monitor (updating every %ds)", int(m.interval.Seconds()))))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")

	switch {
	case m.result.LastUpdated.IsZero():
		b.WriteString(m.spin.View() + "scanning logs...")
	case !m.result.HasBattery:
		b.WriteString(render.NoDataText())
	default:
		view := render.View{Snapshot: m.result.Device, Audio: m.result.Audio}
		if bat := m.result.Device.Battery; bat != nil {
			view.EstimateMinutes = telemetry.EstimateRemainingMinutes(bat.Percentage, m.talkTimeHours)
		}
		b.WriteString(render.Text(view, m.verbose))
	}
	b.WriteString("\n")

	if m.result.IsStale() && m.result.LastError != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(fmt.Sprintf("scan failing: %v", m.result.LastError)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("Press q to exit"))
	b.WriteString("\n")
	return b.String()
}

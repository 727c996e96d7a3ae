package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/adapters/loop"
	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type sessionTickMsg time.Time

type sessionViewModel struct {
	run      *sessionRun
	ctx      context.Context
	spinner  spinner.Model
	progress progress.Model
	interval time.Duration
	last     time.Time
	title    lipgloss.Style
	help     lipgloss.Style
	err      error
	done     bool
}

func newSessionViewModel(ctx context.Context, run *sessionRun, interval time.Duration) sessionViewModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return sessionViewModel{
		run:      run,
		ctx:      ctx,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		interval: interval,
		last:     time.Now(),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		help:     lipgloss.NewStyle().Faint(true),
	}
}

func tickSession(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return sessionTickMsg(t)
	})
}

func (m sessionViewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickSession(m.interval))
}

func (m sessionViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionTickMsg:
		now := time.Time(msg)
		elapsed := now.Sub(m.last)
		m.last = now
		m.run.app.loop.Advance(elapsed)
		if m.run.done() {
			m.done = true
			return m, tea.Quit
		}
		return m, tickSession(m.interval)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "x", "esc", "ctrl+c":
			if err := m.run.cancel(m.ctx); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m sessionViewModel) View() string {
	if m.done {
		return ""
	}

	run := m.run
	switch {
	case !run.launched:
		return fmt.Sprintf("%s Booting (%s)...\n", m.spinner.View(), run.app.scenes.Current())
	case !run.finished:
		cfg := run.config
		remaining := run.app.sessions.Remaining()
		return fmt.Sprintf("%s\n%s %s remaining\n%s\n",
			m.title.Render(fmt.Sprintf("%s for %s", cfg.Pattern.Name, cfg.UserID)),
			m.progress.ViewAs(sessionProgress(cfg.Duration, remaining)),
			remaining.Round(time.Second),
			m.help.Render("q/x: end session"),
		)
	default:
		return fmt.Sprintf("%s Returning to main menu...\n", m.spinner.View())
	}
}

func sessionProgress(duration, remaining time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return 1 - remaining.Seconds()/duration.Seconds()
}

// runSessionView runs the session inside a bubbletea program whose update
// loop advances the app loop.
func runSessionView(ctx context.Context, output io.Writer, run *sessionRun) (*domain.SessionRecord, error) {
	defer run.close()

	appCtx := context.WithoutCancel(ctx)
	tick := run.app.config.Loop.TickInterval
	if tick <= 0 {
		tick = loop.DefaultTickInterval
	}

	run.begin(appCtx)

	p := tea.NewProgram(
		newSessionViewModel(appCtx, run, tick),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		if !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
			return nil, err
		}
		if err := run.cancel(appCtx); err != nil {
			return nil, err
		}
		if err := run.app.loop.Run(appCtx, tick, run.done); err != nil {
			return nil, err
		}
		return run.result()
	}

	result, ok := finalModel.(sessionViewModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final session model type %T", finalModel)
	}
	if result.err != nil {
		return nil, result.err
	}

	return run.result()
}

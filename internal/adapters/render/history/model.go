package history

import (
	"errors"
	"io"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

// model holds the page of history being drawn: the most recent entries,
// newest first, and how many older ones the limit hid.
type model struct {
	rows   []application.HistoryEntry
	total  int
	hidden int
	now    time.Time
	styles styles
	output string
}

func newModel(entries []application.HistoryEntry, opts RenderOptions) model {
	recent := application.LatestEntries(entries, opts.Limit)

	rows := make([]application.HistoryEntry, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		rows = append(rows, recent[i])
	}

	return model{
		rows:   rows,
		total:  len(entries),
		hidden: len(entries) - len(recent),
		now:    opts.Now,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(renderReadyMsg); ok {
		m.output = m.render()
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	return m.output
}

// Render draws the history log once and returns the frame.
func Render(entries []application.HistoryEntry, opts RenderOptions) (string, error) {
	finalModel, err := tea.NewProgram(
		newModel(entries, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	).Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

package history

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/application"
	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	// Limit keeps only the most recent entries when positive.
	Limit int
}

func (m model) render() string {
	s := m.styles
	lines := []string{
		s.title.Render("Session History"),
		s.header.Render(fmt.Sprintf("sessions: %d", m.total)),
	}

	if m.total == 0 {
		lines = append(lines, s.empty.Render("No sessions logged yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	if m.hidden > 0 {
		lines = append(lines, s.header.Render(fmt.Sprintf("showing %d most recent, %d older hidden", len(m.rows), m.hidden)))
	}

	for _, entry := range m.rows {
		lines = append(lines, s.section.Render(renderEntry(entry, m.now, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderEntry(entry application.HistoryEntry, now time.Time, s styles) string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.user.Render(entry.Record.UserID),
		" ",
		s.pattern.Render(entry.PatternName),
		" ",
		outcomeLabel(entry.Record.Outcome, s),
	)

	started := s.detail.Render(fmt.Sprintf("started: %s", formatStart(entry.Record.StartTime, now)))
	progress := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render("duration:"),
		" ",
		renderProgressBar(progressPercent(entry.Elapsed, entry.Record.Planned), 20, s),
		" ",
		s.detail.Render(formatElapsed(entry.Elapsed, entry.Record.Planned)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, started, progress)
}

func outcomeLabel(outcome domain.Outcome, s styles) string {
	switch outcome {
	case domain.OutcomeCompleted:
		return s.completed.Render("[completed]")
	case domain.OutcomeTerminated:
		return s.terminated.Render("[terminated]")
	default:
		return s.detail.Render("[unknown]")
	}
}

func progressPercent(elapsed, planned time.Duration) float64 {
	if planned <= 0 {
		return 100
	}

	return clampPercent(100 * elapsed.Seconds() / planned.Seconds())
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatElapsed(elapsed, planned time.Duration) string {
	return fmt.Sprintf("%s of %s", elapsed.Round(time.Second), planned.Round(time.Second))
}

func formatStart(start, now time.Time) string {
	if start.IsZero() {
		return "unknown"
	}
	if now.IsZero() {
		return start.Format(time.RFC3339)
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := start.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return start.Format("15:04:05")
	}

	return start.Format("15:04 on 02 Jan")
}

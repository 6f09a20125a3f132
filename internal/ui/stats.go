package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MauriDarwoft/biblioteca/internal/api"
)

// ReadingStats summarizes a book collection for the stats view.
type ReadingStats struct {
	Total    int
	Read     int
	Unread   int
	Progress int // percentage of books read, 0-100
}

// ComputeStats tallies reading progress over the given books.
func ComputeStats(books []api.Book) ReadingStats {
	stats := ReadingStats{Total: len(books)}
	for _, b := range books {
		if b.Status == api.StatusRead {
			stats.Read++
		} else {
			stats.Unread++
		}
	}
	if stats.Total > 0 {
		stats.Progress = int(math.Round(100 * float64(stats.Read) / float64(stats.Total)))
	}
	return stats
}

func (m Model) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, ok := m.handleBrowseKey(msg); ok {
		return next, cmd
	}
	return m, nil
}

func (m Model) renderStats() string {
	styles := m.theme.Styles()
	stats := ComputeStats(m.snapshot.Books)

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Reading stats"))
	b.WriteString("\n\n")

	if m.session != nil {
		b.WriteString(styles.MutedText.Render("Reader  ") + styles.Text.Render(displayName(m.session.User)))
		if m.session.User.Email != "" {
			b.WriteString(styles.FaintText.Render("  <"+m.session.User.Email+">"))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(statsLine(styles.Text, "Total", stats.Total))
	b.WriteString(statsLine(styles.SuccessText, "Read", stats.Read))
	b.WriteString(statsLine(styles.WarningText, "Unread", stats.Unread))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Progress") + "\n")
	b.WriteString(renderProgressBar(styles, stats.Progress, 30))

	return styles.Box.Render(b.String())
}

func statsLine(style lipgloss.Style, label string, value int) string {
	return fmt.Sprintf("%-8s %s\n", label, style.Render(fmt.Sprintf("%d", value)))
}

func renderProgressBar(styles Styles, percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := styles.SuccessText.Render(strings.Repeat("█", filled)) +
		styles.FaintText.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar, styles.Text.Render(fmt.Sprintf("%d%%", percent)))
}

package ui

import (
	"strings"
)

// renderHeader draws the title bar with view tabs and the signed-in user.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	title := styles.AccentText.Bold(true).Render("biblioteca")

	if m.session == nil {
		return styles.Header.Width(max(m.width, 0)).Render(title)
	}

	tabs := []struct {
		view  View
		label string
	}{
		{ViewShelf, "Shelf"},
		{ViewStats, "Stats"},
		{ViewSettings, "Settings"},
	}

	var parts []string
	parts = append(parts, title)
	for _, tab := range tabs {
		if tab.view == m.currentView {
			parts = append(parts, styles.Selected.Render(" "+tab.label+" "))
		} else {
			parts = append(parts, styles.MutedText.Render(" "+tab.label+" "))
		}
	}
	parts = append(parts, styles.FaintText.Render(displayName(m.session.User)))

	return styles.Header.Width(max(m.width, 0)).Render(strings.Join(parts, " "))
}

// renderStatusLine shows the collection error if one is recorded, otherwise
// the current transient notice. An empty line keeps the layout stable.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()

	if m.snapshot.Err != "" {
		return styles.DangerText.Render(" " + m.snapshot.Err)
	}

	switch m.notice.kind {
	case noticeInfo:
		return styles.InfoText.Render(" " + m.notice.text)
	case noticeError:
		return styles.DangerText.Render(" " + m.notice.text)
	}
	return " "
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var hints string
	switch m.currentView {
	case ViewLogin:
		hints = "tab next field · enter sign in · ctrl+n register · ctrl+c quit"
	case ViewRegister:
		hints = "tab next field · enter create account · esc back · ctrl+c quit"
	case ViewShelf:
		switch m.shelfState.mode {
		case modeAdd, modeEdit:
			hints = "tab next field · enter save · esc cancel"
		case modeConfirmDelete:
			hints = "y delete · n keep"
		default:
			hints = "j/k move · enter toggle read · a add · e edit · d delete · ? help"
		}
	case ViewStats:
		hints = "tab switch view · T theme · o sign out · ? help"
	case ViewSettings:
		if m.settings.editing {
			hints = "tab next field · enter save · esc done"
		} else {
			hints = "e edit · tab switch view · o sign out · ? help"
		}
	}

	return styles.Footer.Width(max(m.width, 0)).Render(hints)
}

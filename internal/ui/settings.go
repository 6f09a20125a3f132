package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MauriDarwoft/biblioteca/internal/api"
)

type settingsSection int

const (
	sectionProfile settingsSection = iota
	sectionPassword
)

// settingsState holds the profile and password forms. Profile fields are
// prefilled from the session user; password fields always start blank.
type settingsState struct {
	editing bool
	section settingsSection

	profile  authForm
	password authForm
}

func newSettingsState() settingsState {
	name := newInput("your name", 100)
	email := newInput("you@example.com", 200)

	current := newInput("current password", 200)
	current.EchoMode = textinput.EchoPassword
	current.EchoCharacter = '•'
	next := newInput("new password", 200)
	next.EchoMode = textinput.EchoPassword
	next.EchoCharacter = '•'
	confirm := newInput("repeat new password", 200)
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'

	return settingsState{
		profile: authForm{
			labels: []string{"Name", "Email"},
			inputs: []textinput.Model{name, email},
		},
		password: authForm{
			labels: []string{"Current password", "New password", "Confirm new password"},
			inputs: []textinput.Model{current, next, confirm},
		},
	}
}

func (s *settingsState) prefill(user api.User) {
	s.profile.inputs[0].SetValue(user.Name)
	s.profile.inputs[1].SetValue(user.Email)
}

func (s *settingsState) clearPasswords() {
	for i := range s.password.inputs {
		s.password.inputs[i].SetValue("")
	}
	s.password.setFocus(0)
}

func (s *settingsState) activeForm() *authForm {
	if s.section == sectionPassword {
		return &s.password
	}
	return &s.profile
}

func (s *settingsState) startEditing() {
	s.editing = true
	s.section = sectionProfile
	s.profile.setFocus(0)
}

func (s *settingsState) stopEditing() {
	s.editing = false
	s.clearPasswords()
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.settings.editing {
		if next, cmd, ok := m.handleBrowseKey(msg); ok {
			return next, cmd
		}
		if key.Matches(msg, m.keys.Edit) || key.Matches(msg, m.keys.Toggle) {
			m.settings.startEditing()
			return m, textinput.Blink
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.settings.stopEditing()
		return m, nil

	case msg.String() == "ctrl+p":
		// jump between the profile and password sections
		if m.settings.section == sectionProfile {
			m.settings.section = sectionPassword
		} else {
			m.settings.section = sectionProfile
		}
		m.settings.activeForm().setFocus(0)
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.settings.activeForm().next()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.settings.activeForm().prev()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitSettings()
	}

	cmd := m.settings.activeForm().update(msg)
	return m, cmd
}

func (m Model) submitSettings() (tea.Model, tea.Cmd) {
	if m.settings.section == sectionProfile {
		name := strings.TrimSpace(m.settings.profile.inputs[0].Value())
		email := strings.TrimSpace(m.settings.profile.inputs[1].Value())
		m.busy = true
		return m, m.updateProfileCmd(name, email)
	}

	current := m.settings.password.inputs[0].Value()
	next := m.settings.password.inputs[1].Value()
	confirm := m.settings.password.inputs[2].Value()
	if next != confirm {
		m.notice = notice{kind: noticeError, text: "passwords do not match"}
		return m, nil
	}
	m.busy = true
	return m, m.changePasswordCmd(current, next)
}

func (m Model) renderSettings() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Settings"))
	b.WriteString("\n\n")

	if !m.settings.editing {
		if m.session != nil {
			b.WriteString(styles.MutedText.Render("Name   ") + styles.Text.Render(m.session.User.Name) + "\n")
			b.WriteString(styles.MutedText.Render("Email  ") + styles.Text.Render(m.session.User.Email) + "\n")
		}
		b.WriteString(styles.MutedText.Render("Theme  ") + styles.Text.Render(m.theme.Name) + "\n\n")
		b.WriteString(styles.FaintText.Render("e edit profile · T cycle theme · o sign out"))
		return styles.Box.Render(b.String())
	}

	b.WriteString(m.renderSettingsSection(styles, "Profile", sectionProfile, m.settings.profile))
	b.WriteString("\n")
	b.WriteString(m.renderSettingsSection(styles, "Password", sectionPassword, m.settings.password))
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spin.View() + " ")
	}
	b.WriteString(styles.FaintText.Render("enter save · ctrl+p switch section · esc done"))

	return styles.BoxFocus.Render(b.String())
}

func (m Model) renderSettingsSection(styles Styles, heading string, section settingsSection, form authForm) string {
	active := m.settings.section == section

	var b strings.Builder
	if active {
		b.WriteString(styles.AccentText.Render(heading))
	} else {
		b.WriteString(styles.MutedText.Render(heading))
	}
	b.WriteString("\n")
	for i := range form.inputs {
		label := styles.MutedText.Render(form.labels[i])
		if active && i == form.focus {
			label = styles.AccentText.Render(form.labels[i])
		}
		b.WriteString(fmt.Sprintf("%s\n%s\n", label, form.inputs[i].View()))
	}
	return b.String()
}

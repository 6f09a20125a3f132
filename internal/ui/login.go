package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authForm is a small vertical stack of text inputs with one focused.
type authForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newLoginForm() authForm {
	email := newInput("you@example.com", 0)
	password := newInput("password", 0)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	f := authForm{
		labels: []string{"Email", "Password"},
		inputs: []textinput.Model{email, password},
	}
	f.setFocus(0)
	return f
}

func newRegisterForm() authForm {
	name := newInput("your name", 0)
	email := newInput("you@example.com", 0)
	password := newInput("at least 6 characters", 0)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	f := authForm{
		labels: []string{"Name", "Email", "Password"},
		inputs: []textinput.Model{name, email, password},
	}
	f.setFocus(0)
	return f
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	if limit > 0 {
		ti.CharLimit = limit
	}
	return ti
}

func (f *authForm) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *authForm) next() { f.setFocus((f.focus + 1) % len(f.inputs)) }

func (f *authForm) prev() { f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs)) }

func (f *authForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.setFocus(0)
}

func (f *authForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *authForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+n":
		m.currentView = ViewRegister
		m.notice = notice{}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.notice = notice{}
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.loginForm.next()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.loginForm.prev()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.notice = notice{}
		return m, m.loginCmd(m.loginForm.value(0), m.loginForm.inputs[1].Value())
	}

	cmd := m.loginForm.update(msg)
	return m, cmd
}

func (m Model) handleRegisterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewLogin
		m.notice = notice{}
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.registerForm.next()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.registerForm.prev()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.notice = notice{}
		return m, m.registerCmd(
			m.registerForm.value(0),
			m.registerForm.value(1),
			m.registerForm.inputs[2].Value(),
		)
	}

	cmd := m.registerForm.update(msg)
	return m, cmd
}

func (m Model) renderLogin() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Biblioteca Personal"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Sign in to your library"))
	b.WriteString("\n\n")
	b.WriteString(renderForm(styles, m.loginForm))
	if m.busy {
		b.WriteString("\n" + m.spin.View() + styles.MutedText.Render(" signing in..."))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter sign in · ctrl+n create account · ctrl+c quit"))

	return styles.BoxFocus.Render(b.String())
}

func (m Model) renderRegister() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Create account"))
	b.WriteString("\n\n")
	b.WriteString(renderForm(styles, m.registerForm))
	if m.busy {
		b.WriteString("\n" + m.spin.View() + styles.MutedText.Render(" creating account..."))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter create · esc back to sign in"))

	return styles.BoxFocus.Render(b.String())
}

func renderForm(styles Styles, f authForm) string {
	var b strings.Builder
	for i := range f.inputs {
		label := styles.MutedText.Render(f.labels[i])
		if i == f.focus {
			label = styles.AccentText.Render(f.labels[i])
		}
		b.WriteString(label + "\n" + f.inputs[i].View())
		if i < len(f.inputs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

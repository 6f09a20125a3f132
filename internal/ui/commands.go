package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MauriDarwoft/biblioteca/internal/api"
)

// Messages produced by background commands.

type sessionMsg struct {
	session *api.Session
}

type authFailedMsg struct {
	err error
}

// storeChangedMsg signals that a collection operation finished and the
// snapshot should be re-read. The store itself recorded any error.
type storeChangedMsg struct{}

type profileUpdatedMsg struct {
	user *api.User
}

type passwordChangedMsg struct{}

type settingsFailedMsg struct {
	err error
}

type voiceEvent struct {
	transcript string // empty for a plain stop
}

type voiceTranscriptMsg struct {
	title string
}

type voiceStoppedMsg struct{}

func (m Model) loginCmd(email, password string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		session, err := client.Login(ctx, api.Credentials{Email: email, Password: password})
		if err != nil {
			return authFailedMsg{err: err}
		}
		return sessionMsg{session: session}
	}
}

func (m Model) registerCmd(name, email, password string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		session, err := client.Register(ctx, api.Registration{Name: name, Email: email, Password: password})
		if err != nil {
			return authFailedMsg{err: err}
		}
		return sessionMsg{session: session}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	ctx, store, token := m.ctx, m.store, m.token()
	return func() tea.Msg {
		store.Refresh(ctx, token)
		return storeChangedMsg{}
	}
}

func (m Model) addBookCmd(title, author string, status api.Status) tea.Cmd {
	ctx, store, token := m.ctx, m.store, m.token()
	return func() tea.Msg {
		_, _ = store.Add(ctx, token, title, author, status)
		return storeChangedMsg{}
	}
}

// deleteBookCmd runs only after the modal collected the user's consent,
// so the confirm callback it hands the store always accepts.
func (m Model) deleteBookCmd(id string) tea.Cmd {
	ctx, store, token := m.ctx, m.store, m.token()
	return func() tea.Msg {
		_ = store.Delete(ctx, token, id, func() bool { return true })
		return storeChangedMsg{}
	}
}

func (m Model) toggleStatusCmd(book api.Book) tea.Cmd {
	ctx, store, token := m.ctx, m.store, m.token()
	return func() tea.Msg {
		_ = store.ToggleStatus(ctx, token, book)
		return storeChangedMsg{}
	}
}

func (m Model) updateBookCmd(id string, patch api.BookPatch) tea.Cmd {
	ctx, store, token := m.ctx, m.store, m.token()
	return func() tea.Msg {
		_, _ = store.UpdateInfo(ctx, token, id, patch)
		return storeChangedMsg{}
	}
}

func (m Model) updateProfileCmd(name, email string) tea.Cmd {
	ctx, client, token := m.ctx, m.client, m.token()
	return func() tea.Msg {
		user, err := client.UpdateProfile(ctx, api.ProfilePatch{Name: name, Email: email}, token)
		if err != nil {
			return settingsFailedMsg{err: err}
		}
		return profileUpdatedMsg{user: user}
	}
}

func (m Model) changePasswordCmd(current, next string) tea.Cmd {
	ctx, client, token := m.ctx, m.client, m.token()
	return func() tea.Msg {
		err := client.ChangePassword(ctx, api.PasswordChange{CurrentPassword: current, NewPassword: next}, token)
		if err != nil {
			return settingsFailedMsg{err: err}
		}
		return passwordChangedMsg{}
	}
}

// waitVoiceCmd blocks on the adapter's event channel and resurfaces the
// next event as a message. It is re-armed after every event.
func waitVoiceCmd(ch <-chan voiceEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		if ev.transcript != "" {
			return voiceTranscriptMsg{title: ev.transcript}
		}
		return voiceStoppedMsg{}
	}
}

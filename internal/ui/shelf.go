package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MauriDarwoft/biblioteca/internal/api"
	"github.com/MauriDarwoft/biblioteca/internal/voice"
)

type shelfMode int

const (
	modeBrowse shelfMode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

// shelfState holds the book list view state: cursor position, the inline
// add/edit form and the delete confirmation target.
type shelfState struct {
	cursor int
	mode   shelfMode

	form      authForm
	editID    string
	submitted bool

	deleteID    string
	deleteTitle string
}

func newShelfState() shelfState {
	return shelfState{form: newBookForm()}
}

func newBookForm() authForm {
	title := newInput("title", 200)
	author := newInput("author (optional)", 200)
	f := authForm{
		labels: []string{"Title", "Author"},
		inputs: []textinput.Model{title, author},
	}
	f.setFocus(0)
	return f
}

func (s *shelfState) clampCursor(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *shelfState) startAdd() {
	s.mode = modeAdd
	s.editID = ""
	s.form.reset()
}

func (s *shelfState) startEdit(book api.Book) {
	s.mode = modeEdit
	s.editID = book.ID
	s.form.reset()
	s.form.inputs[0].SetValue(book.Title)
	s.form.inputs[1].SetValue(book.Author)
	s.form.setFocus(0)
}

func (s *shelfState) leaveForm() {
	s.mode = modeBrowse
	s.editID = ""
	s.form.reset()
}

func (m Model) selectedBook() (api.Book, bool) {
	books := m.snapshot.Books
	if len(books) == 0 || m.shelfState.cursor >= len(books) {
		return api.Book{}, false
	}
	return books[m.shelfState.cursor], true
}

func (m Model) handleShelfKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.shelfState.mode {
	case modeConfirmDelete:
		return m.handleConfirmDeleteKey(msg)
	case modeAdd, modeEdit:
		return m.handleBookFormKey(msg)
	}

	if next, cmd, ok := m.handleBrowseKey(msg); ok {
		return next, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.shelfState.cursor > 0 {
			m.shelfState.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.shelfState.cursor < len(m.snapshot.Books)-1 {
			m.shelfState.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.shelfState.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.shelfState.cursor = len(m.snapshot.Books) - 1
		m.shelfState.clampCursor(len(m.snapshot.Books))
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.shelfState.startAdd()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if book, ok := m.selectedBook(); ok {
			m.shelfState.startEdit(book)
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if book, ok := m.selectedBook(); ok {
			m.shelfState.mode = modeConfirmDelete
			m.shelfState.deleteID = book.ID
			m.shelfState.deleteTitle = book.Title
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if book, ok := m.selectedBook(); ok {
			return m, m.toggleStatusCmd(book)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.snapshot.Loading = true
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Voice):
		return m.toggleVoice()

	case key.Matches(msg, m.keys.Escape):
		m.store.ClearError()
		m.snapshot.Err = ""
		m.notice = notice{}
		return m, nil
	}

	return m, nil
}

func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.shelfState.deleteID
		m.shelfState.mode = modeBrowse
		m.shelfState.deleteID = ""
		m.shelfState.deleteTitle = ""
		return m, m.deleteBookCmd(id)

	case key.Matches(msg, m.keys.Cancel):
		m.shelfState.mode = modeBrowse
		m.shelfState.deleteID = ""
		m.shelfState.deleteTitle = ""
		return m, nil
	}
	return m, nil
}

func (m Model) handleBookFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.shelfState.leaveForm()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.shelfState.form.next()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.shelfState.form.prev()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		title := m.shelfState.form.inputs[0].Value()
		author := m.shelfState.form.inputs[1].Value()
		m.shelfState.submitted = true
		if m.shelfState.mode == modeEdit {
			title := strings.TrimSpace(title)
			author := strings.TrimSpace(author)
			patch := api.BookPatch{Title: &title, Author: &author}
			return m, m.updateBookCmd(m.shelfState.editID, patch)
		}
		return m, m.addBookCmd(title, author, api.StatusUnread)
	}

	cmd := m.shelfState.form.update(msg)
	return m, cmd
}

func (m Model) toggleVoice() (tea.Model, tea.Cmd) {
	if m.voice == nil || !m.voice.Available() {
		m.notice = notice{kind: noticeError, text: "voice capture is not available, set voice_command in your prefs"}
		return m, nil
	}
	if err := m.voice.Toggle(); err != nil {
		if errors.Is(err, voice.ErrUnavailable) {
			m.notice = notice{kind: noticeError, text: "voice capture is not available, set voice_command in your prefs"}
		} else {
			m.notice = notice{kind: noticeError, text: fmt.Sprintf("voice capture failed: %v", err)}
		}
		return m, nil
	}
	if m.voice.Listening() {
		m.notice = notice{kind: noticeInfo, text: "listening... say a book title"}
	} else {
		m.notice = notice{}
	}
	return m, nil
}

func (m Model) renderShelf() string {
	styles := m.theme.Styles()

	switch m.shelfState.mode {
	case modeAdd, modeEdit:
		return m.renderBookForm()
	case modeConfirmDelete:
		return m.renderConfirmDelete()
	}

	var b strings.Builder
	if m.snapshot.Loading {
		b.WriteString(m.spin.View() + styles.MutedText.Render(" loading books...") + "\n\n")
	}

	books := m.snapshot.Books
	if len(books) == 0 && !m.snapshot.Loading {
		b.WriteString(styles.MutedText.Render("No books yet. Press ") +
			styles.AccentText.Render("a") +
			styles.MutedText.Render(" to add one"))
		if m.voice != nil && m.voice.Available() {
			b.WriteString(styles.MutedText.Render(" or ") +
				styles.AccentText.Render("v") +
				styles.MutedText.Render(" to dictate a title"))
		}
		b.WriteString(styles.MutedText.Render("."))
	}

	for i, book := range books {
		line := m.renderBookLine(styles, book, i == m.shelfState.cursor)
		b.WriteString(line)
		if i < len(books)-1 {
			b.WriteString("\n")
		}
	}

	if m.voice != nil && m.voice.Listening() {
		b.WriteString("\n\n" + styles.DangerText.Render("● listening"))
	}

	return styles.Box.Render(b.String())
}

func (m Model) renderBookLine(styles Styles, book api.Book, selected bool) string {
	badge := styles.StatusStyle(book.Status).Render(string(book.Status))
	title := book.Title
	if book.Author != "" {
		title = fmt.Sprintf("%s by %s", book.Title, book.Author)
	}
	if m.width > 16 {
		title = truncate(title, m.width-16)
	}

	prefix := "  "
	text := styles.Text.Render(title)
	if selected {
		prefix = styles.AccentText.Render("> ")
		text = styles.Selected.Render(title)
	}
	return fmt.Sprintf("%s%s %s", prefix, badge, text)
}

func (m Model) renderBookForm() string {
	styles := m.theme.Styles()

	heading := "Add book"
	if m.shelfState.mode == modeEdit {
		heading = "Edit book"
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(heading))
	b.WriteString("\n\n")
	for i := range m.shelfState.form.inputs {
		label := styles.MutedText.Render(m.shelfState.form.labels[i])
		if i == m.shelfState.form.focus {
			label = styles.AccentText.Render(m.shelfState.form.labels[i])
		}
		b.WriteString(label + "\n" + m.shelfState.form.inputs[i].View() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter save · esc cancel"))

	return styles.BoxFocus.Render(b.String())
}

func (m Model) renderConfirmDelete() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Delete book"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(fmt.Sprintf("Are you sure you want to delete %q?", m.shelfState.deleteTitle)))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("y delete · n/esc keep"))

	return styles.BoxFocus.Render(b.String())
}

package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MauriDarwoft/biblioteca/internal/api"
	"github.com/MauriDarwoft/biblioteca/internal/prefs"
	"github.com/MauriDarwoft/biblioteca/internal/shelf"
	"github.com/MauriDarwoft/biblioteca/internal/voice"
)

// View represents the current active view.
type View int

const (
	ViewLogin View = iota
	ViewRegister
	ViewShelf
	ViewStats
	ViewSettings
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *api.Client
	Store     *shelf.Store
	Voice     *voice.Adapter
	Prefs     prefs.Prefs
	PrefsPath string
}

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeInfo
	noticeError
)

// notice is a transient status-line message outside the store's own error
// state (auth results, settings results, voice hints).
type notice struct {
	kind noticeKind
	text string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx     context.Context
	client  *api.Client
	store   *shelf.Store
	voice   *voice.Adapter
	voiceCh chan voiceEvent

	prefsPath string
	userPrefs prefs.Prefs
	theme     Theme
	keys      keyMap

	currentView View
	width       int
	height      int
	ready       bool

	session  *api.Session
	snapshot shelf.Snapshot
	spin     spinner.Model
	busy     bool // an auth or settings request is in flight

	notice notice

	loginForm    authForm
	registerForm authForm
	shelfState   shelfState
	settings     settingsState
	showHelp     bool
}

// New creates the root Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.Prefs.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Styles().AccentText

	m := Model{
		ctx:          ctx,
		client:       opts.Client,
		store:        opts.Store,
		voice:        opts.Voice,
		prefsPath:    prefsPath,
		userPrefs:    opts.Prefs,
		theme:        theme,
		keys:         DefaultKeyMap(),
		currentView:  ViewLogin,
		spin:         sp,
		loginForm:    newLoginForm(),
		registerForm: newRegisterForm(),
		shelfState:   newShelfState(),
		settings:     newSettingsState(),
	}

	if opts.Voice != nil {
		ch := make(chan voiceEvent, 8)
		opts.Voice.OnTranscript(func(title string) { ch <- voiceEvent{transcript: title} })
		opts.Voice.OnStop(func() { ch <- voiceEvent{} })
		m.voiceCh = ch
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.voiceCh != nil {
		cmds = append(cmds, waitVoiceCmd(m.voiceCh))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case sessionMsg:
		m.busy = false
		m.session = msg.session
		m.currentView = ViewShelf
		m.notice = notice{kind: noticeInfo, text: fmt.Sprintf("signed in as %s", displayName(msg.session.User))}
		m.loginForm.reset()
		m.registerForm.reset()
		m.settings = newSettingsState()
		m.settings.prefill(msg.session.User)
		// Token became available: load the collection.
		m.snapshot.Loading = true
		return m, m.refreshCmd()

	case authFailedMsg:
		m.busy = false
		m.notice = notice{kind: noticeError, text: msg.err.Error()}
		return m, nil

	case storeChangedMsg:
		m.snapshot = m.store.Snapshot()
		m.shelfState.clampCursor(len(m.snapshot.Books))
		if m.shelfState.submitted {
			m.shelfState.submitted = false
			if m.snapshot.Err == "" {
				// Create or edit confirmed; leave the form.
				m.shelfState.leaveForm()
			}
		}
		return m, nil

	case profileUpdatedMsg:
		m.busy = false
		if m.session != nil {
			m.session.User = *msg.user
		}
		m.settings.prefill(*msg.user)
		m.settings.editing = false
		m.notice = notice{kind: noticeInfo, text: "profile updated"}
		return m, nil

	case passwordChangedMsg:
		m.busy = false
		m.settings.clearPasswords()
		m.notice = notice{kind: noticeInfo, text: "password changed"}
		return m, nil

	case settingsFailedMsg:
		m.busy = false
		m.notice = notice{kind: noticeError, text: msg.err.Error()}
		return m, nil

	case voiceTranscriptMsg:
		// Same entry point as the manual form: author empty, unread.
		cmds := []tea.Cmd{waitVoiceCmd(m.voiceCh)}
		if m.session != nil {
			m.notice = notice{kind: noticeInfo, text: fmt.Sprintf("adding %q", msg.title)}
			cmds = append(cmds, m.addBookCmd(msg.title, "", api.StatusUnread))
		}
		return m, tea.Batch(cmds...)

	case voiceStoppedMsg:
		return m, waitVoiceCmd(m.voiceCh)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.currentView {
	case ViewLogin:
		content = m.renderLogin()
	case ViewRegister:
		content = m.renderRegister()
	case ViewShelf:
		content = m.renderShelf()
	case ViewStats:
		content = m.renderStats()
	case ViewSettings:
		content = m.renderSettings()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderStatusLine(),
		m.renderFooter(),
	)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	// Ctrl+C always quits, even inside a text field.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.currentView {
	case ViewLogin:
		return m.handleLoginKey(msg)
	case ViewRegister:
		return m.handleRegisterKey(msg)
	case ViewShelf:
		return m.handleShelfKey(msg)
	case ViewStats:
		return m.handleStatsKey(msg)
	case ViewSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

// handleBrowseKey covers the bindings shared by every authenticated view
// while no text field has focus. The bool reports whether the key was
// consumed.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil, true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil, true

	case key.Matches(msg, m.keys.Tab):
		m.currentView = nextView(m.currentView)
		return m, nil, true

	case key.Matches(msg, m.keys.Logout):
		m.logout()
		return m, nil, true
	}
	return m, nil, false
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.spin.Style = m.theme.Styles().AccentText
	m.userPrefs.Theme = m.theme.Name
	_ = prefs.Save(m.prefsPath, m.userPrefs)
}

// logout drops the session and returns to the login view. No request is
// issued; the store is left alone, session teardown is not its concern.
func (m *Model) logout() {
	m.session = nil
	m.currentView = ViewLogin
	m.notice = notice{}
	m.loginForm.reset()
	if m.voice != nil {
		m.voice.Close()
	}
}

func (m Model) token() string {
	if m.session == nil {
		return ""
	}
	return m.session.Token
}

func nextView(v View) View {
	switch v {
	case ViewShelf:
		return ViewStats
	case ViewStats:
		return ViewSettings
	default:
		return ViewShelf
	}
}

func displayName(u api.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

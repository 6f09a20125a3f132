// Package voice adapts an optional speech-to-text capability for the UI.
//
// A recognizer may simply not exist on a given machine; that is a normal
// condition, not an error. Controls that depend on it are not offered when
// Available reports false, and starting anyway surfaces ErrUnavailable as
// a dismissible message.
//
// The Adapter hides the capability's callback plumbing behind two
// registration points, OnTranscript and OnStop, so the rest of the app only
// deals with plain values. Its state machine is idle → listening → idle;
// the capability's own end callback also forces listening off, which covers
// externally triggered stops such as a silence timeout.
package voice

import (
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnavailable reports that no recognizer capability is configured.
var ErrUnavailable = errors.New("voice capture is not available")

// Recognizer is a single-shot speech-to-text capability. Start begins one
// capture; the capability calls result with the raw transcript when
// recognition succeeds and end exactly once when the capture finishes,
// with or without a result.
type Recognizer interface {
	Start(result func(string), end func()) error
	Stop()
}

// Adapter wraps an optional Recognizer. The zero number of registered
// handlers is fine; events without a handler are dropped.
type Adapter struct {
	mu           sync.Mutex
	rec          Recognizer // nil means the capability is absent
	listening    bool
	onTranscript func(string)
	onStop       func()
}

// NewAdapter builds an Adapter. rec may be nil when the capability is
// absent.
func NewAdapter(rec Recognizer) *Adapter {
	return &Adapter{rec: rec}
}

// Available reports whether a recognizer capability is configured.
func (a *Adapter) Available() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rec != nil
}

// Listening reports whether a capture is in progress.
func (a *Adapter) Listening() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.listening
}

// OnTranscript registers the handler invoked with each capitalized
// transcript.
func (a *Adapter) OnTranscript(fn func(string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onTranscript = fn
}

// OnStop registers the handler invoked whenever a capture ends, whether
// stopped by Toggle or by the capability itself.
func (a *Adapter) OnStop(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onStop = fn
}

// Toggle starts a capture when idle and stops the running one otherwise.
// It returns ErrUnavailable when no capability is configured.
func (a *Adapter) Toggle() error {
	a.mu.Lock()
	if a.rec == nil {
		a.mu.Unlock()
		return ErrUnavailable
	}
	if a.listening {
		rec := a.rec
		a.listening = false
		a.mu.Unlock()
		rec.Stop()
		return nil
	}
	rec := a.rec
	a.listening = true
	a.mu.Unlock()

	if err := rec.Start(a.handleResult, a.handleEnd); err != nil {
		a.mu.Lock()
		a.listening = false
		a.mu.Unlock()
		return err
	}
	return nil
}

// Close stops any running capture. Called when the owning view goes away.
func (a *Adapter) Close() {
	a.mu.Lock()
	rec := a.rec
	listening := a.listening
	a.listening = false
	a.mu.Unlock()
	if listening && rec != nil {
		rec.Stop()
	}
}

func (a *Adapter) handleResult(transcript string) {
	title := Capitalize(transcript)
	if title == "" {
		return
	}
	a.mu.Lock()
	fn := a.onTranscript
	a.mu.Unlock()
	if fn != nil {
		fn(title)
	}
}

func (a *Adapter) handleEnd() {
	a.mu.Lock()
	a.listening = false
	fn := a.onStop
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

var upperCaser = cases.Upper(language.Und)

// Capitalize trims the transcript and uppercases its first rune, matching
// how a spoken title becomes a book title.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return upperCaser.String(s[:size]) + s[size:]
}

package voice

import (
	"errors"
	"testing"
)

// fakeRecognizer drives the adapter by hand.
type fakeRecognizer struct {
	started int
	stopped int
	result  func(string)
	end     func()
	failure error
}

func (f *fakeRecognizer) Start(result func(string), end func()) error {
	if f.failure != nil {
		return f.failure
	}
	f.started++
	f.result = result
	f.end = end
	return nil
}

func (f *fakeRecognizer) Stop() { f.stopped++ }

func TestCapitalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "dune", "Dune"},
		{"trimmed", "  el aleph  ", "El aleph"},
		{"already upper", "Dune", "Dune"},
		{"accented", "érase una vez", "Érase una vez"},
		{"single rune", "x", "X"},
		{"blank", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Capitalize(tc.in); got != tc.want {
				t.Fatalf("Capitalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAdapter_UnavailableCapability(t *testing.T) {
	a := NewAdapter(nil)
	if a.Available() {
		t.Fatalf("Available() = true with no recognizer")
	}
	if err := a.Toggle(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Toggle() error = %v, want ErrUnavailable", err)
	}
	if a.Listening() {
		t.Fatalf("Listening() = true after failed toggle")
	}
}

func TestAdapter_ToggleStartsAndStops(t *testing.T) {
	rec := &fakeRecognizer{}
	a := NewAdapter(rec)

	if err := a.Toggle(); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if !a.Listening() || rec.started != 1 {
		t.Fatalf("listening=%v started=%d, want capture running", a.Listening(), rec.started)
	}

	if err := a.Toggle(); err != nil {
		t.Fatalf("second Toggle returned error: %v", err)
	}
	if a.Listening() || rec.stopped != 1 {
		t.Fatalf("listening=%v stopped=%d, want capture stopped", a.Listening(), rec.stopped)
	}
}

func TestAdapter_TranscriptIsCapitalized(t *testing.T) {
	rec := &fakeRecognizer{}
	a := NewAdapter(rec)

	var got string
	a.OnTranscript(func(s string) { got = s })

	if err := a.Toggle(); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	rec.result("  cien años de soledad ")
	if got != "Cien años de soledad" {
		t.Fatalf("transcript = %q, want capitalized trimmed title", got)
	}

	// Blank transcripts are dropped.
	got = ""
	rec.result("   ")
	if got != "" {
		t.Fatalf("blank transcript reached the handler: %q", got)
	}
}

func TestAdapter_ExternalEndForcesIdle(t *testing.T) {
	rec := &fakeRecognizer{}
	a := NewAdapter(rec)

	stopped := false
	a.OnStop(func() { stopped = true })

	if err := a.Toggle(); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	// The capability ends the capture on its own (silence timeout).
	rec.end()
	if a.Listening() {
		t.Fatalf("Listening() = true after capability end")
	}
	if !stopped {
		t.Fatalf("OnStop handler not invoked")
	}
}

func TestAdapter_StartFailureResetsState(t *testing.T) {
	rec := &fakeRecognizer{failure: errors.New("mic busy")}
	a := NewAdapter(rec)

	if err := a.Toggle(); err == nil {
		t.Fatalf("Toggle returned nil error, want start failure")
	}
	if a.Listening() {
		t.Fatalf("Listening() = true after failed start")
	}
}

func TestAdapter_CloseStopsRunningCapture(t *testing.T) {
	rec := &fakeRecognizer{}
	a := NewAdapter(rec)

	if err := a.Toggle(); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	a.Close()
	if rec.stopped != 1 {
		t.Fatalf("stopped = %d, want 1", rec.stopped)
	}
	if a.Listening() {
		t.Fatalf("Listening() = true after Close")
	}

	// Close when idle is a no-op.
	a.Close()
	if rec.stopped != 1 {
		t.Fatalf("stopped = %d after idle Close, want still 1", rec.stopped)
	}
}

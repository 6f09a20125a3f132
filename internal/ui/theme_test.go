package ui

import (
	"testing"

	"github.com/MauriDarwoft/biblioteca/internal/api"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames len = %d, want 3", len(names))
	}
	for _, name := range names {
		if GetTheme(name).Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, GetTheme(name).Name)
		}
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("no-such-theme").Name; got != "Nightfox" {
		t.Fatalf("GetTheme unknown = %q, want Nightfox", got)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	seen := map[string]bool{}
	name := names[0]
	for range names {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != names[0] {
		t.Fatalf("cycle did not wrap, ended at %q", name)
	}
	if len(seen) != len(names) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(names))
	}
}

func TestNextTheme_UnknownResets(t *testing.T) {
	if got := NextTheme("bogus"); got != ThemeNames()[0] {
		t.Fatalf("NextTheme unknown = %q, want %q", got, ThemeNames()[0])
	}
}

func TestStatusStyle_HasColorPerStatus(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, status := range []api.Status{api.StatusUnread, api.StatusRead} {
			if th.StatusColors[status] == "" {
				t.Fatalf("theme %q has no color for status %q", name, status)
			}
		}
	}
}

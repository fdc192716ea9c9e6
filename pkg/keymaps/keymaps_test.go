package keymaps

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestBuildKeyMapDefaults(t *testing.T) {
	km := BuildKeyMap(nil)

	if !key.Matches(keyMsg("a"), km.AddEvent) {
		t.Error("default AddEvent does not match 'a'")
	}
	if !key.Matches(keyMsg("q"), km.QuitApp) {
		t.Error("default QuitApp does not match 'q'")
	}
	// Multi-key bindings match each alternative.
	if !key.Matches(keyMsg("p"), km.PrevPeriod) {
		t.Error("PrevPeriod does not match 'p'")
	}
	if !key.Matches(keyMsg("h"), km.NavLeft) {
		t.Error("NavLeft does not match the vim alternative 'h'")
	}
}

func TestBuildKeyMapOverrides(t *testing.T) {
	km := BuildKeyMap(map[string]string{
		"AddEvent": "x",
		"QuitApp":  "", // empty override falls back to the default
	})

	if !key.Matches(keyMsg("x"), km.AddEvent) {
		t.Error("override 'x' not applied to AddEvent")
	}
	if key.Matches(keyMsg("a"), km.AddEvent) {
		t.Error("overridden AddEvent still matches the default")
	}
	if !key.Matches(keyMsg("q"), km.QuitApp) {
		t.Error("empty override should keep the default")
	}
}

func TestGetDefaultKeyMappings(t *testing.T) {
	mappings := GetDefaultKeyMappings()

	if len(mappings) != len(KeyDefinitions) {
		t.Fatalf("got %d mappings, want %d", len(mappings), len(KeyDefinitions))
	}
	if mappings["ToggleView"] != "v" {
		t.Errorf("ToggleView = %q, want v", mappings["ToggleView"])
	}
}

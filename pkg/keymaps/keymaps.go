package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":      {"?", "show/hide commands"},
	"QuitApp":       {"q", "quit"},
	"AddEvent":      {"a", "add event"},
	"EditEvent":     {"e", "edit event"},
	"DeleteEvent":   {"d", "delete event"},
	"RefreshEvents": {"r", "refresh events"},
	"ToggleView":    {"v", "toggle month/week view"},
	"JumpToToday":   {"t", "jump to today"},
	"PrevPeriod":    {"p,pgup", "previous month/week"},
	"NextPeriod":    {"n,pgdown", "next month/week"},
	"NavLeft":       {"left,h", "move left"},
	"NavRight":      {"right,l", "move right"},
	"NavUp":         {"up,k", "move up"},
	"NavDown":       {"down,j", "move down"},
	"SelectCell":    {"enter", "open day or slot"},
}

type KeyMap struct {
	ShowHelp      key.Binding
	QuitApp       key.Binding
	AddEvent      key.Binding
	EditEvent     key.Binding
	DeleteEvent   key.Binding
	RefreshEvents key.Binding
	ToggleView    key.Binding
	JumpToToday   key.Binding
	PrevPeriod    key.Binding
	NextPeriod    key.Binding
	NavLeft       key.Binding
	NavRight      key.Binding
	NavUp         key.Binding
	NavDown       key.Binding
	SelectCell    key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddEvent":
			km.AddEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "EditEvent":
			km.EditEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteEvent":
			km.DeleteEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "RefreshEvents":
			km.RefreshEvents = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleView":
			km.ToggleView = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "JumpToToday":
			km.JumpToToday = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "PrevPeriod":
			km.PrevPeriod = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "NextPeriod":
			km.NextPeriod = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "NavLeft":
			km.NavLeft = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "NavRight":
			km.NavRight = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "NavUp":
			km.NavUp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "NavDown":
			km.NavDown = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SelectCell":
			km.SelectCell = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}

package config

import (
	"github.com/dshills/shortcuts/internal/shortcut"
)

type defaultBinding struct {
	Keys   string
	Action shortcut.Action
}

// defaultBindings are the built-in system shortcuts, grouped by category.
var defaultBindings = []defaultBinding{
	// Applications
	{Keys: "Super+T", Action: shortcut.System("terminal")},
	{Keys: "Super+B", Action: shortcut.System("web-browser")},
	{Keys: "Super+F", Action: shortcut.System("home-folder")},
	{Keys: "Super+/", Action: shortcut.System("launcher")},
	{Keys: "Super+A", Action: shortcut.System("app-library")},
	{Keys: "Super+W", Action: shortcut.System("workspace-overview")},

	// Session
	{Keys: "Super+Escape", Action: shortcut.System("lock-screen")},
	{Keys: "Super+Shift+Escape", Action: shortcut.System("log-out")},
	{Keys: "Super+I", Action: shortcut.System("settings")},
	{Keys: "Print", Action: shortcut.System("screenshot")},

	// Windows
	{Keys: "Super+Q", Action: shortcut.System("close-window")},
	{Keys: "Super+M", Action: shortcut.System("maximize-window")},
	{Keys: "Super+H", Action: shortcut.System("minimize-window")},
	{Keys: "Super+Y", Action: shortcut.System("toggle-tiling")},
	{Keys: "Super+S", Action: shortcut.System("toggle-stacking")},
	{Keys: "Super+Left", Action: shortcut.System("focus-left")},
	{Keys: "Super+Right", Action: shortcut.System("focus-right")},
	{Keys: "Super+Up", Action: shortcut.System("focus-up")},
	{Keys: "Super+Down", Action: shortcut.System("focus-down")},

	// Workspaces
	{Keys: "Super+Ctrl+Right", Action: shortcut.System("next-workspace")},
	{Keys: "Super+Ctrl+Left", Action: shortcut.System("prev-workspace")},

	// Media
	{Keys: "XF86AudioRaiseVolume", Action: shortcut.System("volume-raise")},
	{Keys: "XF86AudioLowerVolume", Action: shortcut.System("volume-lower")},
	{Keys: "XF86AudioMute", Action: shortcut.System("volume-mute")},
	{Keys: "XF86MonBrightnessUp", Action: shortcut.System("brightness-up")},
	{Keys: "XF86MonBrightnessDown", Action: shortcut.System("brightness-down")},
	{Keys: "XF86AudioPlay", Action: shortcut.System("media-play")},
	{Keys: "XF86AudioNext", Action: shortcut.System("media-next")},
	{Keys: "XF86AudioPrev", Action: shortcut.System("media-previous")},
}

// Defaults returns the built-in shortcuts in definition order.
func Defaults() []shortcut.Entry {
	entries := make([]shortcut.Entry, 0, len(defaultBindings))
	for _, d := range defaultBindings {
		entries = append(entries, shortcut.Entry{
			Binding: shortcut.MustParseBinding(d.Keys),
			Action:  d.Action,
		})
	}
	return entries
}

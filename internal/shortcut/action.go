package shortcut

import (
	"fmt"
	"strings"
)

// ActionKind identifies what an Action does when its binding fires.
type ActionKind uint8

const (
	// KindSpawn runs Value as a command line.
	KindSpawn ActionKind = iota + 1
	// KindSystem triggers the built-in action named by Value.
	KindSystem
)

// String returns the name used for the kind in configuration files.
func (k ActionKind) String() string {
	switch k {
	case KindSpawn:
		return "spawn"
	case KindSystem:
		return "system"
	default:
		return fmt.Sprintf("ActionKind(%d)", k)
	}
}

// ParseActionKind parses "spawn" or "system".
func ParseActionKind(s string) (ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spawn", "":
		return KindSpawn, nil
	case "system":
		return KindSystem, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownActionKind, s)
	}
}

// Action is the target of a binding. Actions are comparable and are used
// directly as map keys.
type Action struct {
	Kind  ActionKind
	Value string
}

// Spawn returns the action that runs command.
func Spawn(command string) Action {
	return Action{Kind: KindSpawn, Value: command}
}

// System returns the built-in action with the given name.
func System(name string) Action {
	return Action{Kind: KindSystem, Value: name}
}

// IsSpawn reports whether the action spawns a command.
func (a Action) IsSpawn() bool {
	return a.Kind == KindSpawn
}

// IsZero reports whether a is the zero Action.
func (a Action) IsZero() bool {
	return a == Action{}
}

// String returns "kind:value".
func (a Action) String() string {
	if a.IsZero() {
		return ""
	}
	return a.Kind.String() + ":" + a.Value
}

// Labeler produces the user-facing name of an action.
type Labeler func(Action) string

// systemLabels are the readable names of the built-in actions.
var systemLabels = map[string]string{
	"terminal":           "Launch terminal",
	"web-browser":        "Launch web browser",
	"file-manager":       "Launch file manager",
	"home-folder":        "Open home folder",
	"app-library":        "Open application library",
	"launcher":           "Open launcher",
	"workspace-overview": "Open workspace overview",
	"lock-screen":        "Lock the screen",
	"log-out":            "Log out",
	"settings":           "Open settings",
	"screenshot":         "Take a screenshot",
	"close-window":       "Close window",
	"maximize-window":    "Maximize window",
	"minimize-window":    "Minimize window",
	"toggle-tiling":      "Toggle window tiling",
	"toggle-stacking":    "Toggle window stacking",
	"focus-left":         "Focus window to the left",
	"focus-right":        "Focus window to the right",
	"focus-up":           "Focus window above",
	"focus-down":         "Focus window below",
	"next-workspace":     "Switch to next workspace",
	"prev-workspace":     "Switch to previous workspace",
	"volume-raise":       "Raise volume",
	"volume-lower":       "Lower volume",
	"volume-mute":        "Mute volume",
	"brightness-up":      "Increase display brightness",
	"brightness-down":    "Decrease display brightness",
	"media-play":         "Play or pause media",
	"media-next":         "Next track",
	"media-previous":     "Previous track",
}

// Label returns the user-facing name of an action. Spawn actions are
// labelled with their command line. Unknown system actions fall back to
// their name with dashes replaced by spaces.
func Label(a Action) string {
	switch a.Kind {
	case KindSpawn:
		return a.Value
	case KindSystem:
		if label, ok := systemLabels[a.Value]; ok {
			return label
		}
		name := strings.ReplaceAll(a.Value, "-", " ")
		if name == "" {
			return ""
		}
		return strings.ToUpper(name[:1]) + name[1:]
	default:
		return a.Value
	}
}

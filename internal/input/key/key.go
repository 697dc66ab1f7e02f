package key

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Combo.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Other special keys
	KeySpace
	KeyPause
	KeyPrint
	KeyScrollLock
	KeyNumLock
	KeyCapsLock
	KeyMenu

	// Media and hardware keys
	KeyVolumeUp
	KeyVolumeDown
	KeyVolumeMute
	KeyMicMute
	KeyMediaPlay
	KeyMediaNext
	KeyMediaPrev
	KeyMediaStop
	KeyBrightnessUp
	KeyBrightnessDown
	KeyCalculator
	KeyHomePage
	KeyMail
	KeySearch

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Combo.Rune.
	KeyRune
)

// keyNames holds the canonical display name of every named key.
var keyNames = map[Key]string{
	KeyNone:           "None",
	KeyEscape:         "Escape",
	KeyEnter:          "Enter",
	KeyTab:            "Tab",
	KeyBackspace:      "Backspace",
	KeyDelete:         "Delete",
	KeyInsert:         "Insert",
	KeyHome:           "Home",
	KeyEnd:            "End",
	KeyPageUp:         "PageUp",
	KeyPageDown:       "PageDown",
	KeyUp:             "Up",
	KeyDown:           "Down",
	KeyLeft:           "Left",
	KeyRight:          "Right",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeySpace:          "Space",
	KeyPause:          "Pause",
	KeyPrint:          "Print",
	KeyScrollLock:     "ScrollLock",
	KeyNumLock:        "NumLock",
	KeyCapsLock:       "CapsLock",
	KeyMenu:           "Menu",
	KeyVolumeUp:       "XF86AudioRaiseVolume",
	KeyVolumeDown:     "XF86AudioLowerVolume",
	KeyVolumeMute:     "XF86AudioMute",
	KeyMicMute:        "XF86AudioMicMute",
	KeyMediaPlay:      "XF86AudioPlay",
	KeyMediaNext:      "XF86AudioNext",
	KeyMediaPrev:      "XF86AudioPrev",
	KeyMediaStop:      "XF86AudioStop",
	KeyBrightnessUp:   "XF86MonBrightnessUp",
	KeyBrightnessDown: "XF86MonBrightnessDown",
	KeyCalculator:     "XF86Calculator",
	KeyHomePage:       "XF86HomePage",
	KeyMail:           "XF86Mail",
	KeySearch:         "XF86Search",
	KeyRune:           "Rune",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// keyNameMap maps key names (lowercase) to Key values.
// Canonical names from keyNames are added in init.
var keyNameMap = map[string]Key{
	"esc":            KeyEscape,
	"return":         KeyEnter,
	"cr":             KeyEnter,
	"bs":             KeyBackspace,
	"del":            KeyDelete,
	"ins":            KeyInsert,
	"pgup":           KeyPageUp,
	"prior":          KeyPageUp,
	"pgdn":           KeyPageDown,
	"next":           KeyPageDown,
	"printscreen":    KeyPrint,
	"prtsc":          KeyPrint,
	"sysrq":          KeyPrint,
	"volumeup":       KeyVolumeUp,
	"volumedown":     KeyVolumeDown,
	"mute":           KeyVolumeMute,
	"micmute":        KeyMicMute,
	"play":           KeyMediaPlay,
	"brightnessup":   KeyBrightnessUp,
	"brightnessdown": KeyBrightnessDown,
	"xf86audiomedia": KeyMediaPlay,
	"xf86audiopause": KeyMediaPlay,
}

func init() {
	for k, name := range keyNames {
		if k == KeyNone || k == KeyRune {
			continue
		}
		keyNameMap[strings.ToLower(name)] = k
	}
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}

package shortcut_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/shortcut"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		action shortcut.Action
		want   string
	}{
		{shortcut.Spawn("loginctl lock-session"), "loginctl lock-session"},
		{shortcut.System("terminal"), "Launch terminal"},
		{shortcut.System("close-window"), "Close window"},
		{shortcut.System("rotate-display"), "Rotate display"},
		{shortcut.Action{}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shortcut.Label(tt.action), "Label(%v)", tt.action)
	}
}

func TestParseActionKind(t *testing.T) {
	kind, err := shortcut.ParseActionKind("System")
	require.NoError(t, err)
	assert.Equal(t, shortcut.KindSystem, kind)

	kind, err = shortcut.ParseActionKind("")
	require.NoError(t, err)
	assert.Equal(t, shortcut.KindSpawn, kind)

	_, err = shortcut.ParseActionKind("exec")
	assert.ErrorIs(t, err, shortcut.ErrUnknownActionKind)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "spawn:firefox", shortcut.Spawn("firefox").String())
	assert.Equal(t, "system:terminal", shortcut.System("terminal").String())
	assert.Equal(t, "", shortcut.Action{}.String())
	assert.True(t, shortcut.Action{}.IsZero())
}

func TestParseBinding(t *testing.T) {
	b, err := shortcut.ParseBinding("super+l")
	require.NoError(t, err)
	assert.Equal(t, "Super+L", b.String())
	assert.Empty(t, b.Description)

	for _, text := range []string{"", "  ", "Super", "Ctrl+Shift", "Super+", "garbage"} {
		_, err := shortcut.ParseBinding(text)
		require.Error(t, err, text)
		var perr *key.ParseError
		assert.True(t, errors.As(err, &perr), text)
	}
}

func TestBindingIdentityIgnoresDescription(t *testing.T) {
	a := shortcut.MustParseBinding("Super+L").WithDescription("Lock")
	b := shortcut.MustParseBinding("<D-l>").WithDescription("Something else")

	assert.True(t, a.Combo.Equals(b.Combo))
	assert.Equal(t, a.Key(), b.Key())
}

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against dir and returns its standard output.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config-dir", dir}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestListEmpty(t *testing.T) {
	out, err := run(t, t.TempDir(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No custom shortcuts")
}

func TestAddAndList(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "add", "--name", "Lock", "--command", "loginctl lock-session", "--keys", "super+l")
	require.NoError(t, err)
	assert.Contains(t, out, "Super+L")

	out, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Lock")
	assert.Contains(t, out, "Super+L")
	assert.Contains(t, out, "loginctl lock-session")

	out, err = run(t, dir, "check", "Super+L")
	require.NoError(t, err)
	assert.Contains(t, out, "used by loginctl lock-session")
}

func TestAddKeepsBuiltinWithoutReplace(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "add", "--name", "Kitty", "--command", "kitty", "--keys", "Super+T", "--keys", "Super+K")
	require.NoError(t, err)
	assert.Contains(t, out, "Super+T: kept for Launch terminal")

	out, err = run(t, dir, "check", "Super+T")
	require.NoError(t, err)
	assert.Contains(t, out, "used by Launch terminal")

	out, err = run(t, dir, "check", "Super+K")
	require.NoError(t, err)
	assert.Contains(t, out, "used by kitty")
}

func TestAddReplace(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "add", "--name", "Kitty", "--command", "kitty", "--keys", "Super+T", "--replace")
	require.NoError(t, err)
	assert.Contains(t, out, "Super+T: replaced Launch terminal")

	out, err = run(t, dir, "check", "Super+T")
	require.NoError(t, err)
	assert.Contains(t, out, "used by kitty")

	out, err = run(t, dir, "list", "--all")
	require.NoError(t, err)
	assert.NotContains(t, out, "Launch terminal")
	assert.Contains(t, out, "Kitty")
}

func TestAddInvalidKeys(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "add", "--name", "Lock", "--command", "lock", "--keys", "Super+")
	require.Error(t, err)

	out, err := run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No custom shortcuts")
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "add", "--name", "Lock", "--command", "loginctl lock-session", "--keys", "Super+L")
	require.NoError(t, err)

	out, err := run(t, dir, "remove", "Super+L")
	require.NoError(t, err)
	assert.Contains(t, out, "removed Super+L")

	out, err = run(t, dir, "check", "Super+L")
	require.NoError(t, err)
	assert.Contains(t, out, "Super+L is free")

	_, err = run(t, dir, "remove", "Super+L")
	assert.Error(t, err)
}

func TestRemoveBuiltinDisablesIt(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "remove", "Super+T")
	require.NoError(t, err)

	out, err := run(t, dir, "check", "Super+T")
	require.NoError(t, err)
	assert.Contains(t, out, "is free")

	out, err = run(t, dir, "enable", "super+t")
	require.NoError(t, err)
	assert.Contains(t, out, "enabled Super+T")

	out, err = run(t, dir, "check", "Super+T")
	require.NoError(t, err)
	assert.Contains(t, out, "used by Launch terminal")

	_, err = run(t, dir, "enable", "Super+T")
	assert.Error(t, err)
}

func TestCheckInvalid(t *testing.T) {
	_, err := run(t, t.TempDir(), "check", "Ctrl+")
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "add", "--name", "Lock", "--command", "loginctl lock-session", "--keys", "Super+L")
	require.NoError(t, err)

	out, err := run(t, dir, "search", "lock")
	require.NoError(t, err)
	assert.Contains(t, out, "Custom Shortcuts > Custom Shortcuts")
	assert.Contains(t, out, "  Lock")

	out, err = run(t, dir, "search", "-e", "^Add")
	require.NoError(t, err)
	assert.Contains(t, out, "Add shortcut")

	out, err = run(t, dir, "search", "zzzz")
	require.NoError(t, err)
	assert.Contains(t, out, "no matches")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/shortcuts/internal/shortcut"
	"github.com/dshills/shortcuts/internal/shortcut/draft"
)

// emptyListing is shown when there are no custom shortcuts.
const emptyListing = "No custom shortcuts"

// View implements tea.Model.
func (m *Model) View() string {
	p := m.page()
	if c, ok := p.Pending(); ok {
		return m.place(m.replaceView(c, p.PendingCount()))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Info().Title))
	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString("\n")

	var keys help.KeyMap = listKeys
	switch {
	case p.DrawerOpen():
		b.WriteString(m.formView())
		b.WriteString("\n")
		keys = formKeys
	default:
		if a, ok := p.Shown(); ok {
			b.WriteString(m.detailView(a))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m *Model) listView() string {
	if len(m.items) == 0 {
		return sectionStyle.Render(placeholderStyle.Render(emptyListing))
	}

	width := 0
	for _, it := range m.items {
		width = max(width, lipgloss.Width(it.model.Description))
	}

	lines := make([]string, 0, len(m.items))
	for i, it := range m.items {
		desc := it.model.Description + strings.Repeat(" ", width-lipgloss.Width(it.model.Description))
		line := fmt.Sprintf("%s  %s", desc, keysStyle.Render(it.binding.String()))
		if i == m.cursor && !m.page().DrawerOpen() {
			lines = append(lines, selectedRowStyle.Render(line))
			continue
		}
		lines = append(lines, rowStyle.Render(line))
	}
	return sectionStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) detailView(a shortcut.Action) string {
	found, ok := m.page().Model(a)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(found.Description))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Command: %s\n", found.Action.Value))
	keys := make([]string, len(found.Bindings))
	for i, binding := range found.Bindings {
		keys[i] = binding.String()
	}
	b.WriteString("Keys: " + keysStyle.Render(strings.Join(keys, ", ")))
	return drawerStyle.Render(b.String())
}

func (m *Model) formView() string {
	d := m.page().Draft()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Add Shortcut"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Name") + "\n")
	b.WriteString(m.fieldView(draft.FieldName, m.name.View(), d.Name()) + "\n\n")
	b.WriteString(labelStyle.Render("Command") + "\n")
	b.WriteString(m.fieldView(draft.FieldCommand, m.command.View(), d.Command()) + "\n\n")
	b.WriteString(labelStyle.Render("Keys") + "\n")

	for _, r := range d.Rows() {
		switch {
		case m.focus == draft.FieldRow && r.ID == m.rowID && m.rowSelected:
			b.WriteString("> " + selectionStyle.Render(m.row.Value()))
		case m.focus == draft.FieldRow && r.ID == m.rowID:
			b.WriteString("> " + m.row.View())
		case r.Blank():
			b.WriteString("  " + placeholderStyle.Render("Enter key combination"))
		case !r.Valid():
			b.WriteString("  " + invalidStyle.Render(r.Text))
		default:
			b.WriteString("  " + keysStyle.Render(r.Text))
		}
		b.WriteString("\n")
	}
	return drawerStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m *Model) fieldView(f draft.Field, input, value string) string {
	if m.focus == f {
		return "> " + input
	}
	if value == "" {
		return "  " + input
	}
	return "  " + value
}

func (m *Model) replaceView(c shortcut.PendingConflict, left int) string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render("Replace Shortcut?"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s is already used by %s.\n",
		keysStyle.Render(c.Binding.String()), labelStyle.Render(c.OwnerLabel)))
	b.WriteString("Replacing it will remove the keys from that shortcut.\n")
	if left > 1 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d more decisions after this one", left-1)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(primaryButtonStyle.Render("[Y] Replace") + buttonStyle.Render("[N] Cancel"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(replaceKeys))
	return dialogStyle.Render(b.String())
}

// place centers content on the screen once the size is known.
func (m *Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

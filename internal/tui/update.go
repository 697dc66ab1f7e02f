package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/shortcuts/internal/shortcut/draft"
)

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	p := m.page()

	switch {
	case key.Matches(msg, listKeys.Quit):
		return tea.Quit

	case key.Matches(msg, listKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, listKeys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, listKeys.Add):
		m.err = nil
		m.status = ""
		m.name.SetValue("")
		m.command.SetValue("")
		m.row.SetValue("")
		return m.apply(p.OpenDrawer())

	case key.Matches(msg, listKeys.Show):
		if it, ok := m.selected(); ok {
			p.ShowShortcut(it.model.Action)
		}

	case key.Matches(msg, listKeys.Remove):
		it, ok := m.selected()
		if !ok {
			return nil
		}
		if err := p.Remove(it.binding); err == nil {
			m.status = "Removed " + it.binding.String()
		}
		m.afterChange()
	}
	return nil
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	p := m.page()
	d := p.Draft()

	switch {
	case key.Matches(msg, formKeys.Close):
		p.OnContextClose()
		m.afterChange()
		return nil

	case key.Matches(msg, formKeys.Submit):
		m.commit()
		if !p.Submit() {
			m.status = "Enter a name, a command and valid keys"
			return nil
		}
		m.status = ""
		m.afterChange()
		return nil

	case key.Matches(msg, formKeys.Enter):
		m.commit()
		switch m.focus {
		case draft.FieldName:
			return m.apply(d.SubmitName())
		case draft.FieldCommand:
			return m.apply(d.FocusFirstRow())
		case draft.FieldRow:
			return m.apply(d.EndEditRow(m.rowID))
		}
		return nil

	case key.Matches(msg, formKeys.Next):
		m.commit()
		switch m.focus {
		case draft.FieldName:
			return m.focusField(draft.FieldCommand)
		case draft.FieldCommand:
			return m.focusRows()
		default:
			return m.focusField(draft.FieldName)
		}

	case key.Matches(msg, formKeys.Prev):
		m.commit()
		switch m.focus {
		case draft.FieldCommand:
			return m.focusField(draft.FieldName)
		case draft.FieldRow:
			return m.focusField(draft.FieldCommand)
		default:
			return m.focusRows()
		}
	}

	if m.rowSelected && m.focus == draft.FieldRow {
		m.rowSelected = false
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			m.row.SetValue("")
		case tea.KeyBackspace, tea.KeyDelete:
			m.row.SetValue("")
			m.commit()
			return nil
		}
	}

	cmd := m.updateInput(msg)
	m.commit()
	return cmd
}

func (m *Model) updateReplace(msg tea.KeyMsg) tea.Cmd {
	p := m.page()

	switch {
	case msg.String() == "ctrl+c":
		return tea.Quit
	case key.Matches(msg, replaceKeys.Replace):
		p.Apply()
		m.afterChange()
	case key.Matches(msg, replaceKeys.Cancel):
		p.Cancel()
		m.afterChange()
	}
	return nil
}

// updateInput forwards msg to the focused input.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case draft.FieldName:
		m.name, cmd = m.name.Update(msg)
	case draft.FieldCommand:
		m.command, cmd = m.command.Update(msg)
	case draft.FieldRow:
		m.row, cmd = m.row.Update(msg)
	}
	return cmd
}

// commit copies the focused input into the draft.
func (m *Model) commit() {
	d := m.page().Draft()
	switch m.focus {
	case draft.FieldName:
		d.SetName(m.name.Value())
	case draft.FieldCommand:
		d.SetCommand(m.command.Value())
	case draft.FieldRow:
		d.SetRowText(m.rowID, m.row.Value())
	}
}

// apply carries out a focus effect of the draft. Selecting a row marks
// its text as selected, since a textinput has no selection of its own.
func (m *Model) apply(eff draft.Effect) tea.Cmd {
	if eff.IsNone() {
		return nil
	}
	if eff.Field != draft.FieldRow {
		return m.focusField(eff.Field)
	}

	r, ok := m.page().Draft().Row(eff.Row)
	if !ok {
		return nil
	}
	m.rowID = r.ID
	m.row.SetValue(r.Text)
	m.row.CursorEnd()
	cmd := m.focusField(draft.FieldRow)
	m.rowSelected = eff.Kind == draft.EffectFocusSelect && r.Text != ""
	return cmd
}

// focusRows returns to the row being edited, or starts on the first row.
func (m *Model) focusRows() tea.Cmd {
	d := m.page().Draft()
	if r, ok := d.Editing(); ok {
		return m.apply(draft.Effect{Kind: draft.EffectFocus, Field: draft.FieldRow, Row: r.ID})
	}
	return m.apply(d.FocusFirstRow())
}

func (m *Model) focusField(f draft.Field) tea.Cmd {
	m.blur()
	m.focus = f
	switch f {
	case draft.FieldName:
		return m.name.Focus()
	case draft.FieldCommand:
		return m.command.Focus()
	case draft.FieldRow:
		return m.row.Focus()
	}
	return nil
}

func (m *Model) blur() {
	m.rowSelected = false
	m.name.Blur()
	m.command.Blur()
	m.row.Blur()
}

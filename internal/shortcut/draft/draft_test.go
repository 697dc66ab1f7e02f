package draft

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDraft(t *testing.T) *Draft {
	t.Helper()
	d := New(nil)
	d.Open()
	require.Equal(t, StateOpen, d.State())
	return d
}

func firstRow(t *testing.T, d *Draft) RowID {
	t.Helper()
	rows := d.Rows()
	require.NotEmpty(t, rows)
	return rows[0].ID
}

func invalidRows(d *Draft) int {
	n := 0
	for _, r := range d.Rows() {
		if !r.Valid() {
			n++
		}
	}
	return n
}

func TestNewDraftIsClosed(t *testing.T) {
	d := New(nil)
	assert.Equal(t, StateClosed, d.State())
	assert.Len(t, d.Rows(), 1)
	assert.Equal(t, uuid.Nil, d.Session())
}

func TestOpenResetsForm(t *testing.T) {
	d := openDraft(t)
	first := firstRow(t, d)
	session := d.Session()

	d.SetName("Lock")
	d.SetCommand("loginctl lock-session")
	d.SetRowText(first, "Super+L")
	d.AddRow()
	d.AddRow()
	require.Len(t, d.Rows(), 2)

	d.Open()
	assert.Empty(t, d.Name())
	assert.Empty(t, d.Command())
	rows := d.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, first, rows[0].ID, "first row keeps its ID")
	assert.Empty(t, rows[0].Text)
	assert.False(t, rows[0].Editing)
	assert.NotEqual(t, session, d.Session())
}

func TestRowIDsNeverReused(t *testing.T) {
	d := openDraft(t)
	d.SetRowText(firstRow(t, d), "Super+A")
	eff := d.AddRow()
	second := eff.Row

	d.Open()
	d.SetRowText(firstRow(t, d), "Super+A")
	eff = d.AddRow()
	assert.Greater(t, uint64(eff.Row), uint64(second))
}

func TestAddRowReusesInvalidRow(t *testing.T) {
	d := openDraft(t)
	first := firstRow(t, d)
	d.SetRowText(first, "garbage")

	eff := d.AddRow()
	assert.Equal(t, Effect{Kind: EffectFocus, Field: FieldRow, Row: first}, eff)

	rows := d.Rows()
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Text)
	assert.True(t, rows[0].Editing)
}

func TestAddRowReusesBlankRow(t *testing.T) {
	d := openDraft(t)
	first := firstRow(t, d)

	eff := d.AddRow()
	assert.Equal(t, EffectFocus, eff.Kind)
	assert.Equal(t, first, eff.Row)
	assert.Len(t, d.Rows(), 1)
}

func TestAddRowAppendsWhenAllValid(t *testing.T) {
	d := openDraft(t)
	first := firstRow(t, d)
	d.SetRowText(first, "Super+L")

	eff := d.AddRow()
	assert.Equal(t, EffectFocusSelect, eff.Kind)
	assert.Equal(t, FieldRow, eff.Field)
	assert.NotEqual(t, first, eff.Row)

	rows := d.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Super+L", rows[0].Text)
	assert.False(t, rows[0].Editing)
	assert.True(t, rows[1].Editing)
	assert.Equal(t, eff.Row, rows[1].ID)
}

func TestBeginEditRowExclusive(t *testing.T) {
	d := openDraft(t)
	first := firstRow(t, d)
	d.SetRowText(first, "Super+L")
	second := d.AddRow().Row

	require.True(t, d.BeginEditRow(first))
	editing, ok := d.Editing()
	require.True(t, ok)
	assert.Equal(t, first, editing.ID)

	r, _ := d.Row(second)
	assert.False(t, r.Editing)

	assert.False(t, d.BeginEditRow(RowID(999)))
	assert.False(t, d.SetRowText(RowID(999), "x"))
}

func TestEndEditRow(t *testing.T) {
	t.Run("valid row moves on", func(t *testing.T) {
		d := openDraft(t)
		first := firstRow(t, d)
		d.BeginEditRow(first)
		d.SetRowText(first, "Super+L")

		eff := d.EndEditRow(first)
		assert.Equal(t, EffectFocusSelect, eff.Kind)
		assert.Len(t, d.Rows(), 2)
	})

	t.Run("invalid row is cleared and refocused", func(t *testing.T) {
		d := openDraft(t)
		first := firstRow(t, d)
		d.BeginEditRow(first)
		d.SetRowText(first, "Super+")

		eff := d.EndEditRow(first)
		assert.Equal(t, focusRow(first), eff)
		rows := d.Rows()
		require.Len(t, rows, 1)
		assert.Empty(t, rows[0].Text)
	})

	t.Run("row not being edited", func(t *testing.T) {
		d := openDraft(t)
		first := firstRow(t, d)
		d.SetRowText(first, "Super+L")

		assert.True(t, d.EndEditRow(first).IsNone())
		assert.Len(t, d.Rows(), 1)
	})
}

func TestAtMostOneInvalidRow(t *testing.T) {
	texts := []string{"", "Super+L", "garbage", "Ctrl+Alt+T", "Super", "Print", "<C-s>", "Ctrl+"}
	rng := rand.New(rand.NewSource(1))

	for run := 0; run < 50; run++ {
		d := openDraft(t)
		d.FocusFirstRow()

		for step := 0; step < 30; step++ {
			editing, ok := d.Editing()
			switch rng.Intn(3) {
			case 0:
				if ok {
					d.SetRowText(editing.ID, texts[rng.Intn(len(texts))])
				}
			case 1:
				if ok {
					d.EndEditRow(editing.ID)
					require.LessOrEqual(t, invalidRows(d), 1, "run %d step %d", run, step)
				}
			case 2:
				d.AddRow()
				require.LessOrEqual(t, invalidRows(d), 1, "run %d step %d", run, step)
			}
		}
	}
}

func TestSubmitName(t *testing.T) {
	d := openDraft(t)
	assert.True(t, d.SubmitName().IsNone())

	d.SetName("   ")
	assert.True(t, d.SubmitName().IsNone())

	d.SetName("Lock")
	assert.Equal(t, Effect{Kind: EffectFocus, Field: FieldCommand}, d.SubmitName())
}

func TestFocusFirstRow(t *testing.T) {
	d := openDraft(t)
	first := firstRow(t, d)
	d.SetRowText(first, "Super+L")
	d.AddRow()

	eff := d.FocusFirstRow()
	assert.Equal(t, focusSelectRow(first), eff)
	editing, ok := d.Editing()
	require.True(t, ok)
	assert.Equal(t, first, editing.ID)
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		command string
		rows    []string
		wantOK  bool
		want    []string
	}{
		{"single key", "Lock", "loginctl lock-session", []string{"Super+L"}, true, []string{"Super+L"}},
		{"trailing blank row skipped", "Lock", "loginctl lock-session", []string{"Super+L", ""}, true, []string{"Super+L"}},
		{"invalid row aborts", "Lock", "loginctl lock-session", []string{"", "garbage"}, false, nil},
		{"pure modifier aborts", "Lock", "lock", []string{"Super+L", "Super"}, false, nil},
		{"empty name", "  ", "lock", []string{"Super+L"}, false, nil},
		{"empty command", "Lock", "", []string{"Super+L"}, false, nil},
		{"no keys", "Lock", "lock", []string{""}, false, nil},
		{"several keys", " Lock ", " lock ", []string{"Super+L", "<D-S-l>"}, true, []string{"Super+L", "Super+Shift+L"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := openDraft(t)
			d.SetName(tt.title)
			d.SetCommand(tt.command)

			d.SetRowText(firstRow(t, d), tt.rows[0])
			for _, text := range tt.rows[1:] {
				id := d.appendRow().ID
				d.SetRowText(id, text)
			}

			sub, ok := d.Submit()
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, StateOpen, d.State(), "form stays open")
				return
			}

			assert.Equal(t, StateSubmitting, d.State())
			assert.Equal(t, "Lock", sub.Name)
			assert.Equal(t, strings.TrimSpace(tt.command), sub.Action().Value)
			got := make([]string, len(sub.Bindings))
			for i, b := range sub.Bindings {
				got[i] = b.String()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubmitRequiresOpen(t *testing.T) {
	d := New(nil)
	d.SetName("Lock")
	d.SetCommand("lock")
	d.SetRowText(firstRow(t, d), "Super+L")

	_, ok := d.Submit()
	assert.False(t, ok)

	d.Open()
	d.SetName("Lock")
	d.SetCommand("lock")
	d.SetRowText(firstRow(t, d), "Super+L")
	_, ok = d.Submit()
	require.True(t, ok)

	_, ok = d.Submit()
	assert.False(t, ok, "submitting twice needs a reopen")

	d.Close()
	assert.Equal(t, StateClosed, d.State())
}

// Package draft holds the in-progress form for a new custom shortcut.
//
// A Draft owns the name, the command, and an ordered list of key rows.
// Every operation is a synchronous state transition; operations that
// would move input focus return an Effect for the renderer to carry out.
package draft

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/shortcuts/internal/logging"
	"github.com/dshills/shortcuts/internal/shortcut"
)

// State is the lifecycle state of a draft.
type State uint8

const (
	// StateClosed means no form is shown.
	StateClosed State = iota
	// StateOpen means the form accepts edits.
	StateOpen
	// StateSubmitting means a submission was handed out and the form waits
	// for the page to close it.
	StateSubmitting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// RowID identifies a key row. IDs are never reused within a draft.
type RowID uint64

// Row is one key input of the form.
type Row struct {
	ID      RowID
	Text    string
	Editing bool
}

// Valid reports whether the row text parses as a key combination.
func (r Row) Valid() bool {
	_, err := shortcut.ParseBinding(r.Text)
	return err == nil
}

// Blank reports whether the row holds no text.
func (r Row) Blank() bool {
	return strings.TrimSpace(r.Text) == ""
}

// Submission is the validated content of a submitted draft.
type Submission struct {
	Name     string
	Command  string
	Bindings []shortcut.Binding
}

// Action returns the spawn action of the submission.
func (s Submission) Action() shortcut.Action {
	return shortcut.Spawn(s.Command)
}

// Draft is the add-shortcut form.
//
// Draft is not safe for concurrent use.
type Draft struct {
	state   State
	name    string
	command string

	rows   []Row
	index  map[RowID]int
	nextID RowID

	session uuid.UUID
	log     *logging.Logger
}

// New creates a closed draft with a single empty row.
func New(log *logging.Logger) *Draft {
	if log == nil {
		log = logging.Nop()
	}
	d := &Draft{
		index: make(map[RowID]int),
		log:   log.WithComponent("draft"),
	}
	d.appendRow()
	return d
}

func (d *Draft) appendRow() *Row {
	id := d.nextID
	d.nextID++
	d.rows = append(d.rows, Row{ID: id})
	d.index[id] = len(d.rows) - 1
	return &d.rows[len(d.rows)-1]
}

func (d *Draft) row(id RowID) *Row {
	i, ok := d.index[id]
	if !ok {
		return nil
	}
	return &d.rows[i]
}

func (d *Draft) setEditing(id RowID) {
	for i := range d.rows {
		d.rows[i].Editing = d.rows[i].ID == id
	}
}

// State returns the current state.
func (d *Draft) State() State {
	return d.state
}

// Session returns the ID of the current form session, used to correlate
// log records. It changes on every Open.
func (d *Draft) Session() uuid.UUID {
	return d.session
}

// Name returns the shortcut name as typed.
func (d *Draft) Name() string {
	return d.name
}

// Command returns the command as typed.
func (d *Draft) Command() string {
	return d.command
}

// Rows returns a copy of the key rows in display order.
func (d *Draft) Rows() []Row {
	return append([]Row(nil), d.rows...)
}

// Row returns the row with the given ID.
func (d *Draft) Row(id RowID) (Row, bool) {
	r := d.row(id)
	if r == nil {
		return Row{}, false
	}
	return *r, true
}

// Editing returns the row currently being edited, if any.
func (d *Draft) Editing() (Row, bool) {
	for _, r := range d.rows {
		if r.Editing {
			return r, true
		}
	}
	return Row{}, false
}

// Open resets the form: name and command are cleared and the rows collapse
// to a single empty row that keeps the ID of the first row.
func (d *Draft) Open() {
	d.name = ""
	d.command = ""

	for len(d.rows) > 1 {
		last := d.rows[len(d.rows)-1]
		delete(d.index, last.ID)
		d.rows = d.rows[:len(d.rows)-1]
	}
	d.rows[0].Text = ""
	d.rows[0].Editing = false

	d.state = StateOpen
	d.session = uuid.New()
	d.log.Debug("draft opened", "session", d.session.String())
}

// Close abandons the form.
func (d *Draft) Close() {
	if d.state == StateClosed {
		return
	}
	d.state = StateClosed
	for i := range d.rows {
		d.rows[i].Editing = false
	}
	d.log.Debug("draft closed", "session", d.session.String())
}

// SetName updates the name.
func (d *Draft) SetName(name string) {
	d.name = name
}

// SetCommand updates the command.
func (d *Draft) SetCommand(command string) {
	d.command = command
}

// SetRowText updates the text of a row. It reports whether the row exists.
func (d *Draft) SetRowText(id RowID, text string) bool {
	r := d.row(id)
	if r == nil {
		return false
	}
	r.Text = text
	return true
}

// BeginEditRow makes id the only row being edited.
func (d *Draft) BeginEditRow(id RowID) bool {
	if d.row(id) == nil {
		return false
	}
	d.setEditing(id)
	return true
}

// EndEditRow finishes editing id. Leaving an invalid row clears and
// refocuses it; leaving a valid row moves on to a fresh row, the same as
// AddRow. Ending edit on a row that is not being edited does nothing.
func (d *Draft) EndEditRow(id RowID) Effect {
	r := d.row(id)
	if r == nil || !r.Editing {
		return Effect{}
	}
	r.Editing = false
	return d.AddRow()
}

// AddRow provides an empty row to type into. If any row does not parse,
// the first such row is cleared and focused instead of adding a new one,
// so the form never holds more than one blank or invalid row.
func (d *Draft) AddRow() Effect {
	for i := range d.rows {
		r := &d.rows[i]
		if r.Valid() {
			continue
		}
		r.Text = ""
		d.setEditing(r.ID)
		return focusRow(r.ID)
	}

	r := d.appendRow()
	d.setEditing(r.ID)
	return focusSelectRow(r.ID)
}

// SubmitName moves focus to the command field once a name is typed.
func (d *Draft) SubmitName() Effect {
	if strings.TrimSpace(d.name) == "" {
		return Effect{}
	}
	return Effect{Kind: EffectFocus, Field: FieldCommand}
}

// FocusFirstRow starts editing the first key row.
func (d *Draft) FocusFirstRow() Effect {
	id := d.rows[0].ID
	d.setEditing(id)
	return focusSelectRow(id)
}

// Submit validates the form. Name and command are trimmed and must not be
// empty. Blank rows are skipped; every other row must parse, otherwise
// nothing is submitted. A form without any key is not submitted either.
//
// On success the draft waits in StateSubmitting until Close or Open.
func (d *Draft) Submit() (Submission, bool) {
	if d.state != StateOpen {
		return Submission{}, false
	}

	sub := Submission{
		Name:    strings.TrimSpace(d.name),
		Command: strings.TrimSpace(d.command),
	}
	if sub.Name == "" || sub.Command == "" {
		d.log.Debug("submit rejected: missing name or command", "session", d.session.String())
		return Submission{}, false
	}

	for _, r := range d.rows {
		if r.Blank() {
			continue
		}
		b, err := shortcut.ParseBinding(r.Text)
		if err != nil {
			d.log.Debug("submit rejected", "session", d.session.String(), "row", uint64(r.ID), "error", err)
			return Submission{}, false
		}
		sub.Bindings = append(sub.Bindings, b)
	}
	if len(sub.Bindings) == 0 {
		d.log.Debug("submit rejected: no keys", "session", d.session.String())
		return Submission{}, false
	}

	d.state = StateSubmitting
	return sub, true
}

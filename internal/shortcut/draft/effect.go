package draft

// EffectKind is what the renderer should do with input focus.
type EffectKind uint8

const (
	// EffectNone leaves focus alone.
	EffectNone EffectKind = iota
	// EffectFocus moves focus to the target.
	EffectFocus
	// EffectFocusSelect moves focus to the target and selects its text.
	EffectFocusSelect
)

// Field names an input of the form.
type Field uint8

const (
	FieldNone Field = iota
	FieldName
	FieldCommand
	FieldRow
)

// Effect is a fire-and-forget focus instruction. Row is set when Field is
// FieldRow.
type Effect struct {
	Kind  EffectKind
	Field Field
	Row   RowID
}

// IsNone reports whether the effect does nothing.
func (e Effect) IsNone() bool {
	return e.Kind == EffectNone
}

func focusRow(id RowID) Effect {
	return Effect{Kind: EffectFocus, Field: FieldRow, Row: id}
}

func focusSelectRow(id RowID) Effect {
	return Effect{Kind: EffectFocusSelect, Field: FieldRow, Row: id}
}

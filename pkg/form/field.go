package form

// Field binds one named input to a form. It is the surface a view uses:
// read the value and errors to render, forward change and blur events.
type Field struct {
	form *Form
	name FieldName
}

// NewField binds name to f. Panics on a nil form since a binding without a
// form is a wiring bug.
func NewField(f *Form, name FieldName) Field {
	if f == nil {
		panic("form: NewField called with nil form")
	}
	return Field{form: f, name: name}
}

func (b Field) Name() FieldName { return b.name }

// Value returns the current value, "" when unset, so inputs stay controlled.
func (b Field) Value() string { return b.form.Value(b.name) }

// Errors returns the messages currently visible for the field.
func (b Field) Errors() []string { return b.form.FieldErrors(b.name) }

func (b Field) Touched() bool { return b.form.IsTouched(b.name) }

// Disabled reports whether the input must ignore user input.
func (b Field) Disabled() bool { return b.form.Inert() }

// OnChange forwards an input event.
func (b Field) OnChange(value string) error { return b.form.Change(b.name, value) }

// OnBlur forwards a loss-of-focus event.
func (b Field) OnBlur() error { return b.form.Blur(b.name) }

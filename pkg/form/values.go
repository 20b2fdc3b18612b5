package form

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/qanda/pkg/validator"
)

// FieldName identifies one field within a form.
type FieldName = string

// Values maps fields to their current text.
type Values map[FieldName]string

// Errors maps fields to their ordered validation messages.
// An empty sequence means the field is valid.
type Errors map[FieldName][]string

// Touched marks fields that have lost focus at least once.
type Touched map[FieldName]bool

// RuleSet configures the rules for each field. Fields absent from the set
// are always valid.
type RuleSet map[FieldName]validator.Rules

// Fields returns the configured field names in sorted order.
func (rs RuleSet) Fields() []FieldName {
	return slices.Sorted(maps.Keys(rs))
}

// Evaluate runs the rules configured for field against value.
func (rs RuleSet) Evaluate(field FieldName, value string) []string {
	return validator.Evaluate(rs[field], value)
}

// Clone returns a copy that shares no memory with e.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = slices.Clone(v)
	}
	return out
}

// Has reports whether field has at least one message.
func (e Errors) Has(field FieldName) bool {
	return len(e[field]) > 0
}

// Any reports whether any field has at least one message.
func (e Errors) Any() bool {
	for _, msgs := range e {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

// ValueOf converts untyped input into the string domain used by rules.
// nil becomes the empty string.
func ValueOf(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

package validator

// Func validates a single field value. It returns a human-readable message
// when the value is invalid and the empty string otherwise.
// Implementations must be pure.
type Func func(value string, arg any) string

// Rule pairs a validator with its optional argument.
type Rule struct {
	Validator Func
	Arg       any
}

// Check runs the rule against value. A rule without a validator always passes.
func (r Rule) Check(value string) string {
	if r.Validator == nil {
		return ""
	}
	return r.Validator(value, r.Arg)
}

// Rules is an ordered sequence of rules configured for one field.
type Rules []Rule

// Evaluate runs every rule in order and returns all non-empty messages.
// Duplicates are preserved. The result is never nil, so an empty slice
// always means "valid".
func Evaluate(rules Rules, value string) []string {
	msgs := make([]string, 0, len(rules))
	for _, rule := range rules {
		if msg := rule.Check(value); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// Valid reports whether value passes every rule.
func Valid(rules Rules, value string) bool {
	for _, rule := range rules {
		if rule.Check(value) != "" {
			return false
		}
	}
	return true
}

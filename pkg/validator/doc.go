// Package validator provides the rule model used by form fields: small pure
// validator functions paired with an optional argument, evaluated in order
// against a single string value.
//
// # Architecture
//
// A Func maps (value, arg) to an error message; the empty string means the
// value is acceptable. A Rule binds a Func to its argument and Rules is an
// ordered sequence of them. A field always carries a sequence, even when it
// only has one rule, so evaluation never needs to branch on shape.
//
// Core building blocks:
//   - Func     – validator signature, (value, arg) -> message
//   - Rule     – a Func together with its argument
//   - Rules    – ordered rule sequence for one field
//   - Evaluate – runs every rule and collects non-empty messages in order
//
// # Usage
//
//	rules := validator.Rules{
//	    validator.RequiredRule(),
//	    validator.MinLengthRule(50),
//	}
//	msgs := validator.Evaluate(rules, value)
//	if len(msgs) > 0 {
//	    // show msgs next to the field
//	}
//
// Custom validators are ordinary functions with the Func signature:
//
//	noShouting := func(value string, _ any) string {
//	    if value != "" && strings.ToUpper(value) == value {
//	        return "Please don't shout"
//	    }
//	    return ""
//	}
//	rules := validator.Rules{{Validator: noShouting}}
//
// # Error Handling
//
// Validation failures are data, not errors. Validators never panic on an
// unexpected argument type; such a rule is treated as passing.
package validator

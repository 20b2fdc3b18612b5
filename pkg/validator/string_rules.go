package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Messages produced by the built-in validators.
const (
	MsgRequired = "This must be populated"
	MsgPattern  = "This has an invalid format"
	MsgEmail    = "This must be a valid email address"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Required fails when the value is empty. Absent and null inputs are
// converted to the empty string before they reach a validator.
func Required(value string, _ any) string {
	if value == "" {
		return MsgRequired
	}
	return ""
}

// MinLength fails when a non-empty value has fewer characters than arg.
// Empty values pass so that Required alone reports missing input.
func MinLength(value string, arg any) string {
	n, ok := intArg(arg)
	if !ok || value == "" {
		return ""
	}
	if charCount(value) < n {
		return fmt.Sprintf("This must be at least %d characters", n)
	}
	return ""
}

// MaxLength fails when the value has more characters than arg.
func MaxLength(value string, arg any) string {
	n, ok := intArg(arg)
	if !ok {
		return ""
	}
	if charCount(value) > n {
		return fmt.Sprintf("This must be at most %d characters", n)
	}
	return ""
}

// Pattern fails when a non-empty value does not match arg, which may be a
// *regexp.Regexp or a pattern string. Invalid patterns make the rule pass.
func Pattern(value string, arg any) string {
	if value == "" {
		return ""
	}
	var re *regexp.Regexp
	switch p := arg.(type) {
	case *regexp.Regexp:
		re = p
	case string:
		compiled, err := regexp.Compile(p)
		if err != nil {
			return ""
		}
		re = compiled
	}
	if re == nil || re.MatchString(value) {
		return ""
	}
	return MsgPattern
}

// Email fails when a non-empty value is not shaped like an email address.
func Email(value string, _ any) string {
	if value == "" || emailRegex.MatchString(value) {
		return ""
	}
	return MsgEmail
}

// RequiredRule returns a Rule running Required.
func RequiredRule() Rule {
	return Rule{Validator: Required}
}

// MinLengthRule returns a Rule running MinLength with minimum n.
func MinLengthRule(n int) Rule {
	return Rule{Validator: MinLength, Arg: n}
}

// MaxLengthRule returns a Rule running MaxLength with maximum n.
func MaxLengthRule(n int) Rule {
	return Rule{Validator: MaxLength, Arg: n}
}

// PatternRule returns a Rule running Pattern. Panics if expr does not
// compile, since rule sets are declared at startup.
func PatternRule(expr string) Rule {
	return Rule{Validator: Pattern, Arg: regexp.MustCompile(expr)}
}

// EmailRule returns a Rule running Email.
func EmailRule() Rule {
	return Rule{Validator: Email}
}

// charCount counts user-perceived characters of the NFC form, so that a
// precomposed and a decomposed accent count the same.
func charCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func intArg(arg any) (int, bool) {
	switch n := arg.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Option configures Make.
type Option func(*config)

type config struct {
	maxLength int
	separator string
}

// MaxLength caps the slug length in bytes. The slug is cut at the last
// separator that fits so words are not split. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxLength = n
		}
	}
}

// Separator replaces the default "-".
func Separator(s string) Option {
	return func(c *config) {
		if s != "" {
			c.separator = s
		}
	}
}

// Make returns a lowercase URL-safe slug for s. It returns "" when s has
// no ASCII letters or digits.
func Make(s string, opts ...Option) string {
	cfg := config{separator: "-"}
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingSep && b.Len() > 0 {
				b.WriteString(cfg.separator)
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pendingSep = true
		}
	}

	out := b.String()
	if cfg.maxLength > 0 && len(out) > cfg.maxLength {
		out = out[:cfg.maxLength]
		if i := strings.LastIndex(out, cfg.separator); i > 0 {
			out = out[:i]
		}
		out = strings.TrimSuffix(out, cfg.separator)
	}
	return out
}

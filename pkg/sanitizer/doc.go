// Package sanitizer provides small string transforms applied to user input
// before it is stored, and helpers to chain them.
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine, sanitizer.NFC)
//	title := clean(values["title"])
//
// Transforms never fail; they only normalise.
package sanitizer

// Package slug turns free text such as a question title into a URL path
// segment.
//
//	slug.Make("Why should I learn TypeScript?") // "why-should-i-learn-typescript"
//	slug.Make(title, slug.MaxLength(40))
//
// Letters are folded to ASCII where a canonical decomposition exists
// ("Café" becomes "cafe"); any other run of non-alphanumeric characters
// collapses into a single separator.
package slug

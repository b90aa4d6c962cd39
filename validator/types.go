package validator

import "unicode/utf8"

// FieldConstraint is an inclusive length range for one field of one platform.
type FieldConstraint struct {
	Min int
	Max int
}

// Contains reports whether n lies within the range.
func (c FieldConstraint) Contains(n int) bool {
	return c.Min <= n && n <= c.Max
}

// ContainsLen reports whether the character count of s lies within the range.
// Characters are counted as Unicode code points, not bytes.
func (c FieldConstraint) ContainsLen(s string) bool {
	return c.Contains(Length(s))
}

// Length returns the number of characters in s as the platforms count them.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Options carries the per-call switches some fields need.
type Options struct {
	// ChatType selects the description limit on Telegram ("user", "group", "channel", "bot").
	ChatType string

	// IncludeMedia selects the caption limit for Telegram messages.
	IncludeMedia bool

	// Soft enables soft matching for YouTube usernames (hyphens and underscores ignored).
	Soft bool
}

// Handle is an identifier extracted from a platform link.
type Handle struct {
	Platform string
	Field    string
	Value    string
	Soft     bool
}

// Request is a single value to validate.
type Request struct {
	Platform string
	Field    string
	Value    string
	Options  Options
}

// Result is the outcome of validating a Request.
// Normalized is empty whenever Err is set.
type Result struct {
	Request    Request
	Normalized string
	Err        error
}

// Valid reports whether the request was accepted.
func (r Result) Valid() bool {
	return r.Err == nil
}

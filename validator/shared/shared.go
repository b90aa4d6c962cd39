// Package shared holds the low-level predicates reused by every platform rule set.
//
// All functions are total: they accept any string, including empty strings and
// strings with non-ASCII code points, and never fail.
package shared

import "unicode/utf8"

// Generic identifier bounds used by ValidateID.
const (
	IDMinLength = 5
	IDMaxLength = 32
)

// IsASCII reports whether every byte of s is in the 7-bit ASCII range.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// IsASCIIAndInRange reports whether s is ASCII and min <= len(s) <= max.
func IsASCIIAndInRange(s string, min, max int) bool {
	return IsASCII(s) && min <= len(s) && len(s) <= max
}

// IsAlnumWithUnderscore reports whether s is non-empty and consists of
// A-Z, a-z, 0-9 and underscores only.
func IsAlnumWithUnderscore(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWordByte(s[i]) {
			return false
		}
	}
	return true
}

// HasValidLeadingCharacter reports whether s is non-empty and does not start
// with a digit or an underscore.
func HasValidLeadingCharacter(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return !isDigit(c) && c != '_'
}

// IsAllDigits reports whether s is non-empty and consists of ASCII digits only.
func IsAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// ValidateID is the generic identifier check: ASCII, 5 to 32 characters.
// It neither normalizes nor explains; platform rule sets build on it.
func ValidateID(s string) bool {
	return IsASCIIAndInRange(s, IDMinLength, IDMaxLength)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', isDigit(c), c == '_':
		return true
	default:
		return false
	}
}

// Package youtube implements the public rules of YouTube handles.
//
// A handle is matched strictly when reached through an "@" link and softly
// when reached through a legacy channel path; see MatchMode.
package youtube

import (
	"fmt"
	"strings"

	"github.com/liuran001/SocialValidator-Go/validator"
	"github.com/liuran001/SocialValidator-Go/validator/shared"
)

// MatchMode selects how ignored characters are treated before validation.
type MatchMode int

const (
	// Strict keeps hyphens and underscores, folding both to "_".
	Strict MatchMode = iota
	// Soft drops hyphens and underscores entirely.
	Soft
)

// ModeOf converts the strict flag into a MatchMode.
func ModeOf(strict bool) MatchMode {
	if strict {
		return Strict
	}
	return Soft
}

func (m MatchMode) String() string {
	if m == Soft {
		return "soft"
	}
	return "strict"
}

// Fold replaces every ignored character with "_" in strict mode and removes
// it in soft mode.
func Fold(username string, mode MatchMode) string {
	return strings.Map(func(r rune) rune {
		if _, ignored := IgnoredCharacters[r]; !ignored {
			return r
		}
		if mode == Soft {
			return -1
		}
		return '_'
	}, username)
}

// IsValidUsername checks the structure of a username after folding:
// 3 to 30 characters of A-Za-z, 0-9, underscores and dots, not starting with
// a dot and not made of digits only. Reserved words are not checked here.
func IsValidUsername(username string, strict bool) bool {
	folded := Fold(username, ModeOf(strict))

	return usernameConstraint.Contains(len(folded)) &&
		shared.IsASCII(folded) &&
		folded[0] != '.' &&
		!shared.IsAllDigits(folded) &&
		shared.IsAlnumWithUnderscore(strings.ReplaceAll(folded, ".", "_"))
}

// IsReservedUsername reports whether username is a reserved word, ignoring case.
func IsReservedUsername(username string) bool {
	_, reserved := ReservedUsernames[strings.ToLower(username)]
	return reserved
}

// ValidateUsername validates a username and returns it in lower-case. In soft
// mode (strict == false) hyphens and underscores are removed from the result,
// since YouTube does not consider them.
//
// A malformed username yields an error wrapping validator.ErrMalformed; a
// well-formed reserved one yields an error wrapping validator.ErrReserved.
func ValidateUsername(username string, strict bool) (string, error) {
	if !IsValidUsername(username, strict) {
		return "", validator.NewMalformedError(PlatformName, FieldUsername,
			fmt.Sprintf("Username must have between %d and %d characters, including hyphens, "+
				"underscores and dots, can't consist entirely of numbers, and can't start with a dot",
				UsernameMinLength, UsernameMaxLength),
			username)
	}
	if IsReservedUsername(username) {
		return "", validator.NewReservedError(PlatformName, FieldUsername,
			"Username must not be a reserved word", username)
	}

	if !strict {
		username = Fold(username, Soft)
	}
	return strings.ToLower(username), nil
}

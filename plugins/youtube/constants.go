package youtube

import "github.com/liuran001/SocialValidator-Go/validator"

// PlatformName is the registry key of the YouTube rule set.
const PlatformName = "youtube"

// FieldUsername is the only field of the rule set.
const FieldUsername = "username"

// Restrictions for usernames (handles).
const (
	UsernameMinLength = 3
	UsernameMaxLength = 30
)

var usernameConstraint = validator.FieldConstraint{Min: UsernameMinLength, Max: UsernameMaxLength}

// IgnoredCharacters are folded in strict mode and dropped in soft mode.
//
// YouTube has two kinds of channel links. Links with "@" hold the exact
// handle, hyphens, underscores and dots included. Legacy links without "@"
// ignore hyphens and underscores. Dots are significant in both.
var IgnoredCharacters = map[rune]struct{}{
	'_': {},
	'-': {},
}

// ReservedUsernames collide with YouTube routes and can't be used as handles.
var ReservedUsernames = map[string]struct{}{
	"blog":      {},
	"browse":    {},
	"channels":  {},
	"explore":   {},
	"favorites": {},
	"feed":      {},
	"gaming":    {},
	"help":      {},
	"kids":      {},
	"live":      {},
	"logout":    {},
	"movies":    {},
	"music":     {},
	"playlist":  {},
	"search":    {},
	"settings":  {},
	"signin":    {},
	"signup":    {},
	"sports":    {},
	"support":   {},
	"trending":  {},
	"upload":    {},
	"video":     {},
	"videos":    {},
	"watch":     {},
}

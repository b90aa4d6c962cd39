package telegram

import (
	"net/url"
	"strings"

	"github.com/liuran001/SocialValidator-Go/validator"
)

var linkHosts = map[string]struct{}{
	"t.me":            {},
	"telegram.me":     {},
	"telegram.dog":    {},
	"www.t.me":        {},
	"www.telegram.me": {},
}

// pathPrefixes that never point at a public identifier.
var reservedPaths = map[string]struct{}{
	"joinchat":    {},
	"addstickers": {},
	"addemoji":    {},
	"share":       {},
	"proxy":       {},
	"socks":       {},
	"setlanguage": {},
}

// MatchLink extracts a public identifier from a Telegram link or mention.
// Supports the following forms:
//   - @durov
//   - t.me/durov, https://t.me/durov, https://telegram.me/durov/123
//   - https://t.me/s/durov (channel preview)
//   - tg://resolve?domain=durov
//
// The identifier is returned as written; it is not validated.
func MatchLink(link string) (validator.Handle, bool) {
	link = strings.TrimSpace(link)
	if link == "" {
		return validator.Handle{}, false
	}

	if strings.HasPrefix(link, "@") {
		return handleOf(strings.TrimPrefix(link, "@"))
	}

	if !strings.Contains(link, "://") {
		link = "https://" + link
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return validator.Handle{}, false
	}

	if parsed.Scheme == "tg" {
		if parsed.Host != "resolve" {
			return validator.Handle{}, false
		}
		return handleOf(parsed.Query().Get("domain"))
	}

	if _, ok := linkHosts[strings.ToLower(parsed.Hostname())]; !ok {
		return validator.Handle{}, false
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return validator.Handle{}, false
	}
	name := segments[0]
	if name == "s" && len(segments) > 1 {
		name = segments[1]
	}
	if strings.HasPrefix(name, "+") {
		return validator.Handle{}, false
	}
	if _, reserved := reservedPaths[strings.ToLower(name)]; reserved {
		return validator.Handle{}, false
	}
	return handleOf(name)
}

func handleOf(name string) (validator.Handle, bool) {
	if name == "" {
		return validator.Handle{}, false
	}
	return validator.Handle{Platform: PlatformName, Field: FieldID, Value: name}, true
}

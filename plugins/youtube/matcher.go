package youtube

import (
	"net/url"
	"strings"

	"github.com/liuran001/SocialValidator-Go/validator"
)

var linkHosts = map[string]struct{}{
	"youtube.com":       {},
	"www.youtube.com":   {},
	"m.youtube.com":     {},
	"music.youtube.com": {},
}

// Top-level paths that belong to YouTube itself rather than to a channel.
var routePaths = map[string]struct{}{
	"channel": {},
	"embed":   {},
	"live":    {},
	"results": {},
	"shorts":  {},
	"watch":   {},
}

// MatchLink extracts a username from a YouTube channel link and reports
// which matching mode the link implies.
// Supports the following URL patterns:
//   - https://www.youtube.com/@handle (strict)
//   - https://www.youtube.com/c/name (soft)
//   - https://www.youtube.com/user/name (soft)
//   - https://www.youtube.com/name (soft)
//
// Channel ID links (/channel/UC...) carry no username and are not matched.
func MatchLink(link string) (validator.Handle, bool) {
	link = strings.TrimSpace(link)
	if link == "" {
		return validator.Handle{}, false
	}
	if !strings.Contains(link, "://") {
		link = "https://" + link
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return validator.Handle{}, false
	}
	if _, ok := linkHosts[strings.ToLower(parsed.Hostname())]; !ok {
		return validator.Handle{}, false
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return validator.Handle{}, false
	}

	first := segments[0]
	switch {
	case strings.HasPrefix(first, "@"):
		return handleOf(strings.TrimPrefix(first, "@"), false)
	case first == "c" || first == "user":
		if len(segments) < 2 {
			return validator.Handle{}, false
		}
		return handleOf(segments[1], true)
	}

	if _, route := routePaths[strings.ToLower(first)]; route {
		return validator.Handle{}, false
	}
	if IsReservedUsername(first) {
		return validator.Handle{}, false
	}
	return handleOf(first, true)
}

func handleOf(name string, soft bool) (validator.Handle, bool) {
	if name == "" {
		return validator.Handle{}, false
	}
	return validator.Handle{Platform: PlatformName, Field: FieldUsername, Value: name, Soft: soft}, true
}

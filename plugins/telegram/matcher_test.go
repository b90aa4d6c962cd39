package telegram

import (
	"testing"
)

func TestMatchLink(t *testing.T) {
	tests := []struct {
		name      string
		link      string
		wantValue string
		wantMatch bool
	}{
		{name: "mention", link: "@durov", wantValue: "durov", wantMatch: true},
		{name: "bare host", link: "t.me/durov", wantValue: "durov", wantMatch: true},
		{name: "https", link: "https://t.me/durov", wantValue: "durov", wantMatch: true},
		{name: "post link", link: "https://t.me/durov/123", wantValue: "durov", wantMatch: true},
		{name: "telegram.me", link: "https://telegram.me/Durov", wantValue: "Durov", wantMatch: true},
		{name: "channel preview", link: "https://t.me/s/telegram", wantValue: "telegram", wantMatch: true},
		{name: "tg scheme", link: "tg://resolve?domain=durov", wantValue: "durov", wantMatch: true},
		{name: "surrounding spaces", link: "  https://t.me/durov  ", wantValue: "durov", wantMatch: true},
		{name: "invite link", link: "https://t.me/+AbCdEf", wantMatch: false},
		{name: "joinchat", link: "https://t.me/joinchat/AbCdEf", wantMatch: false},
		{name: "sticker set", link: "https://t.me/addstickers/pack", wantMatch: false},
		{name: "other host", link: "https://example.com/durov", wantMatch: false},
		{name: "host only", link: "https://t.me/", wantMatch: false},
		{name: "tg other action", link: "tg://msg?text=hi", wantMatch: false},
		{name: "empty", link: "", wantMatch: false},
		{name: "at only", link: "@", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := MatchLink(tt.link)
			if ok != tt.wantMatch {
				t.Fatalf("MatchLink(%q) matched = %v, want %v", tt.link, ok, tt.wantMatch)
			}
			if h.Value != tt.wantValue {
				t.Errorf("MatchLink(%q) value = %q, want %q", tt.link, h.Value, tt.wantValue)
			}
			if ok && (h.Platform != PlatformName || h.Field != FieldID) {
				t.Errorf("MatchLink(%q) handle = %+v, want telegram id", tt.link, h)
			}
		})
	}
}

package telegram

import (
	"strconv"
	"strings"

	"github.com/liuran001/SocialValidator-Go/validator"
)

// ChatType selects which description limit applies.
// The zero value is ChatTypeUser.
type ChatType int

const (
	ChatTypeUser ChatType = iota
	ChatTypeGroup
	ChatTypeChannel
	ChatTypeBot
)

// String returns the lower-case tag of the chat type.
func (t ChatType) String() string {
	switch t {
	case ChatTypeUser:
		return "user"
	case ChatTypeGroup:
		return "group"
	case ChatTypeChannel:
		return "channel"
	case ChatTypeBot:
		return "bot"
	default:
		return "ChatType(" + strconv.Itoa(int(t)) + ")"
	}
}

// ParseChatType converts a tag into a ChatType. An empty tag means user.
// Any other tag returns a *validator.ConfigError.
func ParseChatType(tag string) (ChatType, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "", "user":
		return ChatTypeUser, nil
	case "group":
		return ChatTypeGroup, nil
	case "channel":
		return ChatTypeChannel, nil
	case "bot":
		return ChatTypeBot, nil
	default:
		return 0, validator.NewUnknownChatTypeError(PlatformName, FieldDescription, tag)
	}
}

// DescriptionConstraint returns the description length range for the chat type.
func DescriptionConstraint(t ChatType) (validator.FieldConstraint, error) {
	switch t {
	case ChatTypeUser:
		return validator.FieldConstraint{Max: DescriptionUserMaxLength}, nil
	case ChatTypeGroup:
		return validator.FieldConstraint{Max: DescriptionGroupMaxLength}, nil
	case ChatTypeChannel:
		return validator.FieldConstraint{Max: DescriptionChannelMaxLength}, nil
	case ChatTypeBot:
		return validator.FieldConstraint{Max: DescriptionBotMaxLength}, nil
	default:
		return validator.FieldConstraint{}, validator.NewUnknownChatTypeError(PlatformName, FieldDescription, t.String())
	}
}

package telegram

import (
	"github.com/liuran001/SocialValidator-Go/validator"
)

var fieldNames = []string{
	FieldID,
	FieldBotID,
	FieldDescription,
	FieldChatName,
	FieldFirstName,
	FieldLastName,
	FieldMessage,
	FieldCommand,
	FieldCommandDescription,
}

// RuleSet exposes the Telegram rules through validator.RuleSet.
type RuleSet struct {
	defaultChatType ChatType
	includeMedia    bool
}

// NewRuleSet creates a rule set. defaultChatType applies to descriptions when
// a request does not name a chat type; includeMedia is ORed with the request flag.
func NewRuleSet(defaultChatType ChatType, includeMedia bool) *RuleSet {
	return &RuleSet{defaultChatType: defaultChatType, includeMedia: includeMedia}
}

// Name implements validator.RuleSet.
func (r *RuleSet) Name() string {
	return PlatformName
}

// Fields implements validator.RuleSet.
func (r *RuleSet) Fields() []string {
	out := make([]string, len(fieldNames))
	copy(out, fieldNames)
	return out
}

// Validate implements validator.RuleSet.
func (r *RuleSet) Validate(field, value string, opts validator.Options) (string, error) {
	switch field {
	case FieldID:
		return ValidateID(value)
	case FieldBotID:
		return ValidateBotID(value)
	case FieldDescription:
		chatType := r.defaultChatType
		if opts.ChatType != "" {
			parsed, err := ParseChatType(opts.ChatType)
			if err != nil {
				return "", err
			}
			chatType = parsed
		}
		return ValidateDescription(value, chatType)
	case FieldChatName:
		return ValidateChatName(value)
	case FieldFirstName:
		return ValidateFirstName(value)
	case FieldLastName:
		return ValidateLastName(value)
	case FieldMessage:
		return ValidateMessage(value, opts.IncludeMedia || r.includeMedia)
	case FieldCommand:
		return ValidateCommand(value)
	case FieldCommandDescription:
		return ValidateCommandDescription(value)
	default:
		return "", validator.NewUnknownFieldError(PlatformName, field)
	}
}

// MatchLink implements validator.RuleSet.
func (r *RuleSet) MatchLink(link string) (validator.Handle, bool) {
	return MatchLink(link)
}

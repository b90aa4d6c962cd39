package telegram

import "github.com/liuran001/SocialValidator-Go/validator"

// PlatformName is the registry key of the Telegram rule set.
const PlatformName = "telegram"

// Restrictions for user, channel and bot identifiers.
const (
	IDMinLength = 5
	IDMaxLength = 32
)

// Restrictions for the description (about) field, by chat type.
const (
	DescriptionUserMaxLength    = 70
	DescriptionGroupMaxLength   = 255
	DescriptionChannelMaxLength = DescriptionGroupMaxLength
	DescriptionBotMaxLength     = 120
)

// Restrictions for chat names.
const (
	ChatNameMinLength = 1
	ChatNameMaxLength = 128
)

// Restrictions for user and bot names.
const (
	FirstNameMinLength = 1
	FirstNameMaxLength = 64
	LastNameMaxLength  = 64
)

// Restrictions for messages. Captions of messages with media are shorter.
const (
	MessageMinLength      = 1
	MessageMaxLength      = 4096
	MediaMessageMaxLength = 1024
)

// Restrictions for bot commands.
const (
	CommandMinLength            = 1
	CommandMaxLength            = 32
	CommandDescriptionMinLength = 1
	CommandDescriptionMaxLength = 256
)

// BotIDSuffix is the mandatory ending of every bot identifier.
const BotIDSuffix = "bot"

var (
	idConstraint                 = validator.FieldConstraint{Min: IDMinLength, Max: IDMaxLength}
	chatNameConstraint           = validator.FieldConstraint{Min: ChatNameMinLength, Max: ChatNameMaxLength}
	firstNameConstraint          = validator.FieldConstraint{Min: FirstNameMinLength, Max: FirstNameMaxLength}
	lastNameConstraint           = validator.FieldConstraint{Min: 0, Max: LastNameMaxLength}
	messageConstraint            = validator.FieldConstraint{Min: MessageMinLength, Max: MessageMaxLength}
	mediaMessageConstraint       = validator.FieldConstraint{Min: MessageMinLength, Max: MediaMessageMaxLength}
	commandConstraint            = validator.FieldConstraint{Min: CommandMinLength, Max: CommandMaxLength}
	commandDescriptionConstraint = validator.FieldConstraint{Min: CommandDescriptionMinLength, Max: CommandDescriptionMaxLength}
)

// MessageConstraint returns the length range of a message, depending on
// whether media files are attached.
func MessageConstraint(includeMedia bool) validator.FieldConstraint {
	if includeMedia {
		return mediaMessageConstraint
	}
	return messageConstraint
}

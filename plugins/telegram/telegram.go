// Package telegram implements the public field rules of Telegram: identifiers,
// bot identifiers, descriptions, chat and user names, messages and bot commands.
//
// Every field has a boolean IsValid* predicate and a Validate* function that
// returns the normalized value or a *validator.ValidationError carrying the raw
// input. Nothing here keeps state; all functions are safe for concurrent use.
package telegram

import (
	"fmt"
	"strings"

	"github.com/liuran001/SocialValidator-Go/validator"
	"github.com/liuran001/SocialValidator-Go/validator/shared"
)

// Field names accepted by the rule set.
const (
	FieldID                 = "id"
	FieldBotID              = "bot_id"
	FieldDescription        = "description"
	FieldChatName           = "chat_name"
	FieldFirstName          = "first_name"
	FieldLastName           = "last_name"
	FieldMessage            = "message"
	FieldCommand            = "command"
	FieldCommandDescription = "command_description"
)

// IsValidID reports whether id is a valid user, channel or bot identifier:
// 5 to 32 ASCII characters from A-Za-z, 0-9 and underscores, starting with a letter.
func IsValidID(id string) bool {
	return shared.HasValidLeadingCharacter(id) &&
		shared.IsASCIIAndInRange(id, idConstraint.Min, idConstraint.Max) &&
		shared.IsAlnumWithUnderscore(id)
}

// IsBotID reports whether id carries the "bot" suffix, ignoring case.
// It does not check the identifier rules; see ValidateBotID.
func IsBotID(id string) bool {
	return strings.HasSuffix(strings.ToLower(id), BotIDSuffix)
}

// IsValidDescription reports whether text fits the description limit of the chat type.
// An unknown chat type is never valid.
func IsValidDescription(text string, chatType ChatType) bool {
	c, err := DescriptionConstraint(chatType)
	if err != nil {
		return false
	}
	return c.ContainsLen(text)
}

func IsValidChatName(name string) bool {
	return chatNameConstraint.ContainsLen(name)
}

func IsValidFirstName(name string) bool {
	return firstNameConstraint.ContainsLen(name)
}

// IsValidLastName allows an empty name.
func IsValidLastName(name string) bool {
	return lastNameConstraint.ContainsLen(name)
}

// IsValidFullName checks the first and last name independently; both must pass.
func IsValidFullName(firstName, lastName string) bool {
	return IsValidFirstName(firstName) && IsValidLastName(lastName)
}

// IsValidMessage reports whether text fits the message limit. Messages with
// attached media are limited by the caption length.
func IsValidMessage(text string, includeMedia bool) bool {
	return MessageConstraint(includeMedia).ContainsLen(text)
}

func IsValidCommand(cmd string) bool {
	return shared.IsASCIIAndInRange(cmd, commandConstraint.Min, commandConstraint.Max) &&
		shared.IsAlnumWithUnderscore(cmd)
}

func IsValidCommandDescription(text string) bool {
	return commandDescriptionConstraint.ContainsLen(text)
}

// ValidateID validates a public identifier (available as t.me/<id>) and
// returns it in lower-case.
func ValidateID(id string) (string, error) {
	if !IsValidID(id) {
		return "", validator.NewMalformedError(PlatformName, FieldID,
			fmt.Sprintf("ID must be length from %d to %d chars, starts with a letter and consists of: A-Za-z, 0-9 and underscores",
				IDMinLength, IDMaxLength),
			id)
	}
	return strings.ToLower(id), nil
}

// ValidateBotID validates a bot identifier: a valid ID ending with "bot".
// It returns the identifier in lower-case.
func ValidateBotID(id string) (string, error) {
	normalized, err := ValidateID(id)
	if err != nil {
		return "", err
	}
	if !IsBotID(normalized) {
		return "", validator.NewMalformedError(PlatformName, FieldBotID,
			fmt.Sprintf("Bot ID must have the suffix '%s'", BotIDSuffix), id)
	}
	return normalized, nil
}

// ValidateDescription validates the description (about) field for the chat type.
// All characters are allowed; the text is returned unchanged.
//
// An unknown chat type yields a *validator.ConfigError instead of a validation error.
func ValidateDescription(text string, chatType ChatType) (string, error) {
	c, err := DescriptionConstraint(chatType)
	if err != nil {
		return "", err
	}
	if !c.ContainsLen(text) {
		return "", validator.NewMalformedError(PlatformName, FieldDescription,
			fmt.Sprintf("Description text must contain no more than %d characters for '%s' chat type", c.Max, chatType),
			text)
	}
	return text, nil
}

// ValidateChatName validates the name of a channel or group.
func ValidateChatName(name string) (string, error) {
	if !IsValidChatName(name) {
		return "", validator.NewMalformedError(PlatformName, FieldChatName,
			fmt.Sprintf("Chat name must contain from %d to %d characters", ChatNameMinLength, ChatNameMaxLength),
			name)
	}
	return name, nil
}

func ValidateFirstName(name string) (string, error) {
	if !IsValidFirstName(name) {
		return "", validator.NewMalformedError(PlatformName, FieldFirstName,
			fmt.Sprintf("First name must contain from %d to %d characters", FirstNameMinLength, FirstNameMaxLength),
			name)
	}
	return name, nil
}

func ValidateLastName(name string) (string, error) {
	if !IsValidLastName(name) {
		return "", validator.NewMalformedError(PlatformName, FieldLastName,
			fmt.Sprintf("Last name must not exceed %d characters", LastNameMaxLength),
			name)
	}
	return name, nil
}

// ValidateFullName validates the first and last name separately. The first
// name can't be empty, the last name can. Both are returned unchanged.
func ValidateFullName(firstName, lastName string) (string, string, error) {
	if _, err := ValidateFirstName(firstName); err != nil {
		return "", "", err
	}
	if _, err := ValidateLastName(lastName); err != nil {
		return "", "", err
	}
	return firstName, lastName, nil
}

// ValidateMessage validates a text message. With includeMedia the text is a
// caption and the shorter limit applies.
func ValidateMessage(text string, includeMedia bool) (string, error) {
	if !IsValidMessage(text, includeMedia) {
		c := MessageConstraint(includeMedia)
		return "", validator.NewMalformedError(PlatformName, FieldMessage,
			fmt.Sprintf("Message must contain from %d to %d characters with include_media=%t", c.Min, c.Max, includeMedia),
			text)
	}
	return text, nil
}

// ValidateCommand validates a bot command. Commands are stored in lower-case,
// so upper-case input is accepted and folded.
func ValidateCommand(cmd string) (string, error) {
	if !IsValidCommand(cmd) {
		return "", validator.NewMalformedError(PlatformName, FieldCommand,
			fmt.Sprintf("Command must contain from %d to %d characters and consist of: A-Za-z, 0-9 and underscores",
				CommandMinLength, CommandMaxLength),
			cmd)
	}
	return strings.ToLower(cmd), nil
}

func ValidateCommandDescription(text string) (string, error) {
	if !IsValidCommandDescription(text) {
		return "", validator.NewMalformedError(PlatformName, FieldCommandDescription,
			fmt.Sprintf("Command description must contain from %d to %d characters",
				CommandDescriptionMinLength, CommandDescriptionMaxLength),
			text)
	}
	return text, nil
}

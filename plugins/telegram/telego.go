package telegram

import (
	"fmt"

	"github.com/liuran001/SocialValidator-Go/validator"
	"github.com/mymmrac/telego"
)

// ValidateBotCommand validates a command entry before it is sent with setMyCommands.
// The returned command is lower-cased; the description is kept as is.
func ValidateBotCommand(cmd telego.BotCommand) (telego.BotCommand, error) {
	name, err := ValidateCommand(cmd.Command)
	if err != nil {
		return telego.BotCommand{}, err
	}
	description, err := ValidateCommandDescription(cmd.Description)
	if err != nil {
		return telego.BotCommand{}, err
	}
	return telego.BotCommand{Command: name, Description: description}, nil
}

// ValidateBotCommands validates a whole command list. Commands must be unique
// after lower-casing, since Telegram stores them in lower-case.
func ValidateBotCommands(cmds []telego.BotCommand) ([]telego.BotCommand, error) {
	result := make([]telego.BotCommand, 0, len(cmds))
	seen := make(map[string]struct{}, len(cmds))
	for _, cmd := range cmds {
		normalized, err := ValidateBotCommand(cmd)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[normalized.Command]; dup {
			return nil, validator.NewMalformedError(PlatformName, FieldCommand,
				fmt.Sprintf("Command '%s' is listed more than once", normalized.Command), cmd.Command)
		}
		seen[normalized.Command] = struct{}{}
		result = append(result, normalized)
	}
	return result, nil
}

// ValidateSetMyCommands validates the command list of setMyCommands params in place.
func ValidateSetMyCommands(params *telego.SetMyCommandsParams) error {
	if params == nil {
		return nil
	}
	cmds, err := ValidateBotCommands(params.Commands)
	if err != nil {
		return err
	}
	params.Commands = cmds
	return nil
}

// ValidateUser validates the public fields of a user or bot.
// An empty username is allowed; a bot username must carry the bot suffix.
// The returned user has its username lower-cased.
func ValidateUser(user telego.User) (telego.User, error) {
	if _, _, err := ValidateFullName(user.FirstName, user.LastName); err != nil {
		return telego.User{}, err
	}
	if user.Username != "" {
		validate := ValidateID
		if user.IsBot {
			validate = ValidateBotID
		}
		username, err := validate(user.Username)
		if err != nil {
			return telego.User{}, err
		}
		user.Username = username
	}
	return user, nil
}

// ChatTypeOf maps the chat type reported by the Bot API onto ChatType.
// Supergroups use the group limits. Private chats map to ChatTypeUser; use
// ChatTypeOfUser to tell bots apart.
func ChatTypeOf(chat telego.Chat) (ChatType, error) {
	switch chat.Type {
	case telego.ChatTypePrivate:
		return ChatTypeUser, nil
	case telego.ChatTypeGroup, telego.ChatTypeSupergroup:
		return ChatTypeGroup, nil
	case telego.ChatTypeChannel:
		return ChatTypeChannel, nil
	default:
		return 0, validator.NewUnknownChatTypeError(PlatformName, FieldDescription, chat.Type)
	}
}

// ChatTypeOfUser returns ChatTypeBot for bots and ChatTypeUser otherwise.
func ChatTypeOfUser(user telego.User) ChatType {
	if user.IsBot {
		return ChatTypeBot
	}
	return ChatTypeUser
}

// ValidateChat validates the public fields of a chat. Groups and channels
// are checked by title, private chats by the peer's name. The returned chat
// has its username lower-cased.
func ValidateChat(chat telego.Chat) (telego.Chat, error) {
	chatType, err := ChatTypeOf(chat)
	if err != nil {
		return telego.Chat{}, err
	}

	if chatType == ChatTypeUser {
		if _, _, err := ValidateFullName(chat.FirstName, chat.LastName); err != nil {
			return telego.Chat{}, err
		}
	} else if _, err := ValidateChatName(chat.Title); err != nil {
		return telego.Chat{}, err
	}

	if chat.Username != "" {
		username, err := ValidateID(chat.Username)
		if err != nil {
			return telego.Chat{}, err
		}
		chat.Username = username
	}
	return chat, nil
}

// ValidateChatInfo checks the bio of a private chat or the description of a
// group or channel against the limit of its chat type.
func ValidateChatInfo(info telego.ChatFullInfo) error {
	chatType, err := ChatTypeOf(telego.Chat{Type: info.Type})
	if err != nil {
		return err
	}
	text := info.Description
	if chatType == ChatTypeUser {
		text = info.Bio
	}
	_, err = ValidateDescription(text, chatType)
	return err
}

// ValidateMessageText validates the text of a message, or its caption when
// media is attached. A media message without a caption is valid, and so is a
// message whose content carries no text at all (stickers, polls, locations).
func ValidateMessageText(msg telego.Message) (string, error) {
	switch {
	case hasMedia(msg):
		if msg.Caption == "" {
			return "", nil
		}
		return ValidateMessage(msg.Caption, true)
	case msg.Text == "" && hasTextlessContent(msg):
		return "", nil
	}
	return ValidateMessage(msg.Text, false)
}

// hasMedia reports content that takes a caption.
func hasMedia(msg telego.Message) bool {
	return len(msg.Photo) > 0 ||
		msg.Video != nil ||
		msg.Audio != nil ||
		msg.Document != nil ||
		msg.Animation != nil ||
		msg.Voice != nil ||
		msg.PaidMedia != nil
}

func hasTextlessContent(msg telego.Message) bool {
	return msg.Sticker != nil ||
		msg.VideoNote != nil ||
		msg.Story != nil ||
		msg.Checklist != nil ||
		msg.Contact != nil ||
		msg.Dice != nil ||
		msg.Game != nil ||
		msg.Poll != nil ||
		msg.Venue != nil ||
		msg.Location != nil
}

package telegram

import (
	"fmt"

	"github.com/liuran001/SocialValidator-Go/validator/config"
	logpkg "github.com/liuran001/SocialValidator-Go/validator/logger"
	validatorplugins "github.com/liuran001/SocialValidator-Go/validator/plugins"
)

func init() {
	if err := validatorplugins.Register(PlatformName, buildContribution); err != nil {
		panic(err)
	}
}

func buildContribution(cfg *config.Config, logger *logpkg.Logger) (*validatorplugins.Contribution, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config required")
	}
	chatType, err := ParseChatType(cfg.GetPluginString(PlatformName, "chat_type"))
	if err != nil {
		return nil, fmt.Errorf("telegram chat_type: %w", err)
	}
	includeMedia := cfg.GetPluginBool(PlatformName, "include_media")
	if logger != nil {
		logger.Debug("telegram rule set configured", "chat_type", chatType.String(), "include_media", includeMedia)
	}

	return &validatorplugins.Contribution{
		RuleSet: NewRuleSet(chatType, includeMedia),
	}, nil
}

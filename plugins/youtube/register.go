package youtube

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
	strict := cfg.GetPluginBoolDefault(PlatformName, "strict", true)
	if logger != nil {
		logger.Debug("youtube rule set configured", "mode", ModeOf(strict).String())
	}

	return &validatorplugins.Contribution{
		RuleSet: NewRuleSet(strict),
	}, nil
}

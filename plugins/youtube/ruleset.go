package youtube

import (
	"github.com/liuran001/SocialValidator-Go/validator"
)

// RuleSet exposes the YouTube rules through validator.RuleSet.
type RuleSet struct {
	strict bool
}

// NewRuleSet creates a rule set. With strict false every request is matched
// softly; with strict true a request can still opt into soft matching.
func NewRuleSet(strict bool) *RuleSet {
	return &RuleSet{strict: strict}
}

// Name implements validator.RuleSet.
func (r *RuleSet) Name() string {
	return PlatformName
}

// Fields implements validator.RuleSet.
func (r *RuleSet) Fields() []string {
	return []string{FieldUsername}
}

// Validate implements validator.RuleSet.
func (r *RuleSet) Validate(field, value string, opts validator.Options) (string, error) {
	if field != FieldUsername {
		return "", validator.NewUnknownFieldError(PlatformName, field)
	}
	return ValidateUsername(value, r.strict && !opts.Soft)
}

// MatchLink implements validator.RuleSet.
func (r *RuleSet) MatchLink(link string) (validator.Handle, bool) {
	return MatchLink(link)
}

// Package tags exposes the platform rules as go-playground/validator struct tags.
//
//	type Profile struct {
//		Username string `json:"username" validate:"tg_id"`
//		About    string `json:"about" validate:"tg_description=group"`
//		Handle   string `json:"handle" validate:"yt_username=soft,yt_not_reserved"`
//	}
package tags

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/liuran001/SocialValidator-Go/plugins/telegram"
	"github.com/liuran001/SocialValidator-Go/plugins/youtube"
	"github.com/liuran001/SocialValidator-Go/validator"
)

// Tag names registered by New.
const (
	TagTelegramID                 = "tg_id"
	TagTelegramBotID              = "tg_bot_id"
	TagTelegramDescription        = "tg_description"
	TagTelegramChatName           = "tg_chat_name"
	TagTelegramFirstName          = "tg_first_name"
	TagTelegramLastName           = "tg_last_name"
	TagTelegramMessage            = "tg_message"
	TagTelegramCommand            = "tg_command"
	TagTelegramCommandDescription = "tg_command_description"
	TagYouTubeUsername            = "yt_username"
	TagYouTubeNotReserved         = "yt_not_reserved"
)

// check validates value with the tag parameter and returns the rule's error.
type check func(value, param string) error

var rules = map[string]check{
	TagTelegramID:    discardParam(telegram.ValidateID),
	TagTelegramBotID: discardParam(telegram.ValidateBotID),
	TagTelegramDescription: func(value, param string) error {
		chatType, err := telegram.ParseChatType(param)
		if err != nil {
			return err
		}
		_, err = telegram.ValidateDescription(value, chatType)
		return err
	},
	TagTelegramChatName:  discardParam(telegram.ValidateChatName),
	TagTelegramFirstName: discardParam(telegram.ValidateFirstName),
	TagTelegramLastName:  discardParam(telegram.ValidateLastName),
	TagTelegramMessage: func(value, param string) error {
		_, err := telegram.ValidateMessage(value, param == "media")
		return err
	},
	TagTelegramCommand:            discardParam(telegram.ValidateCommand),
	TagTelegramCommandDescription: discardParam(telegram.ValidateCommandDescription),
	TagYouTubeUsername: func(value, param string) error {
		if youtube.IsValidUsername(value, param != "soft") {
			return nil
		}
		_, err := youtube.ValidateUsername(value, param != "soft")
		return err
	},
	TagYouTubeNotReserved: func(value, _ string) error {
		if youtube.IsReservedUsername(value) {
			return validator.NewReservedError(youtube.PlatformName, youtube.FieldUsername,
				"Username must not be a reserved word", value)
		}
		return nil
	},
}

func discardParam(fn func(string) (string, error)) check {
	return func(value, _ string) error {
		_, err := fn(value)
		return err
	}
}

// Validator wraps the go-playground validator with the platform rules.
type Validator struct {
	validate *gpvalidator.Validate
}

// New creates a validator with every platform tag registered.
func New() *Validator {
	validate := gpvalidator.New()

	if err := Register(validate); err != nil {
		panic(err)
	}

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate}
}

// Register adds the platform tags to an existing go-playground validator.
func Register(validate *gpvalidator.Validate) error {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rule := rules[name]
		err := validate.RegisterValidation(name, func(fl gpvalidator.FieldLevel) bool {
			return rule(fl.Field().String(), fl.Param()) == nil
		})
		if err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}
	return nil
}

// Struct validates a struct and returns a *FieldErrors describing every rejected field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs gpvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	if cerr := tagConfigError(fieldErrs); cerr != nil {
		return cerr
	}
	return NewFieldErrors(fieldErrs)
}

// Var validates a single value against a tag expression.
func (v *Validator) Var(field any, tag string) error {
	err := v.validate.Var(field, tag)
	if err == nil {
		return nil
	}
	var fieldErrs gpvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	if cerr := tagConfigError(fieldErrs); cerr != nil {
		return cerr
	}
	return NewFieldErrors(fieldErrs)
}

// FieldErrors maps field names to the reason each was rejected.
type FieldErrors struct {
	Errors map[string]string `json:"errors"`
}

// Error implements the error interface.
func (e *FieldErrors) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, e.Errors[field]))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// NewFieldErrors converts go-playground errors into FieldErrors, using the
// platform rule's own reason for platform tags.
func NewFieldErrors(errs gpvalidator.ValidationErrors) *FieldErrors {
	out := make(map[string]string, len(errs))

	for _, fe := range errs {
		field := fe.Field()
		if field == "" {
			field = fe.StructField()
		}

		rule, ok := rules[fe.Tag()]
		if !ok {
			out[field] = fmt.Sprintf("%s failed on the '%s' tag", field, fe.Tag())
			continue
		}

		value, _ := fe.Value().(string)
		var verr *validator.ValidationError
		switch err := rule(value, fe.Param()); {
		case errors.As(err, &verr):
			out[field] = verr.Reason
		case err != nil:
			out[field] = err.Error()
		default:
			out[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &FieldErrors{Errors: out}
}

// tagConfigError returns the first *validator.ConfigError a platform tag
// raised, such as an unknown chat type in a tag parameter.
func tagConfigError(errs gpvalidator.ValidationErrors) error {
	for _, fe := range errs {
		rule, ok := rules[fe.Tag()]
		if !ok {
			continue
		}
		value, _ := fe.Value().(string)
		if err := rule(value, fe.Param()); validator.IsConfigError(err) {
			return err
		}
	}
	return nil
}

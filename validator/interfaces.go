package validator

import "context"

// Logger is the minimal logging abstraction used across modules.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// RuleSet is the set of field rules of one platform.
//
// RuleSet implementations must be safe for concurrent use by multiple goroutines.
type RuleSet interface {
	// Name returns the platform identifier (e.g., "telegram", "youtube").
	Name() string

	// Fields lists the field names accepted by Validate.
	Fields() []string

	// Validate checks value as the given field and returns its normalized form.
	// It returns a *ValidationError for rejected input and a *ConfigError for an
	// unknown field or an out-of-range option.
	Validate(field, value string, opts Options) (string, error)

	// MatchLink extracts a handle from a platform link.
	MatchLink(link string) (Handle, bool)
}

// WorkerPool limits concurrency for background tasks.
type WorkerPool interface {
	Submit(task func()) error
	SubmitWait(task func() error) error
	SubmitWaitContext(ctx context.Context, task func() error) error
	Shutdown(ctx context.Context) error
	Size() int
}

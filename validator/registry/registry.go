package registry

import (
	"errors"
	"sync"

	"github.com/liuran001/SocialValidator-Go/validator"
)

// ErrUnknownPlatform is returned when no rule set is registered under the requested name.
var ErrUnknownPlatform = errors.New("registry: unknown platform")

// Registry manages registered RuleSet implementations in a thread-safe manner.
type Registry struct {
	mu       sync.RWMutex
	ruleSets map[string]validator.RuleSet
	// Order preserving list for MatchLink to maintain registration order
	ordered []validator.RuleSet
}

// New creates a new Registry instance.
func New() *Registry {
	return &Registry{
		ruleSets: make(map[string]validator.RuleSet),
		ordered:  make([]validator.RuleSet, 0),
	}
}

// Register adds a rule set to the registry.
// Returns an error if the rule set is nil, has an empty name, or is already registered.
func (r *Registry) Register(rs validator.RuleSet) error {
	if rs == nil {
		return errors.New("rule set cannot be nil")
	}

	name := rs.Name()
	if name == "" {
		return errors.New("rule set name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ruleSets[name]; exists {
		return errors.New("rule set already registered: " + name)
	}

	r.ruleSets[name] = rs
	r.ordered = append(r.ordered, rs)

	return nil
}

// Get retrieves a rule set by name.
func (r *Registry) Get(name string) (validator.RuleSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rs, ok := r.ruleSets[name]
	return rs, ok
}

// GetAll returns all registered rule sets in registration order.
// The returned slice is a copy and safe for concurrent use.
func (r *Registry) GetAll() []validator.RuleSet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]validator.RuleSet, 0, len(r.ordered))
	result = append(result, r.ordered...)

	return result
}

// Names returns the registered platform names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ordered))
	for _, rs := range r.ordered {
		names = append(names, rs.Name())
	}
	return names
}

// MatchLink finds the first rule set that recognizes the link.
// Rule sets are checked in registration order.
func (r *Registry) MatchLink(link string) (validator.Handle, validator.RuleSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rs := range r.ordered {
		if h, ok := rs.MatchLink(link); ok {
			return h, rs, true
		}
	}

	return validator.Handle{}, nil, false
}

// Validate dispatches the request to the rule set of its platform.
func (r *Registry) Validate(req validator.Request) validator.Result {
	rs, ok := r.Get(req.Platform)
	if !ok {
		return validator.Result{
			Request: req,
			Err:     &validator.ConfigError{Platform: req.Platform, Field: req.Field, Value: req.Platform, Err: ErrUnknownPlatform},
		}
	}

	normalized, err := rs.Validate(req.Field, req.Value, req.Options)
	if err != nil {
		return validator.Result{Request: req, Err: err}
	}
	return validator.Result{Request: req, Normalized: normalized}
}

// Reset clears all registered rule sets.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ruleSets = make(map[string]validator.RuleSet)
	r.ordered = r.ordered[:0]
}

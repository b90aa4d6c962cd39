package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/liuran001/SocialValidator-Go/validator"
	"github.com/liuran001/SocialValidator-Go/validator/batch"
	"github.com/liuran001/SocialValidator-Go/validator/config"
	logpkg "github.com/liuran001/SocialValidator-Go/validator/logger"
	validatorplugins "github.com/liuran001/SocialValidator-Go/validator/plugins"
	"github.com/liuran001/SocialValidator-Go/validator/registry"
	"github.com/liuran001/SocialValidator-Go/validator/worker"
)

// FieldLink asks the app to resolve each value as a profile link first.
const FieldLink = "link"

// App wires all application dependencies.
type App struct {
	Config   *config.Config
	Logger   *logpkg.Logger
	Pool     *worker.Pool
	Registry *registry.Registry
	Runner   *batch.Runner
	Build    BuildInfo
}

// BuildInfo provides build-time metadata.
type BuildInfo struct {
	RuntimeVer string
	BinVersion string
	CommitSHA  string
	BuildTime  string
	BuildArch  string
}

// New builds the application container. overrides are applied on top of the
// loaded configuration, typically from command-line flags. Logs go to
// logOutput, or stderr when it is nil.
func New(ctx context.Context, configPath string, build BuildInfo, overrides map[string]any, logOutput io.Writer) (*App, error) {
	conf, err := config.LoadOptional(configPath)
	if err != nil {
		return nil, &validator.ConfigError{Field: "config", Value: configPath, Err: err}
	}
	for key, value := range overrides {
		conf.Set(key, value)
	}

	if logOutput == nil {
		logOutput = os.Stderr
	}
	log, err := logpkg.NewTo(logOutput, conf.GetString("LogLevel"), conf.GetString("LogFormat"), conf.GetBool("LogSource"), conf.GetString("LogFile"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	reg := registry.New()
	pluginNames := conf.PluginNames()
	if len(pluginNames) == 0 {
		pluginNames = validatorplugins.Names()
	}
	for _, name := range pluginNames {
		if !conf.GetPluginBoolDefault(name, "enabled", true) {
			log.Info("plugin disabled by config", "plugin", name)
			continue
		}

		factory, ok := validatorplugins.Get(name)
		if !ok {
			log.Warn("plugin not registered", "plugin", name)
			continue
		}

		contrib, err := factory(conf, log)
		if err != nil {
			_ = log.Close()
			return nil, &validator.ConfigError{Platform: name, Field: "plugin", Value: name, Err: err}
		}
		if contrib == nil || contrib.RuleSet == nil {
			continue
		}
		if err := reg.Register(contrib.RuleSet); err != nil {
			_ = log.Close()
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
	}
	if len(reg.Names()) == 0 {
		_ = log.Close()
		return nil, &validator.ConfigError{Field: "plugins", Err: fmt.Errorf("no platform enabled")}
	}

	pool := worker.New(conf.GetInt("WorkerPoolSize"))
	log.Debug("app initialized", "platforms", strings.Join(reg.Names(), ","), "workers", pool.Size(), "version", build.BinVersion)

	return &App{
		Config:   conf,
		Logger:   log,
		Pool:     pool,
		Registry: reg,
		Runner:   batch.New(reg, pool, log),
		Build:    build,
	}, nil
}

// DefaultField returns the first field of the platform's rule set, or
// "" when the platform is not registered.
func (a *App) DefaultField(platform string) string {
	rs, ok := a.Registry.Get(a.platformOrDefault(platform))
	if !ok {
		return ""
	}
	if fields := rs.Fields(); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func (a *App) platformOrDefault(platform string) string {
	if strings.TrimSpace(platform) == "" {
		return a.Config.GetString("DefaultPlatform")
	}
	return platform
}

// Requests turns raw values into validation requests. With FieldLink each
// value is resolved through the registered link matchers; the platform then
// comes from the link. An empty platform falls back to DefaultPlatform and
// an empty field to the platform's first field.
//
// Links no platform recognizes are returned as rejected results, keyed by
// their index in values.
func (a *App) Requests(platform, field string, values []string, opts validator.Options) ([]validator.Request, map[int]validator.Result) {
	platform = a.platformOrDefault(platform)
	if field == "" {
		field = a.DefaultField(platform)
	}

	reqs := make([]validator.Request, 0, len(values))
	unmatched := make(map[int]validator.Result)
	for i, value := range values {
		req, rejected, ok := a.resolve(platform, field, value, opts)
		if !ok {
			unmatched[i] = rejected
			continue
		}
		reqs = append(reqs, req)
	}
	return reqs, unmatched
}

func (a *App) resolve(platform, field, value string, opts validator.Options) (validator.Request, validator.Result, bool) {
	req := validator.Request{Platform: platform, Field: field, Value: value, Options: opts}
	if field != FieldLink {
		return req, validator.Result{}, true
	}

	handle, _, ok := a.Registry.MatchLink(value)
	if !ok {
		return validator.Request{}, validator.Result{
			Request: req,
			Err:     validator.NewMalformedError(platform, field, "Not a recognized profile link", value),
		}, false
	}
	linkOpts := opts
	linkOpts.Soft = opts.Soft || handle.Soft
	return validator.Request{Platform: handle.Platform, Field: handle.Field, Value: handle.Value, Options: linkOpts}, validator.Result{}, true
}

// Validate validates values and returns one result per value, in input order.
func (a *App) Validate(ctx context.Context, platform, field string, values []string, opts validator.Options) ([]validator.Result, error) {
	reqs, unmatched := a.Requests(platform, field, values, opts)

	validated, err := a.Runner.Run(ctx, reqs)
	if err != nil {
		return nil, err
	}

	results := make([]validator.Result, 0, len(values))
	next := 0
	for i := range values {
		if res, ok := unmatched[i]; ok {
			results = append(results, res)
			continue
		}
		results = append(results, validated[next])
		next++
	}
	return results, nil
}

// Stream validates values as they arrive on in and emits results as they
// complete, so output order may differ from input order. The returned
// channel is closed once in is closed and every value is reported, or ctx is done.
func (a *App) Stream(ctx context.Context, platform, field string, in <-chan string, opts validator.Options) <-chan validator.Result {
	platform = a.platformOrDefault(platform)
	if field == "" {
		field = a.DefaultField(platform)
	}

	reqs := make(chan validator.Request)
	rejected := make(chan validator.Result)
	go func() {
		defer close(reqs)
		defer close(rejected)
		for {
			var value string
			var ok bool
			select {
			case <-ctx.Done():
				return
			case value, ok = <-in:
				if !ok {
					return
				}
			}

			req, res, matched := a.resolve(platform, field, value, opts)
			if matched {
				select {
				case reqs <- req:
				case <-ctx.Done():
					return
				}
				continue
			}
			select {
			case rejected <- res:
			case <-ctx.Done():
				return
			}
		}
	}()

	validated := a.Runner.Stream(ctx, reqs)
	out := make(chan validator.Result)
	go func(validated, rejected <-chan validator.Result) {
		defer close(out)
		for validated != nil || rejected != nil {
			var res validator.Result
			var ok bool
			select {
			case res, ok = <-validated:
				if !ok {
					validated = nil
					continue
				}
			case res, ok = <-rejected:
				if !ok {
					rejected = nil
					continue
				}
			}
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}(validated, rejected)
	return out
}

// Shutdown releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	var firstErr error

	if a.Pool != nil {
		if err := a.Pool.Shutdown(ctx); err != nil {
			a.Pool.StopNow()
			firstErr = fmt.Errorf("shutdown worker pool: %w", err)
		}
	}

	if a.Logger != nil {
		if err := a.Logger.Close(); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("close logger: %w", err)
			}
		}
	}

	return firstErr
}

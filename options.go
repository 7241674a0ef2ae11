package hjarta

import (
	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules      []fx.Option
	StoreOptions []config.StoreOption
	LogLevel     string
	LogFormat    string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile adds a named configuration file to the application.
// The file is opened through the shared store during startup and its
// *config.Handle is available under the DI named tag name.
// Call multiple times with different names to load several files.
func WithConfigFile(name, path string) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, config.NewModule(name, path))
	}
}

// WithStoreOptions configures the shared *config.Store, for example with
// config.WithRegisterer to export its metrics.
func WithStoreOptions(storeOpts ...config.StoreOption) Option {
	return func(opts *Options) {
		opts.StoreOptions = append(opts.StoreOptions, storeOpts...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

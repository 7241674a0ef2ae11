package config

import (
	"errors"
	"fmt"
	"log/slog"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the config module name is empty.
var ErrEmptyName = errors.New("config module name must not be empty")

// ErrEmptyPath is returned when the config module path is empty.
var ErrEmptyPath = errors.New("config file path must not be empty")

// StoreModule provides the shared *Store, built with the container's *slog.Logger.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func StoreModule(opts ...StoreOption) fx.Option {
	return fx.Module("config-store",
		fx.Provide(func(logger *slog.Logger) *Store {
			return NewStore(append([]StoreOption{WithLogger(logger)}, opts...)...)
		}),
	)
}

// NewModule creates an Fx module for a named configuration file.
// The file is opened through the shared *Store when the app starts, so an
// unreadable or invalid file fails the start. The resulting *Handle is
// supplied under the DI named tag name.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, path string) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if path == "" {
		return fx.Error(fmt.Errorf("module %q: %w", name, ErrEmptyPath))
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(store *Store) (*Handle, error) {
					return store.Open(path)
				},
				fx.ResultTags(tag),
			),
		),
		fx.Invoke(
			fx.Annotate(
				func(handle *Handle, logger *slog.Logger) {
					logger.Debug("config module ready", slog.String("name", name), slog.String("path", handle.Path()))
				},
				fx.ParamTags(tag, ""),
			),
		),
	)
}

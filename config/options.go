package config

import (
	"log/slog"
	"strings"

	jsonparser "github.com/0xalexb/hjarta-config/config/parser/json"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	filesource "github.com/0xalexb/hjarta-config/config/source/file"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreOption defines a function type for configuring a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	parser     Parser
	parsers    map[string]Parser
	source     Source
	logger     *slog.Logger
	registerer prometheus.Registerer
}

func defaultStoreOptions() storeOptions {
	return storeOptions{
		parser: yamlparser.NewParser(),
		parsers: map[string]Parser{
			".json": jsonparser.NewParser(),
		},
		source:     filesource.NewSource(),
		logger:     nil,
		registerer: nil,
	}
}

// WithParser sets the parser used for files without an extension-specific parser.
// The default parses YAML.
func WithParser(parser Parser) StoreOption {
	return func(opts *storeOptions) {
		opts.parser = parser
	}
}

// WithExtensionParser sets the parser used for files with the given extension, such as ".json".
// Matching is case-insensitive. A nil parser removes the mapping.
func WithExtensionParser(ext string, parser Parser) StoreOption {
	return func(opts *storeOptions) {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		if parser == nil {
			delete(opts.parsers, ext)

			return
		}

		opts.parsers[ext] = parser
	}
}

// WithSource sets the file source. The default reads the local filesystem.
func WithSource(source Source) StoreOption {
	return func(opts *storeOptions) {
		opts.source = source
	}
}

// WithLogger sets the logger. If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(opts *storeOptions) {
		opts.logger = logger
	}
}

// WithRegisterer registers the store's metrics with registerer.
// Without it the metrics are still counted but not exported.
func WithRegisterer(registerer prometheus.Registerer) StoreOption {
	return func(opts *storeOptions) {
		opts.registerer = registerer
	}
}

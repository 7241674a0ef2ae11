package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store maps canonical file paths to parsed value trees.
// It is safe for concurrent use.
type Store struct {
	parser  Parser
	parsers map[string]Parser
	source  Source
	logger  *slog.Logger
	metrics *storeMetrics

	// entries holds canonical path -> tree. Entries are written once per
	// successful parse and never removed.
	entries sync.Map
	group   singleflight.Group
}

// NewStore creates an empty Store.
func NewStore(opts ...StoreOption) *Store {
	options := defaultStoreOptions()

	for _, apply := range opts {
		apply(&options)
	}

	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		parser:  options.parser,
		parsers: options.parsers,
		source:  options.source,
		logger:  logger,
		metrics: newStoreMetrics(options.registerer),
	}
}

// Open returns a handle for the file at path, parsing it only if no tree is
// cached for its canonical path. Concurrent first opens of one file share a
// single parse. Failures are returned as *FileError or *ParseError and are not
// cached.
func (s *Store) Open(path string) (*Handle, error) {
	canonical, err := s.canonical(path)
	if err != nil {
		return nil, err
	}

	cached, found := s.entries.Load(canonical)
	if found {
		s.metrics.cacheHits.Inc()
		s.logger.Debug("config cache hit", slog.String("path", canonical))

		return s.newHandle(canonical, cached), nil
	}

	s.metrics.cacheMisses.Inc()

	tree, err, _ := s.group.Do(canonical, func() (any, error) {
		cached, found := s.entries.Load(canonical)
		if found {
			return cached, nil
		}

		parsed, err := s.parse(canonical)
		if err != nil {
			return nil, err
		}

		s.entries.Store(canonical, parsed)

		return parsed, nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck // already a *FileError or *ParseError
	}

	return s.newHandle(canonical, tree), nil
}

// Load reads and parses the file at path on every call. The cache is neither consulted nor updated.
func (s *Store) Load(path string) (*Handle, error) {
	canonical, err := s.canonical(path)
	if err != nil {
		return nil, err
	}

	tree, err := s.parse(canonical)
	if err != nil {
		return nil, err
	}

	return s.newHandle(canonical, tree), nil
}

// Cached reports whether a tree is cached for the file at path.
func (s *Store) Cached(path string) bool {
	canonical, err := s.source.Canonical(path)
	if err != nil {
		return false
	}

	_, found := s.entries.Load(canonical)

	return found
}

// Len returns the number of cached files.
func (s *Store) Len() int {
	count := 0

	s.entries.Range(func(_, _ any) bool {
		count++

		return true
	})

	return count
}

func (s *Store) canonical(path string) (string, error) {
	canonical, err := s.source.Canonical(path)
	if err != nil {
		s.metrics.fileFailures.Inc()
		s.logger.Warn("config file unreadable", slog.String("path", path), slog.Any("error", err))

		return "", &FileError{Path: path, Err: err}
	}

	return canonical, nil
}

func (s *Store) parse(canonical string) (any, error) {
	data, err := s.source.ReadFile(canonical)
	if err != nil {
		s.metrics.fileFailures.Inc()
		s.logger.Warn("config file unreadable", slog.String("path", canonical), slog.Any("error", err))

		return nil, &FileError{Path: canonical, Err: err}
	}

	s.metrics.parses.Inc()

	tree, err := s.parserFor(canonical).Parse(data)
	if err != nil {
		s.metrics.parseFailures.Inc()
		s.logger.Warn("config parse failed", slog.String("path", canonical), slog.Any("error", err))

		return nil, &ParseError{Path: canonical, Err: err}
	}

	s.logger.Info("config parsed", slog.String("path", canonical), slog.Int("bytes", len(data)))

	return tree, nil
}

func (s *Store) parserFor(canonical string) Parser {
	parser, found := s.parsers[strings.ToLower(filepath.Ext(canonical))]
	if found {
		return parser
	}

	return s.parser
}

func (s *Store) newHandle(canonical string, tree any) *Handle {
	decoder, _ := s.parserFor(canonical).(Decoder)

	return &Handle{
		path:    canonical,
		tree:    tree,
		decoder: decoder,
	}
}

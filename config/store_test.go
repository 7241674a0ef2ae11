package config

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	jsonparser "github.com/0xalexb/hjarta-config/config/parser/json"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	filesource "github.com/0xalexb/hjarta-config/config/source/file"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Open_ExistingFile(t *testing.T) {
	t.Parallel()

	handle, err := NewStore().Open(fixtureConfig)

	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.True(t, filepath.IsAbs(handle.Path()))
}

func TestStore_Open_EmptyFile(t *testing.T) {
	t.Parallel()

	handle, err := NewStore().Open("testdata/emptyconfig.yml")

	require.NoError(t, err)
	assert.Equal(t, "fallback", handle.Get("anything", "fallback"))
}

func TestStore_Open_FileUnreadable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name: "missing file",
			path: func(_ *testing.T) string {
				return "testdata/missingconfig.yml"
			},
			wantErr: fs.ErrNotExist,
		},
		{
			name: "directory",
			path: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr: filesource.ErrPathIsDirectory,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parser := &countingParser{inner: yamlparser.NewParser()}
			store := NewStore(WithParser(parser))

			handle, err := store.Open(tt.path(t))

			require.Error(t, err)
			assert.Nil(t, handle)
			require.ErrorIs(t, err, ErrFileUnreadable)
			require.ErrorIs(t, err, tt.wantErr)

			var fileErr *FileError
			require.ErrorAs(t, err, &fileErr)

			assert.Zero(t, parser.calls.Load(), "the parser must not run for unreadable files")
			assert.Zero(t, store.Len())
		})
	}
}

func TestStore_Open_ParseFailure(t *testing.T) {
	t.Parallel()

	parser := &countingParser{inner: yamlparser.NewParser()}
	store := NewStore(WithParser(parser))

	for attempt := 1; attempt <= 2; attempt++ {
		handle, err := store.Open("testdata/invalidconfig.yml")

		require.Error(t, err)
		assert.Nil(t, handle)
		require.ErrorIs(t, err, ErrParseFailure)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		require.Error(t, parseErr.Err)
		assert.Contains(t, err.Error(), parseErr.Err.Error(), "the parser diagnostic is kept verbatim")

		assert.EqualValues(t, attempt, parser.calls.Load(), "failures are not cached")
	}

	assert.False(t, store.Cached("testdata/invalidconfig.yml"))
	assert.Zero(t, store.Len())
}

func TestStore_Open_ParsesOnce(t *testing.T) {
	t.Parallel()

	parser := &countingParser{inner: yamlparser.NewParser()}
	store := NewStore(WithParser(parser))

	first, err := store.Open(fixtureConfig)
	require.NoError(t, err)

	second, err := store.Open(fixtureConfig)
	require.NoError(t, err)

	assert.EqualValues(t, 1, parser.calls.Load())
	assert.Equal(t, first.Get("application", nil), second.Get("application", nil))
	assert.Equal(t, first.Path(), second.Path())
	assert.True(t, store.Cached(fixtureConfig))
	assert.Equal(t, 1, store.Len())
}

func TestStore_Open_CachedByCanonicalPath(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "config.yml", "name: canonical\n")
	link := filepath.Join(t.TempDir(), "link.yml")

	err := os.Symlink(configPath, link)
	if err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	parser := &countingParser{inner: yamlparser.NewParser()}
	store := NewStore(WithParser(parser))

	direct, err := store.Open(configPath)
	require.NoError(t, err)

	viaLink, err := store.Open(link)
	require.NoError(t, err)

	dir, name := filepath.Split(configPath)
	viaDots, err := store.Open(filepath.Join(dir, ".", name))
	require.NoError(t, err)

	assert.EqualValues(t, 1, parser.calls.Load())
	assert.Equal(t, direct.Path(), viaLink.Path())
	assert.Equal(t, direct.Path(), viaDots.Path())
	assert.Equal(t, "canonical", viaLink.Get("name", nil))
}

func TestStore_Open_IgnoresLaterFileChanges(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "config.yml", "version: 1\n")
	store := NewStore()

	first, err := store.Open(configPath)
	require.NoError(t, err)

	err = os.WriteFile(configPath, []byte("version: 2\n"), 0o600)
	require.NoError(t, err)

	second, err := store.Open(configPath)
	require.NoError(t, err)

	assert.EqualValues(t, 1, first.Get("version", nil))
	assert.EqualValues(t, 1, second.Get("version", nil), "cached trees are not reloaded")
}

func TestStore_Open_Concurrent(t *testing.T) {
	t.Parallel()

	parser := &countingParser{inner: yamlparser.NewParser()}
	store := NewStore(WithParser(parser))

	const callers = 16

	var wg sync.WaitGroup

	handles := make([]*Handle, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			handles[i], errs[i] = store.Open(fixtureConfig)
		}()
	}

	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "Production", handles[i].Get("application.releaseStage", nil))
	}

	assert.EqualValues(t, 1, parser.calls.Load())
	assert.Equal(t, 1, store.Len())
}

func TestStore_Load_AlwaysFresh(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "config.yml", "version: 1\n")
	parser := &countingParser{inner: yamlparser.NewParser()}
	store := NewStore(WithParser(parser))

	first, err := store.Load(configPath)
	require.NoError(t, err)

	err = os.WriteFile(configPath, []byte("version: 2\n"), 0o600)
	require.NoError(t, err)

	second, err := store.Load(configPath)
	require.NoError(t, err)

	assert.EqualValues(t, 1, first.Get("version", nil))
	assert.EqualValues(t, 2, second.Get("version", nil))
	assert.EqualValues(t, 2, parser.calls.Load())
	assert.False(t, store.Cached(configPath), "Load does not populate the cache")
}

func TestStore_Load_Errors(t *testing.T) {
	t.Parallel()

	store := NewStore()

	_, err := store.Load("testdata/missingconfig.yml")
	require.ErrorIs(t, err, ErrFileUnreadable)

	_, err = store.Load("testdata/invalidconfig.yml")
	require.ErrorIs(t, err, ErrParseFailure)
}

func TestStore_ExtensionParsers(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()

		handle, err := NewStore().Open("testdata/config.json")

		require.NoError(t, err)
		assert.Equal(t, "Staging", handle.Get("application.releaseStage", nil))
		require.NoError(t, handle.Evaluate("application.version").IsRequired().IsNumeric().IsOneOf(7).Err())
	})

	t.Run("case insensitive override", func(t *testing.T) {
		t.Parallel()

		parser := &countingParser{inner: jsonparser.NewParser()}
		configPath := writeConfig(t, "config.JSON", `{"name": "upper"}`)

		handle, err := NewStore(WithExtensionParser("json", parser)).Open(configPath)

		require.NoError(t, err)
		assert.Equal(t, "upper", handle.Get("name", nil))
		assert.EqualValues(t, 1, parser.calls.Load())
	})

	t.Run("removed mapping falls back to default parser", func(t *testing.T) {
		t.Parallel()

		parser := &countingParser{inner: yamlparser.NewParser()}
		store := NewStore(WithParser(parser), WithExtensionParser(".json", nil))

		handle, err := store.Open("testdata/config.json")

		require.NoError(t, err)
		assert.Equal(t, "Staging", handle.Get("application.releaseStage", nil))
		assert.EqualValues(t, 1, parser.calls.Load())
	})
}

func TestStore_WithSource(t *testing.T) {
	t.Parallel()

	readErr := errors.New("read failed")

	t.Run("canonical path is the cache key", func(t *testing.T) {
		t.Parallel()

		source := &mockSource{
			canonicalFunc: func(_ string) (string, error) {
				return "/virtual/config.yml", nil
			},
			readFileFunc: func(_ string) ([]byte, error) {
				return []byte("name: virtual\n"), nil
			},
		}
		store := NewStore(WithSource(source))

		first, err := store.Open("a.yml")
		require.NoError(t, err)

		second, err := store.Open("b.yml")
		require.NoError(t, err)

		assert.Equal(t, "/virtual/config.yml", first.Path())
		assert.Equal(t, first.Path(), second.Path())
		assert.Equal(t, 1, store.Len())
	})

	t.Run("read failure is unreadable", func(t *testing.T) {
		t.Parallel()

		source := &mockSource{
			canonicalFunc: func(path string) (string, error) {
				return path, nil
			},
			readFileFunc: func(_ string) ([]byte, error) {
				return nil, readErr
			},
		}

		_, err := NewStore(WithSource(source)).Open("config.yml")

		require.ErrorIs(t, err, ErrFileUnreadable)
		require.ErrorIs(t, err, readErr)
	})
}

func TestStore_Metrics(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	store := NewStore(WithRegisterer(registry))

	_, err := store.Open(fixtureConfig)
	require.NoError(t, err)

	_, err = store.Open(fixtureConfig)
	require.NoError(t, err)

	_, err = store.Open("testdata/invalidconfig.yml")
	require.Error(t, err)

	_, err = store.Open("testdata/missingconfig.yml")
	require.Error(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(store.metrics.cacheHits), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(store.metrics.cacheMisses), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(store.metrics.parses), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(store.metrics.parseFailures), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(store.metrics.fileFailures), 0)

	count, err := testutil.GatherAndCount(registry)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestStore_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})) //nolint:exhaustruct // only level needed
	store := NewStore(WithLogger(logger))

	_, err := store.Open(fixtureConfig)
	require.NoError(t, err)

	_, err = store.Open(fixtureConfig)
	require.NoError(t, err)

	_, err = store.Open("testdata/invalidconfig.yml")
	require.Error(t, err)

	output := buf.String()
	assert.Contains(t, output, "config parsed")
	assert.Contains(t, output, "config cache hit")
	assert.Contains(t, output, "config parse failed")
}

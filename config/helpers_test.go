package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureConfig = "testdata/config.yml"

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	return configPath
}

func openFixture(t *testing.T) *Handle {
	t.Helper()

	handle, err := NewStore().Open(fixtureConfig)
	require.NoError(t, err)

	return handle
}

// countingParser records how often the wrapped parser runs.
type countingParser struct {
	inner Parser
	calls atomic.Int64
}

func (p *countingParser) Parse(data []byte) (any, error) {
	p.calls.Add(1)

	return p.inner.Parse(data)
}

type mockSource struct {
	canonicalFunc func(path string) (string, error)
	readFileFunc  func(path string) ([]byte, error)
}

func (m *mockSource) Canonical(path string) (string, error) {
	return m.canonicalFunc(path)
}

func (m *mockSource) ReadFile(path string) ([]byte, error) {
	return m.readFileFunc(path)
}

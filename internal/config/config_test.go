package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/payhook/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoader_AppliesDefaults(t *testing.T) {
	l, err := config.NewLoader(writeConfig(t, "version: \"1\"\n"))
	require.NoError(t, err)

	cfg := l.Config()
	assert.Equal(t, 16, cfg.Receiver.EventWorkers)
	assert.Equal(t, 4096, cfg.Receiver.QueueDepth)
	assert.Equal(t, 5000, cfg.Receiver.EventTimeoutMs)
	assert.Equal(t, int64(1<<20), cfg.Receiver.MaxBodyBytes)
	assert.Equal(t, 100, cfg.Receiver.MaxBatch)
	assert.Equal(t, "memory", cfg.DeadLetter.Driver)
	assert.False(t, cfg.Receiver.Strict)
	require.NoError(t, config.Validate(cfg))
}

func TestLoader_SampleConfig(t *testing.T) {
	l, err := config.NewLoader(filepath.Join("..", "..", "configs", "routes.yaml"))
	require.NoError(t, err)

	cfg := l.Config()
	require.NoError(t, config.Validate(cfg))
	require.Len(t, cfg.Routes, 5)
	assert.Equal(t, "large_payments", cfg.Routes[0].ID)
	assert.Equal(t, ">=", cfg.Routes[0].Where[0].Op)
	assert.Equal(t, 100000, cfg.Routes[0].Where[0].Value)
	assert.Equal(t, []string{"treasury"}, cfg.Routes[2].Families)
	assert.NotEmpty(t, cfg.Routes[3].When)
}

func TestLoader_ReloadNotifies(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\n")
	l, err := config.NewLoader(path)
	require.NoError(t, err)

	var got *config.Config
	l.OnChange(func(c *config.Config) { got = c })

	require.NoError(t, os.WriteFile(path, []byte("version: \"2\"\nreceiver:\n  strict: true\n"), 0o644))
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, "2", cfg.Version)
	assert.True(t, cfg.Receiver.Strict)
	assert.Same(t, cfg, got)
	assert.Same(t, cfg, l.Config())
}

func TestLoader_ReloadKeepsOldConfigOnError(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\n")
	l, err := config.NewLoader(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("version: [\n"), 0o644))
	_, err = l.Reload()
	require.Error(t, err)
	assert.Equal(t, "1", l.Config().Version)
}

func TestLoader_ReloadRejectedByCheck(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\n")
	l, err := config.NewLoader(path)
	require.NoError(t, err)

	l.Check(config.Validate)
	notified := 0
	l.OnChange(func(*config.Config) { notified++ })

	bad := "version: \"2\"\nreceiver:\n  strict: true\n  max_body_bytes: 10\ndead_letter:\n  driver: bogus\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))
	_, err = l.Reload()
	require.ErrorIs(t, err, config.ErrRejected)
	assert.Contains(t, err.Error(), `unknown driver "bogus"`)

	cur := l.Config()
	assert.Equal(t, "1", cur.Version)
	assert.False(t, cur.Receiver.Strict)
	assert.Equal(t, int64(1<<20), cur.Receiver.MaxBodyBytes)
	assert.Zero(t, notified)

	require.NoError(t, os.WriteFile(path, []byte("version: \"3\"\n"), 0o644))
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Same(t, cfg, l.Config())
	assert.Equal(t, 1, notified)
}

func TestNewLoader_MissingFile(t *testing.T) {
	_, err := config.NewLoader(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg, err := config.Parse([]byte(`
version: "1"
dead_letter:
  driver: redis
routes:
  - id: a
    event_types: ["invoice.*.paid"]
    families: [identity]
    where:
      - {path: amount, op: "~="}
    when: "object.amount >"
    actions:
      - {id: x, type: log}
  - id: a
    actions:
      - {id: x}
`))
	require.NoError(t, err)

	err = config.Validate(cfg)
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"redis_url is required",
		"only a trailing .* wildcard",
		`unknown family "identity"`,
		`unknown op "~="`,
		"route a.when: expected operand",
		`duplicate id "a"`,
		"one of event_types or families must be set",
		`duplicate id "x"`,
		"action x: type is required",
	} {
		assert.True(t, strings.Contains(msg, want), "missing %q in:\n%s", want, msg)
	}
}

func TestValidate_VersionRequired(t *testing.T) {
	cfg, err := config.Parse([]byte("routes: []\n"))
	require.NoError(t, err)
	assert.EqualError(t, config.Validate(cfg), "config: version is required")
}

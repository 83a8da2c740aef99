package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/steps/internal/config"
	"github.com/idilsaglam/steps/internal/ui"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		DataDir:  t.TempDir(),
		Backend:  backend,
		Theme:    "mono",
		LogLevel: "debug",
	}
	cfg.ResolvePaths()
	return cfg
}

func run(t *testing.T, cfg *config.Config, args ...string) runResult {
	t.Helper()
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	var out, errOut bytes.Buffer
	code := Run(context.Background(), args, Options{
		Config: cfg,
		Stdout: &out,
		Stderr: &errOut,
		Now:    func() time.Time { return time.Date(2024, time.June, 15, 8, 0, 0, 0, time.Local) },
	})
	return runResult{code: code, stdout: ansi.Strip(out.String()), stderr: ansi.Strip(errOut.String())}
}

func TestHelp(t *testing.T) {
	r := run(t, testConfig(t, config.BackendFile), "help")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "toggle <item> [date]")
}

func TestUnknownSubcommand(t *testing.T) {
	r := run(t, testConfig(t, config.BackendFile), "dance")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "unknown subcommand: dance")
}

func TestToggleDefaultsToToday(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)

	r := run(t, cfg, "toggle", "java")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "JAVA 2024-06-15 done")

	b, err := os.ReadFile(filepath.Join(cfg.DataDir, "stepsData.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"JAVA":{"2024-06-15":true}}`, string(b))

	r = run(t, cfg, "toggle", "JAVA", "2024-06-15")
	require.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "JAVA 2024-06-15 undone")
}

func TestToggleUsageErrors(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)

	r := run(t, cfg, "toggle")
	assert.Equal(t, 2, r.code)

	r = run(t, cfg, "toggle", "RUST")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "unknown item: RUST")

	r = run(t, cfg, "toggle", "GYM", "2024-02-30")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "parse date key")
}

func TestStatsScenario(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)
	require.Equal(t, 0, run(t, cfg, "toggle", "JAVA", "2024-06-15").code)

	r := run(t, cfg, "stats")
	require.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "JAVA:       1")
	assert.Contains(t, r.stdout, "GYM:        0")
	assert.Contains(t, r.stdout, "TOEIC_RC:   0")
}

func TestMalformedDataStartsEmpty(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "stepsData.json"), []byte("not json"), 0o644))

	r := run(t, cfg, "stats")
	require.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "JAVA:       0")

	logged, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "malformed tracking data")
}

func TestShow(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)
	require.Equal(t, 0, run(t, cfg, "toggle", "GYM", "2024-05-02").code)

	r := run(t, cfg, "show", "2024-05")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "2024 / 5")
	assert.Contains(t, r.stdout, "HEALTH")
	assert.Contains(t, r.stdout, "......x")

	r = run(t, cfg, "show", "GYM", "2024-05")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "GYM Calendar")
	assert.Contains(t, r.stdout, "[x]")

	r = run(t, cfg, "show", "nope")
	assert.Equal(t, 2, r.code)
}

func TestItems(t *testing.T) {
	r := run(t, testConfig(t, config.BackendFile), "items")
	require.Equal(t, 0, r.code)
	for _, s := range []string{"LANGUAGE", "CODING", "HEALTH", "C++", "#16A34A"} {
		assert.Contains(t, r.stdout, s)
	}
}

func TestSQLiteBackend(t *testing.T) {
	cfg := testConfig(t, config.BackendSQLite)

	require.Equal(t, 0, run(t, cfg, "toggle", "PYTHON", "2024-06-01").code)
	require.Equal(t, 0, run(t, cfg, "toggle", "PYTHON", "2024-06-02").code)

	r := run(t, cfg, "stats")
	require.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "PYTHON:     2")
	assert.FileExists(t, cfg.SQLitePath)
}

func TestInvalidConfig(t *testing.T) {
	cfg := testConfig(t, "redis")
	r := run(t, cfg, "stats")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "invalid backend")
}

func TestCustomCatalog(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)
	cfg.CatalogPath = filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(cfg.CatalogPath, []byte(`categories:
  - name: MUSIC
    items: [PIANO]
colors:
  PIANO: "#123456"
`), 0o644))

	r := run(t, cfg, "toggle", "PIANO", "2024-06-15")
	require.Equal(t, 0, r.code, r.stderr)

	r = run(t, cfg, "toggle", "GYM")
	assert.Equal(t, 2, r.code)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/steps/internal/log"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	// Storage
	DataDir    string
	Backend    string
	SQLitePath string

	// Catalog override (YAML); empty means the built-in catalog
	CatalogPath string

	// Presentation
	Theme string

	// Logging
	LogLevel string
	LogFile  string
}

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding ones already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func Load() *Config {
	cfg := &Config{
		DataDir:     getEnv("STEPS_DATA_DIR", defaultDataDir()),
		Backend:     strings.ToLower(getEnv("STEPS_BACKEND", BackendFile)),
		SQLitePath:  getEnv("STEPS_SQLITE_PATH", ""),
		CatalogPath: getEnv("STEPS_CATALOG", ""),
		Theme:       getEnv("STEPS_THEME", "classic"),
		LogLevel:    getEnv("STEPS_LOG_LEVEL", "info"),
		LogFile:     getEnv("STEPS_LOG_FILE", ""),
	}
	cfg.ResolvePaths()
	return cfg
}

// ResolvePaths fills paths that default to locations inside DataDir.
// Call it again after overriding DataDir.
func (c *Config) ResolvePaths() {
	if c.SQLitePath == "" {
		c.SQLitePath = filepath.Join(c.DataDir, "steps.db")
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(c.DataDir, "steps.log")
	}
}

// SetDataDir moves DataDir and every path still derived from the old one.
func (c *Config) SetDataDir(dir string) {
	old := c.DataDir
	c.DataDir = dir
	if c.SQLitePath == filepath.Join(old, "steps.db") {
		c.SQLitePath = ""
	}
	if c.LogFile == filepath.Join(old, "steps.log") {
		c.LogFile = ""
	}
	c.ResolvePaths()
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, "data dir is required")
	}

	switch c.Backend {
	case BackendFile:
	case BackendSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			errs = append(errs, "sqlite path is required for the sqlite backend")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid backend '%s': must be one of: file, sqlite", c.Backend))
	}

	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		errs = append(errs, fmt.Sprintf("invalid theme '%s': must be one of: classic, neon, mono", c.Theme))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".steps"
	}
	return filepath.Join(home, ".steps")
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

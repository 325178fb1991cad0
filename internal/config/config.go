// Package config handles the configuration directory, the optional todo.env
// file, and backend selection.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// EnvFile is the optional settings file in the config directory.
	EnvFile = "todo.env"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// DefaultSlot is the slot name used when TODO_SLOT is unset.
	DefaultSlot = "todos"
)

// Backend names.
const (
	BackendFile   = "file"
	BackendSQL    = "sql"
	BackendMemory = "memory"
)

// Environment keys read from the process environment and todo.env.
const (
	EnvBackend   = "TODO_BACKEND"
	EnvSlot      = "TODO_SLOT"
	EnvDataDir   = "TODO_DATA_DIR"
	EnvSQLDriver = "TODO_SQL_DRIVER"
	EnvSQLDSN    = "TODO_SQL_DSN"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Backend selects the snapshot backend: file, sql or memory.
	Backend string

	// Slot is the key the task list is stored under.
	Slot string

	// DataDir is the directory used by the file backend.
	DataDir string

	// SQLDriver is "mysql" or "postgres".
	SQLDriver string

	// SQLDSN is the data source name for the sql backend.
	SQLDSN string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// Option overrides a setting after todo.env and the environment are read,
// before validation.
type Option func(*Config)

// WithBackend overrides TODO_BACKEND. An empty name keeps the configured one.
func WithBackend(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.Backend = name
		}
	}
}

// New creates a Config with the default or specified config directory and
// fills settings from todo.env and the environment. The process environment
// takes precedence over todo.env, and opts take precedence over both.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string, opts ...Option) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	c := &Config{Dir: dir}

	fileEnv, err := godotenv.Read(c.EnvPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("invalid %s: %w", EnvFile, err)
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(fileEnv[key])
	}

	c.Backend = lookup(EnvBackend)
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	c.Slot = lookup(EnvSlot)
	if c.Slot == "" {
		c.Slot = DefaultSlot
	}
	c.DataDir = lookup(EnvDataDir)
	if c.DataDir == "" {
		c.DataDir = filepath.Join(dir, "data")
	}
	c.SQLDriver = lookup(EnvSQLDriver)
	c.SQLDSN = lookup(EnvSQLDSN)

	for _, opt := range opts {
		opt(c)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// KnownBackend reports whether name is a supported backend.
func KnownBackend(name string) bool {
	switch name {
	case BackendFile, BackendSQL, BackendMemory:
		return true
	default:
		return false
	}
}

// Validate checks the backend settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendMemory:
		return nil
	case BackendSQL:
		if c.SQLDriver == "" {
			return fmt.Errorf("%s is required for the sql backend", EnvSQLDriver)
		}
		if c.SQLDSN == "" {
			return fmt.Errorf("%s is required for the sql backend", EnvSQLDSN)
		}
		return nil
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// EnvPath returns the path to todo.env.
func (c *Config) EnvPath() string {
	return filepath.Join(c.Dir, EnvFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

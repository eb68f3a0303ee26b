package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrDraftsDirRequired indicates the drafts directory was cleared out.
var ErrDraftsDirRequired = errors.New("blog config: drafts directory is required")

// ErrPublishedDirRequired indicates the published directory was cleared out.
var ErrPublishedDirRequired = errors.New("blog config: published directory is required")

// ErrDirsMustDiffer rejects configurations that collapse both areas into one
// directory, which would make the filename shape the only lifecycle signal.
var ErrDirsMustDiffer = errors.New("blog config: drafts and published directories must differ")

var ErrAuthorRequired = errors.New("blog config: author is required")
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")

// Config aggregates the fixed inputs of the lifecycle manager. Fields
// intentionally use simple types so host applications can extend them later.
type Config struct {
	// DraftsDir holds unpublished posts without a date prefix.
	DraftsDir string `env:"BLOG_DRAFTS_DIR"`
	// PublishedDir holds published posts carrying a YYYY-MM-DD- prefix.
	PublishedDir string `env:"BLOG_POSTS_DIR"`
	// Author is written verbatim into the front matter of every new draft.
	Author  string `env:"BLOG_AUTHOR"`
	Logging LoggingConfig
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Level     string `env:"BLOG_LOG_LEVEL"`
	Format    string `env:"BLOG_LOG_FORMAT"`
	AddSource bool   `env:"BLOG_LOG_SOURCE"`
	Focus     []string
}

// DefaultConfig returns the directory layout and author used when nothing is
// overridden. The underscore-prefixed directories match what static site
// generators conventionally watch.
func DefaultConfig() Config {
	return Config{
		DraftsDir:    "_drafts",
		PublishedDir: "_posts",
		Author:       "admin",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// FromEnv applies environment variable overrides on top of the provided
// config and validates the result.
func FromEnv(cfg Config) (Config, error) {
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("blog config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first configuration inconsistency found.
func (cfg Config) Validate() error {
	drafts := strings.TrimSpace(cfg.DraftsDir)
	published := strings.TrimSpace(cfg.PublishedDir)

	if drafts == "" {
		return ErrDraftsDirRequired
	}
	if published == "" {
		return ErrPublishedDirRequired
	}
	if drafts == published {
		return fmt.Errorf("%w: %s", ErrDirsMustDiffer, drafts)
	}
	if strings.TrimSpace(cfg.Author) == "" {
		return ErrAuthorRequired
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "json", "pretty":
		return true
	default:
		return false
	}
}

package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Options captures configuration for post CLI bootstraps. Empty fields fall
// back to environment overrides and then the built-in defaults.
type Options struct {
	DraftsDir      string
	PublishedDir   string
	Author         string
	LogLevel       string
	LogFormat      string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the blog module and the configured post service/logger.
type Module struct {
	Module  *blog.Module
	Service interfaces.PostService
	Logger  interfaces.Logger
}

// BuildModule constructs a blog module configured for post lifecycle operations.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := blog.ConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if trimmed := strings.TrimSpace(opts.DraftsDir); trimmed != "" {
		cfg.DraftsDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.PublishedDir); trimmed != "" {
		cfg.PublishedDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.Author); trimmed != "" {
		cfg.Author = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Format = trimmed
	}

	modOpts := []blog.Option{}
	if opts.LoggerProvider != nil {
		modOpts = append(modOpts, blog.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := blog.New(cfg, modOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise blog module: %w", err)
	}

	return &Module{
		Module:  module,
		Service: module.Posts(),
		Logger:  logging.PostsLogger(module.LoggerProvider()),
	}, nil
}

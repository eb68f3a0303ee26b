package blog

import (
	postcmd "github.com/goliatone/go-blog/internal/commands/post"
	"github.com/goliatone/go-blog/internal/lifecycle"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// PostService exports the lifecycle service contract for consumers of the blog package.
type PostService = interfaces.PostService

// Post exports the post record DTO.
type Post = interfaces.Post

// CreateDraftInput exports the create operation inputs.
type CreateDraftInput = interfaces.CreateDraftInput

// Module represents the top level blog runtime façade.
type Module struct {
	config   Config
	provider interfaces.LoggerProvider
	posts    *lifecycle.Manager
	handlers *postcmd.HandlerSet
}

// Option customises module construction.
type Option func(*Module)

// WithLoggerProvider overrides the default go-logger backed provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// New constructs a blog module using the provided configuration and optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	posts, err := lifecycle.New(lifecycle.Config{
		DraftsDir:    cfg.DraftsDir,
		PublishedDir: cfg.PublishedDir,
		Author:       cfg.Author,
		Logger:       logging.LifecycleLogger(m.provider),
	})
	if err != nil {
		return nil, err
	}
	m.posts = posts

	handlers, err := postcmd.RegisterPostCommands(nil, posts, m.provider)
	if err != nil {
		return nil, err
	}
	m.handlers = handlers

	return m, nil
}

// Posts returns the configured lifecycle service.
func (m *Module) Posts() PostService {
	if m == nil {
		return nil
	}
	return m.posts
}

// Commands returns the wired post command handlers.
func (m *Module) Commands() *postcmd.HandlerSet {
	if m == nil {
		return nil
	}
	return m.handlers
}

// LoggerProvider exposes the provider backing module loggers so CLI tools can
// scope their own.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

package postcmd

import (
	"errors"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the post command handlers produced by RegisterPostCommands.
type HandlerSet struct {
	CreateDraft *CreateDraftHandler
	Publish     *PublishPostHandler
	Unpublish   *UnpublishPostHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	createHandlerOpts    []commands.HandlerOption[CreateDraftCommand]
	publishHandlerOpts   []commands.HandlerOption[PublishPostCommand]
	unpublishHandlerOpts []commands.HandlerOption[UnpublishPostCommand]
}

// WithCreateHandlerOptions forwards options to the CreateDraftHandler constructor.
func WithCreateHandlerOptions(opts ...commands.HandlerOption[CreateDraftCommand]) Option {
	return func(cfg *options) {
		cfg.createHandlerOpts = append(cfg.createHandlerOpts, opts...)
	}
}

// WithPublishHandlerOptions forwards options to the PublishPostHandler constructor.
func WithPublishHandlerOptions(opts ...commands.HandlerOption[PublishPostCommand]) Option {
	return func(cfg *options) {
		cfg.publishHandlerOpts = append(cfg.publishHandlerOpts, opts...)
	}
}

// WithUnpublishHandlerOptions forwards options to the UnpublishPostHandler constructor.
func WithUnpublishHandlerOptions(opts ...commands.HandlerOption[UnpublishPostCommand]) Option {
	return func(cfg *options) {
		cfg.unpublishHandlerOpts = append(cfg.unpublishHandlerOpts, opts...)
	}
}

// RegisterPostCommands builds post command handlers and registers them with the provided
// registry. A HandlerSet containing the constructed handlers is returned so callers can
// wire additional integrations as needed.
func RegisterPostCommands(reg CommandRegistry, service interfaces.PostService, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("post command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "post")

	createHandler := NewCreateDraftHandler(service, logger, cfg.createHandlerOpts...)
	publishHandler := NewPublishPostHandler(service, logger, cfg.publishHandlerOpts...)
	unpublishHandler := NewUnpublishPostHandler(service, logger, cfg.unpublishHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(createHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(publishHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(unpublishHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		CreateDraft: createHandler,
		Publish:     publishHandler,
		Unpublish:   unpublishHandler,
	}, nil
}

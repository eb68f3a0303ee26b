package postcmd

import (
	"context"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	createDraftOperation = "post.create_draft"
	publishOperation     = "post.publish"
	unpublishOperation   = "post.unpublish"
)

var (
	_ command.Commander[CreateDraftCommand]   = (*CreateDraftHandler)(nil)
	_ command.Commander[PublishPostCommand]   = (*PublishPostHandler)(nil)
	_ command.Commander[UnpublishPostCommand] = (*UnpublishPostHandler)(nil)
)

// CreateDraftHandler runs draft creation through the shared command handler foundation.
type CreateDraftHandler struct {
	inner *commands.Handler[CreateDraftCommand]
}

// NewCreateDraftHandler creates a handler bound to the supplied post service.
func NewCreateDraftHandler(service interfaces.PostService, logger interfaces.Logger, opts ...commands.HandlerOption[CreateDraftCommand]) *CreateDraftHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CreateDraftCommand) error {
		created, err := service.CreateDraft(ctx, interfaces.CreateDraftInput{
			Title: msg.Title,
			Slug:  msg.Slug,
		})
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"filename": created.Filename,
			"slug":     created.Slug,
		}).Info("post.command.create_draft.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[CreateDraftCommand]{
		commands.WithLogger[CreateDraftCommand](baseLogger),
		commands.WithOperation[CreateDraftCommand](createDraftOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateDraftHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateDraftCommand].
func (h *CreateDraftHandler) Execute(ctx context.Context, msg CreateDraftCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PublishPostHandler runs publishes through the shared command handler foundation.
type PublishPostHandler struct {
	inner *commands.Handler[PublishPostCommand]
}

// NewPublishPostHandler creates a handler bound to the supplied post service.
func NewPublishPostHandler(service interfaces.PostService, logger interfaces.Logger, opts ...commands.HandlerOption[PublishPostCommand]) *PublishPostHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PublishPostCommand) error {
		published, err := service.Publish(ctx, msg.Filename)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"filename": published.Filename,
			"source":   msg.Filename,
		}).Info("post.command.publish.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[PublishPostCommand]{
		commands.WithLogger[PublishPostCommand](baseLogger),
		commands.WithOperation[PublishPostCommand](publishOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishPostHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishPostCommand].
func (h *PublishPostHandler) Execute(ctx context.Context, msg PublishPostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UnpublishPostHandler runs unpublishes through the shared command handler foundation.
type UnpublishPostHandler struct {
	inner *commands.Handler[UnpublishPostCommand]
}

// NewUnpublishPostHandler creates a handler bound to the supplied post service.
func NewUnpublishPostHandler(service interfaces.PostService, logger interfaces.Logger, opts ...commands.HandlerOption[UnpublishPostCommand]) *UnpublishPostHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg UnpublishPostCommand) error {
		draft, err := service.Unpublish(ctx, msg.Filename)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"filename": draft.Filename,
			"source":   msg.Filename,
		}).Info("post.command.unpublish.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[UnpublishPostCommand]{
		commands.WithLogger[UnpublishPostCommand](baseLogger),
		commands.WithOperation[UnpublishPostCommand](unpublishOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UnpublishPostHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UnpublishPostCommand].
func (h *UnpublishPostHandler) Execute(ctx context.Context, msg UnpublishPostCommand) error {
	return h.inner.Execute(ctx, msg)
}

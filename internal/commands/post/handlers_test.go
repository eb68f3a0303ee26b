package postcmd

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
	goerrors "github.com/goliatone/go-errors"
)

type stubPostService struct {
	createCalls    []interfaces.CreateDraftInput
	publishCalls   []string
	unpublishCalls []string

	createErr    error
	publishErr   error
	unpublishErr error
}

func (s *stubPostService) CreateDraft(_ context.Context, input interfaces.CreateDraftInput) (*interfaces.Post, error) {
	s.createCalls = append(s.createCalls, input)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &interfaces.Post{Filename: "stub.md", Slug: "stub", State: interfaces.PostStateDraft}, nil
}

func (s *stubPostService) Publish(_ context.Context, filename string) (*interfaces.Post, error) {
	s.publishCalls = append(s.publishCalls, filename)
	if s.publishErr != nil {
		return nil, s.publishErr
	}
	return &interfaces.Post{Filename: "2024-03-01-" + filename, State: interfaces.PostStatePublished}, nil
}

func (s *stubPostService) Unpublish(_ context.Context, filename string) (*interfaces.Post, error) {
	s.unpublishCalls = append(s.unpublishCalls, filename)
	if s.unpublishErr != nil {
		return nil, s.unpublishErr
	}
	return &interfaces.Post{Filename: filename, State: interfaces.PostStateDraft}, nil
}

func (s *stubPostService) List(context.Context) ([]*interfaces.Post, error) {
	return nil, nil
}

var _ interfaces.PostService = (*stubPostService)(nil)

func TestCreateDraftHandlerInvokesService(t *testing.T) {
	service := &stubPostService{}
	handler := NewCreateDraftHandler(service, logging.NoOp())

	cmd := CreateDraftCommand{Title: "Hello World", Slug: "hello-world"}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute create draft: %v", err)
	}

	if len(service.createCalls) != 1 {
		t.Fatalf("expected one create call, got %d", len(service.createCalls))
	}
	call := service.createCalls[0]
	if call.Title != "Hello World" {
		t.Fatalf("expected title to pass through, got %q", call.Title)
	}
	if call.Slug != "hello-world" {
		t.Fatalf("expected slug override to pass through, got %q", call.Slug)
	}
}

func TestCreateDraftHandlerValidation(t *testing.T) {
	service := &stubPostService{}
	handler := NewCreateDraftHandler(service, logging.NoOp())

	err := handler.Execute(context.Background(), CreateDraftCommand{Title: "   "})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(service.createCalls) != 0 {
		t.Fatalf("expected no create calls, got %d", len(service.createCalls))
	}
}

func TestCreateDraftHandlerServiceError(t *testing.T) {
	wantErr := errors.New("disk full")
	service := &stubPostService{createErr: wantErr}
	handler := NewCreateDraftHandler(service, logging.NoOp())

	err := handler.Execute(context.Background(), CreateDraftCommand{Title: "Hello"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped service error, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestPublishHandlerInvokesService(t *testing.T) {
	service := &stubPostService{}
	handler := NewPublishPostHandler(service, logging.NoOp())

	if err := handler.Execute(context.Background(), PublishPostCommand{Filename: "hello_world.md"}); err != nil {
		t.Fatalf("execute publish: %v", err)
	}
	if len(service.publishCalls) != 1 || service.publishCalls[0] != "hello_world.md" {
		t.Fatalf("unexpected publish calls: %#v", service.publishCalls)
	}
}

func TestPublishHandlerValidation(t *testing.T) {
	service := &stubPostService{}
	handler := NewPublishPostHandler(service, logging.NoOp())

	err := handler.Execute(context.Background(), PublishPostCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(service.publishCalls) != 0 {
		t.Fatalf("expected no publish calls, got %d", len(service.publishCalls))
	}
}

func TestUnpublishHandlerInvokesService(t *testing.T) {
	service := &stubPostService{}
	handler := NewUnpublishPostHandler(service, logging.NoOp())

	if err := handler.Execute(context.Background(), UnpublishPostCommand{Filename: "2024-03-01-hello_world.md"}); err != nil {
		t.Fatalf("execute unpublish: %v", err)
	}
	if len(service.unpublishCalls) != 1 || service.unpublishCalls[0] != "2024-03-01-hello_world.md" {
		t.Fatalf("unexpected unpublish calls: %#v", service.unpublishCalls)
	}
}

func TestUnpublishHandlerContextCancellation(t *testing.T) {
	service := &stubPostService{}
	handler := NewUnpublishPostHandler(service, logging.NoOp())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, UnpublishPostCommand{Filename: "hello.md"})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command error category, got %v", err)
	}
	if len(service.unpublishCalls) != 0 {
		t.Fatalf("expected no unpublish calls, got %d", len(service.unpublishCalls))
	}
}

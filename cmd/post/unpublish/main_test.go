package main

import (
	"context"
	"testing"

	"github.com/goliatone/go-blog/cmd/post/internal/bootstrap"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

type stubPostService struct {
	unpublishCalls []string
}

func (s *stubPostService) CreateDraft(context.Context, interfaces.CreateDraftInput) (*interfaces.Post, error) {
	return nil, nil
}

func (s *stubPostService) Publish(context.Context, string) (*interfaces.Post, error) {
	return nil, nil
}

func (s *stubPostService) Unpublish(_ context.Context, filename string) (*interfaces.Post, error) {
	s.unpublishCalls = append(s.unpublishCalls, filename)
	return &interfaces.Post{Filename: "hello_world.md", State: interfaces.PostStateDraft}, nil
}

func (s *stubPostService) List(context.Context) ([]*interfaces.Post, error) {
	return nil, nil
}

func TestRunUnpublishUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubPostService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Service: svc,
			Logger:  logging.NoOp(),
		}, nil
	}

	if err := runUnpublish([]string{"-post", "2024-03-01-hello_world.md"}); err != nil {
		t.Fatalf("runUnpublish returned error: %v", err)
	}
	if len(svc.unpublishCalls) != 1 || svc.unpublishCalls[0] != "2024-03-01-hello_world.md" {
		t.Fatalf("unexpected unpublish calls: %#v", svc.unpublishCalls)
	}
}

func TestRunUnpublishMissingFilename(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubPostService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Service: svc,
			Logger:  logging.NoOp(),
		}, nil
	}

	if err := runUnpublish(nil); err == nil {
		t.Fatal("expected error for missing post flag")
	}
	if len(svc.unpublishCalls) != 0 {
		t.Fatalf("expected no unpublish calls, got %d", len(svc.unpublishCalls))
	}
}

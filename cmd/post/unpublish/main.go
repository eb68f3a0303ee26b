package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-blog/cmd/post/internal/bootstrap"
	postcmd "github.com/goliatone/go-blog/internal/commands/post"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runUnpublish(os.Args[1:]); err != nil {
		log.Fatalf("post unpublish: %v", err)
	}
}

func runUnpublish(args []string) error {
	fs := flag.NewFlagSet("post-unpublish", flag.ExitOnError)
	filename := fs.String("post", "", "Published filename to move back to drafts (required)")
	draftsDir := fs.String("drafts-dir", "", "Directory holding draft posts (defaults to _drafts)")
	postsDir := fs.String("posts-dir", "", "Directory holding published posts (defaults to _posts)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		DraftsDir:    *draftsDir,
		PublishedDir: *postsDir,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := postcmd.NewUnpublishPostHandler(module.Service, module.Logger)
	cmd := postcmd.UnpublishPostCommand{
		Filename: *filename,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute unpublish command: %w", err)
	}

	fmt.Fprintf(os.Stdout, "unpublished %s\n", *filename)
	return nil
}

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
	if err := runCreate(os.Args[1:]); err != nil {
		log.Fatalf("post create: %v", err)
	}
}

func runCreate(args []string) error {
	fs := flag.NewFlagSet("post-create", flag.ExitOnError)
	title := fs.String("title", "", "Title of the new draft (required)")
	slug := fs.String("slug", "", "Explicit filename stem overriding the title-derived slug")
	draftsDir := fs.String("drafts-dir", "", "Directory holding draft posts (defaults to _drafts)")
	postsDir := fs.String("posts-dir", "", "Directory holding published posts (defaults to _posts)")
	author := fs.String("author", "", "Author recorded in the front matter")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		DraftsDir:    *draftsDir,
		PublishedDir: *postsDir,
		Author:       *author,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := postcmd.NewCreateDraftHandler(module.Service, module.Logger)
	cmd := postcmd.CreateDraftCommand{
		Title: *title,
		Slug:  *slug,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute create command: %w", err)
	}

	fmt.Fprintf(os.Stdout, "draft created for %q\n", *title)
	return nil
}

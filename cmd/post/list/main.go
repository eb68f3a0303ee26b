package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/goliatone/go-blog/cmd/post/internal/bootstrap"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runList(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("post list: %v", err)
	}
}

func runList(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("post-list", flag.ExitOnError)
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

	posts, err := module.Service.List(context.Background())
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	if len(posts) == 0 {
		fmt.Fprintln(out, "no posts found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tFILENAME\tTITLE\tPUBLISHED")
	for _, p := range posts {
		published := ""
		if p.State == interfaces.PostStatePublished && !p.PublishedOn.IsZero() {
			published = p.PublishedOn.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.State, p.Filename, p.Title, published)
	}
	return w.Flush()
}

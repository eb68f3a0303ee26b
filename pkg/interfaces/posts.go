package interfaces

import (
	"context"
	"time"
)

// PostState identifies which area of the blog tree a post currently lives in.
// The state is encoded entirely by location and filename shape; there is no
// separate index.
type PostState string

const (
	// PostStateDraft marks a post sitting in the drafts area without a date prefix.
	PostStateDraft PostState = "draft"
	// PostStatePublished marks a post sitting in the published area with a
	// YYYY-MM-DD- filename prefix.
	PostStatePublished PostState = "published"
)

// Post describes a single markdown post file as observed on disk.
type Post struct {
	// Filename is the file's current basename, including any date prefix.
	Filename string
	// Slug is the filename stem with extension and date prefix removed.
	Slug string
	// Title is the front matter title, when the file could be parsed.
	Title string
	// State reports which area the file resides in.
	State PostState
	// Path is the file's location on disk.
	Path string
	// PublishedOn carries the date encoded in the filename prefix. It is the
	// zero time for drafts.
	PublishedOn time.Time
}

// CreateDraftInput carries the inputs accepted by the create operation.
type CreateDraftInput struct {
	// Title is required and is written verbatim into the front matter.
	Title string
	// Slug optionally overrides the title-derived filename stem. When set it
	// must satisfy the default slug rules.
	Slug string
}

// PostService manages the draft/publish lifecycle of markdown post files.
// The filesystem directory listing is the only store; every operation's
// effect is a single write or rename.
type PostService interface {
	// CreateDraft writes a new draft with the canonical front matter
	// template, silently overwriting any existing file at the target path.
	CreateDraft(ctx context.Context, input CreateDraftInput) (*Post, error)
	// Publish moves a draft into the published area, prefixing the filename
	// with the current local date.
	Publish(ctx context.Context, filename string) (*Post, error)
	// Unpublish moves a published post back into the drafts area, stripping
	// one leading date prefix when present.
	Unpublish(ctx context.Context, filename string) (*Post, error)
	// List enumerates every post in both areas.
	List(ctx context.Context) ([]*Post, error)
}

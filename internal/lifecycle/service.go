package lifecycle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/post"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Config carries the fixed inputs of the lifecycle manager. Now and Logger
// are optional; they default to time.Now and a no-op logger.
type Config struct {
	DraftsDir    string
	PublishedDir string
	Author       string
	Now          func() time.Time
	Logger       interfaces.Logger
}

// Manager moves markdown post files between the drafts and published areas.
// The directory listing is the only store; every operation's effect is a
// single file write or rename, and all argument and existence checks run
// before any filesystem mutation.
type Manager struct {
	drafts    string
	published string
	author    string
	now       func() time.Time
	logger    interfaces.Logger
}

var _ interfaces.PostService = (*Manager)(nil)

// New constructs a Manager from the supplied configuration.
func New(cfg Config) (*Manager, error) {
	drafts := strings.TrimSpace(cfg.DraftsDir)
	if drafts == "" {
		return nil, ErrDraftsDirRequired
	}
	published := strings.TrimSpace(cfg.PublishedDir)
	if published == "" {
		return nil, ErrPublishedDirRequired
	}
	author := strings.TrimSpace(cfg.Author)
	if author == "" {
		return nil, ErrAuthorRequired
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Manager{
		drafts:    drafts,
		published: published,
		author:    author,
		now:       now,
		logger:    logger,
	}, nil
}

// CreateDraft writes a new draft file with the canonical front matter
// template. An existing file at the target path is overwritten silently;
// uniqueness is deliberately not enforced.
func (m *Manager) CreateDraft(ctx context.Context, input interfaces.CreateDraftInput) (*interfaces.Post, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	stem := post.Slugify(title)
	if override := strings.TrimSpace(input.Slug); override != "" {
		if !slug.IsValid(override) {
			return nil, fmt.Errorf("%w: %s", ErrSlugInvalid, override)
		}
		stem = override
	}
	if stem == "" {
		return nil, fmt.Errorf("%w: %q", ErrSlugEmpty, title)
	}

	filename := post.Filename(stem)
	path := filepath.Join(m.drafts, filename)

	if err := os.MkdirAll(m.drafts, 0o755); err != nil {
		return nil, fmt.Errorf("lifecycle: prepare drafts dir: %w", err)
	}
	if err := os.WriteFile(path, post.DraftContent(title, m.author), 0o644); err != nil {
		return nil, fmt.Errorf("lifecycle: write draft %s: %w", filename, err)
	}

	logging.WithPostContext(m.logger, filename, string(interfaces.PostStateDraft)).
		Info("lifecycle.create_draft.completed", "title", title)

	return &interfaces.Post{
		Filename: filename,
		Slug:     stem,
		Title:    title,
		State:    interfaces.PostStateDraft,
		Path:     path,
	}, nil
}

// Publish renames a draft into the published area, prefixing its filename
// with the local date at invocation time. File bytes are unchanged.
func (m *Manager) Publish(ctx context.Context, filename string) (*interfaces.Post, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	filename, err := cleanFilename(filename)
	if err != nil {
		return nil, err
	}

	source := filepath.Join(m.drafts, filename)
	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDraftNotFound, filename)
		}
		return nil, fmt.Errorf("lifecycle: stat draft %s: %w", filename, err)
	}

	published := post.WithDatePrefix(m.now(), filename)
	target := filepath.Join(m.published, published)

	if err := os.MkdirAll(m.published, 0o755); err != nil {
		return nil, fmt.Errorf("lifecycle: prepare published dir: %w", err)
	}
	if err := os.Rename(source, target); err != nil {
		return nil, fmt.Errorf("lifecycle: publish %s: %w", filename, err)
	}

	logging.WithPostContext(m.logger, published, string(interfaces.PostStatePublished)).
		Info("lifecycle.publish.completed", "source", filename)

	result := &interfaces.Post{
		Filename: published,
		Slug:     post.Slug(published),
		State:    interfaces.PostStatePublished,
		Path:     target,
	}
	if on, ok := post.PublishedOn(published); ok {
		result.PublishedOn = on
	}
	return result, nil
}

// Unpublish renames a published post back into the drafts area, stripping one
// leading date prefix when present. A filename without a prefix is moved as
// is; the permissive strip is intentional.
func (m *Manager) Unpublish(ctx context.Context, filename string) (*interfaces.Post, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	filename, err := cleanFilename(filename)
	if err != nil {
		return nil, err
	}

	source := filepath.Join(m.published, filename)
	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPublishedNotFound, filename)
		}
		return nil, fmt.Errorf("lifecycle: stat published post %s: %w", filename, err)
	}

	stripped := post.StripDatePrefix(filename)
	target := filepath.Join(m.drafts, stripped)

	if err := os.MkdirAll(m.drafts, 0o755); err != nil {
		return nil, fmt.Errorf("lifecycle: prepare drafts dir: %w", err)
	}
	if err := os.Rename(source, target); err != nil {
		return nil, fmt.Errorf("lifecycle: unpublish %s: %w", filename, err)
	}

	logging.WithPostContext(m.logger, stripped, string(interfaces.PostStateDraft)).
		Info("lifecycle.unpublish.completed", "source", filename)

	return &interfaces.Post{
		Filename: stripped,
		Slug:     post.Slug(stripped),
		State:    interfaces.PostStateDraft,
		Path:     target,
	}, nil
}

// List enumerates every markdown post in both areas, parsing each file's
// front matter for its title. Files that fail to parse are still listed with
// an empty title. A missing area directory yields no entries rather than an
// error, matching a blog tree that has not published anything yet.
func (m *Manager) List(ctx context.Context) ([]*interfaces.Post, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	drafts, err := m.scanArea(m.drafts, interfaces.PostStateDraft)
	if err != nil {
		return nil, err
	}
	published, err := m.scanArea(m.published, interfaces.PostStatePublished)
	if err != nil {
		return nil, err
	}

	posts := append(drafts, published...)
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].State != posts[j].State {
			return posts[i].State == interfaces.PostStateDraft
		}
		return posts[i].Filename < posts[j].Filename
	})
	return posts, nil
}

func (m *Manager) scanArea(dir string, state interfaces.PostState) ([]*interfaces.Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lifecycle: read %s: %w", dir, err)
	}

	var posts []*interfaces.Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), post.Extension) {
			continue
		}

		name := entry.Name()
		item := &interfaces.Post{
			Filename: name,
			Slug:     post.Slug(name),
			State:    state,
			Path:     filepath.Join(dir, name),
		}
		if on, ok := post.PublishedOn(name); ok {
			item.PublishedOn = on
		}

		data, err := os.ReadFile(item.Path)
		if err != nil {
			return nil, fmt.Errorf("lifecycle: read %s: %w", item.Path, err)
		}
		if meta, _, err := post.ParseFrontMatter(data); err != nil {
			logging.WithPostContext(m.logger, name, string(state)).
				Warn("lifecycle.list.frontmatter_unreadable", "error", err)
		} else {
			item.Title = meta.Title
		}

		posts = append(posts, item)
	}
	return posts, nil
}

func cleanFilename(filename string) (string, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return "", ErrFilenameRequired
	}
	if filename != filepath.Base(filename) {
		return "", fmt.Errorf("%w: %s", ErrFilenameInvalid, filename)
	}
	return filename, nil
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

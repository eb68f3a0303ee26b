package lifecycle

import "errors"

var (
	ErrTitleRequired     = errors.New("lifecycle: title is required")
	ErrFilenameRequired  = errors.New("lifecycle: filename is required")
	ErrFilenameInvalid   = errors.New("lifecycle: filename must not contain path separators")
	ErrSlugInvalid       = errors.New("lifecycle: slug contains invalid characters")
	ErrSlugEmpty         = errors.New("lifecycle: title derives an empty slug")
	ErrDraftNotFound     = errors.New("lifecycle: draft not found")
	ErrPublishedNotFound = errors.New("lifecycle: published post not found")

	ErrDraftsDirRequired    = errors.New("lifecycle: drafts directory is required")
	ErrPublishedDirRequired = errors.New("lifecycle: published directory is required")
	ErrAuthorRequired       = errors.New("lifecycle: author is required")
)

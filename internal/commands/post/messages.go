package postcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	createDraftMessageType = "blog.post.create_draft"
	publishMessageType     = "blog.post.publish"
	unpublishMessageType   = "blog.post.unpublish"
)

// CreateDraftCommand writes a new draft with the canonical front matter
// template. The title is recorded verbatim; the filename stem is derived from
// it unless an explicit slug override is supplied.
type CreateDraftCommand struct {
	// Title is the human-readable post title. Required.
	Title string `json:"title"`
	// Slug optionally overrides the title-derived filename stem.
	Slug string `json:"slug,omitempty"`
}

// Type implements command.Message.
func (CreateDraftCommand) Type() string { return createDraftMessageType }

// Validate ensures a usable title is present before handlers execute.
func (cmd CreateDraftCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Title, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.post.create_draft.title_required", "title is required")
			}
			return nil
		})),
	)
}

// PublishPostCommand moves a draft into the published area, prefixing its
// filename with the current local date.
type PublishPostCommand struct {
	// Filename is the draft's basename, including extension.
	Filename string `json:"filename"`
}

// Type implements command.Message.
func (PublishPostCommand) Type() string { return publishMessageType }

// Validate ensures a filename is present before handlers execute.
func (cmd PublishPostCommand) Validate() error {
	return validateFilename(&cmd, &cmd.Filename, "blog.post.publish.filename_required")
}

// UnpublishPostCommand moves a published post back into the drafts area,
// stripping one leading date prefix when present.
type UnpublishPostCommand struct {
	// Filename is the post's basename as it appears in the published area.
	Filename string `json:"filename"`
}

// Type implements command.Message.
func (UnpublishPostCommand) Type() string { return unpublishMessageType }

// Validate ensures a filename is present before handlers execute.
func (cmd UnpublishPostCommand) Validate() error {
	return validateFilename(&cmd, &cmd.Filename, "blog.post.unpublish.filename_required")
}

func validateFilename(target any, field *string, code string) error {
	return validation.ValidateStruct(target,
		validation.Field(field, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError(code, "filename is required")
			}
			return nil
		})),
	)
}

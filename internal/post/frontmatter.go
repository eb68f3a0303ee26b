package post

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter carries the metadata block the external site generator reads
// from the top of every post file.
type FrontMatter struct {
	Layout   string `yaml:"layout"`
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Comments bool   `yaml:"comments"`

	Custom map[string]any `yaml:",inline"`
}

// DraftContent renders the canonical front matter template for a new draft.
// Field order, delimiters, and the trailing blank line are part of the
// contract with the site generator; the title is written verbatim.
func DraftContent(title, author string) []byte {
	return fmt.Appendf(nil, "---\nlayout: post\ntitle: %s\nauthor: %s\ncomments: true\n---\n\n", title, author)
}

// ParseFrontMatter extracts metadata and markdown body content from the
// provided source bytes. It returns the structured front matter, the body
// without delimiters or the blank separator line the template writes after
// them, and any error encountered.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	// The parser keeps everything after the closing delimiter, including the
	// separator line from DraftContent. Drop that one newline only.
	body = bytes.TrimPrefix(body, []byte("\n"))

	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}
	return meta, body, nil
}

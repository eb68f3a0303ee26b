package post

import (
	"strings"
	"testing"
)

func TestDraftContentExactTemplate(t *testing.T) {
	got := string(DraftContent("Hello World", "admin"))
	want := "---\nlayout: post\ntitle: Hello World\nauthor: admin\ncomments: true\n---\n\n"
	if got != want {
		t.Fatalf("DraftContent mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestDraftContentTitleVerbatim(t *testing.T) {
	got := string(DraftContent("Mixed CASE  & Symbols", "jane"))
	if want := "title: Mixed CASE  & Symbols\n"; !strings.Contains(got, want) {
		t.Fatalf("expected verbatim title line %q in %q", want, got)
	}
}

func TestParseFrontMatterRoundTrip(t *testing.T) {
	source := DraftContent("Hello World", "admin")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Layout != "post" {
		t.Fatalf("Layout = %q", meta.Layout)
	}
	if meta.Title != "Hello World" {
		t.Fatalf("Title = %q", meta.Title)
	}
	if meta.Author != "admin" {
		t.Fatalf("Author = %q", meta.Author)
	}
	if !meta.Comments {
		t.Fatalf("expected comments enabled")
	}
	if len(body) != 0 {
		t.Fatalf("expected empty body, got %q", string(body))
	}
}

func TestParseFrontMatterCustomFields(t *testing.T) {
	source := []byte("---\nlayout: post\ntitle: Custom\nauthor: admin\ncomments: false\ncategory: travel\n---\n\nBody text.\n")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Comments {
		t.Fatalf("expected comments disabled")
	}
	if meta.Custom["category"] != "travel" {
		t.Fatalf("Custom category missing: %#v", meta.Custom)
	}
	if string(body) != "Body text.\n" {
		t.Fatalf("body mismatch: %q", string(body))
	}
}

func TestParseFrontMatterKeepsIntentionalBlankLines(t *testing.T) {
	source := []byte("---\nlayout: post\ntitle: Spaced\nauthor: admin\ncomments: true\n---\n\n\nBody after blank line.\n")

	_, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if string(body) != "\nBody after blank line.\n" {
		t.Fatalf("body mismatch: %q", string(body))
	}
}

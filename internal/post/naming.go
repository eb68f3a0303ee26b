package post

import (
	"regexp"
	"strings"
	"time"
)

// Extension is the filename extension every post carries.
const Extension = ".md"

// datePrefixFormat renders the publish date encoded into published filenames.
const datePrefixFormat = "2006-01-02"

var (
	datePrefixPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-`)
	slugUnsafe        = regexp.MustCompile(`[^a-z0-9_-]+`)
)

// Slugify derives a filesystem- and URL-safe token from a human title:
// lowercased, whitespace runs collapsed to single underscores, and any
// remaining unsafe characters removed. The result can be empty when the
// title contains no usable characters; callers must reject that case.
func Slugify(title string) string {
	cleaned := strings.ToLower(strings.TrimSpace(title))
	cleaned = strings.Join(strings.Fields(cleaned), "_")
	return slugUnsafe.ReplaceAllString(cleaned, "")
}

// Filename appends the post extension to a slug.
func Filename(slug string) string {
	return slug + Extension
}

// Slug recovers the slug from a filename by stripping any date prefix and the
// post extension.
func Slug(filename string) string {
	return strings.TrimSuffix(StripDatePrefix(filename), Extension)
}

// HasDatePrefix reports whether the filename starts with a YYYY-MM-DD- token.
func HasDatePrefix(filename string) bool {
	return datePrefixPattern.MatchString(filename)
}

// StripDatePrefix removes a single leading YYYY-MM-DD- token when present and
// passes the filename through unchanged otherwise. For any name whose own stem
// does not begin with a date-shaped token the function is idempotent.
func StripDatePrefix(filename string) string {
	return datePrefixPattern.ReplaceAllString(filename, "")
}

// WithDatePrefix prefixes the filename with the date portion of t.
func WithDatePrefix(t time.Time, filename string) string {
	return t.Format(datePrefixFormat) + "-" + filename
}

// PublishedOn parses the date encoded in a published filename. The boolean is
// false when the filename carries no prefix or the prefix is not a real date.
func PublishedOn(filename string) (time.Time, bool) {
	match := datePrefixPattern.FindString(filename)
	if match == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(datePrefixFormat, strings.TrimSuffix(match, "-"), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

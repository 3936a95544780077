package pkg

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug turns a job title into a URL-safe slug. Uniqueness is handled
// by the caller, usually by appending an id fragment.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "untitled-job"
	}
	return slug
}

// JobSlug builds the stored slug for a job: slugified title plus the first
// six characters of the job id.
func JobSlug(title, id string) string {
	suffix := id
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return GenerateSlug(title) + "-" + suffix
}

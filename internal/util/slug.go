package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slugify builds a URL-friendly slug from a title. Uniqueness suffixing is the
// caller's job, see UniqueSlug.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// UniqueSlug appends "-2", "-3", ... until taken reports the slug as free.
func UniqueSlug(base string, taken func(slug string) bool) string {
	slug := base
	for i := 2; taken(slug); i++ {
		slug = base + "-" + strconv.Itoa(i)
	}
	return slug
}

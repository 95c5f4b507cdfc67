package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "go-for-beginners", Slugify("Go for Beginners"))
	assert.Equal(t, "whats-new-in-v2", Slugify("What's New in v2?"))
	assert.Equal(t, "a-b-c", Slugify("  a   b --- c  "))
	assert.Equal(t, "", Slugify("!?#"))
}

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{"go-basics": true, "go-basics-2": true}

	slug := UniqueSlug("go-basics", func(s string) bool { return taken[s] })
	assert.Equal(t, "go-basics-3", slug)

	slug = UniqueSlug("fresh", func(s string) bool { return false })
	assert.Equal(t, "fresh", slug)
}

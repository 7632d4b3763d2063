package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	p := Build("julienne carrots")

	assert.Equal(t, "https://www.google.com/search?q=julienne+carrots", p.Search)
	assert.Equal(t, "https://www.youtube.com/results?search_query=julienne+carrots", p.Video)
}

func TestBuildCollapsesWhitespace(t *testing.T) {
	p := Build("  fold   egg whites ")

	assert.Equal(t, "https://www.google.com/search?q=fold+egg+whites", p.Search)
}

func TestBuildEscapesSpecials(t *testing.T) {
	p := Build("what's a bain-marie?")

	assert.NotContains(t, p.Search, " ")
	assert.NotContains(t, p.Search, "?q=what's")
}

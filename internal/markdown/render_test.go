package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCachesByIndex(t *testing.T) {
	r, err := NewRenderer(80)
	require.NoError(t, err)

	first := r.Render("some **bold** text", 0)
	assert.Contains(t, first, "bold")

	// A cached index ignores new content until the cache is dropped.
	cached := r.Render("entirely different", 0)
	assert.Equal(t, first, cached)

	r.Reset()
	fresh := r.Render("entirely different", 0)
	assert.NotEqual(t, first, fresh)
}

func TestRenderNegativeIndexSkipsCache(t *testing.T) {
	r, err := NewRenderer(80)
	require.NoError(t, err)

	r.Render("one", -1)
	two := r.Render("two", -1)
	assert.Contains(t, two, "two")
}

func TestSetWidthDropsCache(t *testing.T) {
	r, err := NewRenderer(80)
	require.NoError(t, err)

	r.Render("a fairly long line that wraps differently at different widths", 0)
	r.SetWidth(20)

	narrow := r.Render("a fairly long line that wraps differently at different widths", 0)
	assert.Contains(t, narrow, "wraps")
}

// Package markdown renders assistant replies for the terminal.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer wraps glamour with a per-message cache. Replies arrive whole, so
// a message's rendering only changes when the width does.
type Renderer struct {
	glamour *glamour.TermRenderer
	width   int
	cache   map[int]string
}

// NewRenderer creates a renderer wrapping at the given width.
func NewRenderer(width int) (*Renderer, error) {
	renderer, err := newTermRenderer(width)
	if err != nil {
		return nil, err
	}
	return &Renderer{glamour: renderer, width: width, cache: map[int]string{}}, nil
}

// SetWidth rebuilds the renderer for a new wrap width and drops the cache.
func (r *Renderer) SetWidth(width int) {
	if width == r.width {
		return
	}
	renderer, err := newTermRenderer(width)
	if err != nil {
		return
	}
	r.glamour = renderer
	r.width = width
	r.cache = map[int]string{}
}

// Reset drops the cache. Call when the transcript being rendered changes
// identity, not just length.
func (r *Renderer) Reset() {
	r.cache = map[int]string{}
}

// Render renders markdown content. The index keys the cache; pass -1 to skip
// caching. On a rendering failure the raw content is returned as-is.
func (r *Renderer) Render(content string, index int) string {
	if index >= 0 {
		if rendered, ok := r.cache[index]; ok {
			return rendered
		}
	}
	rendered, err := r.glamour.Render(content)
	if err != nil {
		return content
	}
	rendered = strings.TrimRight(rendered, "\n")
	if index >= 0 {
		r.cache[index] = rendered
	}
	return rendered
}

func newTermRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
}

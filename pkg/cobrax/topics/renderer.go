package topics

import (
	"io"
)

// Renderer shows a topic to the user
type Renderer interface {
	Render(w io.Writer, topic *Topic) error
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(w io.Writer, topic *Topic) error

// Render calls f
func (f RendererFunc) Render(w io.Writer, topic *Topic) error {
	return f(w, topic)
}

// PlainRenderer is the default renderer that writes content as-is
type PlainRenderer struct{}

// Render writes the content unchanged
func (r *PlainRenderer) Render(w io.Writer, topic *Topic) error {
	_, err := io.WriteString(w, topic.Content)
	return err
}

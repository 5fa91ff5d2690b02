package termout

import (
	"embed"
	"io"
	"io/fs"

	"github.com/arthur-debert/termout/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// initTopics installs the help command with the embedded topics. Markdown
// topics go through the terminal once it exists so they pick up color and
// width; before that they are written as plain text.
func initTopics(rootCmd *cobra.Command, a *app) error {
	fsys, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}

	plain := &topics.PlainRenderer{}
	_, err = topics.InitializeWithOptions(rootCmd, fsys, topics.Options{
		Renderer: topics.RendererFunc(func(w io.Writer, topic *topics.Topic) error {
			if a.term == nil || topic.Format() != ".md" {
				return plain.Render(w, topic)
			}
			return a.term.DisplayMarkdown(topic.Content)
		}),
	})
	return err
}

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a node tree to templ.Component so pages render through
// the same Render path as any templ template.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return n.Render(w)
	})
}

// Node adapts a templ.Component so it can be passed as chrome children.
func Node(cmp templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return cmp.Render(context.Background(), w)
	})
}

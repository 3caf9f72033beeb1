// Package logos renders inline SVG logos. Each logo takes an optional pixel
// size that is written to both width and height.
package logos

import (
	"sort"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
)

// DefaultSize is used when no size, or a non-positive size, is given.
const DefaultSize = 16

// Func renders a logo at the given size.
type Func func(size ...int) g.Node

var registry = map[string]Func{
	"kibana": Kibana,
}

// Lookup returns the logo registered under name (case-insensitive).
func Lookup(name string) (Func, bool) {
	fn, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// Names lists the registered logo names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func resolveSize(size []int) int {
	if len(size) == 0 || size[0] <= 0 {
		return DefaultSize
	}
	return size[0]
}

// svg wraps paths in the root element shared by all logos.
func svg(size int, viewBox, title string, children ...g.Node) g.Node {
	s := strconv.Itoa(size)
	return g.El("svg",
		g.Attr("version", "1.1"),
		g.Attr("width", s),
		g.Attr("height", s),
		g.Attr("viewBox", viewBox),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("focusable", "false"),
		g.Attr("role", "img"),
		g.Attr("aria-hidden", "true"),
		g.Attr("title", title),
		g.Group(children),
	)
}

func path(attrs ...g.Node) g.Node {
	return g.El("path", attrs...)
}

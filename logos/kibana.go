package logos

import (
	g "maragu.dev/gomponents"
)

// Kibana renders the Kibana mark.
func Kibana(size ...int) g.Node {
	return svg(resolveSize(size), "0 0 32 32", "Kibana logo",
		g.El("g",
			g.Attr("fill", "none"),
			g.Attr("fill-rule", "evenodd"),
			path(g.Attr("fill", "#F04E98"), g.Attr("d", "M4 0v28.789L28.935.017z")),
			path(
				g.Attr("class", "euiIcon__fillNegative"),
				g.Attr("d", "M4 12v16.789l11.906-13.738A24.721 24.721 0 004 12"),
			),
			path(
				g.Attr("fill", "#00BFB3"),
				g.Attr("d", "M18.479 16.664L6.268 30.754l-1.073 1.237h23.191c-1.252-6.292-4.883-11.719-9.908-15.327"),
			),
		),
	)
}

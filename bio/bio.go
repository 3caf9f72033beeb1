// Package bio renders the author bio block shown on the home page and under
// every post.
package bio

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/eringen/folio/metadata"
)

// AvatarSize is the rendered avatar edge length in pixels.
const AvatarSize = 50

const meetterURL = "https://meetter.app"

// TwitterURL returns the profile URL for handle. An empty handle yields the
// bare "https://twitter.com/".
func TwitterURL(handle string) string {
	return "https://twitter.com/" + handle
}

// Bio renders the avatar and, when the metadata carries an author summary,
// the introduction paragraph.
func Bio(meta *metadata.Site, avatarSrc string) g.Node {
	return html.Div(
		html.Class("bio"),
		html.Img(
			html.Class("bio-avatar"),
			html.Src(avatarSrc),
			html.Width(strconv.Itoa(AvatarSize)),
			html.Height(strconv.Itoa(AvatarSize)),
			html.Alt("Profile picture"),
			g.Attr("loading", "eager"),
			g.Attr("decoding", "async"),
		),
		g.If(meta.AuthorSummary() != "", intro(meta)),
	)
}

func intro(meta *metadata.Site) g.Node {
	name := meta.AuthorName()
	return html.P(
		g.If(name != "", g.Group([]g.Node{
			g.Text("Hi, I'm "), html.Strong(g.Text(name)), g.Text("."),
			html.Br(),
		})),
		g.Text("I am building "),
		html.A(html.Href(meetterURL), html.Target("_blank"), html.Rel("noopener"), g.Text("Meetter")),
		g.Text(", a tool that keeps meeting fatigue away from dozens of remote teams scattered across the globe."),
		html.Br(),
		html.A(html.Href(TwitterURL(meta.Twitter())), g.Text("You can follow my journey on Twitter.")),
	)
}

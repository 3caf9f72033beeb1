package bio

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/eringen/folio/metadata"
)

func TestBioWithoutSummaryHasNoParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		meta *metadata.Site
	}{
		{"nil metadata", nil},
		{"no author", &metadata.Site{Social: &metadata.Social{Twitter: "x"}}},
		{"empty summary", &metadata.Site{Author: &metadata.Author{Name: "Anton"}}},
		{"blank summary", &metadata.Site{Author: &metadata.Author{Name: "Anton", Summary: "   "}}},
	}
	for _, tt := range tests {
		doc := render(t, tt.meta)
		require.Equal(t, 0, doc.Find("p").Length(), tt.name)
		require.Equal(t, 1, doc.Find("div.bio img.bio-avatar").Length(), tt.name)
	}
}

func TestBioWithSummary(t *testing.T) {
	t.Parallel()

	doc := render(t, &metadata.Site{
		Author: &metadata.Author{Name: "Anton", Summary: "Builds things."},
		Social: &metadata.Social{Twitter: "antondosov"},
	})

	require.Equal(t, 1, doc.Find("p").Length())
	require.Equal(t, "Anton", doc.Find("p strong").Text())

	twitter := doc.Find(`p a[href^="https://twitter.com/"]`)
	require.Equal(t, 1, twitter.Length())
	require.Equal(t, "https://twitter.com/antondosov", twitter.AttrOr("href", ""))

	meetter := doc.Find(`p a[href="https://meetter.app"]`)
	require.Equal(t, "_blank", meetter.AttrOr("target", ""))
}

func TestBioTwitterHandleMissing(t *testing.T) {
	t.Parallel()

	doc := render(t, &metadata.Site{Author: &metadata.Author{Summary: "s"}})

	twitter := doc.Find(`p a[href^="https://twitter.com/"]`)
	require.Equal(t, 1, twitter.Length())
	require.Equal(t, "https://twitter.com/", twitter.AttrOr("href", ""))
	require.Equal(t, 0, doc.Find("p strong").Length(), "greeting is omitted without a name")
}

func TestBioAvatar(t *testing.T) {
	t.Parallel()

	img := render(t, nil).Find("img.bio-avatar")
	require.Equal(t, "/public/avatar.jpg", img.AttrOr("src", ""))
	require.Equal(t, "50", img.AttrOr("width", ""))
	require.Equal(t, "50", img.AttrOr("height", ""))
	require.Equal(t, "Profile picture", img.AttrOr("alt", ""))
}

func render(t *testing.T, meta *metadata.Site) *goquery.Document {
	t.Helper()

	var b strings.Builder
	require.NoError(t, Bio(meta, "/public/avatar.jpg").Render(&b))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

package synthesizer

import (
	"strings"

	"github.com/nguyentantai21042004/desc-flow/internal/links"
	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

type headings struct {
	chapters string
	links    string
	keywords string
}

var headingsByLang = map[string]headings{
	"en": {"⏱️ Chapters", "🔗 Useful links", "🔍 Keywords"},
	"fr": {"⏱️ Chapitres", "🔗 Liens utiles", "🔍 Mots-clés"},
	"es": {"⏱️ Capítulos", "🔗 Enlaces útiles", "🔍 Palabras clave"},
	"de": {"⏱️ Kapitel", "🔗 Nützliche Links", "🔍 Schlüsselwörter"},
}

func headingsFor(lang string) headings {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if h, ok := headingsByLang[lang]; ok {
		return h
	}
	return headingsByLang["en"]
}

// render lays the description out in the order YouTube viewers expect:
// hook, summary, chapters, links, keywords, call to action, channel blurb, hashtags.
func render(sec sections, sc models.SynthesisContext) string {
	h := headingsFor(sc.Language)
	var blocks []string

	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			blocks = append(blocks, s)
		}
	}

	add(sec.Title)
	add(sec.Resume)

	if len(sc.Chapters) > 0 {
		lines := []string{h.chapters + ":"}
		for _, c := range sc.Chapters {
			lines = append(lines, c.String())
		}
		add(strings.Join(lines, "\n"))
	}

	if len(sc.Links) > 0 {
		add(h.links + ":\n" + links.Render(sc.Links))
	}

	if sc.KeywordPhrase != "" {
		add(h.keywords + ": " + sc.KeywordPhrase)
	}

	add(sec.CallToAction)
	add(sec.AboutChannel)

	if len(sc.Hashtags) > 0 {
		add(strings.Join(sc.Hashtags, " "))
	}

	return strings.Join(blocks, "\n\n")
}

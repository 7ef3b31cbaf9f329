package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/deckforge/pkg/deck"
)

const navigationJS = `
    const sections = document.querySelectorAll('section.slide-frame');
    let current = 0;
    function show(i) {
      current = Math.max(0, Math.min(i, sections.length - 1));
      sections.forEach((s, j) => s.classList.toggle('active', j === current));
    }
    document.addEventListener('keydown', (e) => {
      if (e.key === 'ArrowRight' || e.key === ' ') show(current + 1);
      if (e.key === 'ArrowLeft') show(current - 1);
      if (e.key === 'Home') show(0);
      if (e.key === 'End') show(sections.length - 1);
    });
    show(0);`

const frameCSS = `
    body { margin: 0; background: #1e1e1e; }
    section.slide-frame { display: none; justify-content: center; padding: 24px; }
    section.slide-frame.active { display: flex; }
    .slide { transform-origin: top center; transform: scale(0.6); }`

// RenderHTML exports the deck as one self-contained HTML document: every
// slide's rendered markup in order inside a frame, the shared stylesheet
// from the deck theme, and a minimal arrow-key navigation script.
func RenderHTML(d *deck.CompletePitchDeck) []byte {
	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(d.Outline.Title))

	buf.WriteString("<style>")
	buf.WriteString(frameCSS)
	buf.WriteString("\n")
	if len(d.Slides) > 0 {
		// One theme per deck: every slide shares the first slide's stylesheet.
		buf.WriteString(d.Slides[0].RenderData.StyleSheet)
	}
	buf.WriteString("</style>\n</head>\n<body>\n")

	for _, slide := range d.Slides {
		fmt.Fprintf(&buf, `<section class="slide-frame" data-slide="%d">`+"\n", slide.SlideNumber)
		buf.WriteString(slide.RenderData.Markup)
		buf.WriteString("</section>\n")
	}

	fmt.Fprintf(&buf, "<script>%s\n</script>\n", navigationJS)
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes()
}

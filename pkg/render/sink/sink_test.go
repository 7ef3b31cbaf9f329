package sink

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/deckforge/pkg/deck"
)

func sampleDeck() *deck.CompletePitchDeck {
	return &deck.CompletePitchDeck{
		Outline: deck.Outline{Title: "Acme Pitch", Subtitle: "Reimagining logistics", Company: "Acme"},
		Theme:   "modern",
		Slides: []deck.SlideLayout{
			{
				SlideNumber: 1,
				Blocks: []deck.ContentBlock{
					{ID: "t1", Kind: deck.BlockTitle, Payload: deck.TextPayload{Text: "The Problem"}, Intent: "problem"},
					{ID: "b1", Kind: deck.BlockBullets, Payload: deck.ListPayload{Items: []string{"slow", "expensive"}}, Intent: "problem"},
				},
				RenderData: deck.RenderData{
					Markup:     "<div class=\"slide\">problem markup</div>\n",
					StyleSheet: ".slide { --color-primary: #2563eb; }\n",
				},
			},
			{
				SlideNumber: 2,
				Blocks: []deck.ContentBlock{
					{ID: "t2", Kind: deck.BlockTitle, Payload: deck.TextPayload{Text: "Market"}, Intent: "market-needs-visual"},
					{ID: "c2", Kind: deck.BlockChart, Payload: deck.StatsPayload{
						Stats: []deck.Stat{{Label: "NA", Value: 40}, {Label: "EU", Value: 60}},
					}, Intent: "market-needs-visual"},
				},
				RenderData: deck.RenderData{
					Markup:     "<div class=\"slide\">market markup</div>\n",
					StyleSheet: ".slide { --color-primary: #2563eb; }\n",
				},
			},
		},
	}
}

func TestRenderJSONRoundTrips(t *testing.T) {
	d := sampleDeck()

	data, err := RenderJSON(d)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	got, err := deck.UnmarshalDeck(data)
	if err != nil {
		t.Fatalf("UnmarshalDeck() error = %v", err)
	}
	if !reflect.DeepEqual(got.Slides, d.Slides) {
		t.Errorf("slides lost in round trip\n got: %+v\nwant: %+v", got.Slides, d.Slides)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown(sampleDeck()))

	for _, want := range []string{
		"# Acme Pitch\n",
		"*Reimagining logistics*\n",
		"## The Problem\n",
		"- slow\n- expensive\n",
		"## Market\n",
		"| NA | 40 |\n",
		"| EU | 60 |\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n---\n"); got != 2 {
		t.Errorf("slide separator count = %d, want 2", got)
	}
}

func TestRenderMarkdownQuoteAndImage(t *testing.T) {
	d := &deck.CompletePitchDeck{
		Outline: deck.Outline{Title: "T"},
		Slides: []deck.SlideLayout{{
			SlideNumber: 1,
			Blocks: []deck.ContentBlock{
				{Kind: deck.BlockQuote, Payload: deck.TextPayload{Text: "best tool we use"}},
				{Kind: deck.BlockImage, Payload: deck.ImagePayload{Asset: deck.ImageAsset{URL: "https://example.test/a.jpg", Alt: "demo"}}},
			},
		}},
	}

	out := string(RenderMarkdown(d))
	if !strings.Contains(out, "> best tool we use\n") {
		t.Errorf("missing quote:\n%s", out)
	}
	if !strings.Contains(out, "![demo](https://example.test/a.jpg)\n") {
		t.Errorf("missing image:\n%s", out)
	}
}

func TestRenderHTML(t *testing.T) {
	out := string(RenderHTML(sampleDeck()))

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("missing doctype:\n%.80s", out)
	}
	for _, want := range []string{
		"<title>Acme Pitch</title>",
		"--color-primary: #2563eb;",
		`<section class="slide-frame" data-slide="1">`,
		`<section class="slide-frame" data-slide="2">`,
		"problem markup",
		"market markup",
		"ArrowRight",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q", want)
		}
	}
	// The shared stylesheet is embedded once, not per slide.
	if got := strings.Count(out, "--color-primary: #2563eb;"); got != 1 {
		t.Errorf("stylesheet embedded %d times, want 1", got)
	}
}

func TestRenderHTMLEscapesTitle(t *testing.T) {
	d := &deck.CompletePitchDeck{Outline: deck.Outline{Title: "<Acme> & Co"}}
	out := string(RenderHTML(d))
	if !strings.Contains(out, "<title>&lt;Acme&gt; &amp; Co</title>") {
		t.Errorf("title not escaped:\n%s", out)
	}
}

func TestPlaceholders(t *testing.T) {
	d := sampleDeck()

	pdf := string(RenderPDF(d))
	if !strings.HasPrefix(pdf, "PDF export placeholder\n") {
		t.Errorf("pdf placeholder header wrong:\n%s", pdf)
	}
	for _, want := range []string{"deck: Acme Pitch", "theme: modern", "slides: 2"} {
		if !strings.Contains(pdf, want) {
			t.Errorf("pdf placeholder missing %q:\n%s", want, pdf)
		}
	}

	pptx := string(RenderPPTX(d))
	if !strings.HasPrefix(pptx, "PPTX export placeholder\n") {
		t.Errorf("pptx placeholder header wrong:\n%s", pptx)
	}
}

func TestToDOT(t *testing.T) {
	out := ToDOT(sampleDeck())

	if !strings.HasPrefix(out, "digraph deck {") {
		t.Errorf("missing digraph header:\n%s", out)
	}
	for _, want := range []string{
		"rankdir=LR;",
		`"slide1" [label="1. The Problem\nproblem"];`,
		`"slide1" -> "slide2";`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dot missing %q:\n%s", want, out)
		}
	}
	// The market slide is flagged as needing a visual, so its node is dashed.
	if !strings.Contains(out, `style="rounded,filled,dashed"`) {
		t.Errorf("needs-visual slide not dashed:\n%s", out)
	}
}

func TestToDOTEmptyDeck(t *testing.T) {
	out := ToDOT(&deck.CompletePitchDeck{Outline: deck.Outline{Title: "T"}})
	if !strings.Contains(out, "digraph deck {") || !strings.Contains(out, "}") {
		t.Errorf("empty deck produced invalid DOT:\n%s", out)
	}
	if strings.Contains(out, "->") {
		t.Errorf("empty deck has edges:\n%s", out)
	}
}

// Package sink serializes a complete deck into its export formats.
//
// Every sink is a deterministic function of the same CompletePitchDeck:
//
//   - JSON: full structural dump, lossless for the slides array
//   - Markdown: deck front matter plus per-slide titles and bullet content,
//     slides separated by horizontal rules
//   - HTML: one self-contained document embedding every slide's rendered
//     markup, a shared stylesheet, and a minimal keyboard navigation script
//   - Storyboard: the deck's slide flow as a Graphviz diagram
//   - PDF and PPTX: documented placeholders; binary generation is a
//     deliberate limitation, not a missing feature
//
// Sinks never mutate the deck and may run concurrently over it.
package sink

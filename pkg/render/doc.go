// Package render turns composed slides into markup fragments.
//
// # Overview
//
// The renderer is the last per-slide stage of the pipeline. Given the
// slide's balanced blocks, its archetype, the theme tokens, and the canvas,
// it produces a [deck.RenderData]: an HTML fragment positioned by the
// archetype's CSS grid template, a stylesheet derived from the design
// tokens, and deterministic layout measurements.
//
// Rendering is pure string assembly. No fonts are loaded and no pixels are
// measured; text height estimates use the same deterministic model as the
// text fitter, so measurements are reproducible across machines.
//
// # Stylesheet
//
// [StyleSheet] maps theme tokens onto CSS custom properties scoped to the
// .slide class. Every slide of a deck shares one stylesheet, which is what
// the deck-level consistency checks rely on.
//
// # Exports
//
// The sink subpackage assembles whole-deck outputs (JSON, Markdown, HTML,
// placeholder PDF/PPTX, and the storyboard overview) from the per-slide
// fragments produced here.
package render

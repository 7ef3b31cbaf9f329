// Package compose implements the per-slide composition stages of the deck
// pipeline: block extraction, canvas construction, text fitting, visual
// placement, and layout balancing.
//
// Every stage is a pure transformation over the slide's block list. Stages
// never mutate their input; they return fresh block slices (copy-on-write)
// so slides can be composed in parallel with no shared mutable state beyond
// the read-only theme tokens and archetype catalog.
//
// The stages degrade instead of failing: a slide with no content yields an
// empty-but-valid block list, an unknown aspect ratio falls back to 16:9,
// and zero-length text receives the maximum font size.
package compose

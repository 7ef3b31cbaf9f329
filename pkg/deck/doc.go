// Package deck defines the shared data model for the presentation synthesis
// pipeline: outlines coming in, content blocks flowing through the per-slide
// stages, and the complete laid-out deck going out.
//
// The types in this package are plain data. Behavior lives in the stage
// packages (compose, archetype, chart, render); deck only provides the
// structures they transform plus lossless JSON serialization for the
// aggregate. Blocks are owned by a single slide's pipeline run and are
// updated copy-on-write: stages return new block slices instead of mutating
// shared structures.
//
// # Payloads
//
// Block content is a closed tagged union. Each block kind carries one of the
// concrete payload types (TextPayload, ListPayload, StatsPayload,
// ImagePayload) behind the Payload interface, with a discriminant field in
// the JSON encoding. This replaces the loosely-typed "anything goes" content
// blob with statically checked shapes.
package deck

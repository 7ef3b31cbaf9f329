// Package collab defines the interfaces for upstream collaborators:
// content research, prose generation, and image search.
//
// The deck pipeline itself never talks to external services; it consumes
// outlines and asset descriptors produced by collaborators. This package
// specifies those collaborators as narrow interfaces and ships static
// implementations for offline generation and tests.
//
// # Interfaces
//
//   - [InsightProvider]: ranked textual insights per topic category
//   - [ProseWriter]: free text from a prompt (summaries, speaker notes)
//   - [ImageSearcher]: image descriptors for keywords (metadata only)
//
// # Outline synthesis
//
// [BuildOutline] turns an InsightProvider's category map into a full slide
// outline, so a deck can be generated from nothing but a company name and
// industry:
//
//	insights, _ := provider.Insights(ctx, "Acme", "logistics")
//	outline := collab.BuildOutline("Acme", "logistics", insights)
package collab

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// artifactExt maps export formats to file extensions.
var artifactExt = map[string]string{
	"json":       ".json",
	"markdown":   ".md",
	"html":       ".html",
	"pdf":        ".pdf",
	"pptx":       ".pptx",
	"storyboard": ".svg",
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // outline path or company name, used to derive output names
	output    string // explicit output file or base path, optional
	cacheHit  bool
}

// writeArtifacts writes each exported format to disk. With a single format
// and an explicit --output, the artifact goes exactly there; otherwise file
// names are derived from the base path plus the format extension.
func writeArtifacts(p artifactWriteParams) error {
	base := artifactBase(p.output, p.input)

	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		path := base + artifactExt[format]
		if p.output != "" && len(p.formats) == 1 {
			path = p.output
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	if p.cacheHit {
		printDetail("exports served from cache")
	}
	return nil
}

// artifactBase derives the base output path from the output and input values.
// A known format extension on the output path is stripped so multiple formats
// don't stack extensions.
func artifactBase(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		if base == "" {
			base = "deck"
		}
		return base
	}
	ext := filepath.Ext(output)
	for _, known := range artifactExt {
		if ext == known {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deckforge/pkg/collab"
	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/pipeline"
)

// generateCommand creates the generate command for composing a full deck.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		company    string
		industry   string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [outline.json|outline.toml]",
		Short: "Compose a pitch deck from a slide outline",
		Long: `Compose a pitch deck from a slide outline.

The generate command runs the full synthesis pipeline: each outline slide
becomes typed content blocks, gets a layout archetype, fitted typography,
placed visuals and synthesized charts, and is rendered onto a canvas. The
finished deck is checked for cross-slide consistency and exported in the
requested formats.

With an outline file argument, the outline is read from JSON or TOML.
Without one, --company and --industry synthesize an outline from the
research provider.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}

			var (
				outline deck.Outline
				input   string
				err     error
			)
			if len(args) == 1 {
				input = args[0]
				outline, err = loadOutline(input)
				if err != nil {
					return err
				}
			} else {
				if company == "" || industry == "" {
					return fmt.Errorf("provide an outline file or both --company and --industry")
				}
				outline, err = synthesizeOutline(cmd.Context(), company, industry)
				if err != nil {
					return err
				}
				input = company
			}

			return c.runGenerate(cmd.Context(), outline, opts, input, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompose even if a cached deck exists")

	// Pipeline flags
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "design theme: modern (default), corporate, startup")
	cmd.Flags().StringVar(&opts.Aspect, "aspect", "", "aspect ratio: 16:9 (default), 4:3, widescreen")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent slide composition workers")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), markdown, html, pdf, pptx, storyboard (comma-separated)")

	// Outline synthesis flags
	cmd.Flags().StringVar(&company, "company", "", "company name (outline synthesis)")
	cmd.Flags().StringVar(&industry, "industry", "", "industry (outline synthesis)")

	return cmd
}

// synthesizeOutline builds an outline from the static collaborators.
func synthesizeOutline(ctx context.Context, company, industry string) (deck.Outline, error) {
	return collab.NewStaticSynthesizer().Outline(ctx, company, industry)
}

// runGenerate executes the pipeline and writes the artifacts.
func (c *CLI) runGenerate(ctx context.Context, outline deck.Outline, opts pipeline.Options, input, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Composing %d slides...", len(outline.Slides)))
	spinner.Start()

	result, err := runner.Execute(ctx, outline, opts)
	if err != nil {
		spinner.StopWithError("Deck generation failed")
		return fmt.Errorf("generate: %w", err)
	}
	spinner.Stop()

	printSuccess("Composed %s", outline.Title)
	printStats(result.Stats.SlideCount, result.Stats.BlockCount, result.CacheInfo.DeckHit)
	if !result.Deck.Consistency.Passed {
		for _, check := range result.Deck.Consistency.Checks {
			if !check.Passed {
				printWarning("consistency: %s - %s", check.Name, check.Detail)
			}
		}
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  result.CacheInfo.ExportHit,
	})
}

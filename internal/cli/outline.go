package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deckforge/pkg/deck"
)

// outlineCommand creates the outline command for synthesizing a slide plan.
func (c *CLI) outlineCommand() *cobra.Command {
	var (
		company  string
		industry string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Synthesize a slide outline from a company profile",
		Long: `Synthesize a slide outline from a company profile.

The outline command queries the research provider for insights about the
company and arranges them into the standard pitch sequence: overview,
problem, solution, market, competition, financials, team, roadmap.

The outline is written as JSON by default, or TOML when the output path
ends in .toml. Edit the file and feed it to 'generate'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if company == "" || industry == "" {
				return fmt.Errorf("--company and --industry are required")
			}

			outline, err := synthesizeOutline(cmd.Context(), company, industry)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = strings.ToLower(strings.ReplaceAll(company, " ", "-")) + "-outline.json"
			}
			if err := writeOutline(outline, path); err != nil {
				return err
			}

			printSuccess("Outlined %d slides for %s", len(outline.Slides), company)
			printFile(path)
			printNextStep("Generate the deck", fmt.Sprintf("deckforge generate %s -f html", path))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company name (required)")
	cmd.Flags().StringVar(&industry, "industry", "", "industry (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json or .toml)")

	return cmd
}

// writeOutline serializes the outline in the format implied by the path.
func writeOutline(outline deck.Outline, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		return toml.NewEncoder(f).Encode(toTOMLOutline(outline))
	default:
		data, err := deck.MarshalOutline(outline)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	}
}

// toTOMLOutline converts to the snake_case TOML mirror types.
func toTOMLOutline(o deck.Outline) tomlOutline {
	out := tomlOutline{
		Title:    o.Title,
		Subtitle: o.Subtitle,
		Company:  o.Company,
		Industry: o.Industry,
	}
	for _, s := range o.Slides {
		slide := tomlSlide{
			SlideNumber: s.SlideNumber,
			SlideType:   s.SlideType,
			Title:       s.Title,
			Content:     s.Content,
			KeyPoints:   s.KeyPoints,
			ChartType:   s.ChartType,
		}
		for _, st := range s.Statistics {
			slide.Statistics = append(slide.Statistics, tomlStat{Label: st.Label, Value: st.Value})
		}
		for _, img := range s.Images {
			slide.Images = append(slide.Images, tomlImage{
				URL:     img.URL,
				Width:   img.Width,
				Height:  img.Height,
				License: img.License,
				Alt:     img.Alt,
			})
		}
		out.Slides = append(out.Slides, slide)
	}
	return out
}

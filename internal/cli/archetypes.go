package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deckforge/pkg/archetype"
)

// archetypesCommand creates the archetypes command listing the layout catalog.
func (c *CLI) archetypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archetypes",
		Short: "List the slide layout archetypes",
		Long: `List the slide layout archetypes.

Each outline slide is matched to one archetype based on its intent tag and
content mix. The archetype fixes the slide's grid template and the regions
content blocks flow into.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return StyleTitle.Padding(0, 1)
					}
					return StyleValue.Padding(0, 1)
				}).
				Headers("ID", "NAME", "REGIONS", "SUITABLE FOR")

			for _, a := range archetype.All() {
				regions := make([]string, 0, len(a.Regions))
				for name := range a.Regions {
					regions = append(regions, name)
				}
				t.Row(
					a.ID,
					a.Name,
					fmt.Sprintf("%d", len(regions)),
					strings.Join(a.SuitableFor, ", "),
				)
			}

			fmt.Println(t)
			return nil
		},
	}
}

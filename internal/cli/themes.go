package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deckforge/pkg/theme"
)

// themesCommand creates the themes command listing the design token registry.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available design themes",
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
				Headers("NAME", "PRIMARY", "HEADING FONT", "TITLE SIZE", "BODY SIZE")

			for _, name := range theme.Names() {
				tokens, _ := theme.Lookup(name)
				display := name
				if name == theme.DefaultName {
					display += " (default)"
				}
				t.Row(
					display,
					tokens.Colors.Primary,
					tokens.Fonts.Heading,
					fmt.Sprintf("%.0f-%.0f", tokens.Sizes.TitleMin, tokens.Sizes.TitleMax),
					fmt.Sprintf("%.0f-%.0f", tokens.Sizes.BodyMin, tokens.Sizes.BodyMax),
				)
			}

			fmt.Println(t)
			printNextStep("Use a theme", "deckforge generate outline.json --theme corporate")
			return nil
		},
	}
}

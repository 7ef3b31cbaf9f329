package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deckforge/pkg/deck"
)

// Preview styles
var (
	previewFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(1, 3).
				Width(76)
	previewTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewBulletStyle = lipgloss.NewStyle().Foreground(colorWhite)
	previewMetaStyle   = lipgloss.NewStyle().Foreground(colorDim)
	previewStatStyle   = lipgloss.NewStyle().Foreground(colorYellow)
)

// previewCommand creates the preview command: a terminal pager over a
// generated deck JSON file.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [deck.json]",
		Short: "Page through a generated deck in the terminal",
		Long: `Page through a generated deck in the terminal.

The preview command loads a deck JSON file (produced by 'generate -f json')
and shows one slide at a time. Navigate with the arrow keys or h/l, quit
with q.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read deck %s: %w", args[0], err)
			}
			d, err := deck.UnmarshalDeck(data)
			if err != nil {
				return fmt.Errorf("parse deck %s: %w", args[0], err)
			}
			if d.SlideCount() == 0 {
				printInfo("Deck has no slides")
				return nil
			}

			_, err = tea.NewProgram(newDeckPagerModel(d)).Run()
			return err
		},
	}
}

// =============================================================================
// DeckPagerModel - Slide-by-slide terminal preview
// =============================================================================

// DeckPagerModel is the bubbletea model for paging through a deck.
type DeckPagerModel struct {
	Deck   *deck.CompletePitchDeck
	Cursor int
}

// newDeckPagerModel creates a pager positioned on the first slide.
func newDeckPagerModel(d *deck.CompletePitchDeck) DeckPagerModel {
	return DeckPagerModel{Deck: d}
}

func (m DeckPagerModel) Init() tea.Cmd {
	return nil
}

func (m DeckPagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l", "down", "j", " ", "enter":
			if m.Cursor < m.Deck.SlideCount()-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = m.Deck.SlideCount() - 1
		}
	}
	return m, nil
}

func (m DeckPagerModel) View() string {
	slide := m.Deck.Slides[m.Cursor]

	var body strings.Builder
	for _, b := range slide.Blocks {
		switch b.Kind {
		case deck.BlockTitle:
			body.WriteString(previewTitleStyle.Render(b.Text()) + "\n\n")
		case deck.BlockSubtitle:
			body.WriteString(previewMetaStyle.Render(b.Text()) + "\n\n")
		case deck.BlockBullets:
			if p, ok := b.Payload.(deck.ListPayload); ok {
				for _, item := range p.Items {
					body.WriteString(previewBulletStyle.Render("• "+item) + "\n")
				}
			}
		case deck.BlockQuote:
			body.WriteString(previewMetaStyle.Render("“"+b.Text()+"”") + "\n")
		case deck.BlockChart:
			if p, ok := b.Payload.(deck.StatsPayload); ok {
				body.WriteString("\n")
				for _, s := range p.Stats {
					body.WriteString(previewStatStyle.Render(fmt.Sprintf("%-20s %8.1f", s.Label, s.Value)) + "\n")
				}
			}
		case deck.BlockImage:
			if p, ok := b.Payload.(deck.ImagePayload); ok {
				body.WriteString(previewMetaStyle.Render("[image: "+p.Asset.URL+"]") + "\n")
			}
		}
	}

	meta := fmt.Sprintf("slide %d/%d · %s · %s",
		m.Cursor+1, m.Deck.SlideCount(), slide.Archetype.Name, m.Deck.Theme)
	help := "←/→ navigate · q quit"

	return previewFrameStyle.Render(strings.TrimRight(body.String(), "\n")) + "\n" +
		previewMetaStyle.Render(meta) + "\n" +
		previewMetaStyle.Render(help) + "\n"
}

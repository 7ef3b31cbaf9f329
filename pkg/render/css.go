package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/deckforge/pkg/theme"
)

// StyleSheet generates the shared slide stylesheet from theme tokens.
// Every value flows through a named CSS variable so slides stay visually
// consistent and re-themeable without touching markup.
func StyleSheet(t theme.Tokens) string {
	var buf bytes.Buffer

	buf.WriteString(".slide {\n")
	fmt.Fprintf(&buf, "  --color-primary: %s;\n", t.Colors.Primary)
	fmt.Fprintf(&buf, "  --color-secondary: %s;\n", t.Colors.Secondary)
	fmt.Fprintf(&buf, "  --color-accent: %s;\n", t.Colors.Accent)
	fmt.Fprintf(&buf, "  --color-background: %s;\n", t.Colors.Background)
	fmt.Fprintf(&buf, "  --color-text: %s;\n", t.Colors.Text)
	fmt.Fprintf(&buf, "  --color-muted: %s;\n", t.Colors.Muted)
	fmt.Fprintf(&buf, "  --font-heading: %s;\n", t.Fonts.Heading)
	fmt.Fprintf(&buf, "  --font-body: %s;\n", t.Fonts.Body)
	fmt.Fprintf(&buf, "  --font-mono: %s;\n", t.Fonts.Mono)
	fmt.Fprintf(&buf, "  --line-height: %.2f;\n", t.Sizes.LineHeight)
	fmt.Fprintf(&buf, "  --spacing-sm: %.0fpx;\n", t.Spacing.SM)
	fmt.Fprintf(&buf, "  --spacing-md: %.0fpx;\n", t.Spacing.MD)
	fmt.Fprintf(&buf, "  --spacing-lg: %.0fpx;\n", t.Spacing.LG)
	fmt.Fprintf(&buf, "  --border-radius: %.0fpx;\n", t.Borders.Radius)
	fmt.Fprintf(&buf, "  --shadow-medium: %s;\n", t.Shadows.Medium)
	buf.WriteString("  background: var(--color-background);\n")
	buf.WriteString("  color: var(--color-text);\n")
	buf.WriteString("  font-family: var(--font-body);\n")
	buf.WriteString("  line-height: var(--line-height);\n")
	buf.WriteString("  padding: var(--spacing-lg);\n")
	buf.WriteString("  box-sizing: border-box;\n")
	buf.WriteString("  gap: var(--spacing-md);\n")
	buf.WriteString("}\n")

	buf.WriteString(`.block-title { font-family: var(--font-heading); font-weight: 700; color: var(--color-primary); }
.block-subtitle { font-family: var(--font-heading); color: var(--color-muted); }
.block-bullets ul { margin: 0; padding-left: var(--spacing-md); }
.block-quote { font-style: italic; color: var(--color-secondary); }
.block-footer { color: var(--color-muted); font-size: 14px; }
.block-image figure { margin: 0; border-radius: var(--border-radius); box-shadow: var(--shadow-medium); }
.chart-label { font-family: var(--font-body); font-size: 13px; fill: var(--color-text); }
.chart-label-inverse { fill: var(--color-background); }
`)

	return buf.String()
}

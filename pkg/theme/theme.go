// Package theme provides the design token registry for deck generation.
//
// A theme is an immutable named bundle of colors, typography, sizing,
// spacing, border, and shadow values. One theme is selected per deck
// generation and shared read-only across all slides, so the registry needs
// no locking and no lifecycle teardown.
package theme

import (
	"slices"
	"sort"
)

// Colors is the theme palette.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
}

// Fonts names the font stacks used for headings, body text, and code.
type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Mono    string `json:"mono"`
}

// Sizes holds the font size ranges (px) the text fitter works within, plus
// the body line height multiplier.
type Sizes struct {
	TitleMin   float64 `json:"title_min"`
	TitleMax   float64 `json:"title_max"`
	BodyMin    float64 `json:"body_min"`
	BodyMax    float64 `json:"body_max"`
	LineHeight float64 `json:"line_height"`
}

// Spacing is the spacing scale in pixels.
type Spacing struct {
	XS float64 `json:"xs"`
	SM float64 `json:"sm"`
	MD float64 `json:"md"`
	LG float64 `json:"lg"`
	XL float64 `json:"xl"`
}

// Borders holds border radius and width.
type Borders struct {
	Radius float64 `json:"radius"`
	Width  float64 `json:"width"`
}

// Shadows holds CSS box-shadow values at three strengths.
type Shadows struct {
	Light  string `json:"light"`
	Medium string `json:"medium"`
	Heavy  string `json:"heavy"`
}

// Tokens is one theme's complete design token bundle.
type Tokens struct {
	Name    string  `json:"name"`
	Colors  Colors  `json:"colors"`
	Fonts   Fonts   `json:"fonts"`
	Sizes   Sizes   `json:"sizes"`
	Spacing Spacing `json:"spacing"`
	Borders Borders `json:"borders"`
	Shadows Shadows `json:"shadows"`
}

// DefaultName is the theme used when none is requested.
const DefaultName = "modern"

// registry is the process-wide theme catalog. Initialized once, read-only
// afterwards.
var registry = map[string]Tokens{
	"modern": {
		Name: "modern",
		Colors: Colors{
			Primary:    "#2563eb",
			Secondary:  "#7c3aed",
			Accent:     "#06b6d4",
			Background: "#ffffff",
			Text:       "#0f172a",
			Muted:      "#64748b",
		},
		Fonts: Fonts{
			Heading: "'Inter', sans-serif",
			Body:    "'Inter', sans-serif",
			Mono:    "'JetBrains Mono', monospace",
		},
		Sizes:   Sizes{TitleMin: 28, TitleMax: 48, BodyMin: 16, BodyMax: 24, LineHeight: 1.5},
		Spacing: Spacing{XS: 4, SM: 8, MD: 16, LG: 32, XL: 64},
		Borders: Borders{Radius: 12, Width: 1},
		Shadows: Shadows{
			Light:  "0 1px 2px rgba(15,23,42,0.08)",
			Medium: "0 4px 12px rgba(15,23,42,0.12)",
			Heavy:  "0 12px 32px rgba(15,23,42,0.18)",
		},
	},
	"corporate": {
		Name: "corporate",
		Colors: Colors{
			Primary:    "#1e3a5f",
			Secondary:  "#3e5c76",
			Accent:     "#c8a24a",
			Background: "#f8f9fa",
			Text:       "#1a202c",
			Muted:      "#718096",
		},
		Fonts: Fonts{
			Heading: "'Georgia', serif",
			Body:    "'Helvetica Neue', sans-serif",
			Mono:    "'Courier New', monospace",
		},
		Sizes:   Sizes{TitleMin: 26, TitleMax: 44, BodyMin: 15, BodyMax: 22, LineHeight: 1.6},
		Spacing: Spacing{XS: 4, SM: 8, MD: 16, LG: 28, XL: 56},
		Borders: Borders{Radius: 4, Width: 1},
		Shadows: Shadows{
			Light:  "0 1px 3px rgba(26,32,44,0.10)",
			Medium: "0 4px 8px rgba(26,32,44,0.14)",
			Heavy:  "0 10px 24px rgba(26,32,44,0.20)",
		},
	},
	"startup": {
		Name: "startup",
		Colors: Colors{
			Primary:    "#f43f5e",
			Secondary:  "#fb923c",
			Accent:     "#a3e635",
			Background: "#fffbf5",
			Text:       "#18181b",
			Muted:      "#a1a1aa",
		},
		Fonts: Fonts{
			Heading: "'Poppins', sans-serif",
			Body:    "'Nunito', sans-serif",
			Mono:    "'Fira Code', monospace",
		},
		Sizes:   Sizes{TitleMin: 30, TitleMax: 52, BodyMin: 17, BodyMax: 26, LineHeight: 1.45},
		Spacing: Spacing{XS: 6, SM: 12, MD: 20, LG: 36, XL: 72},
		Borders: Borders{Radius: 20, Width: 2},
		Shadows: Shadows{
			Light:  "0 2px 4px rgba(24,24,27,0.08)",
			Medium: "0 6px 16px rgba(24,24,27,0.12)",
			Heavy:  "0 16px 40px rgba(24,24,27,0.20)",
		},
	},
}

// Lookup returns the tokens for a theme name.
func Lookup(name string) (Tokens, bool) {
	t, ok := registry[name]
	return t, ok
}

// Default returns the default theme's tokens.
func Default() Tokens {
	return registry[DefaultName]
}

// Names returns all registered theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Valid reports whether name is a registered theme.
func Valid(name string) bool {
	return slices.Contains(Names(), name)
}

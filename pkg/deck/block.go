package deck

// BlockKind identifies the type of content a block carries.
type BlockKind string

// Block kinds.
const (
	BlockTitle    BlockKind = "title"
	BlockSubtitle BlockKind = "subtitle"
	BlockBullets  BlockKind = "bullets"
	BlockQuote    BlockKind = "quote"
	BlockImage    BlockKind = "image"
	BlockChart    BlockKind = "chart"
	BlockTable    BlockKind = "table"
	BlockLogo     BlockKind = "logo"
	BlockFooter   BlockKind = "footer"
	BlockNotes    BlockKind = "notes"
)

// Priority marks how important it is that a block survives layout pressure.
type Priority string

// Priorities.
const (
	PriorityMustShow   Priority = "must-show"
	PriorityNiceToHave Priority = "nice-to-have"
)

// VisualWeight approximates how much visual attention a block demands.
type VisualWeight string

// Visual weights.
const (
	WeightLight  VisualWeight = "light"
	WeightMedium VisualWeight = "medium"
	WeightHeavy  VisualWeight = "heavy"
)

// Styling holds per-block presentation values assigned during layout.
// FontSize is set by the text fitter; MarginTop by the balancer.
type Styling struct {
	FontSize  float64 `json:"font_size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Alignment string  `json:"alignment,omitempty"`
	MarginTop float64 `json:"margin_top"`
}

// Placement is the crop/fit contract attached to image blocks by the visual
// placer. No pixel operations happen here; a downstream renderer interprets it.
type Placement struct {
	FittingMode       string  `json:"fitting_mode"`
	TargetAspectRatio float64 `json:"target_aspect_ratio"`
	FocalPoint        string  `json:"focal_point"`
}

// =============================================================================
// Payload - Closed Tagged Union
// =============================================================================

// Payload is the content carried by a block. Exactly one concrete payload
// type exists per family of block kinds; the set is closed.
type Payload interface {
	payloadKind() string
}

// TextPayload carries a single run of text (title, subtitle, quote, footer).
type TextPayload struct {
	Text string `json:"text"`
}

// ListPayload carries an ordered sequence of text items (bullets, notes).
type ListPayload struct {
	Items []string `json:"items"`
}

// ChartFormatting holds number presentation hints for synthesized charts.
type ChartFormatting struct {
	NumberFormat string `json:"number_format"`
	Currency     string `json:"currency"`
	Percentage   bool   `json:"percentage"`
}

// StatsPayload carries raw numeric data for chart blocks. Colors and
// Formatting are filled in by the chart synthesizer from the deck theme.
type StatsPayload struct {
	Stats      []Stat           `json:"stats"`
	ChartType  string           `json:"chart_type,omitempty"`
	Colors     []string         `json:"colors,omitempty"`
	Formatting *ChartFormatting `json:"formatting,omitempty"`
}

// ImagePayload carries an image descriptor plus the placement contract
// attached by the visual placer.
type ImagePayload struct {
	Asset     ImageAsset `json:"asset"`
	Placement *Placement `json:"placement,omitempty"`
}

func (TextPayload) payloadKind() string  { return "text" }
func (ListPayload) payloadKind() string  { return "list" }
func (StatsPayload) payloadKind() string { return "stats" }
func (ImagePayload) payloadKind() string { return "image" }

// =============================================================================
// ContentBlock
// =============================================================================

// ContentBlock is the atomic, typed unit of slide content. A block is owned
// by one slide's pipeline run; stages update blocks copy-on-write and never
// share them across slides.
type ContentBlock struct {
	ID              string       `json:"id"`
	Kind            BlockKind    `json:"kind"`
	Payload         Payload      `json:"-"` // serialized via the tagged wrapper in json.go
	Priority        Priority     `json:"priority"`
	EstimatedLength int          `json:"estimated_length"`
	Weight          VisualWeight `json:"visual_weight"`
	Intent          string       `json:"intent,omitempty"`
	Styling         Styling      `json:"styling"`
}

// Clone returns a copy of the block. Payloads are value types holding only
// immutable data, so a shallow payload copy is sufficient except for slices,
// which are duplicated to preserve copy-on-write semantics.
func (b ContentBlock) Clone() ContentBlock {
	out := b
	switch p := b.Payload.(type) {
	case ListPayload:
		items := make([]string, len(p.Items))
		copy(items, p.Items)
		out.Payload = ListPayload{Items: items}
	case StatsPayload:
		stats := make([]Stat, len(p.Stats))
		copy(stats, p.Stats)
		colors := make([]string, len(p.Colors))
		copy(colors, p.Colors)
		np := StatsPayload{Stats: stats, ChartType: p.ChartType, Colors: colors}
		if p.Formatting != nil {
			f := *p.Formatting
			np.Formatting = &f
		}
		out.Payload = np
	case ImagePayload:
		np := ImagePayload{Asset: p.Asset}
		if p.Placement != nil {
			pl := *p.Placement
			np.Placement = &pl
		}
		out.Payload = np
	}
	return out
}

// CloneBlocks copies a block slice for copy-on-write stage updates.
func CloneBlocks(blocks []ContentBlock) []ContentBlock {
	out := make([]ContentBlock, len(blocks))
	for i, b := range blocks {
		out[i] = b.Clone()
	}
	return out
}

// Text returns the block's textual content flattened to a single string.
// Non-text payloads return "".
func (b ContentBlock) Text() string {
	switch p := b.Payload.(type) {
	case TextPayload:
		return p.Text
	case ListPayload:
		if len(p.Items) == 0 {
			return ""
		}
		s := p.Items[0]
		for _, item := range p.Items[1:] {
			s += "\n" + item
		}
		return s
	}
	return ""
}

// Lines returns the number of text lines the block contributes.
func (b ContentBlock) Lines() int {
	switch p := b.Payload.(type) {
	case TextPayload:
		if p.Text == "" {
			return 0
		}
		return 1
	case ListPayload:
		return len(p.Items)
	}
	return 0
}

// IsText reports whether the block participates in text fitting and
// vertical rhythm (title, subtitle, bullets, quote).
func (b ContentBlock) IsText() bool {
	switch b.Kind {
	case BlockTitle, BlockSubtitle, BlockBullets, BlockQuote:
		return true
	}
	return false
}

// IsVisual reports whether the block is an image or chart.
func (b ContentBlock) IsVisual() bool {
	return b.Kind == BlockImage || b.Kind == BlockChart
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/deckforge/pkg/deck"
)

// loadOutline reads an outline file in JSON or TOML, detected by extension.
func loadOutline(path string) (deck.Outline, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSONOutline(path)
	case ".toml":
		return loadTOMLOutline(path)
	default:
		return deck.Outline{}, fmt.Errorf("unsupported outline format %q (use .json or .toml)", filepath.Ext(path))
	}
}

func loadJSONOutline(path string) (deck.Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return deck.Outline{}, fmt.Errorf("open outline %s: %w", path, err)
	}
	defer f.Close()

	outline, err := deck.ReadOutline(f)
	if err != nil {
		return deck.Outline{}, fmt.Errorf("parse outline %s: %w", path, err)
	}
	return outline, nil
}

// tomlOutline mirrors deck.Outline with snake_case TOML keys, so outline
// files read the same in both formats.
type tomlOutline struct {
	Title    string      `toml:"title"`
	Subtitle string      `toml:"subtitle"`
	Company  string      `toml:"company"`
	Industry string      `toml:"industry"`
	Slides   []tomlSlide `toml:"slides"`
}

type tomlSlide struct {
	SlideNumber int         `toml:"slide_number"`
	SlideType   string      `toml:"slide_type"`
	Title       string      `toml:"title"`
	Content     []string    `toml:"content"`
	KeyPoints   []string    `toml:"key_points"`
	Statistics  []tomlStat  `toml:"statistics"`
	ChartType   string      `toml:"chart_type"`
	Images      []tomlImage `toml:"images"`
}

type tomlStat struct {
	Label string  `toml:"label"`
	Value float64 `toml:"value"`
}

type tomlImage struct {
	URL     string `toml:"url"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	License string `toml:"license"`
	Alt     string `toml:"alt"`
}

func loadTOMLOutline(path string) (deck.Outline, error) {
	var raw tomlOutline
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return deck.Outline{}, fmt.Errorf("parse outline %s: %w", path, err)
	}

	outline := deck.Outline{
		Title:    raw.Title,
		Subtitle: raw.Subtitle,
		Company:  raw.Company,
		Industry: raw.Industry,
	}
	for _, s := range raw.Slides {
		slide := deck.OutlineSlide{
			SlideNumber: s.SlideNumber,
			SlideType:   s.SlideType,
			Title:       s.Title,
			Content:     s.Content,
			KeyPoints:   s.KeyPoints,
			ChartType:   s.ChartType,
		}
		for _, st := range s.Statistics {
			slide.Statistics = append(slide.Statistics, deck.Stat{Label: st.Label, Value: st.Value})
		}
		for _, img := range s.Images {
			slide.Images = append(slide.Images, deck.ImageAsset{
				URL:     img.URL,
				Width:   img.Width,
				Height:  img.Height,
				License: img.License,
				Alt:     img.Alt,
			})
		}
		outline.Slides = append(outline.Slides, slide)
	}
	return outline, nil
}

// Package feature implements deck-wide analysis passes that run after all
// slides are rendered.
//
// The consistency checker compares layout properties across slides and
// reports each check as a pass/fail label. Failing checks never abort an
// export; they surface in the deck's consistency report for the caller to
// act on.
package feature

import (
	"fmt"

	"github.com/matzehuels/deckforge/pkg/compose"
	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/theme"
)

// Check names reported in the consistency report.
const (
	CheckTitleAlignment = "title-alignment"
	CheckFooterBaseline = "footer-baseline"
	CheckColorContrast  = "color-contrast"
	CheckSpacingRhythm  = "spacing-rhythm"
)

// CheckConsistency runs all cross-slide checks over the rendered slides.
// The report's Passed field is the conjunction of all checks.
func CheckConsistency(slides []deck.SlideLayout, tokens theme.Tokens) deck.ConsistencyReport {
	checks := []deck.ConsistencyCheck{
		checkTitleAlignment(slides),
		checkFooterBaseline(slides),
		checkColorContrast(tokens),
		checkSpacingRhythm(slides),
	}

	passed := true
	for _, c := range checks {
		if !c.Passed {
			passed = false
		}
	}
	return deck.ConsistencyReport{Checks: checks, Passed: passed}
}

// checkTitleAlignment verifies every slide places its title block in the
// same grid area, so titles sit at a consistent vertical position deck-wide.
func checkTitleAlignment(slides []deck.SlideLayout) deck.ConsistencyCheck {
	check := deck.ConsistencyCheck{Name: CheckTitleAlignment, Passed: true}

	var area string
	for _, slide := range slides {
		region, ok := slide.Archetype.Regions[deck.RegionTitle]
		if !ok {
			continue
		}
		if area == "" {
			area = region.Area
			continue
		}
		if region.Area != area {
			check.Passed = false
			check.Detail = fmt.Sprintf("slide %d title area %q differs from %q",
				slide.SlideNumber, region.Area, area)
			return check
		}
	}
	return check
}

// checkFooterBaseline verifies slides that carry a footer region agree on
// its grid area.
func checkFooterBaseline(slides []deck.SlideLayout) deck.ConsistencyCheck {
	check := deck.ConsistencyCheck{Name: CheckFooterBaseline, Passed: true}

	var area string
	for _, slide := range slides {
		region, ok := slide.Archetype.Regions[deck.RegionFooter]
		if !ok {
			continue
		}
		if area == "" {
			area = region.Area
			continue
		}
		if region.Area != area {
			check.Passed = false
			check.Detail = fmt.Sprintf("slide %d footer area %q differs from %q",
				slide.SlideNumber, region.Area, area)
			return check
		}
	}
	return check
}

// checkColorContrast verifies the theme's text/background contrast meets the
// minimum legibility ratio.
func checkColorContrast(tokens theme.Tokens) deck.ConsistencyCheck {
	check := deck.ConsistencyCheck{Name: CheckColorContrast, Passed: true}

	ratio := theme.Contrast(tokens.Colors.Text, tokens.Colors.Background)
	if ratio < theme.MinContrast {
		check.Passed = false
		check.Detail = fmt.Sprintf("theme %q text/background contrast %.2f below %.1f",
			tokens.Name, ratio, theme.MinContrast)
	}
	return check
}

// checkSpacingRhythm verifies the balancer's vertical rhythm held: on every
// slide the first text block has no top margin and each subsequent text
// block has the fixed spacing.
func checkSpacingRhythm(slides []deck.SlideLayout) deck.ConsistencyCheck {
	check := deck.ConsistencyCheck{Name: CheckSpacingRhythm, Passed: true}

	for _, slide := range slides {
		first := true
		for _, b := range slide.Blocks {
			if !b.IsText() {
				continue
			}
			want := compose.TextBlockSpacing
			if first {
				want = 0
				first = false
			}
			if b.Styling.MarginTop != want {
				check.Passed = false
				check.Detail = fmt.Sprintf("slide %d block %s margin %.0f, want %.0f",
					slide.SlideNumber, b.ID, b.Styling.MarginTop, want)
				return check
			}
		}
	}
	return check
}

package theme

import (
	"math"
	"strconv"
	"strings"
)

// MinContrast is the minimum text/background contrast ratio the consistency
// checker expects, following the WCAG AA threshold for normal text.
const MinContrast = 4.5

// Contrast computes the WCAG contrast ratio between two hex colors.
// The result is in [1, 21]; higher is more legible. Unparseable colors
// yield 0 so callers can flag them without failing.
func Contrast(a, b string) float64 {
	la, okA := luminance(a)
	lb, okB := luminance(b)
	if !okA || !okB {
		return 0
	}
	lighter, darker := la, lb
	if darker > lighter {
		lighter, darker = darker, lighter
	}
	return (lighter + 0.05) / (darker + 0.05)
}

// luminance computes relative luminance of a "#rrggbb" or "#rgb" color.
func luminance(hex string) (float64, bool) {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return 0, false
	}
	return 0.2126*channel(r) + 0.7152*channel(g) + 0.0722*channel(b), true
}

func channel(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func parseHex(s string) (r, g, b float64, ok bool) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	r = float64(n>>16&0xff) / 255
	g = float64(n>>8&0xff) / 255
	b = float64(n&0xff) / 255
	return r, g, b, true
}

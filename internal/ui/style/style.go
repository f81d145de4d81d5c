// Package style holds text and colour helpers shared by the views.
package style

import (
	"image/color"
	"strings"
)

// Tracked uppercases text and spreads its letters one space apart, the
// closest canvas.Text gets to wide letter spacing.
func Tracked(text string) string {
	runes := []rune(strings.ToUpper(text))
	out := make([]rune, 0, len(runes)*2)
	for i, r := range runes {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}

// Fade scales the alpha channel of base by factor, clamped to [0, 1].
func Fade(base color.NRGBA, factor float32) color.NRGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	base.A = uint8(float32(base.A) * factor)
	return base
}

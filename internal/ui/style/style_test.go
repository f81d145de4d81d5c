package style

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracked(t *testing.T) {
	assert.Equal(t, "H A P P Y   N E W", Tracked("Happy new"))
	assert.Equal(t, "", Tracked(""))
}

func TestFadeClamps(t *testing.T) {
	base := color.NRGBA{R: 10, G: 20, B: 30, A: 200}

	assert.Equal(t, uint8(100), Fade(base, 0.5).A)
	assert.Equal(t, uint8(0), Fade(base, -1).A)
	assert.Equal(t, uint8(200), Fade(base, 3).A)
	assert.Equal(t, uint8(10), Fade(base, 0.5).R)
}

package display

import (
	"image/color"
	"testing"

	"midnight/internal/core/countdown"
	"midnight/internal/ui/animation"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffReportsOnlyChangedGroups(t *testing.T) {
	prev := countdown.Parts{Days: 1, Hours: 0, Minutes: 0, Seconds: 0}
	next := countdown.Parts{Days: 0, Hours: 23, Minutes: 59, Seconds: 59}

	changes := Diff(prev, next)
	require.Len(t, changes, 4)
	assert.Equal(t, Change{Unit: UnitDays, Previous: 1, Current: 0}, changes[0])
	assert.Equal(t, Change{Unit: UnitSeconds, Previous: 0, Current: 59}, changes[3])

	changes = Diff(countdown.Parts{Seconds: 5}, countdown.Parts{Seconds: 4})
	assert.Equal(t, []Change{{Unit: UnitSeconds, Previous: 5, Current: 4}}, changes)

	assert.Empty(t, Diff(next, next))
}

func TestFormatPadsToTwoDigits(t *testing.T) {
	assert.Equal(t, "00", Format(0))
	assert.Equal(t, "07", Format(7))
	assert.Equal(t, "42", Format(42))
	assert.Equal(t, "365", Format(365))
}

func TestPanelStartsAtZero(t *testing.T) {
	test.NewApp()
	panel := New(animation.New())

	for _, unit := range Units {
		assert.Equal(t, "00", panel.Text(unit))
	}
	assert.True(t, panel.Parts().IsZero())
}

func TestPanelSetPartsUpdatesImmediately(t *testing.T) {
	test.NewApp()
	panel := New(animation.New())

	panel.SetParts(countdown.Parts{Days: 12, Hours: 3, Minutes: 4, Seconds: 5})

	assert.Equal(t, "12", panel.Text(UnitDays))
	assert.Equal(t, "03", panel.Text(UnitHours))
	assert.Equal(t, "04", panel.Text(UnitMinutes))
	assert.Equal(t, "05", panel.Text(UnitSeconds))
	assert.Equal(t, countdown.Parts{Days: 12, Hours: 3, Minutes: 4, Seconds: 5}, panel.Parts())

	panel.SetParts(countdown.Parts{Days: 12, Hours: 3, Minutes: 4, Seconds: 4})
	assert.Equal(t, "04", panel.Text(UnitSeconds))
	assert.Equal(t, "05", panel.groups[UnitSeconds].leaving.Text)
	assert.Equal(t, "00", panel.groups[UnitDays].leaving.Text, "unchanged groups keep their last swap")
}

func TestPanelApplyFadesEverything(t *testing.T) {
	test.NewApp()
	panel := New(animation.New())

	panel.Apply(animation.Keyframe{Opacity: 0, Scale: 1.5})

	for _, unit := range Units {
		g := panel.groups[unit]
		digit, ok := g.current.Color.(color.NRGBA)
		require.True(t, ok)
		assert.Equal(t, uint8(0), digit.A)
		assert.Equal(t, digitSize*1.5, g.current.TextSize)
	}
}

package tray

import (
	"testing"

	"midnight/internal/core/countdown"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDesktop struct {
	menus []*fyne.Menu
	icon  fyne.Resource
}

func (app *fakeDesktop) SetSystemTrayMenu(menu *fyne.Menu) {
	app.menus = append(app.menus, menu)
}

func (app *fakeDesktop) SetSystemTrayIcon(icon fyne.Resource) {
	app.icon = icon
}

func (app *fakeDesktop) SetSystemTrayWindow(fyne.Window) {}

func TestTrayMirrorsCountdown(t *testing.T) {
	desktopApp := &fakeDesktop{}
	manager := New(desktopApp, "Midnight", "2026", Callbacks{})
	require.Len(t, desktopApp.menus, 1)

	manager.SetRemaining(countdown.Parts{Days: 2, Hours: 1, Minutes: 0, Seconds: 9})
	assert.Equal(t, "2d 01:00:09 to 2026", manager.Status())

	manager.SetCelebrating("Happy New Year")
	assert.Equal(t, "Happy New Year", manager.Status())
	assert.Len(t, desktopApp.menus, 3)
}

func TestTrayMenuInvokesCallbacks(t *testing.T) {
	desktopApp := &fakeDesktop{}
	shown, quit := 0, 0
	New(desktopApp, "Midnight", "2026", Callbacks{
		OnShow: func() { shown++ },
		OnQuit: func() { quit++ },
	})

	menu := desktopApp.menus[len(desktopApp.menus)-1]
	require.Len(t, menu.Items, 4)
	menu.Items[2].Action()
	menu.Items[3].Action()

	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, quit)
}

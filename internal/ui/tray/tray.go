package tray

import (
	"fmt"

	"midnight/internal/core/countdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow func()
	OnQuit func()
}

// Manager mirrors the countdown in the system tray.
type Manager struct {
	app        desktop.App
	title      string
	headline   string
	statusItem *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager. headline names what is being counted down to,
// e.g. "2026".
func New(app desktop.App, title string, headline string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		headline:  headline,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Starting...", nil)
	manager.statusItem.Disabled = true
	manager.refreshMenu()

	return manager
}

// SetRemaining shows the time left.
func (manager *Manager) SetRemaining(parts countdown.Parts) {
	manager.statusItem.Label = fmt.Sprintf("%s to %s", parts.Label(), manager.headline)
	manager.refreshMenu()
}

// SetCelebrating switches the status to the celebration message.
func (manager *Manager) SetCelebrating(message string) {
	manager.statusItem.Label = message
	manager.refreshMenu()
}

// Status returns the current status label.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show countdown", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

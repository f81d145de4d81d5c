package main

import (
	"log/slog"
	"os"

	"midnight/internal/config"
	"midnight/internal/core/countdown"
	"midnight/internal/platform"
	"midnight/internal/ui/animation"
	"midnight/internal/ui/celebration"
	"midnight/internal/ui/screen"
	"midnight/internal/ui/tray"
	"midnight/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/google/uuid"
)

const (
	appID     = "com.midnight.countdown"
	surfaceID = appID + "/root"
	logoFile  = "midnight.svg"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With("session", uuid.NewString())
	slog.SetDefault(logger)

	guard, err := platform.AcquireSurface(surfaceID)
	if err != nil {
		logger.Error("display surface unavailable", slog.Any("error", err))
		return
	}
	logger.Info("display surface mounted", slog.String("address", guard.Address()))
	defer func() {
		if err := guard.Release(); err != nil {
			logger.Warn("surface release failed", slog.Any("error", err))
		}
	}()

	settings, err := config.Parse(resources.CountdownDocument())
	if err != nil {
		logger.Warn("countdown document rejected, using defaults", slog.Any("error", err))
	}
	if !settings.RehearseFrom.IsZero() {
		logger.Warn("rehearsal clock in use", slog.Time("from", settings.RehearseFrom))
	}
	clk := settings.Clock()

	fyneApp := app.NewWithID(appID)
	logo := resources.MustLogo(logoFile)
	fyneApp.SetIcon(logo)

	engine := animation.New()
	sampler := countdown.New(settings.CountdownConfig(), countdown.Config{
		TickInterval: settings.TickInterval,
		Clock:        clk,
		Logger:       logger,
	})

	celebrationConfig := settings.CelebrationConfig()
	celebrationView := celebration.New(celebrationConfig, engine, clk, logger)

	displayConfig := settings.DisplayConfig()
	root := screen.New(fyneApp, screen.Config{
		Title:      displayConfig.Title,
		Footer:     displayConfig.Footer,
		Fullscreen: settings.Fullscreen,
	}, sampler, celebrationView, engine, logger)
	root.SetOnClose(fyneApp.Quit)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, displayConfig.Title, celebrationConfig.Headline, tray.Callbacks{
			OnShow: root.Show,
			OnQuit: func() {
				root.Deactivate()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(logo)

		events := sampler.Subscribe(4)
		go func() {
			for event := range events {
				event := event
				fyne.Do(func() {
					switch event.Type {
					case countdown.EventTick:
						trayManager.SetRemaining(event.Parts)
					case countdown.EventComplete:
						trayManager.SetCelebrating(celebrationConfig.Tagline)
					}
				})
			}
		}()
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	root.Activate()
	if trayManager != nil {
		if snapshot := sampler.Snapshot(); snapshot.Type == countdown.EventComplete {
			trayManager.SetCelebrating(celebrationConfig.Tagline)
		} else {
			trayManager.SetRemaining(snapshot.Parts)
		}
	}
	fyneApp.Run()
}

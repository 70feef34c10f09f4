package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/goaltrack/goaltrack/internal/config"
	"github.com/goaltrack/goaltrack/internal/platform"
	"github.com/goaltrack/goaltrack/internal/store"
	"github.com/goaltrack/goaltrack/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.goaltrack.goaltrack"
	AppName = "GoalTrack"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Resolve the data directory holding goals and settings
	dataDir := platform.DefaultDataDir()
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		log.Printf("failed to ensure data dir: %v", err)
	}

	// Load settings and apply the font-size driven theme before any widget
	// is created
	settings := config.NewSettings(dataDir)
	if err := settings.Load(); err != nil {
		log.Printf("load settings: %v", err)
	}
	myApp.Settings().SetTheme(ui.NewAppTheme(settings.FontSize()))

	// Load goals; a corrupt file is non-fatal and surfaces as a warning
	goals := store.New(dataDir)
	loadErr := goals.Load()

	// Create and setup UI
	myWindow := myApp.NewWindow(ui.WindowTitle)
	rootUI := ui.NewRootUI(myWindow, myApp, goals, settings)
	if loadErr != nil {
		rootUI.ShowLoadWarning(loadErr)
	}

	// Reload when the data file changes outside the app
	cleanup, err := goals.Watch(func() {
		fyne.Do(rootUI.ReloadFromDisk)
	})
	if err != nil {
		log.Printf("watch goals file: %v", err)
	} else {
		defer cleanup()
	}

	// Show and run
	myWindow.ShowAndRun()
}

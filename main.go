package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/crushlist/crushlist/internal/checklist"
	"github.com/crushlist/crushlist/internal/compression"
	"github.com/crushlist/crushlist/internal/config"
	"github.com/crushlist/crushlist/internal/haptics"
	"github.com/crushlist/crushlist/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.crushlist.crushlist"
	AppName = "Crushlist"
)

func main() {
	// Log version information
	fmt.Printf("Crushlist v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	cfg, err := settings.EngineConfig(ui.CardHeight, ui.CompressionLineOffset)
	if err != nil {
		// A stored preference slipped past validation; fall back to defaults.
		log.Printf("Invalid engine configuration, using defaults: %v", err)
		settings.SetCompressionThreshold(config.DefaultThreshold)
		settings.SetRangeVariant(config.DefaultRangeVariant)
		cfg, _ = settings.EngineConfig(ui.CardHeight, ui.CompressionLineOffset)
	}

	store := checklist.NewStore()
	engine := compression.NewEngine(cfg)
	hapticsSvc := haptics.NewService(settings.GetHapticsEnabled())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, store, engine, hapticsSvc, settings)

	// Show and run
	myWindow.ShowAndRun()
}

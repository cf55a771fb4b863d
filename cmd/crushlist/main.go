package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/crushlist/crushlist/internal/checklist"
	"github.com/crushlist/crushlist/internal/compression"
	"github.com/crushlist/crushlist/internal/config"
	"github.com/crushlist/crushlist/internal/haptics"
	"github.com/crushlist/crushlist/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.crushlist.crushlist")
	myWindow := myApp.NewWindow("Crushlist")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	cfg, err := settings.EngineConfig(ui.CardHeight, ui.CompressionLineOffset)
	if err != nil {
		settings.SetCompressionThreshold(config.DefaultThreshold)
		cfg, _ = settings.EngineConfig(ui.CardHeight, ui.CompressionLineOffset)
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp,
		checklist.NewStore(),
		compression.NewEngine(cfg),
		haptics.NewService(settings.GetHapticsEnabled()),
		settings)

	// Show and run
	myWindow.ShowAndRun()
}

package main

import (
	"embed"
	"log"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/flavono123/valentine/internal/config"
	"github.com/flavono123/valentine/internal/store"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg := config.Load()

	settings, err := store.NewStore(store.StoreOptions{DevMode: os.Getenv("VALENTINE_DEV") == "1"})
	if err != nil {
		log.Fatalf("failed to open settings: %v", err)
	}
	if err := settings.Load(); err != nil {
		log.Printf("failed to load settings: %v", err)
	}

	// Create an instance of the app structure
	app := NewApp(settings, cfg.PublicURL)

	// Create application with options
	err = wails.Run(&options.App{
		Title:     "Will you be my Valentine?",
		Width:     1024,
		Height:    768,
		MinWidth:  360,
		MinHeight: 480,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 240, B: 245, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}

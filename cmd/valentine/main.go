package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/valentine/internal/clipboard"
	"github.com/flavono123/valentine/internal/config"
	"github.com/flavono123/valentine/internal/store"
	"github.com/flavono123/valentine/internal/ui"
)

func main() {
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			log.Fatalf("failed to log to file: %v", err)
		}
		defer f.Close()
	}

	cfg := config.Load()

	settings, err := store.NewStore(store.StoreOptions{DevMode: len(os.Getenv("VALENTINE_DEV")) > 0})
	if err != nil {
		log.Fatalf("failed to open settings: %v", err)
	}
	if err := settings.Load(); err != nil {
		log.Printf("failed to load settings: %v", err)
	}

	// OSC52 still reaches the clipboard when the terminal is remote.
	clip := clipboard.Chain{
		clipboard.System{},
		clipboard.NewOSC52(os.Stdout, os.Getenv("TERM")),
	}

	model := ui.InitModel(ui.Options{
		Settings:   settings,
		Clipboard:  clip,
		AppURL:     cfg.PublicURL,
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
	})
	defer model.Close()

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if _, err := program.Run(); err != nil {
		log.Fatalf("failed to run program: %v", err)
	}
}

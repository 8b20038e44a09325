package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/flavono123/valentine/docs"
	"github.com/flavono123/valentine/internal/clipboard"
	"github.com/flavono123/valentine/internal/dodge"
	"github.com/flavono123/valentine/internal/domain"
)

// App is bound to the webview. The page reports its measured frames and
// pointer events; every position is computed here.
type App struct {
	ctx context.Context

	mu        sync.Mutex
	frame     frame
	listeners dodge.Listeners
	ctrl      *dodge.Controller
	panel     *domain.Panel
	answered  bool

	// writeText reaches the system clipboard through the webview runtime.
	writeText func(text string) error
}

type frame struct {
	container dodge.Size
	target    dodge.Size
	ok        bool
}

// NewApp creates a new App application struct
func NewApp(settings domain.Settings, appURL string, opts ...dodge.Option) *App {
	a := &App{}
	a.writeText = func(text string) error {
		return runtime.ClipboardSetText(a.ctx, text)
	}
	a.ctrl = dodge.NewController(dodge.MeasureFunc(a.measure), opts...)
	a.ctrl.Attach(&a.listeners)
	a.panel = domain.NewPanel(settings, clipboard.Func(func(text string) error {
		return a.writeText(text)
	}), appURL)
	return a
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.panel.Load(); err != nil {
		log.Printf("Failed to load settings: %v", err)
	}
}

func (a *App) shutdown(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ctrl.Detach()
}

// measure is only called with mu held.
func (a *App) measure() (dodge.Size, dodge.Size, bool) {
	return a.frame.container, a.frame.target, a.frame.ok
}

// Resize records the measured container and No button and repositions.
// The page calls it on mount and on every resize or orientation change.
func (a *App) Resize(containerW, containerH, targetW, targetH float64) dodge.Position {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.frame = frame{
		container: dodge.Size{Width: containerW, Height: containerH},
		target:    dodge.Size{Width: targetW, Height: targetH},
		ok:        containerW > 0 && containerH > 0,
	}
	a.listeners.Notify()
	return a.ctrl.Position()
}

// Evade handles a DOM event on the No button, e.g. "pointerenter".
func (a *App) Evade(eventType string) (dodge.Position, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	i, ok := dodge.ParseInteraction(eventType)
	if !ok {
		return a.ctrl.Position(), fmt.Errorf("unsupported interaction %q", eventType)
	}
	a.ctrl.Handle(i)
	return a.ctrl.Position(), nil
}

func (a *App) Position() dodge.Position {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ctrl.Position()
}

// Answer records Yes. Only the first call reports true.
func (a *App) Answer() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.answered {
		return false
	}
	a.answered = true
	a.ctrl.Detach()
	return true
}

func (a *App) Answered() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.answered
}

func (a *App) AppURL() string {
	return a.panel.AppURL()
}

func (a *App) GetDomain() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.panel.Saved()
}

func (a *App) SaveDomain(value string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.panel.SetInput(value)
	if err := a.panel.Save(); err != nil {
		return "", err
	}
	return a.panel.Saved(), nil
}

// Guidance returns nil while the input is blank.
func (a *App) Guidance(input string) *domain.Guidance {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.panel.SetInput(input)
	g, ok := a.panel.Guidance()
	if !ok {
		return nil
	}
	return &g
}

func (a *App) NextSteps() []string {
	return domain.NextSteps
}

func (a *App) Docs() string {
	return docs.CustomDomain
}

// Copy writes text and marks item as copied for a short while.
func (a *App) Copy(item, text string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.panel.Copy(item, text) {
		return false
	}
	time.AfterFunc(domain.CopiedFor, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.panel.ClearCopied(item)
	})
	return true
}

func (a *App) Copied() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.panel.Copied()
}

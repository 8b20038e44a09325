package domain

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// SettingsKey is the fixed key the custom domain is stored under.
const SettingsKey = "custom-domain"

// CopiedFor is how long a copy affordance shows its success mark.
const CopiedFor = 2 * time.Second

// Settings is a string key-value store. A missing key reads as "".
type Settings interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type Clipboard interface {
	WriteText(text string) error
}

// Panel is the state behind the custom domain dialog.
type Panel struct {
	settings  Settings
	clipboard Clipboard
	appURL    string

	open   bool
	input  string
	saved  string
	copied string
}

func NewPanel(settings Settings, clipboard Clipboard, appURL string) *Panel {
	return &Panel{
		settings:  settings,
		clipboard: clipboard,
		appURL:    appURL,
	}
}

// Load reads the saved domain and resets the input to it.
func (p *Panel) Load() error {
	saved, err := p.settings.Get(SettingsKey)
	if err != nil {
		return fmt.Errorf("failed to load custom domain: %w", err)
	}
	p.saved = saved
	p.input = saved
	return nil
}

func (p *Panel) Open() bool         { return p.open }
func (p *Panel) SetOpen(open bool)  { p.open = open }
func (p *Panel) Input() string      { return p.input }
func (p *Panel) SetInput(in string) { p.input = in }
func (p *Panel) Saved() string      { return p.saved }
func (p *Panel) AppURL() string     { return p.appURL }
func (p *Panel) Copied() string     { return p.copied }

func (p *Panel) TargetHost() string {
	return TargetHost(p.appURL)
}

// Save persists the trimmed input.
func (p *Panel) Save() error {
	value := strings.TrimSpace(p.input)
	if err := p.settings.Set(SettingsKey, value); err != nil {
		return fmt.Errorf("failed to save custom domain: %w", err)
	}
	p.saved = value
	p.input = value
	return nil
}

// Guidance follows the live input, not the saved value. ok is false while
// the input is blank.
func (p *Panel) Guidance() (Guidance, bool) {
	input := strings.TrimSpace(p.input)
	if input == "" {
		return Guidance{}, false
	}
	return Guide(input, p.TargetHost()), true
}

// Copy writes text to the clipboard and marks item as copied. A failed write
// is only logged.
func (p *Panel) Copy(item, text string) bool {
	if err := p.clipboard.WriteText(text); err != nil {
		log.Printf("Failed to copy: %v", err)
		return false
	}
	p.copied = item
	return true
}

// ClearCopied drops the mark if item still holds it.
func (p *Panel) ClearCopied(item string) {
	if p.copied == item {
		p.copied = ""
	}
}

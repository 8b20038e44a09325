package event

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// prompt -> root, fired once when Yes is activated
type AnsweredMsg struct{}

// any -> root
type OpenSettingsMsg struct{}

// dialog -> root
type CloseSettingsMsg struct{}

// tick -> dialog, drops the copied mark of Item
type ClearCopiedMsg struct {
	Item string
}

// palette -> root
type PickActionMsg struct {
	Action Action
}

type Action uint

const (
	OpenSettings Action = iota
	OpenDocs
	CopyAppURL
	Quit
)

func OpenSettingsCmd() tea.Msg {
	return OpenSettingsMsg{}
}

func CloseSettingsCmd() tea.Msg {
	return CloseSettingsMsg{}
}

// -> root

type Status uint

const (
	Error Status = iota
	Warn
	Info
)

type SetStatusMsg struct {
	Message string
	Status  Status
}

const statusDuration = time.Millisecond * 2400

func ShowStatus() tea.Cmd {
	return tea.Tick(statusDuration, func(t time.Time) tea.Msg {
		return HideStatusMsg{}
	})
}

type HideStatusMsg struct{}

// ClearCopiedAfter schedules the copied mark of item to be dropped.
func ClearCopiedAfter(d time.Duration, item string) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearCopiedMsg{Item: item}
	})
}

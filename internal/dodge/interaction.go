package dodge

import "strings"

// Interaction is a pointer or touch event that landed on the target.
type Interaction uint8

const (
	PointerEnter Interaction = iota
	PointerMove
	PointerDown
	TouchStart
)

var interactionNames = map[Interaction]string{
	PointerEnter: "pointerenter",
	PointerMove:  "pointermove",
	PointerDown:  "pointerdown",
	TouchStart:   "touchstart",
}

func (i Interaction) String() string {
	if name, ok := interactionNames[i]; ok {
		return name
	}
	return "unknown"
}

// ParseInteraction accepts DOM event names such as "pointerenter".
func ParseInteraction(s string) (Interaction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range interactionNames {
		if name == s {
			return i, true
		}
	}
	return 0, false
}

package ui

const (
	//longing for https://github.com/charmbracelet/bubbles/pull/240
	UPPER_20 = 0.8

	TOP_BAR_HEIGHT = 1
	FOOTER_HEIGHT  = 2 // help or status 1, credits 1

	GEAR_LABEL = "≡ settings"

	METER_MAX_WIDTH           = 40
	METER_SPRING_FREQ         = 18.0
	METER_SPRING_CRITICAL_DMP = 1.0

	CREDITS = "© 2026. Built with ♥ using caffeine.ai"
)

package config

const (
	// AppID is the fixed identifier used for config and data paths.
	// Even if the display name changes, keep this value to
	// maintain compatibility with existing user data.
	AppID = "valentine"
)

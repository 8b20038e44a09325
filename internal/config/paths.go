package config

import (
	"os"
	"path/filepath"
)

// DataDir returns os.UserConfigDir()/valentine, or a relative fallback when
// the user config dir cannot be determined.
func DataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "." + AppID
	}
	return filepath.Join(dir, AppID)
}

func ConfigPath() string {
	return filepath.Join(DataDir(), "config.toml")
}

// DBPath is where the SSH server keeps per-user settings.
func DBPath() string {
	return filepath.Join(DataDir(), AppID+".db")
}

func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0755)
}

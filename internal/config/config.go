package config

import (
	"log"
	"os"
	"strconv"
)

const (
	defaultPublicURL   = "http://localhost"
	defaultSSHHost     = "::"
	defaultSSHPort     = "2222"
	defaultHostKeyPath = ".ssh/valentine_ed25519"

	// A terminal cell is treated as a 10x20 pixel box so that layout
	// constants keep their pixel meaning.
	defaultCellWidth  = 10.0
	defaultCellHeight = 20.0
)

// Config holds application configuration.
// Priority: env vars → config.toml → defaults
type Config struct {
	// PublicURL is where the app is reachable; DNS targets derive from it.
	PublicURL string

	SSHHost     string
	SSHPort     string
	HostKeyPath string

	DBPath string

	CellWidth  float64
	CellHeight float64
}

// Load reads ConfigPath and the environment.
func Load() *Config {
	fileConfig, err := LoadFile(ConfigPath())
	if err != nil {
		log.Printf("ignoring config file %s: %v", ConfigPath(), err)
		fileConfig = &FileConfig{}
	}
	return FromFile(fileConfig)
}

// FromFile layers the environment over fc and fills in defaults.
func FromFile(fc *FileConfig) *Config {
	return &Config{
		PublicURL:   getEnvOrFile("VALENTINE_PUBLIC_URL", fc.PublicURL, defaultPublicURL),
		SSHHost:     getEnvOrFile("SSH_HOST", fc.SSHHost, defaultSSHHost),
		SSHPort:     getEnvOrFile("SSH_PORT", fc.SSHPort, defaultSSHPort),
		HostKeyPath: getEnvOrFile("SSH_HOST_KEY", fc.HostKeyPath, defaultHostKeyPath),
		DBPath:      getEnvOrFile("VALENTINE_DB", fc.DBPath, DBPath()),
		CellWidth:   getEnvFloatOrFile("VALENTINE_CELL_WIDTH", fc.CellWidth, defaultCellWidth),
		CellHeight:  getEnvFloatOrFile("VALENTINE_CELL_HEIGHT", fc.CellHeight, defaultCellHeight),
	}
}

func getEnvOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getEnvFloatOrFile ignores non-positive and unparsable values.
func getEnvFloatOrFile(key string, fileValue, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
	}
	if fileValue > 0 {
		return fileValue
	}
	return defaultValue
}

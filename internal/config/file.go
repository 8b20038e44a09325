package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the config.toml structure. Unset values fall through to
// defaults.
type FileConfig struct {
	PublicURL   string  `toml:"public_url"`
	SSHHost     string  `toml:"ssh_host"`
	SSHPort     string  `toml:"ssh_port"`
	HostKeyPath string  `toml:"ssh_host_key"`
	DBPath      string  `toml:"db_path"`
	CellWidth   float64 `toml:"cell_width"`
	CellHeight  float64 `toml:"cell_height"`
}

// LoadFile decodes path. A missing file yields an empty FileConfig.
func LoadFile(path string) (*FileConfig, error) {
	cfg := &FileConfig{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

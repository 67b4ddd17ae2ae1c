package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Every field is a
// pointer so unset values never override flags.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	UI       UIConfig       `toml:"ui"`
}

// PracticeConfig maps session settings.
type PracticeConfig struct {
	Mode        *string `toml:"mode"`
	Seconds     *int    `toml:"seconds"`
	Words       *int    `toml:"words"`
	Numbers     *bool   `toml:"numbers"`
	Punctuation *bool   `toml:"punctuation"`
	Seed        *int64  `toml:"seed"`
	WordList    *string `toml:"wordlist"`
}

// UIConfig maps presentation settings.
type UIConfig struct {
	Keyboard *bool   `toml:"keyboard"`
	LogFile  *string `toml:"log-file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"enigma/internal/domain"
)

// FileConfig is the on-disk YAML configuration shape for enigma.
// Nil fields fall back to built-in defaults.
type FileConfig struct {
	// Rotors is the default rotor order, left to right, e.g. [I, II, III].
	Rotors []string `yaml:"rotors,omitempty"`
	// Positions is the default start letter per rotor, e.g. AAA.
	Positions *string `yaml:"positions,omitempty"`
	// Plugboard is the default plugboard text, e.g. "AB CD".
	Plugboard *string `yaml:"plugboard,omitempty"`
	// Home overrides the directory holding the key-sheet book.
	Home *string `yaml:"home,omitempty"`
}

// ErrNoConfig is returned when no config file is found.
var ErrNoConfig = errors.New("no config file")

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// GlobalPath returns $XDG_CONFIG_HOME/enigma/config.yml, falling back to
// ~/.config. It returns "" when neither is available.
func GlobalPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, "enigma", "config.yml")
}

// LoadGlobal loads the global config file, or ErrNoConfig when there is none.
func LoadGlobal() (FileConfig, error) {
	p := GlobalPath()
	if p == "" {
		return FileConfig{}, ErrNoConfig
	}
	if _, err := os.Stat(p); err != nil {
		return FileConfig{}, ErrNoConfig
	}
	return LoadFile(p)
}

// Load reads path when set, otherwise the global file. A missing global file
// is not an error and yields an empty config.
func Load(path string) (FileConfig, error) {
	if path != "" {
		return LoadFile(path)
	}
	cfg, err := LoadGlobal()
	if errors.Is(err, ErrNoConfig) {
		return FileConfig{}, nil
	}
	return cfg, err
}

// Settings applies the file's defaults over the built-in ones.
func (fc FileConfig) Settings() domain.Settings {
	s := domain.DefaultSettings()
	if len(fc.Rotors) > 0 {
		s.Rotors = append([]string(nil), fc.Rotors...)
	}
	if fc.Positions != nil {
		s.Positions = *fc.Positions
	}
	if fc.Plugboard != nil {
		s.Plugboard = domain.ParsePlugboard(*fc.Plugboard)
	}
	return domain.NormalizeSettings(s)
}

// HomeDir returns the configured home or "".
func (fc FileConfig) HomeDir() string {
	if fc.Home == nil {
		return ""
	}
	return *fc.Home
}

// Default returns a FileConfig spelling out the built-in defaults, used by
// `enigma config init`.
func Default() FileConfig {
	s := domain.DefaultSettings()
	positions := s.Positions
	plugboard := ""
	return FileConfig{
		Rotors:    s.Rotors,
		Positions: &positions,
		Plugboard: &plugboard,
	}
}

// Marshal renders cfg as YAML.
func Marshal(cfg FileConfig) ([]byte, error) { return yaml.Marshal(&cfg) }

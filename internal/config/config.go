package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Clipboard backends
const (
	ClipboardAuto   = "auto"
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
)

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	Gesture    string            `toml:"gesture"`     // key combination opening the dialog
	DebounceMS int               `toml:"debounce_ms"` // quiet period before a search refresh
	Clipboard  string            `toml:"clipboard"`   // auto, system or osc52
	Dataset    string            `toml:"dataset,omitempty"`
	UISettings UISettings        `toml:"ui"`
	Announce   AnnounceSettings  `toml:"announce"`
	State      map[string]string `toml:"state"` // persisted key-value state, see Schema
}

// UISettings represents UI-related configuration
type UISettings struct {
	OpenOnStart bool `toml:"open_on_start"`
	ExitOnClose bool `toml:"exit_on_close"`
	ListHeight  int  `toml:"list_height"`
}

// AnnounceSettings configures the external speech command
type AnnounceSettings struct {
	Command []string `toml:"command,omitempty"` // e.g. ["spd-say", "--wait"]
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Dir returns the emojimenu config directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "emojimenu")
}

// NewConfigService creates a config service for the file at path.
// An empty path selects DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults if it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		log.Printf("No config at %s, using defaults", cs.filePath)
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	// Start from defaults so missing keys keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	// Write through a temp file so a crash never leaves a truncated config
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, "failed to replace config file")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		Gesture:    "ctrl+e",
		DebounceMS: 300,
		Clipboard:  ClipboardAuto,
		UISettings: UISettings{
			OpenOnStart: true,
			ExitOnClose: false,
			ListHeight:  10,
		},
		State: defaultState(),
	}
}

func (c *Config) normalize() {
	if c.State == nil {
		c.State = defaultState()
	}
	if c.DebounceMS < 0 {
		c.DebounceMS = 0
	}
	if c.UISettings.ListHeight < 1 {
		c.UISettings.ListHeight = 10
	}
	switch c.Clipboard {
	case ClipboardAuto, ClipboardSystem, ClipboardOSC52:
	default:
		log.Warnf("Unknown clipboard backend %q, using %s", c.Clipboard, ClipboardAuto)
		c.Clipboard = ClipboardAuto
	}
}
